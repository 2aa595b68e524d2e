/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package purchase owns the purchase workflow: price validation, at-most-once
// purchase semantics, purchase record creation, and the per-buyer purchase
// index.
//
// "Already purchased" is a permanent fact. The purchase record under
// [buyer, assetId] is written exactly once and never mutated or deleted, and
// its existence is the duplicate check for all future attempts.
package purchase

import (
	"github.com/Ewrnlleh/Bookie/auth"
	"github.com/Ewrnlleh/Bookie/custom_errors"
	"github.com/Ewrnlleh/Bookie/data_model"
	"github.com/Ewrnlleh/Bookie/internal/common/global"
	"github.com/Ewrnlleh/Bookie/ledger"
	"github.com/Ewrnlleh/Bookie/token"
	"github.com/Ewrnlleh/Bookie/utils"

	"github.com/hyperledger/fabric/core/chaincode/shim"
	"github.com/pkg/errors"
)

var logger = shim.NewLogger("purchase")

// PurchaseAsset purchases an asset on behalf of buyer and returns the
// asset's access secret.
// Validation order: caller, asset lookup, payment amount, duplicate check.
// Only then is the payment transferred and the record written, so a failed
// transfer commits nothing.
func PurchaseAsset(store ledger.StoreInterface, caller string, buyer string, assetID string, payment int64, transfer token.TransferFunc) (string, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("caller: %v, assetID: %v, payment: %v", caller, assetID, payment)

	if err := auth.RequireCaller(caller, buyer); err != nil {
		return "", err
	}

	asset := data_model.DataAsset{}
	found, err := store.Get(global.ASSET_PREFIX, []string{assetID}, &asset)
	if err != nil {
		return "", err
	}
	if !found || !asset.IsActive {
		custom_err := &custom_errors.AssetNotFoundError{AssetID: assetID}
		logger.Errorf("%v", custom_err)
		return "", errors.WithStack(custom_err)
	}

	if payment < asset.Price {
		custom_err := &custom_errors.InsufficientPaymentError{AssetID: assetID, Offered: payment, Price: asset.Price}
		logger.Errorf("%v", custom_err)
		return "", errors.WithStack(custom_err)
	}

	purchased, err := HasPurchased(store, buyer, assetID)
	if err != nil {
		return "", err
	}
	if purchased {
		custom_err := &custom_errors.AssetAlreadyPurchasedError{Buyer: buyer, AssetID: assetID}
		logger.Errorf("%v", custom_err)
		return "", errors.WithStack(custom_err)
	}

	if err := transfer(buyer, asset.Seller, payment); err != nil {
		return "", err
	}

	purchasedAt, err := store.GetTxTimestamp()
	if err != nil {
		return "", err
	}
	record := data_model.PurchaseRecord{
		Buyer:         buyer,
		AssetID:       assetID,
		PricePaid:     payment,
		PurchasedAt:   purchasedAt,
		AccessGranted: true,
	}
	err = store.Put(global.PURCHASE_PREFIX, []string{buyer, assetID}, &record)
	if err != nil {
		return "", err
	}

	// Keep the buyer's index in step with the record write; a record missing
	// from the sequence is unreachable through GetUserPurchases.
	purchasedIDs, err := getPurchasedAssetIDs(store, buyer)
	if err != nil {
		return "", err
	}
	if !utils.InList(purchasedIDs, assetID) {
		purchasedIDs = append(purchasedIDs, assetID)
		err = store.Put(global.BUYER_PURCHASE_PREFIX, []string{buyer}, &purchasedIDs)
		if err != nil {
			return "", err
		}
	}

	return getAccessSecret(store, assetID)
}

// GetUserPurchases returns the buyer's purchase records in purchase order.
func GetUserPurchases(store ledger.StoreInterface, buyer string) ([]data_model.PurchaseRecord, error) {
	purchasedIDs, err := getPurchasedAssetIDs(store, buyer)
	if err != nil {
		return nil, err
	}

	records := []data_model.PurchaseRecord{}
	for _, assetID := range purchasedIDs {
		record := data_model.PurchaseRecord{}
		found, err := store.Get(global.PURCHASE_PREFIX, []string{buyer, assetID}, &record)
		if err != nil {
			return nil, err
		}
		if !found {
			custom_err := &custom_errors.PurchaseNotFoundError{Buyer: buyer, AssetID: assetID}
			logger.Errorf("%v", custom_err)
			return nil, errors.WithStack(custom_err)
		}
		records = append(records, record)
	}
	return records, nil
}

// HasPurchased returns true if buyer has ever purchased the asset.
func HasPurchased(store ledger.StoreInterface, buyer string, assetID string) (bool, error) {
	return store.Has(global.PURCHASE_PREFIX, []string{buyer, assetID})
}

// GetAccessSecret re-releases an asset's access secret to a proven buyer.
// The caller must be the buyer, and a purchase record must exist.
func GetAccessSecret(store ledger.StoreInterface, caller string, buyer string, assetID string) (string, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	if err := auth.RequireCaller(caller, buyer); err != nil {
		return "", err
	}
	purchased, err := HasPurchased(store, buyer, assetID)
	if err != nil {
		return "", err
	}
	if !purchased {
		custom_err := &custom_errors.PurchaseNotFoundError{Buyer: buyer, AssetID: assetID}
		logger.Errorf("%v", custom_err)
		return "", errors.WithStack(custom_err)
	}
	return getAccessSecret(store, assetID)
}

func getAccessSecret(store ledger.StoreInterface, assetID string) (string, error) {
	accessSecret := data_model.AccessSecret{}
	found, err := store.Get(global.ASSET_SECRET_PREFIX, []string{assetID}, &accessSecret)
	if err != nil {
		return "", err
	}
	if !found {
		custom_err := &custom_errors.AssetNotFoundError{AssetID: assetID}
		logger.Errorf("%v", custom_err)
		return "", errors.WithStack(custom_err)
	}
	return accessSecret.Secret, nil
}

func getPurchasedAssetIDs(store ledger.StoreInterface, buyer string) ([]string, error) {
	purchasedIDs := []string{}
	_, err := store.Get(global.BUYER_PURCHASE_PREFIX, []string{buyer}, &purchasedIDs)
	if err != nil {
		return nil, err
	}
	return purchasedIDs, nil
}
