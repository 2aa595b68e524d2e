/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package catalog manages the listing, deactivation, and enumeration of data
// assets.
//
// The public DataAsset record and the access secret are stored under
// separate ledger keys, so reading the catalog never exposes a secret.
// Every listing appends the asset id to the global index sequence; that
// sequence is the only way to enumerate the catalog, and its cost is linear
// in assets ever listed.
package catalog

import (
	"github.com/Ewrnlleh/Bookie/auth"
	"github.com/Ewrnlleh/Bookie/custom_errors"
	"github.com/Ewrnlleh/Bookie/data_model"
	"github.com/Ewrnlleh/Bookie/internal/common/global"
	"github.com/Ewrnlleh/Bookie/ledger"
	"github.com/Ewrnlleh/Bookie/utils"

	"github.com/hyperledger/fabric/core/chaincode/shim"
	"github.com/ipfs/go-cid"
	"github.com/pkg/errors"
)

var logger = shim.NewLogger("catalog")

// ListAsset lists a new data asset for sale on behalf of asset.Seller.
// The asset id must not be taken; re-listing an existing id is rejected
// rather than overwriting the prior record.
// The secret is stored under its own ledger key and is only released
// through the purchase flow.
func ListAsset(store ledger.StoreInterface, caller string, asset data_model.DataAsset, secret string) error {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("caller: %v, assetID: %v", caller, asset.AssetID)

	if err := auth.RequireCaller(caller, asset.Seller); err != nil {
		return err
	}
	if utils.IsStringEmpty(asset.AssetID) {
		return errors.New("assetID cannot be empty")
	}
	if asset.Price <= 0 {
		custom_err := &custom_errors.InvalidPriceError{Price: asset.Price}
		logger.Errorf("%v", custom_err)
		return errors.WithStack(custom_err)
	}

	exists, err := store.Has(global.ASSET_PREFIX, []string{asset.AssetID})
	if err != nil {
		return err
	}
	if exists {
		custom_err := &custom_errors.AssetExistsError{AssetID: asset.AssetID}
		logger.Errorf("%v", custom_err)
		return errors.WithStack(custom_err)
	}

	// References are opaque; a non-CID reference is allowed but logged.
	if _, err := cid.Decode(asset.ContentReference); err != nil {
		logger.Warningf("Content reference \"%v\" for asset %v is not a valid CID", asset.ContentReference, asset.AssetID)
	}

	listedAt, err := store.GetTxTimestamp()
	if err != nil {
		return err
	}
	asset.ListedAt = listedAt
	asset.IsActive = true

	err = store.Put(global.ASSET_PREFIX, []string{asset.AssetID}, &asset)
	if err != nil {
		return err
	}

	accessSecret := data_model.AccessSecret{AssetID: asset.AssetID, Secret: secret}
	err = store.Put(global.ASSET_SECRET_PREFIX, []string{asset.AssetID}, &accessSecret)
	if err != nil {
		return err
	}

	// The index append must happen in the same invocation as the record
	// write; a record missing from the sequence is unreachable through
	// enumeration.
	assetIDs, err := GetAssetIDs(store)
	if err != nil {
		return err
	}
	assetIDs = append(assetIDs, asset.AssetID)
	return store.Put(global.ASSET_INDEX_KEY, nil, &assetIDs)
}

// GetAsset returns the public record of an asset.
// Deactivated assets remain retrievable by id for audit lookup.
// Fails with AssetNotFoundError if the id is unknown.
func GetAsset(store ledger.StoreInterface, assetID string) (data_model.DataAsset, error) {
	asset := data_model.DataAsset{}
	found, err := store.Get(global.ASSET_PREFIX, []string{assetID}, &asset)
	if err != nil {
		return asset, err
	}
	if !found {
		custom_err := &custom_errors.AssetNotFoundError{AssetID: assetID}
		logger.Infof("%v", custom_err)
		return asset, errors.WithStack(custom_err)
	}
	return asset, nil
}

// DeactivateAsset removes an asset from catalog enumeration on behalf of its
// seller. The record itself is retained and stays retrievable by id.
func DeactivateAsset(store ledger.StoreInterface, caller string, assetID string) error {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("caller: %v, assetID: %v", caller, assetID)

	asset, err := GetAsset(store, assetID)
	if err != nil {
		return err
	}
	if err := auth.RequireCaller(caller, asset.Seller); err != nil {
		return err
	}
	if !asset.IsActive {
		return nil
	}
	asset.IsActive = false
	return store.Put(global.ASSET_PREFIX, []string{assetID}, &asset)
}

// ListActiveAssets returns active assets in listing order.
// startIndex and limit slice the underlying id sequence; a limit of 0 means
// no limit. The walk is linear in assets ever listed, active or not.
func ListActiveAssets(store ledger.StoreInterface, startIndex int, limit int) ([]data_model.DataAsset, error) {
	assetIDs, err := GetAssetIDs(store)
	if err != nil {
		return nil, err
	}
	if startIndex < 0 || startIndex > len(assetIDs) {
		startIndex = len(assetIDs)
	}

	assets := []data_model.DataAsset{}
	for _, assetID := range assetIDs[startIndex:] {
		if limit > 0 && len(assets) >= limit {
			break
		}
		asset, err := GetAsset(store, assetID)
		if err != nil {
			return nil, err
		}
		if asset.IsActive {
			assets = append(assets, asset)
		}
	}
	return assets, nil
}

// GetAssetIDs returns the ordered sequence of all asset ids ever listed.
func GetAssetIDs(store ledger.StoreInterface) ([]string, error) {
	assetIDs := []string{}
	_, err := store.Get(global.ASSET_INDEX_KEY, nil, &assetIDs)
	if err != nil {
		return nil, err
	}
	return assetIDs, nil
}
