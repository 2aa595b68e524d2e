/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package auth provides caller authorization and the admin registry.
//
// Every mutating marketplace operation declares the identity it acts for,
// and RequireCaller checks the declaration against the attested caller of
// the current invocation. RequireAdmin additionally checks the caller
// against the admin identity registered at Initialize.
package auth

import (
	"github.com/Ewrnlleh/Bookie/custom_errors"
	"github.com/Ewrnlleh/Bookie/data_model"
	"github.com/Ewrnlleh/Bookie/internal/common/global"
	"github.com/Ewrnlleh/Bookie/ledger"
	"github.com/Ewrnlleh/Bookie/utils"

	"github.com/hyperledger/fabric/core/chaincode/shim"
	"github.com/hyperledger/fabric/core/chaincode/shim/ext/cid"
	"github.com/pkg/errors"
)

var logger = shim.NewLogger("auth")

// Initialize registers the admin identity and the token chaincode id.
// It may run at most once; a second call fails with AlreadyInitializedError.
func Initialize(store ledger.StoreInterface, adminID string, tokenChaincodeID string) error {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	if utils.IsStringEmpty(adminID) {
		return errors.New("adminID cannot be empty")
	}

	exists, err := store.Has(global.MARKET_CONFIG_KEY, nil)
	if err != nil {
		return err
	}
	if exists {
		custom_err := &custom_errors.AlreadyInitializedError{}
		logger.Errorf("%v", custom_err)
		return errors.WithStack(custom_err)
	}

	config := data_model.MarketConfig{
		AdminID:          adminID,
		TokenChaincodeID: tokenChaincodeID,
		Initialized:      true,
	}
	return store.Put(global.MARKET_CONFIG_KEY, nil, &config)
}

// GetMarketConfig returns the market configuration.
// Fails with NotInitializedError if Initialize has not run.
func GetMarketConfig(store ledger.StoreInterface) (data_model.MarketConfig, error) {
	config := data_model.MarketConfig{}
	found, err := store.Get(global.MARKET_CONFIG_KEY, nil, &config)
	if err != nil {
		return config, err
	}
	if !found || !config.Initialized {
		custom_err := &custom_errors.NotInitializedError{}
		logger.Errorf("%v", custom_err)
		return config, errors.WithStack(custom_err)
	}
	return config, nil
}

// RequireCaller checks that the attested caller of the current invocation is
// the declared identity an operation acts for.
func RequireCaller(caller string, declared string) error {
	if utils.IsStringEmpty(caller) || caller != declared {
		custom_err := &custom_errors.UnauthorizedError{Caller: caller}
		logger.Errorf("%v: declared identity \"%v\"", custom_err, declared)
		return errors.WithStack(custom_err)
	}
	return nil
}

// RequireAdmin checks that the attested caller is the registered admin.
func RequireAdmin(store ledger.StoreInterface, caller string) error {
	config, err := GetMarketConfig(store)
	if err != nil {
		return err
	}
	if utils.IsStringEmpty(caller) || caller != config.AdminID {
		custom_err := &custom_errors.UnauthorizedError{Caller: caller}
		logger.Errorf("%v: admin is \"%v\"", custom_err, config.AdminID)
		return errors.WithStack(custom_err)
	}
	return nil
}

// GetCallerID resolves the attested identity of the current invocation.
// The transient map's "id" entry takes precedence so that callers enrolled
// through the solution gateway keep their application-level identity;
// otherwise the client identity from the signed proposal is used.
func GetCallerID(stub shim.ChaincodeStubInterface) (string, error) {
	tmap, err := stub.GetTransient()
	if err == nil {
		if id, ok := tmap["id"]; ok && len(id) > 0 {
			return string(id), nil
		}
	}

	callerID, err := cid.GetID(stub)
	if err != nil {
		logger.Errorf("Failed to get client identity: %v", err)
		return "", errors.Wrap(err, "Failed to get client identity")
	}
	return callerID, nil
}
