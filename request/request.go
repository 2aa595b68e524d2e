/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package request owns the data access request workflow.
//
// Requests live in a single ordered sequence under one ledger key and are
// identified by position. The state machine has two states: Pending
// (approved=false) and Approved (approved=true). Approval is admin-gated and
// one-way; there is no rejection or cancellation state.
package request

import (
	"github.com/Ewrnlleh/Bookie/auth"
	"github.com/Ewrnlleh/Bookie/custom_errors"
	"github.com/Ewrnlleh/Bookie/data_model"
	"github.com/Ewrnlleh/Bookie/internal/common/global"
	"github.com/Ewrnlleh/Bookie/ledger"
	"github.com/Ewrnlleh/Bookie/utils"

	"github.com/hyperledger/fabric/core/chaincode/shim"
	"github.com/pkg/errors"
)

var logger = shim.NewLogger("request")

// CreateRequest appends a new pending request to the global sequence on
// behalf of req.Requester.
func CreateRequest(store ledger.StoreInterface, caller string, req data_model.DataAccessRequest) error {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("caller: %v, dataType: %v", caller, req.DataType)

	if err := auth.RequireCaller(caller, req.Requester); err != nil {
		return err
	}
	if req.Price <= 0 {
		custom_err := &custom_errors.InvalidPriceError{Price: req.Price}
		logger.Errorf("%v", custom_err)
		return errors.WithStack(custom_err)
	}
	if req.DurationDays <= 0 {
		custom_err := &custom_errors.InvalidDurationError{Days: req.DurationDays}
		logger.Errorf("%v", custom_err)
		return errors.WithStack(custom_err)
	}

	createdAt, err := store.GetTxTimestamp()
	if err != nil {
		return err
	}
	req.Approved = false
	req.CreatedAt = createdAt

	requests, err := GetRequests(store)
	if err != nil {
		return err
	}
	requests = append(requests, req)
	return store.Put(global.REQUESTS_KEY, nil, &requests)
}

// ApproveRequest transitions the request at index from pending to approved.
// Only the registered admin may approve. An out-of-range index fails with
// RequestNotFoundError. Approving an already approved request is a no-op.
func ApproveRequest(store ledger.StoreInterface, caller string, index int) error {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("caller: %v, index: %v", caller, index)

	if err := auth.RequireAdmin(store, caller); err != nil {
		return err
	}

	requests, err := GetRequests(store)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(requests) {
		custom_err := &custom_errors.RequestNotFoundError{Index: index}
		logger.Errorf("%v", custom_err)
		return errors.WithStack(custom_err)
	}
	if requests[index].Approved {
		return nil
	}
	requests[index].Approved = true
	return store.Put(global.REQUESTS_KEY, nil, &requests)
}

// GetRequests returns the full request sequence in creation order.
func GetRequests(store ledger.StoreInterface) ([]data_model.DataAccessRequest, error) {
	requests := []data_model.DataAccessRequest{}
	_, err := store.Get(global.REQUESTS_KEY, nil, &requests)
	if err != nil {
		return nil, err
	}
	return requests, nil
}
