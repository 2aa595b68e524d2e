/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package custom_errors defines our custom error types.
//
// Custom types are useful for:
// 1) allowing callers to do type-checking to see the cause of the error.
// 2) re-using messages for common errors.
// If neither scenario applies, it's perfectly fine to instead use errors.New("some message").
//
// A custom error can be wrapped by another error when returned using errors.Wrap(err, custom_err.Error()).
// To return a custom error with stack trace, use errors.WithStack(custom_err).
// If returning a custom error for type checking, it must be returned without a wrapper.
package custom_errors

import (
	"fmt"
)

// MarshalError provides an error message for json.Marshal failure.
type MarshalError struct {
	Type string
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("Failed to marshal %v", e.Type)
}

// UnmarshalError provides an error message for json.Unmarshal failure.
type UnmarshalError struct {
	Type string
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("Failed to unmarshal %v", e.Type)
}

// Ledger

// CreateCompositeKeyError provides an error message for stub.CreateCompositeKey failure.
type CreateCompositeKeyError struct {
	Type string
}

func (e *CreateCompositeKeyError) Error() string {
	return fmt.Sprintf("Failed to create composite key for %v", e.Type)
}

// GetLedgerError provides an error message for failure to retrieve an item from the ledger.
type GetLedgerError struct {
	LedgerKey  string
	LedgerItem string
}

func (e *GetLedgerError) Error() string {
	return fmt.Sprintf("Failed to get ledger item \"%v\" from ledger with ledger key \"%v\"", e.LedgerItem, e.LedgerKey)
}

// PutLedgerError provides an error message for failure to save an item to the ledger.
type PutLedgerError struct {
	LedgerKey string
}

func (e *PutLedgerError) Error() string {
	return fmt.Sprintf("Failed to put %v in ledger", e.LedgerKey)
}

// Authorization

// UnauthorizedError provides an error message for a caller that failed authentication.
type UnauthorizedError struct {
	Caller string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("Caller \"%v\" is not authorized to perform this action", e.Caller)
}

// NotInitializedError provides an error message for an operation attempted before Initialize.
type NotInitializedError struct{}

func (e *NotInitializedError) Error() string {
	return "Marketplace has not been initialized"
}

// AlreadyInitializedError provides an error message for a repeated Initialize call.
type AlreadyInitializedError struct{}

func (e *AlreadyInitializedError) Error() string {
	return "Marketplace has already been initialized"
}

// Asset Catalog

// InvalidPriceError provides an error message for a non-positive price.
type InvalidPriceError struct {
	Price int64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("Price must be greater than zero, got %v", e.Price)
}

// InvalidDurationError provides an error message for a non-positive request duration.
type InvalidDurationError struct {
	Days int
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("Duration must be greater than zero days, got %v", e.Days)
}

// AssetExistsError provides an error message for listing an asset id that is already taken.
type AssetExistsError struct {
	AssetID string
}

func (e *AssetExistsError) Error() string {
	return fmt.Sprintf("Asset \"%v\" already exists", e.AssetID)
}

// AssetNotFoundError provides an error message for a lookup miss on an asset id.
type AssetNotFoundError struct {
	AssetID string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("Asset \"%v\" not found", e.AssetID)
}

// Purchase Ledger

// InsufficientPaymentError provides an error message for payment below the listed price.
type InsufficientPaymentError struct {
	AssetID string
	Offered int64
	Price   int64
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("Payment of %v for asset \"%v\" is below the listed price of %v", e.Offered, e.AssetID, e.Price)
}

// AssetAlreadyPurchasedError provides an error message for a duplicate purchase by the same buyer.
type AssetAlreadyPurchasedError struct {
	Buyer   string
	AssetID string
}

func (e *AssetAlreadyPurchasedError) Error() string {
	return fmt.Sprintf("Asset \"%v\" has already been purchased by \"%v\"", e.AssetID, e.Buyer)
}

// PurchaseNotFoundError provides an error message for a secret lookup without proof of purchase.
type PurchaseNotFoundError struct {
	Buyer   string
	AssetID string
}

func (e *PurchaseNotFoundError) Error() string {
	return fmt.Sprintf("No purchase of asset \"%v\" by \"%v\" found", e.AssetID, e.Buyer)
}

// TransferError provides an error message for a failed value transfer.
type TransferError struct {
	From   string
	To     string
	Amount int64
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("Failed to transfer %v from \"%v\" to \"%v\"", e.Amount, e.From, e.To)
}

// Access Request Workflow

// RequestNotFoundError provides an error message for an out-of-range request index.
type RequestNotFoundError struct {
	Index int
}

func (e *RequestNotFoundError) Error() string {
	return fmt.Sprintf("No data access request at index %v", e.Index)
}
