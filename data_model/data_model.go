/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package data_model contains structs used across packages to prevent circular imports.
// For example, the DataAsset struct is needed by both the catalog and purchase
// packages, so it lives here.
package data_model

// DataAsset represents a listed data product on the ledger.
// ContentReference is an opaque locator for the data itself, typically an
// IPFS CID. The access secret is NOT part of this struct: it is stored under
// its own ledger key and released only on proof of purchase.
// Once created, only IsActive may change.
type DataAsset struct {
	AssetID          string `json:"asset_id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	DataType         string `json:"data_type"`
	Price            int64  `json:"price"`
	Seller           string `json:"seller"`
	ContentReference string `json:"content_reference"`
	ListedAt         int64  `json:"listed_at"`
	Size             string `json:"size"`
	IsActive         bool   `json:"is_active"`
}

// Copy returns a copy of the asset as a new object.
// Callers can use this function to copy an object to avoid using reference pointers.
func (asset *DataAsset) Copy() DataAsset {
	newAsset := *asset
	return newAsset
}

// AccessSecret holds the confidential portion of a data asset.
// It is stored apart from the public DataAsset record so that catalog reads
// can never leak it.
type AccessSecret struct {
	AssetID string `json:"asset_id"`
	Secret  string `json:"secret"`
}

// PurchaseRecord is evidence that a buyer paid for an asset.
// At most one record exists per (buyer, asset) pair, ever; records are
// immutable once written.
type PurchaseRecord struct {
	Buyer         string `json:"buyer"`
	AssetID       string `json:"asset_id"`
	PricePaid     int64  `json:"price_paid"`
	PurchasedAt   int64  `json:"purchased_at"`
	AccessGranted bool   `json:"access_granted"`
}

// DataAccessRequest is a request to license a category of data outside the
// listed-asset flow. Requests have no independent id; they are identified by
// position in the global request sequence.
type DataAccessRequest struct {
	Requester    string `json:"requester"`
	DataType     string `json:"data_type"`
	Price        int64  `json:"price"`
	DurationDays int    `json:"duration_days"`
	Approved     bool   `json:"approved"`
	CreatedAt    int64  `json:"created_at"`
}

// MarketConfig is the marketplace configuration written once at Initialize.
// AdminID gates request approval. TokenChaincodeID names the chaincode that
// settles payments.
type MarketConfig struct {
	AdminID          string `json:"admin_id"`
	TokenChaincodeID string `json:"token_chaincode_id"`
	Initialized      bool   `json:"initialized"`
}
