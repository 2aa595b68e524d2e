/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package global contains ledger key namespaces and other constants shared
// across packages.
package global

// ASSET_PREFIX is the composite key namespace for data asset records.
const ASSET_PREFIX = "asset"

// ASSET_SECRET_PREFIX is the composite key namespace for access secrets.
// Secrets are stored apart from the public asset record so that a catalog
// read can never leak them.
const ASSET_SECRET_PREFIX = "assetsecret"

// ASSET_INDEX_KEY is the simple ledger key holding the ordered list of all
// asset ids ever listed. The state database supports no scans, so every
// enumeration goes through this sequence.
const ASSET_INDEX_KEY = "assets"

// PURCHASE_PREFIX is the composite key namespace for purchase records,
// keyed by [buyer, assetId].
const PURCHASE_PREFIX = "purchase"

// BUYER_PURCHASE_PREFIX is the composite key namespace for a buyer's ordered
// list of purchased asset ids.
const BUYER_PURCHASE_PREFIX = "buyerpurc"

// REQUESTS_KEY is the simple ledger key holding the ordered sequence of data
// access requests. Requests are identified by position in this sequence.
const REQUESTS_KEY = "requests"

// MARKET_CONFIG_KEY is the simple ledger key holding the market
// configuration (admin identity, token chaincode id, initialized flag).
const MARKET_CONFIG_KEY = "admin"

// TOKEN_TRANSFER_FUNCTION is the function name invoked on the token
// chaincode to move payment from buyer to seller.
const TOKEN_TRANSFER_FUNCTION = "transfer"
