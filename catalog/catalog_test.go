/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

package catalog

import (
	"testing"

	"github.com/Ewrnlleh/Bookie/custom_errors"
	"github.com/Ewrnlleh/Bookie/ledger"
	"github.com/Ewrnlleh/Bookie/test_utils"

	"github.com/pkg/errors"
)

func TestListAndGetAsset(t *testing.T) {
	mstub := test_utils.CreateNewMockStub(t)
	asset := test_utils.CreateTestAsset("asset_001", "seller1", 100000000)

	mstub.MockTransactionStart("t1")
	store := ledger.NewStore(mstub)
	err := ListAsset(store, "seller1", asset, "encryption_key_123")
	test_utils.AssertNilError(t, err, "ListAsset should succeed")
	mstub.MockTransactionEnd("t1")

	mstub.MockTransactionStart("t2")
	store = ledger.NewStore(mstub)
	got, err := GetAsset(store, "asset_001")
	test_utils.AssertNilError(t, err, "GetAsset should succeed")
	test_utils.AssertTrue(t, got.Title == asset.Title, "Title should round-trip")
	test_utils.AssertTrue(t, got.Price == asset.Price, "Price should round-trip")
	test_utils.AssertTrue(t, got.Seller == "seller1", "Seller should round-trip")
	test_utils.AssertTrue(t, got.IsActive, "Listed asset should be active")
	test_utils.AssertTrue(t, got.ListedAt > 0, "ListedAt should be stamped")
	mstub.MockTransactionEnd("t2")
}

func TestListAssetUnauthorized(t *testing.T) {
	mstub := test_utils.CreateNewMockStub(t)
	asset := test_utils.CreateTestAsset("asset_001", "seller1", 100)

	mstub.MockTransactionStart("t1")
	store := ledger.NewStore(mstub)
	err := ListAsset(store, "someone_else", asset, "secret")
	_, ok := errors.Cause(err).(*custom_errors.UnauthorizedError)
	test_utils.AssertTrue(t, ok, "Listing for another seller should fail with UnauthorizedError")
	mstub.MockTransactionEnd("t1")
}

func TestListAssetInvalidPrice(t *testing.T) {
	mstub := test_utils.CreateNewMockStub(t)

	for _, price := range []int64{0, -5} {
		asset := test_utils.CreateTestAsset("asset_001", "seller1", price)

		mstub.MockTransactionStart("t1")
		store := ledger.NewStore(mstub)
		err := ListAsset(store, "seller1", asset, "secret")
		_, ok := errors.Cause(err).(*custom_errors.InvalidPriceError)
		test_utils.AssertTrue(t, ok, "Non-positive price should fail with InvalidPriceError")

		// the catalog index must be untouched
		assetIDs, err := GetAssetIDs(store)
		test_utils.AssertNilError(t, err, "GetAssetIDs should succeed")
		test_utils.AssertTrue(t, len(assetIDs) == 0, "Failed listing should not grow the index")
		mstub.MockTransactionEnd("t1")
	}
}

func TestListAssetDuplicateID(t *testing.T) {
	mstub := test_utils.CreateNewMockStub(t)
	asset := test_utils.CreateTestAsset("asset_001", "seller1", 100)

	mstub.MockTransactionStart("t1")
	store := ledger.NewStore(mstub)
	err := ListAsset(store, "seller1", asset, "secret")
	test_utils.AssertNilError(t, err, "First listing should succeed")
	mstub.MockTransactionEnd("t1")

	// same id, different seller: the prior record must not be overwritten
	mstub.MockTransactionStart("t2")
	store = ledger.NewStore(mstub)
	dup := test_utils.CreateTestAsset("asset_001", "seller2", 999)
	err = ListAsset(store, "seller2", dup, "other_secret")
	_, ok := errors.Cause(err).(*custom_errors.AssetExistsError)
	test_utils.AssertTrue(t, ok, "Duplicate id should fail with AssetExistsError")
	mstub.MockTransactionEnd("t2")

	mstub.MockTransactionStart("t3")
	store = ledger.NewStore(mstub)
	got, err := GetAsset(store, "asset_001")
	test_utils.AssertNilError(t, err, "GetAsset should succeed")
	test_utils.AssertTrue(t, got.Seller == "seller1", "Original listing should be intact")
	assetIDs, err := GetAssetIDs(store)
	test_utils.AssertNilError(t, err, "GetAssetIDs should succeed")
	test_utils.AssertTrue(t, len(assetIDs) == 1, "Index should hold a single id")
	mstub.MockTransactionEnd("t3")
}

func TestGetAssetNotFound(t *testing.T) {
	mstub := test_utils.CreateNewMockStub(t)

	mstub.MockTransactionStart("t1")
	store := ledger.NewStore(mstub)
	_, err := GetAsset(store, "no_such_asset")
	_, ok := errors.Cause(err).(*custom_errors.AssetNotFoundError)
	test_utils.AssertTrue(t, ok, "Unknown id should fail with AssetNotFoundError")
	mstub.MockTransactionEnd("t1")
}

func TestListActiveAssetsOrderAndFilter(t *testing.T) {
	mstub := test_utils.CreateNewMockStub(t)

	for i, assetID := range []string{"a1", "a2", "a3"} {
		asset := test_utils.CreateTestAsset(assetID, "seller1", int64(100+i))
		mstub.MockTransactionStart("t" + assetID)
		store := ledger.NewStore(mstub)
		err := ListAsset(store, "seller1", asset, "secret")
		test_utils.AssertNilError(t, err, "ListAsset should succeed")
		mstub.MockTransactionEnd("t" + assetID)
	}

	mstub.MockTransactionStart("t4")
	store := ledger.NewStore(mstub)
	err := DeactivateAsset(store, "seller1", "a2")
	test_utils.AssertNilError(t, err, "DeactivateAsset should succeed")
	mstub.MockTransactionEnd("t4")

	mstub.MockTransactionStart("t5")
	store = ledger.NewStore(mstub)
	assets, err := ListActiveAssets(store, 0, 0)
	test_utils.AssertNilError(t, err, "ListActiveAssets should succeed")
	ids := []string{}
	for _, a := range assets {
		ids = append(ids, a.AssetID)
	}
	test_utils.AssertListsEqual(t, []string{"a1", "a3"}, ids)

	// a deactivated asset stays retrievable by id
	got, err := GetAsset(store, "a2")
	test_utils.AssertNilError(t, err, "GetAsset should still find a deactivated asset")
	test_utils.AssertFalse(t, got.IsActive, "Deactivated asset should be inactive")
	mstub.MockTransactionEnd("t5")
}

func TestListActiveAssetsPagination(t *testing.T) {
	mstub := test_utils.CreateNewMockStub(t)

	for _, assetID := range []string{"a1", "a2", "a3", "a4"} {
		asset := test_utils.CreateTestAsset(assetID, "seller1", 100)
		mstub.MockTransactionStart("t" + assetID)
		store := ledger.NewStore(mstub)
		err := ListAsset(store, "seller1", asset, "secret")
		test_utils.AssertNilError(t, err, "ListAsset should succeed")
		mstub.MockTransactionEnd("t" + assetID)
	}

	mstub.MockTransactionStart("t5")
	store := ledger.NewStore(mstub)

	assets, err := ListActiveAssets(store, 1, 2)
	test_utils.AssertNilError(t, err, "ListActiveAssets should succeed")
	ids := []string{}
	for _, a := range assets {
		ids = append(ids, a.AssetID)
	}
	test_utils.AssertListsEqual(t, []string{"a2", "a3"}, ids)

	// a start index past the end yields an empty page
	assets, err = ListActiveAssets(store, 10, 2)
	test_utils.AssertNilError(t, err, "ListActiveAssets should succeed")
	test_utils.AssertTrue(t, len(assets) == 0, "Page past the end should be empty")
	mstub.MockTransactionEnd("t5")
}

func TestDeactivateAssetAuthorization(t *testing.T) {
	mstub := test_utils.CreateNewMockStub(t)
	asset := test_utils.CreateTestAsset("asset_001", "seller1", 100)

	mstub.MockTransactionStart("t1")
	store := ledger.NewStore(mstub)
	err := ListAsset(store, "seller1", asset, "secret")
	test_utils.AssertNilError(t, err, "ListAsset should succeed")
	mstub.MockTransactionEnd("t1")

	mstub.MockTransactionStart("t2")
	store = ledger.NewStore(mstub)
	err = DeactivateAsset(store, "not_the_seller", "asset_001")
	_, ok := errors.Cause(err).(*custom_errors.UnauthorizedError)
	test_utils.AssertTrue(t, ok, "Only the seller may deactivate")
	mstub.MockTransactionEnd("t2")
}
