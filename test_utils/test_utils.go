/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package test_utils contains test utility functions for creating test
// assets, asserting on results, and driving the mock stub.
// These functions should only be used in unit tests.
package test_utils

import (
	"runtime/debug"
	"testing"

	"github.com/Ewrnlleh/Bookie/data_model"
)

// AssertTrue asserts that the given boolean is true.
func AssertTrue(t *testing.T, assertion bool, message string) {
	if !assertion {
		debug.PrintStack()
		t.Fatalf(message)
	}
}

// AssertFalse asserts that the given boolean is false.
func AssertFalse(t *testing.T, assertion bool, message string) {
	if assertion {
		debug.PrintStack()
		t.Fatalf(message)
	}
}

// AssertNilError if myError is not nil, prints error details/stack and fails the test
func AssertNilError(t *testing.T, myError error, message string) {
	if myError != nil {
		debug.PrintStack()
		t.Logf("%v || ErrorDetails: %v", message, myError)
		t.Fatalf(message)
	}
}

// AssertListsEqual asserts that two lists are equal.
func AssertListsEqual(t *testing.T, expectedList []string, actualList []string) {
	if len(expectedList) != len(actualList) {
		debug.PrintStack()
		t.Fatalf("List of keys was incorrect, got: %v, want: %v.", actualList, expectedList)
	}
	for i, key := range actualList {
		if key != expectedList[i] {
			debug.PrintStack()
			t.Fatalf("List of keys was incorrect, got: %v, want: %v.", actualList, expectedList)
		}
	}
}

// CreateTestAsset returns a data asset for tests.
func CreateTestAsset(assetID string, seller string, price int64) data_model.DataAsset {
	return data_model.DataAsset{
		AssetID:          assetID,
		Title:            "Test Health Data",
		Description:      "Anonymized health records",
		DataType:         "health",
		Price:            price,
		Seller:           seller,
		ContentReference: "QmTestIPFSHash123",
		Size:             "2.5MB",
	}
}

// GetTransientMapFromCaller returns a transient map carrying the caller
// identity, to be used in MockInvoke.
func GetTransientMapFromCaller(callerID string) map[string][]byte {
	tmap := make(map[string][]byte)
	tmap["id"] = []byte(callerID)
	return tmap
}
