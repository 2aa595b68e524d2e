/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package stats aggregates read-only marketplace counts.
// It holds no state of its own; everything is derived from the stored index
// sequences, so a count is O(1) given the sequence.
package stats

import (
	"github.com/Ewrnlleh/Bookie/data_model"
	"github.com/Ewrnlleh/Bookie/internal/common/global"
	"github.com/Ewrnlleh/Bookie/ledger"
)

// GetStats returns the marketplace counters:
// "assets" is the number of assets ever listed (active or not),
// "requests" is the number of data access requests ever created.
func GetStats(store ledger.StoreInterface) (map[string]int, error) {
	assetIDs := []string{}
	_, err := store.Get(global.ASSET_INDEX_KEY, nil, &assetIDs)
	if err != nil {
		return nil, err
	}

	requests := []data_model.DataAccessRequest{}
	_, err = store.Get(global.REQUESTS_KEY, nil, &requests)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		"assets":   len(assetIDs),
		"requests": len(requests),
	}, nil
}
