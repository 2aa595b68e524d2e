/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package ledger provides a thin keyed store over the chaincode state.
//
// Keys are composite: a short namespace tag plus zero or more identifying
// attributes. A namespace with no attributes maps to a simple ledger key,
// which is how the global index sequences (asset ids, requests) and the
// market config are stored. The state database supports no partial scans, so
// any record that must be enumerated has to be reachable through one of
// those explicitly stored sequences.
//
// A Store caches reads and writes for the duration of one invocation, so a
// record written earlier in the same transaction is visible to later reads
// even though the underlying write set has not been committed yet.
package ledger

import (
	"encoding/json"

	"github.com/Ewrnlleh/Bookie/custom_errors"

	"github.com/hyperledger/fabric/core/chaincode/shim"
	"github.com/pkg/errors"
)

var logger = shim.NewLogger("ledger")

// StoreInterface is the keyed store consumed by all marketplace packages.
type StoreInterface interface {
	// Get reads the record stored under the given namespace and attributes
	// into value. It returns false if no record exists.
	Get(namespace string, attributes []string, value interface{}) (bool, error)
	// Put marshals value and stores it under the given namespace and attributes.
	Put(namespace string, attributes []string, value interface{}) error
	// Has returns true if a record exists under the given namespace and attributes.
	Has(namespace string, attributes []string) (bool, error)
	// GetTxTimestamp returns the timestamp of the current transaction in
	// seconds since the epoch. All record timestamps come from here.
	GetTxTimestamp() (int64, error)
}

type store struct {
	stub  shim.ChaincodeStubInterface
	cache map[string][]byte
}

// NewStore returns a keyed store scoped to the current invocation.
func NewStore(stub shim.ChaincodeStubInterface) StoreInterface {
	return &store{stub: stub, cache: make(map[string][]byte)}
}

// getKey builds the ledger key for a namespace and its attributes.
// No attributes means the namespace itself is the (simple) key.
func (s *store) getKey(namespace string, attributes []string) (string, error) {
	if len(attributes) == 0 {
		return namespace, nil
	}
	ledgerKey, err := s.stub.CreateCompositeKey(namespace, attributes)
	if err != nil {
		custom_err := &custom_errors.CreateCompositeKeyError{Type: namespace}
		logger.Errorf("%v: %v", custom_err, err)
		return "", errors.Wrap(err, custom_err.Error())
	}
	return ledgerKey, nil
}

func (s *store) Get(namespace string, attributes []string, value interface{}) (bool, error) {
	ledgerKey, err := s.getKey(namespace, attributes)
	if err != nil {
		return false, err
	}

	valueBytes, inCache := s.cache[ledgerKey]
	if !inCache {
		valueBytes, err = s.stub.GetState(ledgerKey)
		if err != nil {
			custom_err := &custom_errors.GetLedgerError{LedgerKey: ledgerKey, LedgerItem: namespace}
			logger.Errorf("%v: %v", custom_err, err)
			return false, errors.Wrap(err, custom_err.Error())
		}
		if valueBytes != nil {
			s.cache[ledgerKey] = valueBytes
		}
	}
	if valueBytes == nil {
		logger.Debugf("No ledger item found with ledger key \"%v\"", ledgerKey)
		return false, nil
	}

	err = json.Unmarshal(valueBytes, value)
	if err != nil {
		custom_err := &custom_errors.UnmarshalError{Type: namespace}
		logger.Errorf("%v: %v", custom_err, err)
		return false, errors.Wrap(err, custom_err.Error())
	}
	return true, nil
}

func (s *store) Put(namespace string, attributes []string, value interface{}) error {
	ledgerKey, err := s.getKey(namespace, attributes)
	if err != nil {
		return err
	}

	valueBytes, err := json.Marshal(value)
	if err != nil {
		custom_err := &custom_errors.MarshalError{Type: namespace}
		logger.Errorf("%v: %v", custom_err, err)
		return errors.Wrap(err, custom_err.Error())
	}

	err = s.stub.PutState(ledgerKey, valueBytes)
	if err != nil {
		custom_err := &custom_errors.PutLedgerError{LedgerKey: ledgerKey}
		logger.Errorf("%v: %v", custom_err, err)
		return errors.Wrap(err, custom_err.Error())
	}
	s.cache[ledgerKey] = valueBytes
	return nil
}

func (s *store) Has(namespace string, attributes []string) (bool, error) {
	ledgerKey, err := s.getKey(namespace, attributes)
	if err != nil {
		return false, err
	}

	if _, inCache := s.cache[ledgerKey]; inCache {
		return true, nil
	}
	valueBytes, err := s.stub.GetState(ledgerKey)
	if err != nil {
		custom_err := &custom_errors.GetLedgerError{LedgerKey: ledgerKey, LedgerItem: namespace}
		logger.Errorf("%v: %v", custom_err, err)
		return false, errors.Wrap(err, custom_err.Error())
	}
	return valueBytes != nil, nil
}

func (s *store) GetTxTimestamp() (int64, error) {
	ts, err := s.stub.GetTxTimestamp()
	if err != nil {
		logger.Errorf("Failed to get transaction timestamp: %v", err)
		return 0, errors.Wrap(err, "Failed to get transaction timestamp")
	}
	return ts.GetSeconds(), nil
}
