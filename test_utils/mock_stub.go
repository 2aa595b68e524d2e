/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

package test_utils

import (
	"testing"
	"time"

	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/hyperledger/fabric/core/chaincode/shim"
	"github.com/hyperledger/fabric/protos/peer"
	"github.com/pkg/errors"
)

var logger = shim.NewLogger("test_utils")

// MockChaincode is a mock chaincode.
type MockChaincode struct {
}

// Init is mocked for MockChaincode.
func (t *MockChaincode) Init(shim.ChaincodeStubInterface) peer.Response {
	return shim.Success(nil)
}

// Invoke is mocked for MockChaincode.
func (t *MockChaincode) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	return shim.Success(nil)
}

// NewMockStub wraps shim.MockStub with a transaction-scoped write cache so
// that writes only reach the state on MockTransactionEnd, mirroring the
// all-or-nothing commit of a real transaction. It also carries a transient
// map and a transaction timestamp, which the base mock stub does not.
type NewMockStub struct {
	*shim.MockStub
	cache   map[string][]byte
	deleted map[string]bool
	tmap    map[string][]byte
	args    [][]byte
	cc      shim.Chaincode
}

// GetState returns an item committed to the state.
func (stub *NewMockStub) GetState(key string) ([]byte, error) {
	value := stub.State[key]
	if value == nil {
		return nil, nil
	}
	item := make([]byte, len(value))
	copy(item, value)
	return item, nil
}

// PutState stages a value; it reaches the state on MockTransactionEnd.
func (stub *NewMockStub) PutState(key string, val []byte) error {
	stub.cache[key] = val
	stub.deleted[key] = false
	return nil
}

// DelState stages a deletion; it reaches the state on MockTransactionEnd.
func (stub *NewMockStub) DelState(key string) error {
	stub.cache[key] = nil
	stub.deleted[key] = true
	return nil
}

// GetTransient returns the transient map of the transaction.
func (stub *NewMockStub) GetTransient() (map[string][]byte, error) {
	return stub.tmap, nil
}

// GetArgs returns arguments.
func (stub *NewMockStub) GetArgs() [][]byte {
	return stub.args
}

// GetStringArgs returns a slice of arguments.
func (stub *NewMockStub) GetStringArgs() []string {
	args := stub.GetArgs()
	strargs := make([]string, 0, len(args))
	for _, barg := range args {
		strargs = append(strargs, string(barg))
	}
	return strargs
}

// GetFunctionAndParameters returns function name and parameters.
func (stub *NewMockStub) GetFunctionAndParameters() (function string, params []string) {
	allargs := stub.GetStringArgs()
	function = ""
	params = []string{}
	if len(allargs) >= 1 {
		function = allargs[0]
		params = allargs[1:]
	}
	return
}

// MockTransactionStart resets the write cache and stamps the transaction.
func (stub *NewMockStub) MockTransactionStart(txid string) {
	stub.cache = make(map[string][]byte)
	stub.deleted = make(map[string]bool)
	stub.TxID = txid
	stub.TxTimestamp = &timestamp.Timestamp{Seconds: time.Now().Unix()}
	stub.MockStub.MockTransactionStart(txid)
}

// MockTransactionEnd commits the staged writes to the state.
func (stub *NewMockStub) MockTransactionEnd(txid string) {
	for k, d := range stub.deleted {
		if d {
			if err := stub.MockStub.DelState(k); err != nil {
				logger.Errorf("%v", err)
				break
			}
		} else {
			if err := stub.MockStub.PutState(k, stub.cache[k]); err != nil {
				logger.Errorf("%v", err)
				break
			}
		}
	}
	stub.cache = make(map[string][]byte)
	stub.deleted = make(map[string]bool)

	stub.TxID = ""
	stub.args = [][]byte{}
	stub.tmap = make(map[string][]byte)
	stub.MockStub.MockTransactionEnd(txid)
}

// MockInit initializes this chaincode, also starts and ends a transaction.
func (stub *NewMockStub) MockInit(uuid string, args [][]byte) peer.Response {
	stub.args = args
	stub.MockTransactionStart(uuid)
	res := stub.cc.Init(stub)
	stub.MockTransactionEnd(uuid)
	return res
}

// MockInvoke invokes this chaincode, also starts and ends a transaction.
func (stub *NewMockStub) MockInvoke(uuid string, args [][]byte, tmap map[string][]byte) peer.Response {
	stub.tmap = tmap
	stub.args = args
	stub.MockTransactionStart(uuid)
	res := stub.cc.Invoke(stub)
	stub.MockTransactionEnd(uuid)
	return res
}

// CreateNewMockStub returns a mock stub.
// options = [name string, cc shim.Chaincode]
func CreateNewMockStub(t *testing.T, options ...interface{}) *NewMockStub {
	var name = "MockStub"
	var cc shim.Chaincode = new(MockChaincode)
	if len(options) >= 1 {
		if val, ok := options[0].(string); ok && len(val) > 0 {
			name = val
		}
	}
	if len(options) >= 2 {
		if val, ok := options[1].(shim.Chaincode); ok {
			cc = val
		}
	}
	stub := shim.NewMockStub(name, cc)
	AssertTrue(t, stub != nil, "MockStub creation failed")
	return &NewMockStub{
		MockStub: stub,
		cache:    make(map[string][]byte),
		deleted:  make(map[string]bool),
		tmap:     make(map[string][]byte),
		cc:       cc,
	}
}

// MisbehavingMockStub returns errors for GetState and PutState.
// Use it to exercise ledger failure paths.
type MisbehavingMockStub struct {
	*shim.MockStub
}

// GetState returns an error for a MisbehavingMockStub.
func (stub *MisbehavingMockStub) GetState(key string) ([]byte, error) {
	return nil, errors.New("Misbehaving stub error!")
}

// PutState returns an error for a MisbehavingMockStub.
func (stub *MisbehavingMockStub) PutState(key string, value []byte) error {
	return errors.New("Misbehaving stub error!")
}

// CreateMisbehavingMockStub returns a misbehaving mock stub.
func CreateMisbehavingMockStub(t *testing.T) *MisbehavingMockStub {
	return &MisbehavingMockStub{MockStub: shim.NewMockStub("misbehavingStub", new(MockChaincode))}
}
