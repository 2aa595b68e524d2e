/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package marketplace is the chaincode entry point for the data-exchange
// marketplace. It parses invocation arguments, resolves the attested caller,
// and dispatches to the catalog, purchase, request, and stats packages.
//
// Every invocation runs as one Fabric transaction: either all of its writes
// commit or none do.
package marketplace

import (
	"encoding/json"
	"strconv"

	"github.com/Ewrnlleh/Bookie/auth"
	"github.com/Ewrnlleh/Bookie/catalog"
	"github.com/Ewrnlleh/Bookie/data_model"
	"github.com/Ewrnlleh/Bookie/ledger"
	"github.com/Ewrnlleh/Bookie/purchase"
	"github.com/Ewrnlleh/Bookie/request"
	"github.com/Ewrnlleh/Bookie/stats"
	"github.com/Ewrnlleh/Bookie/token"
	"github.com/Ewrnlleh/Bookie/utils"

	"github.com/hyperledger/fabric/core/chaincode/shim"
	pb "github.com/hyperledger/fabric/protos/peer"
	"github.com/pkg/errors"
)

var logger = shim.NewLogger("marketplace")

// DataMarketChaincode implements the marketplace over the channel state.
type DataMarketChaincode struct {
}

// Init initializes the marketplace with args = [adminID, tokenChaincodeID].
// Init with no arguments leaves existing configuration in place, which is
// what a chaincode upgrade does.
func (t *DataMarketChaincode) Init(stub shim.ChaincodeStubInterface) pb.Response {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	_, args := stub.GetFunctionAndParameters()
	if len(args) == 0 {
		return shim.Success(nil)
	}
	if len(args) != 2 {
		return shim.Error("Init expects args = [adminID, tokenChaincodeID]")
	}

	store := ledger.NewStore(stub)
	if err := auth.Initialize(store, args[0], args[1]); err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success(nil)
}

// Invoke dispatches a marketplace operation.
func (t *DataMarketChaincode) Invoke(stub shim.ChaincodeStubInterface) pb.Response {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))

	function, args := stub.GetFunctionAndParameters()
	logger.Debugf("Invoke function: %v", function)

	caller, err := auth.GetCallerID(stub)
	if err != nil {
		return shim.Error(err.Error())
	}
	store := ledger.NewStore(stub)

	var result []byte
	switch function {
	case "initialize":
		err = t.initialize(store, args)
	case "listDataAsset":
		err = t.listDataAsset(store, caller, args)
	case "deactivateDataAsset":
		err = t.deactivateDataAsset(store, caller, args)
	case "getDataAsset":
		result, err = t.getDataAsset(store, args)
	case "getDataAssets":
		result, err = t.getDataAssets(store, args)
	case "purchaseData":
		result, err = t.purchaseData(stub, store, caller, args)
	case "getUserPurchases":
		result, err = t.getUserPurchases(store, args)
	case "getAccessSecret":
		result, err = t.getAccessSecret(store, caller, args)
	case "createRequest":
		err = t.createRequest(store, caller, args)
	case "approveRequest":
		err = t.approveRequest(store, caller, args)
	case "getRequests":
		result, err = t.getRequests(store)
	case "getStats":
		result, err = t.getStats(store)
	default:
		err = errors.Errorf("Unknown function: %v", function)
	}

	if err != nil {
		logger.Errorf("Invoke %v failed: %v", function, err)
		return shim.Error(err.Error())
	}
	return shim.Success(result)
}

// args = [adminID, tokenChaincodeID]
func (t *DataMarketChaincode) initialize(store ledger.StoreInterface, args []string) error {
	if len(args) != 2 {
		return errors.New("initialize expects args = [adminID, tokenChaincodeID]")
	}
	return auth.Initialize(store, args[0], args[1])
}

// args = [seller, assetID, title, description, dataType, price, contentReference, accessSecret, size]
func (t *DataMarketChaincode) listDataAsset(store ledger.StoreInterface, caller string, args []string) error {
	if len(args) != 9 {
		return errors.New("listDataAsset expects args = [seller, assetID, title, description, dataType, price, contentReference, accessSecret, size]")
	}
	price, err := parseAmount(args[5])
	if err != nil {
		return err
	}
	asset := data_model.DataAsset{
		AssetID:          args[1],
		Title:            args[2],
		Description:      args[3],
		DataType:         args[4],
		Price:            price,
		Seller:           args[0],
		ContentReference: args[6],
		Size:             args[8],
	}
	return catalog.ListAsset(store, caller, asset, args[7])
}

// args = [seller, assetID]
func (t *DataMarketChaincode) deactivateDataAsset(store ledger.StoreInterface, caller string, args []string) error {
	if len(args) != 2 {
		return errors.New("deactivateDataAsset expects args = [seller, assetID]")
	}
	return catalog.DeactivateAsset(store, caller, args[1])
}

// args = [assetID]
func (t *DataMarketChaincode) getDataAsset(store ledger.StoreInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, errors.New("getDataAsset expects args = [assetID]")
	}
	asset, err := catalog.GetAsset(store, args[0])
	if err != nil {
		return nil, err
	}
	return json.Marshal(&asset)
}

// args = [] or [startIndex, limit]
func (t *DataMarketChaincode) getDataAssets(store ledger.StoreInterface, args []string) ([]byte, error) {
	startIndex, limit := 0, 0
	if len(args) == 2 {
		var err error
		if startIndex, err = strconv.Atoi(args[0]); err != nil {
			return nil, errors.Wrap(err, "Invalid startIndex")
		}
		if limit, err = strconv.Atoi(args[1]); err != nil {
			return nil, errors.Wrap(err, "Invalid limit")
		}
	} else if len(args) != 0 {
		return nil, errors.New("getDataAssets expects args = [] or [startIndex, limit]")
	}
	assets, err := catalog.ListActiveAssets(store, startIndex, limit)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&assets)
}

// args = [buyer, assetID, payment]
func (t *DataMarketChaincode) purchaseData(stub shim.ChaincodeStubInterface, store ledger.StoreInterface, caller string, args []string) ([]byte, error) {
	if len(args) != 3 {
		return nil, errors.New("purchaseData expects args = [buyer, assetID, payment]")
	}
	payment, err := parseAmount(args[2])
	if err != nil {
		return nil, err
	}
	config, err := auth.GetMarketConfig(store)
	if err != nil {
		return nil, err
	}
	secret, err := purchase.PurchaseAsset(store, caller, args[0], args[1], payment, token.Via(stub, config.TokenChaincodeID))
	if err != nil {
		return nil, err
	}
	return []byte(secret), nil
}

// args = [buyer]
func (t *DataMarketChaincode) getUserPurchases(store ledger.StoreInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, errors.New("getUserPurchases expects args = [buyer]")
	}
	records, err := purchase.GetUserPurchases(store, args[0])
	if err != nil {
		return nil, err
	}
	return json.Marshal(&records)
}

// args = [buyer, assetID]
func (t *DataMarketChaincode) getAccessSecret(store ledger.StoreInterface, caller string, args []string) ([]byte, error) {
	if len(args) != 2 {
		return nil, errors.New("getAccessSecret expects args = [buyer, assetID]")
	}
	secret, err := purchase.GetAccessSecret(store, caller, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return []byte(secret), nil
}

// args = [requester, dataType, price, durationDays]
func (t *DataMarketChaincode) createRequest(store ledger.StoreInterface, caller string, args []string) error {
	if len(args) != 4 {
		return errors.New("createRequest expects args = [requester, dataType, price, durationDays]")
	}
	price, err := parseAmount(args[2])
	if err != nil {
		return err
	}
	durationDays, err := strconv.Atoi(args[3])
	if err != nil {
		return errors.Wrap(err, "Invalid durationDays")
	}
	req := data_model.DataAccessRequest{
		Requester:    args[0],
		DataType:     args[1],
		Price:        price,
		DurationDays: durationDays,
	}
	return request.CreateRequest(store, caller, req)
}

// args = [index]
func (t *DataMarketChaincode) approveRequest(store ledger.StoreInterface, caller string, args []string) error {
	if len(args) != 1 {
		return errors.New("approveRequest expects args = [index]")
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrap(err, "Invalid index")
	}
	return request.ApproveRequest(store, caller, index)
}

func (t *DataMarketChaincode) getRequests(store ledger.StoreInterface) ([]byte, error) {
	requests, err := request.GetRequests(store)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&requests)
}

func (t *DataMarketChaincode) getStats(store ledger.StoreInterface) ([]byte, error) {
	counts, err := stats.GetStats(store)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&counts)
}

// parseAmount parses a price or payment in the smallest currency unit.
func parseAmount(s string) (int64, error) {
	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "Invalid amount \"%v\"", s)
	}
	return amount, nil
}
