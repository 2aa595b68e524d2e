/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

package main

import (
	"github.com/Ewrnlleh/Bookie/marketplace"

	"github.com/hyperledger/fabric/core/chaincode/shim"
)

var logger = shim.NewLogger("main")

func main() {
	if err := shim.Start(new(marketplace.DataMarketChaincode)); err != nil {
		logger.Errorf("Error starting marketplace chaincode: %v", err)
	}
}
