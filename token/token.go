/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package token provides the value-transfer collaborator.
//
// Payment settlement is not implemented here; it is delegated to the token
// chaincode registered at Initialize via a cross-chaincode invocation on the
// same channel. A failed transfer fails the whole calling transaction, so no
// marketplace state is committed without payment.
package token

import (
	"strconv"

	"github.com/Ewrnlleh/Bookie/custom_errors"
	"github.com/Ewrnlleh/Bookie/internal/common/global"

	"github.com/hyperledger/fabric/core/chaincode/shim"
	"github.com/pkg/errors"
)

var logger = shim.NewLogger("token")

// TransferFunc moves amount from one identity to another.
// An error means the transfer did not happen and the calling operation must
// fail as a whole.
type TransferFunc func(from string, to string, amount int64) error

// Via returns a TransferFunc that invokes the "transfer" function of the
// given token chaincode on the current channel.
func Via(stub shim.ChaincodeStubInterface, tokenChaincodeID string) TransferFunc {
	return func(from string, to string, amount int64) error {
		args := [][]byte{
			[]byte(global.TOKEN_TRANSFER_FUNCTION),
			[]byte(from),
			[]byte(to),
			[]byte(strconv.FormatInt(amount, 10)),
		}
		response := stub.InvokeChaincode(tokenChaincodeID, args, "")
		if response.Status != shim.OK {
			custom_err := &custom_errors.TransferError{From: from, To: to, Amount: amount}
			logger.Errorf("%v: %v", custom_err, response.Message)
			return errors.Wrap(errors.New(response.Message), custom_err.Error())
		}
		return nil
	}
}
