/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package utils contains convenience, helper, and utility functions.
package utils

import (
	"regexp"
	"runtime"
	"strings"

	"github.com/hyperledger/fabric/core/chaincode/shim"
)

// RE_stripFnPreamble uses regex to extract function names (and not the module path).
var RE_stripFnPreamble = regexp.MustCompile(`^.*\.(.*)$`)

// EnterFnLogger logs and returns the current function name at the start of function execution.
func EnterFnLogger(mylogger *shim.ChaincodeLogger) string {
	fnName := "<unknown>"
	// Skip this function, and fetch the PC and file for its parent
	pc, _, _, ok := runtime.Caller(1)
	if ok {
		fnName = RE_stripFnPreamble.ReplaceAllString(runtime.FuncForPC(pc).Name(), "$1")
	}

	mylogger.Debugf("---> %s\n", fnName)
	return fnName
}

// ExitFnLogger logs the current function name at the end of execution.
func ExitFnLogger(mylogger *shim.ChaincodeLogger, s string) {
	mylogger.Debugf("<--- %s\n", s)
}

// InList returns true if item is in listdata, false otherwise.
func InList(listdata []string, item string) bool {
	for _, v := range listdata {
		if v == item {
			return true
		}
	}
	return false
}

// IsStringEmpty returns true if the provided string is empty after trimming, false otherwise.
func IsStringEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}
