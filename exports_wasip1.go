//go:build wasip1

package main

import (
	"encoding/json"
	"errors"

	"blagodao/contract"
	"blagodao/sdk"
)

//go:wasmimport env revert
func revert(msg *string, symbol *string)

// dispatch decodes the envelope the runtime hands over and maps a handler
// error onto the revert import so the chain can bounce the message.
func dispatch(h func(*sdk.Message) error, payload *string) *string {
	msg := sdk.Message{}
	if err := json.Unmarshal([]byte(*payload), &msg); err != nil {
		m := "bad envelope: " + err.Error()
		s := "bad_payload"
		revert(&m, &s)
		return nil
	}
	if err := h(&msg); err != nil {
		symbol := "error"
		var rej *contract.RejectError
		if errors.As(err, &rej) {
			symbol = rej.Symbol
		}
		m := err.Error()
		revert(&m, &symbol)
		return nil
	}
	ok := "ok"
	return &ok
}

//go:wasmexport dao_message
func DaoMessage(payload *string) *string {
	return dispatch(contract.HandleDao, payload)
}

//go:wasmexport master_message
func MasterMessage(payload *string) *string {
	return dispatch(contract.HandleMaster, payload)
}

//go:wasmexport seller_message
func SellerMessage(payload *string) *string {
	return dispatch(contract.HandleSeller, payload)
}
