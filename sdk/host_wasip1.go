//go:build wasip1

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func hostLog(s *string) *string

//go:wasmimport sdk db.set_object
func hostStateSet(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func hostStateGet(key *string) *string

//go:wasmimport sdk db.rm_object
func hostStateDelete(key *string) *string

//go:wasmimport sdk system.get_env
func hostGetEnv(arg *string) *string

//go:wasmimport sdk ledger.get_balance
func hostGetBalance(arg *string) *string

//go:wasmimport sdk ledger.send
func hostSend(msg *string) *string

//go:wasmimport sdk contracts.deploy
func hostDeploy(codeID *string, salt *string) *string

// WasmHost wires the package helpers to the chain runtime imports. It holds
// no state of its own, every call goes straight to the host.
type WasmHost struct{}

func (WasmHost) Log(line string) {
	hostLog(&line)
}

func (WasmHost) StateSet(key string, value string) {
	hostStateSet(&key, &value)
}

func (WasmHost) StateGet(key string) *string {
	return hostStateGet(&key)
}

func (WasmHost) StateDelete(key string) {
	hostStateDelete(&key)
}

func (WasmHost) Env() Env {
	raw := *hostGetEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(raw), &env)
	return env
}

func (WasmHost) Balance() Coins {
	raw := *hostGetBalance(nil)
	bal, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		panic(err)
	}
	return Coins(bal)
}

func (WasmHost) Send(msg OutboundMessage) {
	data, err := json.Marshal(&msg)
	if err != nil {
		panic(err)
	}
	s := string(data)
	hostSend(&s)
}

func (WasmHost) Deploy(codeID string, salt string) (Address, error) {
	addr := hostDeploy(&codeID, &salt)
	if addr == nil {
		return "", ErrDeployFailed
	}
	return Address(*addr), nil
}

func init() {
	SetHost(WasmHost{})
}
