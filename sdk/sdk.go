package sdk

import "errors"

// ErrDeployFailed is returned when the host refuses to instantiate code.
var ErrDeployFailed = errors.New("sdk: deploy failed")

// Host is the surface a contract sees: kv storage, its execution env, its
// balance, and the outbox. On chain the wasm imports implement it; off chain
// the sandbox swaps in an in-process host per delivery.
type Host interface {
	StateGet(key string) *string
	StateSet(key string, value string)
	StateDelete(key string)
	Env() Env
	Balance() Coins
	Send(msg OutboundMessage)
	Deploy(codeID string, salt string) (Address, error)
	Log(line string)
}

var active Host

// SetHost installs the host used by the package-level helpers. The sandbox
// calls this before every delivery; the wasm build calls it once at startup.
func SetHost(h Host) {
	active = h
}

// ActiveHost exposes the current host, mostly for harness assertions.
func ActiveHost() Host {
	return active
}

func mustHost() Host {
	if active == nil {
		panic("sdk: no host installed")
	}
	return active
}

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello dao")
func Log(s string) {
	mustHost().Log(s)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	mustHost().StateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return mustHost().StateGet(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	mustHost().StateDelete(key)
}

// GetEnv returns the execution context of the current delivery.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	return mustHost().Env()
}

// GetBalance returns the contract balance including the value attached to the
// message being processed.
func GetBalance() Coins {
	return mustHost().Balance()
}

// SendMessage queues an outbound message; it only leaves the contract when
// the whole delivery commits.
// Example payload: sdk.SendMessage(sdk.OutboundMessage{To: dst, Op: 5, Value: fee})
func SendMessage(msg OutboundMessage) {
	mustHost().Send(msg)
}

// DeployContract asks the host to instantiate stored code at a deterministic
// address derived from codeID and salt. Returns the new contract address.
func DeployContract(codeID string, salt string) (Address, error) {
	return mustHost().Deploy(codeID, salt)
}
