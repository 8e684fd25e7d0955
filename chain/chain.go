// Package chain is an in-process sandbox for the contract handlers: a kv
// store and value ledger per contract, deterministic addresses, and a FIFO
// message queue. Deliveries are atomic, a handler error discards every write
// and bounces the attached value back to the sender. The sandbox is
// single-goroutine by design, matching how blocks replay messages.
package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"blagodao/sdk"
)

// Handler executes one inbound message against the currently installed host.
type Handler func(msg *sdk.Message) error

type contractInstance struct {
	codeID  string
	state   map[string]string
	balance sdk.Coins
}

// Delivery records one processed message so tests and tooling can replay
// what happened without scanning storage diffs.
type Delivery struct {
	Msg     sdk.Message
	OK      bool
	Err     string
	Bounced bool
	Logs    []string
}

// Is matches a delivery by endpoints and op, the usual assertion shape.
func (d Delivery) Is(from, to sdk.Address, op uint32) bool {
	return d.Msg.From == from && d.Msg.To == to && d.Msg.Op == op
}

type Chain struct {
	now       int64
	txSeq     uint64
	codes     map[string]Handler
	accounts  map[sdk.Address]sdk.Coins
	contracts map[sdk.Address]*contractInstance
	queue     []sdk.Message
	history   []Delivery
}

func NewChain() *Chain {
	return &Chain{
		now:       1_700_000_000,
		codes:     map[string]Handler{},
		accounts:  map[sdk.Address]sdk.Coins{},
		contracts: map[sdk.Address]*contractInstance{},
	}
}

// RegisterCode stores a handler under a code id so contracts can be
// instantiated from it, including by other contracts.
func (c *Chain) RegisterCode(codeID string, h Handler) {
	c.codes[codeID] = h
}

// Now returns the sandbox clock (unix seconds).
func (c *Chain) Now() int64 { return c.now }

// SetNow moves the clock to an absolute time.
func (c *Chain) SetNow(t int64) { c.now = t }

// Advance moves the clock forward by d seconds.
func (c *Chain) Advance(d int64) { c.now += d }

// Fund mints value onto a wallet address.
func (c *Chain) Fund(addr sdk.Address, amount sdk.Coins) {
	c.accounts[addr] += amount
}

// BalanceOf reports the balance of a wallet or contract address.
func (c *Chain) BalanceOf(addr sdk.Address) sdk.Coins {
	if inst, ok := c.contracts[addr]; ok {
		return inst.balance
	}
	return c.accounts[addr]
}

// History returns every delivery processed so far.
func (c *Chain) History() []Delivery { return c.history }

// DeriveAddress computes the deterministic contract address for codeID+salt,
// the same derivation the Deploy host call uses.
func DeriveAddress(codeID string, salt string) sdk.Address {
	sum := sha256.Sum256([]byte(codeID + ":" + salt))
	return sdk.Address("contract:" + hex.EncodeToString(sum[:20]))
}

// Instantiate creates a contract instance directly, used to bootstrap roots
// that are not deployed by another contract.
func (c *Chain) Instantiate(codeID string, salt string) (sdk.Address, error) {
	if _, ok := c.codes[codeID]; !ok {
		return "", fmt.Errorf("chain: unknown code %q", codeID)
	}
	addr := DeriveAddress(codeID, salt)
	if _, exists := c.contracts[addr]; exists {
		return "", fmt.Errorf("chain: address %s already taken", addr)
	}
	c.contracts[addr] = &contractInstance{codeID: codeID, state: map[string]string{}}
	return addr, nil
}

// IsContractDeployed reports whether an instance lives at addr.
func (c *Chain) IsContractDeployed(addr sdk.Address) bool {
	_, ok := c.contracts[addr]
	return ok
}

// SendExternal submits a message from a wallet, drains the resulting message
// cascade and returns the deliveries it produced, first entry being the
// submitted message itself.
func (c *Chain) SendExternal(from sdk.Address, to sdk.Address, op uint32, value sdk.Coins, body string) ([]Delivery, error) {
	if c.accounts[from] < value {
		return nil, fmt.Errorf("chain: %s has %s, cannot attach %s", from, c.accounts[from], value)
	}
	c.accounts[from] -= value
	c.queue = append(c.queue, sdk.Message{Op: op, From: from, To: to, Value: value, Body: body})
	start := len(c.history)
	c.run()
	return c.history[start:], nil
}

// run drains the queue one message at a time, in emission order.
func (c *Chain) run() {
	for len(c.queue) > 0 {
		msg := c.queue[0]
		c.queue = c.queue[1:]
		c.deliver(msg)
	}
}

func (c *Chain) deliver(msg sdk.Message) {
	inst, ok := c.contracts[msg.To]
	if !ok {
		if msg.To.Domain() == sdk.AddressDomainContract {
			// nothing lives there, hand the value back
			c.refund(msg.From, msg.Value)
			c.history = append(c.history, Delivery{Msg: msg, Err: "no contract at address", Bounced: true})
			return
		}
		// plain wallet transfer / notification
		c.accounts[msg.To] += msg.Value
		c.history = append(c.history, Delivery{Msg: msg, OK: true})
		return
	}

	handler := c.codes[inst.codeID]
	host := newDeliveryHost(c, inst, msg)
	sdk.SetHost(host)
	err := safeCall(handler, &msg)
	sdk.SetHost(nil)

	if err == nil {
		err = host.commit()
	}
	if err != nil {
		c.refund(msg.From, msg.Value)
		c.history = append(c.history, Delivery{Msg: msg, Err: err.Error(), Bounced: true, Logs: host.logs})
		return
	}
	c.history = append(c.history, Delivery{Msg: msg, OK: true, Logs: host.logs})
}

func (c *Chain) refund(to sdk.Address, amount sdk.Coins) {
	if amount == 0 {
		return
	}
	if inst, ok := c.contracts[to]; ok {
		inst.balance += amount
		return
	}
	c.accounts[to] += amount
}

// safeCall keeps a panicking handler from taking the sandbox down, panics
// are treated like any other rejection.
func safeCall(h Handler, msg *sdk.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(msg)
}

// View runs fn against a read-only host for addr so getters can execute off
// chain. Writes made inside fn are discarded.
func (c *Chain) View(addr sdk.Address, fn func() error) error {
	inst, ok := c.contracts[addr]
	if !ok {
		return fmt.Errorf("chain: no contract at %s", addr)
	}
	msg := sdk.Message{From: "system:view", To: addr}
	host := newDeliveryHost(c, inst, msg)
	sdk.SetHost(host)
	defer sdk.SetHost(nil)
	return fn()
}
