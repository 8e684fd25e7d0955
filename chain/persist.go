package chain

import (
	"encoding/json"

	"blagodao/sdk"
)

// Snapshot is the serializable shape of a sandbox, used by the CLI to keep
// a chain alive between invocations. Handlers are code, not data, so they
// are re-registered on restore.
type Snapshot struct {
	Now       int64                    `json:"now"`
	TxSeq     uint64                   `json:"tx_seq"`
	Accounts  map[string]int64         `json:"accounts"`
	Contracts map[string]ContractState `json:"contracts"`
}

type ContractState struct {
	CodeID  string            `json:"code_id"`
	Balance int64             `json:"balance"`
	State   map[string]string `json:"state"`
}

// Snapshot renders the chain as indented JSON so state files stay diffable.
func (c *Chain) Snapshot() ([]byte, error) {
	snap := Snapshot{
		Now:       c.now,
		TxSeq:     c.txSeq,
		Accounts:  map[string]int64{},
		Contracts: map[string]ContractState{},
	}
	for addr, bal := range c.accounts {
		snap.Accounts[addr.String()] = int64(bal)
	}
	for addr, inst := range c.contracts {
		state := make(map[string]string, len(inst.state))
		for k, v := range inst.state {
			state[k] = v
		}
		snap.Contracts[addr.String()] = ContractState{
			CodeID:  inst.codeID,
			Balance: int64(inst.balance),
			State:   state,
		}
	}
	return json.MarshalIndent(&snap, "", "  ")
}

// Restore replaces accounts and contract instances with the snapshot
// contents. Codes registered on the chain stay as they are.
func (c *Chain) Restore(data []byte) error {
	snap := Snapshot{}
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	c.now = snap.Now
	c.txSeq = snap.TxSeq
	c.accounts = map[sdk.Address]sdk.Coins{}
	for addr, bal := range snap.Accounts {
		c.accounts[sdk.Address(addr)] = sdk.Coins(bal)
	}
	c.contracts = map[sdk.Address]*contractInstance{}
	for addr, cs := range snap.Contracts {
		state := make(map[string]string, len(cs.State))
		for k, v := range cs.State {
			state[k] = v
		}
		c.contracts[sdk.Address(addr)] = &contractInstance{
			codeID:  cs.CodeID,
			balance: sdk.Coins(cs.Balance),
			state:   state,
		}
	}
	return nil
}
