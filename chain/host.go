package chain

import (
	"fmt"

	"blagodao/sdk"
)

// deliveryHost is the sdk.Host for one message delivery. All writes are
// buffered; commit applies them only when the handler returned cleanly, so a
// rejection leaves the instance exactly as it was.
type deliveryHost struct {
	chain   *Chain
	inst    *contractInstance
	env     sdk.Env
	writes  map[string]*string // nil value means delete
	outbox  []sdk.OutboundMessage
	deploys []stagedDeploy
	logs    []string
}

type stagedDeploy struct {
	addr   sdk.Address
	codeID string
}

func newDeliveryHost(c *Chain, inst *contractInstance, msg sdk.Message) *deliveryHost {
	c.txSeq++
	return &deliveryHost{
		chain:  c,
		inst:   inst,
		writes: map[string]*string{},
		env: sdk.Env{
			ContractID: msg.To,
			Sender:     msg.From,
			Value:      msg.Value,
			Timestamp:  c.now,
			TxID:       fmt.Sprintf("tx-%d", c.txSeq),
		},
	}
}

func (h *deliveryHost) StateGet(key string) *string {
	if v, ok := h.writes[key]; ok {
		return v
	}
	if v, ok := h.inst.state[key]; ok {
		cp := v
		return &cp
	}
	return nil
}

func (h *deliveryHost) StateSet(key string, value string) {
	h.writes[key] = &value
}

func (h *deliveryHost) StateDelete(key string) {
	h.writes[key] = nil
}

func (h *deliveryHost) Env() sdk.Env { return h.env }

// Balance is the spendable amount at this point in the delivery: stored
// balance plus the incoming value minus everything already queued to leave.
func (h *deliveryHost) Balance() sdk.Coins {
	bal := h.inst.balance + h.env.Value
	for _, out := range h.outbox {
		bal -= out.Value
	}
	return bal
}

func (h *deliveryHost) Send(msg sdk.OutboundMessage) {
	h.outbox = append(h.outbox, msg)
}

func (h *deliveryHost) Deploy(codeID string, salt string) (sdk.Address, error) {
	if _, ok := h.chain.codes[codeID]; !ok {
		return "", sdk.ErrDeployFailed
	}
	addr := DeriveAddress(codeID, salt)
	if _, exists := h.chain.contracts[addr]; exists {
		return "", sdk.ErrDeployFailed
	}
	for _, d := range h.deploys {
		if d.addr == addr {
			return "", sdk.ErrDeployFailed
		}
	}
	h.deploys = append(h.deploys, stagedDeploy{addr: addr, codeID: codeID})
	return addr, nil
}

func (h *deliveryHost) Log(line string) {
	h.logs = append(h.logs, line)
}

// commit settles the delivery: credit incoming value, debit the outbox,
// apply buffered writes, materialize staged deploys and enqueue outbound
// messages in emission order.
func (h *deliveryHost) commit() error {
	var outTotal sdk.Coins
	for _, out := range h.outbox {
		if out.Value < 0 {
			return fmt.Errorf("negative outbound value to %s", out.To)
		}
		outTotal += out.Value
	}
	if h.inst.balance+h.env.Value < outTotal {
		return fmt.Errorf("outbox %s exceeds balance %s", outTotal, h.inst.balance+h.env.Value)
	}

	h.inst.balance += h.env.Value - outTotal
	for key, val := range h.writes {
		if val == nil {
			delete(h.inst.state, key)
			continue
		}
		h.inst.state[key] = *val
	}
	for _, d := range h.deploys {
		h.chain.contracts[d.addr] = &contractInstance{codeID: d.codeID, state: map[string]string{}}
	}
	for _, out := range h.outbox {
		h.chain.queue = append(h.chain.queue, sdk.Message{
			Op:    out.Op,
			From:  h.env.ContractID,
			To:    out.To,
			Value: out.Value,
			Body:  out.Body,
		})
	}
	return nil
}
