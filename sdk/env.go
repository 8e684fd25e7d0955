package sdk

// Env carries the execution context the host hands to a contract for one
// message delivery. Timestamp is unix seconds of the enclosing block.
type Env struct {
	ContractID Address `json:"contract.id"`
	Sender     Address `json:"msg.sender"`
	Value      Coins   `json:"msg.value"`
	Timestamp  int64   `json:"block.timestamp"`
	TxID       string  `json:"tx.id"`
}

// Message is an inbound envelope: a 32-bit operation selector plus an opaque
// body the contract decodes itself.
type Message struct {
	Op    uint32  `json:"op"`
	From  Address `json:"from"`
	To    Address `json:"to"`
	Value Coins   `json:"value"`
	Body  string  `json:"body"`
}

// OutboundMessage is what a contract asks the host to send. Value is drawn
// from the contract balance when the delivery is committed.
type OutboundMessage struct {
	To    Address `json:"to"`
	Op    uint32  `json:"op"`
	Value Coins   `json:"value"`
	Body  string  `json:"body"`
}
