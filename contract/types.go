package contract

import "blagodao/sdk"

// Blago is a governance weight. Approval blago decides quorum, profit blago
// decides distribution shares. All comparisons are pure integer math.
type Blago uint64

// Fraction is a numerator/denominator pair compared by cross multiplication,
// never by division, so quorum checks are exact.
//
//tinyjson:json
type Fraction struct {
	Num uint64 `json:"num"`
	Den uint64 `json:"den"`
}

func (f Fraction) valid() bool {
	return f.Den > 0 && f.Num <= f.Den
}

// reached reports whether part/total satisfies the fraction threshold.
func (f Fraction) reached(part, total Blago) bool {
	return uint64(part)*f.Den >= uint64(total)*f.Num
}

// Member is one weighted participant of a Dao.
//
//tinyjson:json
type Member struct {
	Address       sdk.Address `json:"address"`
	ApprovalBlago Blago       `json:"approval_blago"`
	ProfitBlago   Blago       `json:"profit_blago"`
	// Approved lists pending-transaction indexes this member already weighed
	// in on. It survives identity changes.
	Approved       []uint32 `json:"approved,omitempty"`
	CollectedRound uint32   `json:"collected_round,omitempty"`
	JoinedAt       int64    `json:"joined_at"`
}

func (m *Member) hasApproved(idx uint32) bool {
	for _, a := range m.Approved {
		if a == idx {
			return true
		}
	}
	return false
}

func (m *Member) dropApproved(idx uint32) {
	for i, a := range m.Approved {
		if a == idx {
			m.Approved = append(m.Approved[:i], m.Approved[i+1:]...)
			return
		}
	}
}

// PendingInvitation parks weights for a candidate until they claim the seat
// with their passcode.
//
//tinyjson:json
type PendingInvitation struct {
	Address       sdk.Address `json:"address"`
	ApprovalBlago Blago       `json:"approval_blago"`
	ProfitBlago   Blago       `json:"profit_blago"`
}

// PendingTransaction is a proposed settlement waiting for quorum. Info holds
// the encoded type-specific record so the envelope stays one shape.
//
//tinyjson:json
type PendingTransaction struct {
	Type      TransactionType `json:"type"`
	Deadline  int64           `json:"deadline"`
	Info      string          `json:"info"`
	Approvals []sdk.Address   `json:"approvals,omitempty"`
	// Weights holds the approval weight counted per Approvals entry, in the
	// same order, so a revoke gives back exactly what was added even when
	// the member's weight changed in between.
	Weights  []Blago `json:"approval_weights,omitempty"`
	Received Blago   `json:"approval_blago_received"`
}

func (p *PendingTransaction) approvedBy(addr sdk.Address) bool {
	for _, a := range p.Approvals {
		if a == addr {
			return true
		}
	}
	return false
}

// dropApproval removes addr's entry and returns the weight it carried.
func (p *PendingTransaction) dropApproval(addr sdk.Address) Blago {
	for i, a := range p.Approvals {
		if a == addr {
			var w Blago
			if i < len(p.Weights) {
				w = p.Weights[i]
				p.Weights = append(p.Weights[:i], p.Weights[i+1:]...)
			}
			p.Approvals = append(p.Approvals[:i], p.Approvals[i+1:]...)
			return w
		}
	}
	return 0
}

// DaoState is the aggregate root of one Dao instance.
//
//tinyjson:json
type DaoState struct {
	Active               bool        `json:"active"`
	Root                 sdk.Address `json:"root"`
	Deployer             sdk.Address `json:"deployer"`
	TransactionFee       sdk.Coins   `json:"transaction_fee"`
	AgreementPercent     Fraction    `json:"agreement_percent"`
	ProfitReservePercent Fraction    `json:"profit_reserve_percent"`
	TotalApprovalBlago   Blago       `json:"total_approval_blago"`
	TotalProfitBlago     Blago       `json:"total_profit_blago"`
	ProfitReserved       sdk.Coins   `json:"profit_reserved"`
	// RoundReserve freezes the pool size at distribution time so collection
	// shares stay fair regardless of claim order.
	RoundReserve      sdk.Coins     `json:"round_reserve"`
	DistributionRound uint32        `json:"distribution_round"`
	NextPasscode      uint32        `json:"next_passcode"`
	NextTransaction   uint32        `json:"next_transaction"`
	ProfitableCount   uint32        `json:"profitable_count"`
	NextReservation   uint32        `json:"next_reservation"`
	Members           []sdk.Address `json:"members,omitempty"`
}

func (s *DaoState) memberIndex(addr sdk.Address) int {
	for i, m := range s.Members {
		if m == addr {
			return i
		}
	}
	return -1
}

// MasterState holds the registry configuration and the escalating fee
// schedule applied to each new Dao.
//
//tinyjson:json
type MasterState struct {
	Owner                  sdk.Address `json:"owner"`
	DaoCodeID              string      `json:"dao_code_id"`
	SellerCodeID           string      `json:"seller_code_id"`
	NextDaoCreationFee     sdk.Coins   `json:"next_dao_creation_fee"`
	NextDaoTransactionFee  sdk.Coins   `json:"next_dao_transaction_fee"`
	CreationFeeDiscount    sdk.Coins   `json:"creation_fee_discount"`
	TransactionFeeIncrease sdk.Coins   `json:"transaction_fee_increase"`
	MaxDaoTransactionFee   sdk.Coins   `json:"max_dao_transaction_fee"`
	SellerCreationFee      sdk.Coins   `json:"seller_creation_fee"`
	NextSaleIndex          uint32      `json:"next_sale_index"`
}

// SellerState is the whole state of one single-use escrow.
//
//tinyjson:json
type SellerState struct {
	Dao    sdk.Address `json:"dao"`
	Seller sdk.Address `json:"seller"`
	// Buyer restricts who may purchase; empty means first payer wins.
	Buyer         sdk.Address `json:"buyer,omitempty"`
	Price         sdk.Coins   `json:"price"`
	ApprovalBlago Blago       `json:"approval_blago"`
	ProfitBlago   Blago       `json:"profit_blago"`
	Reservation   uint32      `json:"reservation"`
	Settled       bool        `json:"settled"`
}

// ShareReservation parks weights debited from a selling member until the
// escrow reports a purchase. The record index doubles as the claim token.
//
//tinyjson:json
type ShareReservation struct {
	Seller        sdk.Address `json:"seller"`
	ApprovalBlago Blago       `json:"approval_blago"`
	ProfitBlago   Blago       `json:"profit_blago"`
}

// --- message bodies ---

// DeployDaoArgs travels with the init message from master to a fresh Dao.
//
//tinyjson:json
type DeployDaoArgs struct {
	Deployer       sdk.Address `json:"deployer"`
	TransactionFee sdk.Coins   `json:"transaction_fee"`
}

//tinyjson:json
type ActivateArgs struct {
	AgreementPercent     Fraction            `json:"agreement_percent"`
	ProfitReservePercent Fraction            `json:"profit_reserve_percent"`
	ProfitableAddresses  []sdk.Address       `json:"profitable_addresses,omitempty"`
	Invitations          []PendingInvitation `json:"invitations,omitempty"`
}

//tinyjson:json
type ProposeArgs struct {
	Type     TransactionType `json:"type"`
	Deadline int64           `json:"deadline"`
	Info     string          `json:"info"`
}

//tinyjson:json
type ApproveArgs struct {
	Index uint32 `json:"index"`
}

//tinyjson:json
type AcceptInvitationArgs struct {
	Passcode uint32 `json:"passcode"`
}

//tinyjson:json
type ChangeAddressArgs struct {
	NewAddress sdk.Address `json:"new_address"`
}

// InviteNoticeArgs is the body of the notification a candidate receives.
//
//tinyjson:json
type InviteNoticeArgs struct {
	Passcode      uint32 `json:"passcode"`
	ApprovalBlago Blago  `json:"approval_blago"`
	ProfitBlago   Blago  `json:"profit_blago"`
}

//tinyjson:json
type WithdrawArgs struct {
	Amount sdk.Coins `json:"amount"`
}

//tinyjson:json
type ChangeOwnerArgs struct {
	NewOwner sdk.Address `json:"new_owner"`
}

// SaleTerms describes one brokered share sale. Reservation is stamped by the
// Dao at settlement and echoed back by the escrow on purchase.
//
//tinyjson:json
type SaleTerms struct {
	Buyer         sdk.Address `json:"buyer,omitempty"`
	Price         sdk.Coins   `json:"price"`
	ApprovalBlago Blago       `json:"approval_blago"`
	ProfitBlago   Blago       `json:"profit_blago"`
	Reservation   uint32      `json:"reservation"`
}

//tinyjson:json
type StartSaleArgs struct {
	Seller sdk.Address `json:"seller"`
	Terms  SaleTerms   `json:"terms"`
}

//tinyjson:json
type TransferBoughtArgs struct {
	Buyer         sdk.Address `json:"buyer"`
	Reservation   uint32      `json:"reservation"`
	ApprovalBlago Blago       `json:"approval_blago"`
	ProfitBlago   Blago       `json:"profit_blago"`
}

// --- transaction info records (tagged union over TransactionType) ---

//tinyjson:json
type InviteInfo struct {
	Address       sdk.Address `json:"address"`
	ApprovalBlago Blago       `json:"approval_blago"`
	ProfitBlago   Blago       `json:"profit_blago"`
}

//tinyjson:json
type DeleteAddressInfo struct {
	Address sdk.Address `json:"address"`
}

//tinyjson:json
type DistributeInfo struct {
	Amount sdk.Coins `json:"amount"`
}

//tinyjson:json
type ArbitraryInfo struct {
	Destination sdk.Address `json:"destination"`
	Amount      sdk.Coins   `json:"amount"`
	Op          uint32      `json:"op"`
	Body        string      `json:"body,omitempty"`
}

//tinyjson:json
type TransferInfo struct {
	Source        sdk.Address `json:"source"`
	Recipient     sdk.Address `json:"recipient"`
	ApprovalBlago Blago       `json:"approval_blago"`
	ProfitBlago   Blago       `json:"profit_blago"`
}

// PurgeInfo lists record indexes to drop; empty means drop everything.
//
//tinyjson:json
type PurgeInfo struct {
	Keys []uint32 `json:"keys,omitempty"`
}

//tinyjson:json
type CollectFundsInfo struct {
	Passcode uint32 `json:"passcode"`
}
