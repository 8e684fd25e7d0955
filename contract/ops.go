package contract

// Operation selectors are fixed 32-bit numbers on the wire. Changing any of
// them is a network break, additions go at the end of each block.

// DaoMaster operations.
const (
	MasterOpDeploy         uint32 = 0
	MasterOpWithdrawFunds  uint32 = 1
	MasterOpChangeOwner    uint32 = 2
	MasterOpInit           uint32 = 3  // instantiation config, the analog of deploy-time state
	MasterOpFeeAck         uint32 = 4  // value-bearing acknowledgment sent by a Dao settlement
	MasterOpStartBlagoSale uint32 = 82 // Dao asks the master to broker a share sale
)

// Dao operations.
const (
	DaoOpProcessDeploy       uint32 = 0 // init message from the master right after instantiation
	DaoOpMasterLog           uint32 = 1
	DaoOpActivate            uint32 = 2
	DaoOpPropose             uint32 = 3
	DaoOpApprove             uint32 = 4
	DaoOpCollectProfit       uint32 = 5
	DaoOpAcceptInvitation    uint32 = 6
	DaoOpBuyBlago            uint32 = 7 // reserved selector, purchases go through the seller contract
	DaoOpInviteNotice        uint32 = 8 // outbound notification carrying passcode + weights
	DaoOpRevokeApproval      uint32 = 9
	DaoOpChangeMyAddress     uint32 = 10
	DaoOpQuit                uint32 = 11
	DaoOpTopUpBalance        uint32 = 12
	DaoOpCollectFunds        uint32 = 81 // profitable address answering the sweep instruction
	DaoOpTransferBoughtBlago uint32 = 84 // seller contract delivering purchased weights
)

// BlagoSeller operations.
const (
	SellerOpBuy  uint32 = 0
	SellerOpInit uint32 = 83 // instantiation config from the registry
)

// TransactionType selects the settlement effect of a pending transaction.
type TransactionType uint32

const (
	TxInviteAddress             TransactionType = 1
	TxDeleteAddress             TransactionType = 2
	TxDistribute                TransactionType = 4
	TxArbitrary                 TransactionType = 5
	TxUpdateAgreementPercent    TransactionType = 6
	TxTransferBlago             TransactionType = 7
	TxPutUpBlagoForSale         TransactionType = 8
	TxDeletePendingInvitations  TransactionType = 9
	TxDeletePendingTransactions TransactionType = 10
	TxSendCollectFunds          TransactionType = 81
)

// String keeps event lines readable without shipping a stringer dependency.
func (t TransactionType) String() string {
	switch t {
	case TxInviteAddress:
		return "invite"
	case TxDeleteAddress:
		return "delete_address"
	case TxDistribute:
		return "distribute"
	case TxArbitrary:
		return "arbitrary"
	case TxUpdateAgreementPercent:
		return "update_agreement"
	case TxTransferBlago:
		return "transfer_blago"
	case TxPutUpBlagoForSale:
		return "blago_sale"
	case TxDeletePendingInvitations:
		return "purge_invitations"
	case TxDeletePendingTransactions:
		return "purge_transactions"
	case TxSendCollectFunds:
		return "collect_funds"
	default:
		return "unknown"
	}
}

// isKnown guards propose payloads so bogus selectors never reach settlement.
func (t TransactionType) isKnown() bool {
	switch t {
	case TxInviteAddress, TxDeleteAddress, TxDistribute, TxArbitrary,
		TxUpdateAgreementPercent, TxTransferBlago, TxPutUpBlagoForSale,
		TxDeletePendingInvitations, TxDeletePendingTransactions, TxSendCollectFunds:
		return true
	}
	return false
}
