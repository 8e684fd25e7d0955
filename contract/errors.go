package contract

import "fmt"

// RejectError is a named rejection thrown back to the caller, the short
// symbol travels in bounce logs so explorers can group failures.
type RejectError struct {
	Symbol string
	Msg    string
}

func (e *RejectError) Error() string {
	return e.Symbol + ": " + e.Msg
}

func reject(symbol string, msg string) *RejectError {
	return &RejectError{Symbol: symbol, Msg: msg}
}

// rejectf builds a rejection with formatted detail, filling in addresses or
// indexes the caller needs to shake out the problem.
func rejectf(symbol string, format string, args ...any) *RejectError {
	return &RejectError{Symbol: symbol, Msg: fmt.Sprintf(format, args...)}
}

var (
	ErrNotAMember          = reject("not_a_member", "caller identity is not a member")
	ErrNotOwner            = reject("not_owner", "caller is not the owner")
	ErrNotMaster           = reject("not_master", "caller is not the registry")
	ErrNotDeployer         = reject("not_deployer", "caller did not deploy this dao")
	ErrAlreadyActive       = reject("already_active", "dao is already activated")
	ErrNotActive           = reject("not_active", "dao has not been activated")
	ErrAlreadyDeployed     = reject("already_deployed", "deployer already owns a dao")
	ErrAlreadySettled      = reject("already_settled", "the sale has already settled")
	ErrAlreadyApproved     = reject("already_approved", "caller already approved this transaction")
	ErrInvitationNotFound  = reject("invitation_not_found", "no pending invitation under this passcode")
	ErrTransactionNotFound = reject("transaction_not_found", "no pending transaction at this index")
	ErrReservationNotFound = reject("reservation_not_found", "no share reservation under this token")
	ErrIdentityTaken       = reject("identity_taken", "identity is already bound to a member")
	ErrInsufficientFee     = reject("insufficient_fee", "attached value does not cover the fee")
	ErrInsufficientPayment = reject("insufficient_payment", "attached value is below the price")
	ErrInsufficientFunds   = reject("insufficient_funds", "contract balance cannot cover the transfer")
	ErrInsufficientBlago   = reject("insufficient_blago", "member holds less blago than requested")
	ErrExpired             = reject("expired", "the transaction deadline has passed")
	ErrBadPayload          = reject("bad_payload", "message body failed to decode")
	ErrBadFraction         = reject("bad_fraction", "fraction denominator must be positive and >= numerator")
	ErrUnknownOp           = reject("unknown_op", "operation selector is not handled")
	ErrNotInitialized      = reject("not_initialized", "contract state missing, deploy message not processed")
	ErrWrongIdentity       = reject("wrong_identity", "caller does not match the invited identity")
	ErrNothingToCollect    = reject("nothing_to_collect", "no profit share available this round")
	ErrZeroWeight          = reject("zero_weight", "weight amounts must not both be zero")
)
