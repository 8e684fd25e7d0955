package contract

import (
	"fmt"

	"blagodao/sdk"
)

// HandleSeller is the entrypoint of the BlagoSeller escrow. The contract
// has exactly two duties: remember one sale, execute it once.
func HandleSeller(msg *sdk.Message) error {
	env := sdk.GetEnv()
	switch msg.Op {
	case SellerOpInit:
		return sellerInit(&env, msg)
	case SellerOpBuy:
		return sellerBuy(&env)
	default:
		return ErrUnknownOp
	}
}

func sellerInit(env *sdk.Env, msg *sdk.Message) error {
	if _, ok := loadSellerState(); ok {
		return ErrAlreadyDeployed
	}
	if !env.Sender.IsContract() {
		return ErrNotMaster
	}
	st := &SellerState{}
	if err := decodeRecord(msg.Body, st); err != nil {
		return err
	}
	if !st.Dao.IsValid() || !st.Seller.IsValid() || st.Price <= 0 {
		return ErrBadPayload
	}
	st.Settled = false
	saveSellerState(st)
	sdk.Log(fmt.Sprintf("si|dao:%s|by:%s|p:%s", st.Dao, st.Seller, st.Price))
	return nil
}

// sellerBuy takes the payment, pays the selling member, refunds any excess
// and reports the purchase to the dao so the reserved weights move. The
// settled flag makes the escrow single-use.
func sellerBuy(env *sdk.Env) error {
	st, ok := loadSellerState()
	if !ok {
		return ErrNotInitialized
	}
	if st.Settled {
		return ErrAlreadySettled
	}
	if st.Buyer != "" && env.Sender != st.Buyer {
		return ErrWrongIdentity
	}
	if env.Value < st.Price {
		return ErrInsufficientPayment
	}
	if excess := env.Value - st.Price; excess > 0 {
		sdk.SendMessage(sdk.OutboundMessage{To: env.Sender, Value: excess})
	}
	sdk.SendMessage(sdk.OutboundMessage{To: st.Seller, Value: st.Price})
	sdk.SendMessage(sdk.OutboundMessage{
		To: st.Dao,
		Op: DaoOpTransferBoughtBlago,
		Body: encodeRecord(TransferBoughtArgs{
			Buyer:         env.Sender,
			Reservation:   st.Reservation,
			ApprovalBlago: st.ApprovalBlago,
			ProfitBlago:   st.ProfitBlago,
		}),
	})
	st.Settled = true
	saveSellerState(st)
	sdk.Log(fmt.Sprintf("sb|by:%s|p:%s", env.Sender, st.Price))
	return nil
}
