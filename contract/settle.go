package contract

import "blagodao/sdk"

// validateTxInfo decodes and sanity-checks the type-specific record at
// propose time. Settlement re-reads the record, but state-dependent checks
// (balances, current membership) deliberately wait until then.
func validateTxInfo(st *DaoState, proposer sdk.Address, t TransactionType, info string) error {
	switch t {
	case TxInviteAddress:
		rec := InviteInfo{}
		if err := decodeRecord(info, &rec); err != nil {
			return err
		}
		if !rec.Address.IsValid() {
			return ErrBadPayload
		}
		if rec.ApprovalBlago == 0 && rec.ProfitBlago == 0 {
			return ErrZeroWeight
		}
	case TxDeleteAddress:
		rec := DeleteAddressInfo{}
		if err := decodeRecord(info, &rec); err != nil {
			return err
		}
		if _, ok := loadMember(rec.Address); !ok {
			return ErrNotAMember
		}
	case TxDistribute:
		rec := DistributeInfo{}
		if err := decodeRecord(info, &rec); err != nil {
			return err
		}
		if rec.Amount <= 0 {
			return rejectf("bad_payload", "distribution amount must be positive, got %s", rec.Amount)
		}
	case TxArbitrary:
		rec := ArbitraryInfo{}
		if err := decodeRecord(info, &rec); err != nil {
			return err
		}
		if !rec.Destination.IsValid() || rec.Amount < 0 {
			return ErrBadPayload
		}
	case TxUpdateAgreementPercent:
		rec := Fraction{}
		if err := decodeRecord(info, &rec); err != nil {
			return err
		}
		if !rec.valid() {
			return ErrBadFraction
		}
	case TxTransferBlago:
		rec := TransferInfo{}
		if err := decodeRecord(info, &rec); err != nil {
			return err
		}
		if !rec.Recipient.IsValid() {
			return ErrBadPayload
		}
		if rec.ApprovalBlago == 0 && rec.ProfitBlago == 0 {
			return ErrZeroWeight
		}
		if _, ok := loadMember(rec.Source); !ok {
			return ErrNotAMember
		}
	case TxPutUpBlagoForSale:
		rec := StartSaleArgs{}
		if err := decodeRecord(info, &rec); err != nil {
			return err
		}
		if rec.Seller != proposer {
			return rejectf("wrong_identity", "only %s may put their own blago up for sale", rec.Seller)
		}
		if rec.Terms.Price <= 0 {
			return rejectf("bad_payload", "sale price must be positive, got %s", rec.Terms.Price)
		}
		if rec.Terms.ApprovalBlago == 0 && rec.Terms.ProfitBlago == 0 {
			return ErrZeroWeight
		}
	case TxDeletePendingInvitations, TxDeletePendingTransactions:
		rec := PurgeInfo{}
		if err := decodeRecord(info, &rec); err != nil {
			return err
		}
	case TxSendCollectFunds:
		rec := CollectFundsInfo{}
		if err := decodeRecord(info, &rec); err != nil {
			return err
		}
		if _, ok := loadProfitable(rec.Passcode); !ok {
			return rejectf("bad_payload", "no profitable address under passcode %d", rec.Passcode)
		}
	default:
		return rejectf("bad_payload", "unknown transaction type %d", t)
	}
	return nil
}

// settleTransaction applies the effect of a quorum-complete transaction.
// The caller commits or discards everything, so an error here leaves the
// transaction pending and the approval uncounted, ready for a retry once
// the blocker (usually balance) is resolved.
func settleTransaction(st *DaoState, env *sdk.Env, index uint32, tx *PendingTransaction) error {
	switch tx.Type {
	case TxInviteAddress:
		rec := InviteInfo{}
		if err := decodeRecord(tx.Info, &rec); err != nil {
			return err
		}
		return addInvitation(st, &PendingInvitation{
			Address:       rec.Address,
			ApprovalBlago: rec.ApprovalBlago,
			ProfitBlago:   rec.ProfitBlago,
		})

	case TxDeleteAddress:
		rec := DeleteAddressInfo{}
		if err := decodeRecord(tx.Info, &rec); err != nil {
			return err
		}
		m, ok := loadMember(rec.Address)
		if !ok {
			return ErrNotAMember
		}
		st.TotalApprovalBlago -= m.ApprovalBlago
		st.TotalProfitBlago -= m.ProfitBlago
		if i := st.memberIndex(rec.Address); i >= 0 {
			st.Members = append(st.Members[:i], st.Members[i+1:]...)
		}
		deleteMember(rec.Address)
		emitQuit(rec.Address)
		return nil

	case TxDistribute:
		return settleDistribute(st, env, tx.Info)

	case TxArbitrary:
		rec := ArbitraryInfo{}
		if err := decodeRecord(tx.Info, &rec); err != nil {
			return err
		}
		if sdk.GetBalance() < rec.Amount {
			return ErrInsufficientFunds
		}
		sdk.SendMessage(sdk.OutboundMessage{
			To:    rec.Destination,
			Op:    rec.Op,
			Value: rec.Amount,
			Body:  rec.Body,
		})
		return nil

	case TxUpdateAgreementPercent:
		rec := Fraction{}
		if err := decodeRecord(tx.Info, &rec); err != nil {
			return err
		}
		if !rec.valid() {
			return ErrBadFraction
		}
		st.AgreementPercent = rec
		return nil

	case TxTransferBlago:
		rec := TransferInfo{}
		if err := decodeRecord(tx.Info, &rec); err != nil {
			return err
		}
		if err := debitWeights(st, rec.Source, rec.ApprovalBlago, rec.ProfitBlago); err != nil {
			return err
		}
		return creditWeights(st, rec.Recipient, rec.ApprovalBlago, rec.ProfitBlago)

	case TxPutUpBlagoForSale:
		return settleShareSale(st, env, tx.Info)

	case TxDeletePendingInvitations:
		rec := PurgeInfo{}
		if err := decodeRecord(tx.Info, &rec); err != nil {
			return err
		}
		if len(rec.Keys) == 0 {
			for p := uint32(0); p < st.NextPasscode; p++ {
				deleteInvitation(p)
			}
		} else {
			for _, p := range rec.Keys {
				deleteInvitation(p)
			}
		}
		return nil

	case TxDeletePendingTransactions:
		rec := PurgeInfo{}
		if err := decodeRecord(tx.Info, &rec); err != nil {
			return err
		}
		if len(rec.Keys) == 0 {
			for i := uint32(0); i < st.NextTransaction; i++ {
				if i != index {
					deletePendingTx(i)
				}
			}
		} else {
			for _, i := range rec.Keys {
				if i != index {
					deletePendingTx(i)
				}
			}
		}
		return nil

	case TxSendCollectFunds:
		rec := CollectFundsInfo{}
		if err := decodeRecord(tx.Info, &rec); err != nil {
			return err
		}
		target, ok := loadProfitable(rec.Passcode)
		if !ok {
			return rejectf("bad_payload", "no profitable address under passcode %d", rec.Passcode)
		}
		sdk.SendMessage(sdk.OutboundMessage{To: target, Op: DaoOpCollectFunds})
		return nil
	}
	return rejectf("bad_payload", "unknown transaction type %d", tx.Type)
}

// settleDistribute splits the stated amount into the member payout and the
// reserve, pays every profit-weighted member and forwards the captured
// transaction fee to the registry as acknowledgment. Rounding remainders
// stay on the dao balance.
func settleDistribute(st *DaoState, env *sdk.Env, info string) error {
	rec := DistributeInfo{}
	if err := decodeRecord(info, &rec); err != nil {
		return err
	}
	if st.TotalProfitBlago == 0 {
		return ErrZeroWeight
	}
	if sdk.GetBalance() < rec.Amount+st.TransactionFee {
		return ErrInsufficientFunds
	}
	reserve := sdk.Coins(uint64(rec.Amount) * st.ProfitReservePercent.Num / st.ProfitReservePercent.Den)
	distributable := rec.Amount - reserve
	var paid sdk.Coins
	for _, addr := range st.Members {
		m, ok := loadMember(addr)
		if !ok || m.ProfitBlago == 0 {
			continue
		}
		share := sdk.Coins(uint64(distributable) * uint64(m.ProfitBlago) / uint64(st.TotalProfitBlago))
		if share == 0 {
			continue
		}
		sdk.SendMessage(sdk.OutboundMessage{To: addr, Value: share})
		paid += share
	}
	st.ProfitReserved += reserve
	st.RoundReserve = st.ProfitReserved
	st.DistributionRound++
	if st.TransactionFee > 0 {
		sdk.SendMessage(sdk.OutboundMessage{
			To:    st.Root,
			Op:    MasterOpFeeAck,
			Value: st.TransactionFee,
		})
	}
	emitDistribution(st.DistributionRound, paid, reserve)
	return nil
}

// settleShareSale reserves the seller's weights and asks the registry to
// deploy the escrow. The attached approval value travels along to cover the
// registry's escrow creation fee.
func settleShareSale(st *DaoState, env *sdk.Env, info string) error {
	rec := StartSaleArgs{}
	if err := decodeRecord(info, &rec); err != nil {
		return err
	}
	if err := debitWeights(st, rec.Seller, rec.Terms.ApprovalBlago, rec.Terms.ProfitBlago); err != nil {
		return err
	}
	token := st.NextReservation
	st.NextReservation++
	saveReservation(token, &ShareReservation{
		Seller:        rec.Seller,
		ApprovalBlago: rec.Terms.ApprovalBlago,
		ProfitBlago:   rec.Terms.ProfitBlago,
	})
	rec.Terms.Reservation = token
	sdk.SendMessage(sdk.OutboundMessage{
		To:    st.Root,
		Op:    MasterOpStartBlagoSale,
		Value: env.Value,
		Body:  encodeRecord(rec),
	})
	emitSaleStarted(rec.Seller, rec.Terms.Price, token)
	return nil
}

// debitWeights takes weights off a member and the totals. The member record
// stays even at zero weight, quitting is an explicit act.
func debitWeights(st *DaoState, from sdk.Address, approval Blago, profit Blago) error {
	m, ok := loadMember(from)
	if !ok {
		return ErrNotAMember
	}
	if m.ApprovalBlago < approval || m.ProfitBlago < profit {
		return ErrInsufficientBlago
	}
	m.ApprovalBlago -= approval
	m.ProfitBlago -= profit
	saveMember(m)
	st.TotalApprovalBlago -= approval
	st.TotalProfitBlago -= profit
	return nil
}
