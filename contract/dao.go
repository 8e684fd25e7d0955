package contract

import (
	"fmt"

	"blagodao/sdk"
)

// HandleDao is the entrypoint of the Dao contract. One inbound message per
// call; any returned error makes the host discard every write and bounce the
// attached value to the sender.
func HandleDao(msg *sdk.Message) error {
	env := sdk.GetEnv()
	switch msg.Op {
	case DaoOpProcessDeploy:
		return daoProcessDeploy(&env, msg)
	case DaoOpTopUpBalance:
		return daoTopUp(&env)
	case DaoOpMasterLog:
		return daoMasterLog(&env, msg)
	case DaoOpCollectFunds:
		return daoCollectFunds(&env)
	case DaoOpActivate:
		return daoActivate(&env, msg)
	case DaoOpAcceptInvitation:
		return daoAcceptInvitation(&env, msg)
	case DaoOpPropose:
		return daoPropose(&env, msg)
	case DaoOpApprove:
		return daoApprove(&env, msg)
	case DaoOpRevokeApproval:
		return daoRevokeApproval(&env, msg)
	case DaoOpChangeMyAddress:
		return daoChangeMyAddress(&env, msg)
	case DaoOpQuit:
		return daoQuit(&env)
	case DaoOpCollectProfit:
		return daoCollectProfit(&env)
	case DaoOpTransferBoughtBlago:
		return daoTransferBoughtBlago(&env, msg)
	default:
		return ErrUnknownOp
	}
}

// requireActiveDao loads state and enforces the activation gate most
// operations sit behind.
func requireActiveDao() (*DaoState, error) {
	st, ok := loadDaoState()
	if !ok {
		return nil, ErrNotInitialized
	}
	if !st.Active {
		return nil, ErrNotActive
	}
	return st, nil
}

func requireMember(addr sdk.Address) (*Member, error) {
	m, ok := loadMember(addr)
	if !ok {
		return nil, ErrNotAMember
	}
	return m, nil
}

// daoProcessDeploy handles the init message the registry sends right after
// instantiation. It may run exactly once.
func daoProcessDeploy(env *sdk.Env, msg *sdk.Message) error {
	if _, ok := loadDaoState(); ok {
		return ErrAlreadyDeployed
	}
	if !env.Sender.IsContract() {
		return ErrNotMaster
	}
	args := DeployDaoArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	if !args.Deployer.IsValid() {
		return ErrBadPayload
	}
	st := &DaoState{
		Root:           env.Sender,
		Deployer:       args.Deployer,
		TransactionFee: args.TransactionFee,
	}
	saveDaoState(st)
	emitDaoDeployed(env.ContractID, args.Deployer)
	return nil
}

// daoTopUp accepts value from anyone; the credit happens on commit, so all
// that is left is the trace line. Allowed before activation, a fresh dao
// needs gas for its own notifications.
func daoTopUp(env *sdk.Env) error {
	if _, ok := loadDaoState(); !ok {
		return ErrNotInitialized
	}
	sdk.Log(fmt.Sprintf("tu|by:%s|am:%s", env.Sender, env.Value))
	return nil
}

func daoMasterLog(env *sdk.Env, msg *sdk.Message) error {
	st, ok := loadDaoState()
	if !ok {
		return ErrNotInitialized
	}
	if env.Sender != st.Root {
		return ErrNotMaster
	}
	sdk.Log(fmt.Sprintf("ml|am:%s|body:%s", env.Value, msg.Body))
	return nil
}

// daoCollectFunds receives a sweep answer from a profitable address. The
// value lands on commit, we only leave the audit line.
func daoCollectFunds(env *sdk.Env) error {
	if _, err := requireActiveDao(); err != nil {
		return err
	}
	sdk.Log(fmt.Sprintf("cf|from:%s|am:%s", env.Sender, env.Value))
	return nil
}

// daoActivate flips the dao from setup to active: fractions locked in,
// profitable addresses registered and the first invitation batch sent out.
func daoActivate(env *sdk.Env, msg *sdk.Message) error {
	st, ok := loadDaoState()
	if !ok {
		return ErrNotInitialized
	}
	if st.Active {
		return ErrAlreadyActive
	}
	if env.Sender != st.Deployer {
		return ErrNotDeployer
	}
	args := ActivateArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	if !args.AgreementPercent.valid() || !args.ProfitReservePercent.valid() {
		return ErrBadFraction
	}
	st.AgreementPercent = args.AgreementPercent
	st.ProfitReservePercent = args.ProfitReservePercent
	for i, addr := range args.ProfitableAddresses {
		if !addr.IsValid() {
			return ErrBadPayload
		}
		saveProfitable(uint32(i), addr)
	}
	st.ProfitableCount = uint32(len(args.ProfitableAddresses))
	for i := range args.Invitations {
		inv := args.Invitations[i]
		if err := addInvitation(st, &inv); err != nil {
			return err
		}
	}
	st.Active = true
	saveDaoState(st)
	emitActivated(len(args.Invitations), st.TotalApprovalBlago, st.TotalProfitBlago)
	return nil
}

// addInvitation parks the weights under a fresh passcode and notifies the
// candidate. Shared by activation, invite settlements and share transfers.
func addInvitation(st *DaoState, inv *PendingInvitation) error {
	if !inv.Address.IsValid() {
		return ErrBadPayload
	}
	if inv.ApprovalBlago == 0 && inv.ProfitBlago == 0 {
		return ErrZeroWeight
	}
	if _, exists := loadMember(inv.Address); exists {
		return ErrIdentityTaken
	}
	passcode := st.NextPasscode
	st.NextPasscode++
	saveInvitation(passcode, inv)
	sdk.SendMessage(sdk.OutboundMessage{
		To: inv.Address,
		Op: DaoOpInviteNotice,
		Body: encodeRecord(InviteNoticeArgs{
			Passcode:      passcode,
			ApprovalBlago: inv.ApprovalBlago,
			ProfitBlago:   inv.ProfitBlago,
		}),
	})
	emitInvited(inv.Address, inv.ApprovalBlago, inv.ProfitBlago)
	return nil
}

// daoAcceptInvitation lets a candidate claim their seat. The passcode alone
// is not enough, the calling identity has to match the stored candidate.
func daoAcceptInvitation(env *sdk.Env, msg *sdk.Message) error {
	st, err := requireActiveDao()
	if err != nil {
		return err
	}
	args := AcceptInvitationArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	inv, ok := loadInvitation(args.Passcode)
	if !ok {
		return ErrInvitationNotFound
	}
	if env.Sender != inv.Address {
		return ErrWrongIdentity
	}
	if _, exists := loadMember(env.Sender); exists {
		return ErrIdentityTaken
	}
	m := &Member{
		Address:       env.Sender,
		ApprovalBlago: inv.ApprovalBlago,
		ProfitBlago:   inv.ProfitBlago,
		JoinedAt:      env.Timestamp,
	}
	saveMember(m)
	deleteInvitation(args.Passcode)
	st.Members = append(st.Members, env.Sender)
	st.TotalApprovalBlago += inv.ApprovalBlago
	st.TotalProfitBlago += inv.ProfitBlago
	saveDaoState(st)
	emitJoined(env.Sender)
	return nil
}

// daoPropose parks a new pending transaction. The info payload is decoded
// here already so malformed settlements never collect approvals.
func daoPropose(env *sdk.Env, msg *sdk.Message) error {
	st, err := requireActiveDao()
	if err != nil {
		return err
	}
	if _, err := requireMember(env.Sender); err != nil {
		return err
	}
	args := ProposeArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	if !args.Type.isKnown() {
		return rejectf("bad_payload", "unknown transaction type %d", args.Type)
	}
	if args.Deadline <= env.Timestamp {
		return ErrExpired
	}
	if env.Value < st.TransactionFee {
		return ErrInsufficientFee
	}
	if err := validateTxInfo(st, env.Sender, args.Type, args.Info); err != nil {
		return err
	}
	index := st.NextTransaction
	st.NextTransaction++
	savePendingTx(index, &PendingTransaction{
		Type:     args.Type,
		Deadline: args.Deadline,
		Info:     args.Info,
	})
	saveDaoState(st)
	emitProposed(index, args.Type, env.Sender)
	return nil
}

// daoApprove adds the caller's approval weight and settles the transaction
// the moment quorum is reached. Approving past the deadline is rejected and
// the record stays put; cleanup goes through the purge transaction kind.
func daoApprove(env *sdk.Env, msg *sdk.Message) error {
	st, err := requireActiveDao()
	if err != nil {
		return err
	}
	m, err := requireMember(env.Sender)
	if err != nil {
		return err
	}
	args := ApproveArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	tx, ok := loadPendingTx(args.Index)
	if !ok {
		return ErrTransactionNotFound
	}
	if env.Timestamp > tx.Deadline {
		return ErrExpired
	}
	if m.hasApproved(args.Index) || tx.approvedBy(env.Sender) {
		return ErrAlreadyApproved
	}
	tx.Approvals = append(tx.Approvals, env.Sender)
	tx.Weights = append(tx.Weights, m.ApprovalBlago)
	tx.Received += m.ApprovalBlago
	m.Approved = append(m.Approved, args.Index)
	saveMember(m)
	emitApproved(args.Index, env.Sender, m.ApprovalBlago, tx.Received)

	if st.AgreementPercent.reached(tx.Received, st.TotalApprovalBlago) {
		if err := settleTransaction(st, env, args.Index, tx); err != nil {
			return err
		}
		deletePendingTx(args.Index)
		emitSettled(args.Index, tx.Type)
	} else {
		savePendingTx(args.Index, tx)
	}
	saveDaoState(st)
	return nil
}

// daoRevokeApproval pulls the caller's weight back before settlement.
func daoRevokeApproval(env *sdk.Env, msg *sdk.Message) error {
	if _, err := requireActiveDao(); err != nil {
		return err
	}
	m, err := requireMember(env.Sender)
	if err != nil {
		return err
	}
	args := ApproveArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	tx, ok := loadPendingTx(args.Index)
	if !ok {
		return ErrTransactionNotFound
	}
	if !tx.approvedBy(env.Sender) {
		return rejectf("not_approved", "identity %s has not approved transaction %d", env.Sender, args.Index)
	}
	// return the weight that was counted at approval time, not the member's
	// current weight, which a transfer or sale may have changed since
	weight := tx.dropApproval(env.Sender)
	if tx.Received >= weight {
		tx.Received -= weight
	} else {
		tx.Received = 0
	}
	m.dropApproved(args.Index)
	savePendingTx(args.Index, tx)
	saveMember(m)
	emitRevoked(args.Index, env.Sender)
	return nil
}

// daoChangeMyAddress rekeys a member to a new identity, history included.
// Approval references in still-pending transactions are rewritten so the
// member cannot approve the same transaction twice under the new name.
func daoChangeMyAddress(env *sdk.Env, msg *sdk.Message) error {
	st, err := requireActiveDao()
	if err != nil {
		return err
	}
	m, err := requireMember(env.Sender)
	if err != nil {
		return err
	}
	args := ChangeAddressArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	if !args.NewAddress.IsValid() {
		return ErrBadPayload
	}
	if _, taken := loadMember(args.NewAddress); taken {
		return ErrIdentityTaken
	}
	deleteMember(env.Sender)
	old := m.Address
	m.Address = args.NewAddress
	saveMember(m)
	if i := st.memberIndex(old); i >= 0 {
		st.Members[i] = args.NewAddress
	}
	for _, idx := range m.Approved {
		tx, ok := loadPendingTx(idx)
		if !ok {
			continue
		}
		for j, a := range tx.Approvals {
			if a == old {
				tx.Approvals[j] = args.NewAddress
			}
		}
		savePendingTx(idx, tx)
	}
	saveDaoState(st)
	emitAddressChanged(old, args.NewAddress)
	return nil
}

// daoQuit removes the caller and their weight from the totals. Approvals the
// member already cast on still-pending transactions stay counted.
func daoQuit(env *sdk.Env) error {
	st, err := requireActiveDao()
	if err != nil {
		return err
	}
	m, err := requireMember(env.Sender)
	if err != nil {
		return err
	}
	st.TotalApprovalBlago -= m.ApprovalBlago
	st.TotalProfitBlago -= m.ProfitBlago
	if i := st.memberIndex(env.Sender); i >= 0 {
		st.Members = append(st.Members[:i], st.Members[i+1:]...)
	}
	deleteMember(env.Sender)
	saveDaoState(st)
	emitQuit(env.Sender)
	return nil
}

// daoCollectProfit pays the caller their share of the reserve pool, once per
// distribution round. Shares are computed against the pool size frozen at
// distribution time so claim order does not matter.
func daoCollectProfit(env *sdk.Env) error {
	st, err := requireActiveDao()
	if err != nil {
		return err
	}
	m, err := requireMember(env.Sender)
	if err != nil {
		return err
	}
	if st.DistributionRound == 0 || m.CollectedRound >= st.DistributionRound {
		return ErrNothingToCollect
	}
	if st.TotalProfitBlago == 0 {
		return ErrNothingToCollect
	}
	share := sdk.Coins(uint64(st.RoundReserve) * uint64(m.ProfitBlago) / uint64(st.TotalProfitBlago))
	if share > st.ProfitReserved {
		share = st.ProfitReserved
	}
	if share == 0 {
		return ErrNothingToCollect
	}
	st.ProfitReserved -= share
	m.CollectedRound = st.DistributionRound
	saveMember(m)
	saveDaoState(st)
	sdk.SendMessage(sdk.OutboundMessage{To: env.Sender, Value: share})
	emitProfitCollected(env.Sender, share, st.DistributionRound)
	return nil
}

// daoTransferBoughtBlago lands purchased weights from an escrow: the
// reservation token is the proof, consumed exactly once.
func daoTransferBoughtBlago(env *sdk.Env, msg *sdk.Message) error {
	st, err := requireActiveDao()
	if err != nil {
		return err
	}
	if !env.Sender.IsContract() {
		return ErrWrongIdentity
	}
	args := TransferBoughtArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	res, ok := loadReservation(args.Reservation)
	if !ok {
		return ErrReservationNotFound
	}
	if res.ApprovalBlago != args.ApprovalBlago || res.ProfitBlago != args.ProfitBlago {
		return rejectf("reservation_mismatch", "escrow reported %d/%d, reserved %d/%d",
			args.ApprovalBlago, args.ProfitBlago, res.ApprovalBlago, res.ProfitBlago)
	}
	deleteReservation(args.Reservation)
	if err := creditWeights(st, args.Buyer, res.ApprovalBlago, res.ProfitBlago); err != nil {
		return err
	}
	saveDaoState(st)
	emitSaleSettled(args.Buyer, res.ApprovalBlago, res.ProfitBlago)
	return nil
}

// creditWeights lands weights on an existing member, or parks them in an
// invitation when the recipient is not a member yet. Totals only grow when a
// member actually holds the weights.
func creditWeights(st *DaoState, to sdk.Address, approval Blago, profit Blago) error {
	if m, ok := loadMember(to); ok {
		m.ApprovalBlago += approval
		m.ProfitBlago += profit
		saveMember(m)
		st.TotalApprovalBlago += approval
		st.TotalProfitBlago += profit
		return nil
	}
	return addInvitation(st, &PendingInvitation{
		Address:       to,
		ApprovalBlago: approval,
		ProfitBlago:   profit,
	})
}
