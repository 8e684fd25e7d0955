package contract

import (
	"fmt"

	"blagodao/sdk"
)

// HandleMaster is the entrypoint of the DaoMaster registry.
func HandleMaster(msg *sdk.Message) error {
	env := sdk.GetEnv()
	switch msg.Op {
	case MasterOpInit:
		return masterInit(&env, msg)
	case MasterOpDeploy:
		return masterDeployDao(&env)
	case MasterOpWithdrawFunds:
		return masterWithdraw(&env, msg)
	case MasterOpChangeOwner:
		return masterChangeOwner(&env, msg)
	case MasterOpFeeAck:
		return masterFeeAck(&env)
	case MasterOpStartBlagoSale:
		return masterStartSale(&env, msg)
	default:
		return ErrUnknownOp
	}
}

func requireMasterState() (*MasterState, error) {
	st, ok := loadMasterState()
	if !ok {
		return nil, ErrNotInitialized
	}
	return st, nil
}

// masterInit seeds the registry configuration. Runs once, the sender
// becomes the owner.
func masterInit(env *sdk.Env, msg *sdk.Message) error {
	if _, ok := loadMasterState(); ok {
		return ErrAlreadyDeployed
	}
	st := &MasterState{}
	if err := decodeRecord(msg.Body, st); err != nil {
		return err
	}
	if st.DaoCodeID == "" || st.SellerCodeID == "" {
		return ErrBadPayload
	}
	st.Owner = env.Sender
	st.NextSaleIndex = 0
	saveMasterState(st)
	sdk.Log(fmt.Sprintf("mi|by:%s|fee:%s", env.Sender, st.NextDaoCreationFee))
	return nil
}

// masterDeployDao instantiates a Dao for the sender. One dao per deployer
// identity, ever; the fee schedule then steps for the next customer.
func masterDeployDao(env *sdk.Env) error {
	st, err := requireMasterState()
	if err != nil {
		return err
	}
	if env.Value < st.NextDaoCreationFee {
		return ErrInsufficientFee
	}
	if _, exists := loadDaoByDeployer(env.Sender); exists {
		return ErrAlreadyDeployed
	}
	dao, err := sdk.DeployContract(st.DaoCodeID, env.Sender.String())
	if err != nil {
		return rejectf("deploy_failed", "dao instantiation: %v", err)
	}
	saveDaoByDeployer(env.Sender, dao)
	markKnownDao(dao)
	// everything above the fee travels on as the dao's starting balance
	sdk.SendMessage(sdk.OutboundMessage{
		To:    dao,
		Op:    DaoOpProcessDeploy,
		Value: env.Value - st.NextDaoCreationFee,
		Body: encodeRecord(DeployDaoArgs{
			Deployer:       env.Sender,
			TransactionFee: st.NextDaoTransactionFee,
		}),
	})
	stepFeeSchedule(st)
	saveMasterState(st)
	emitMasterDeployedDao(dao, env.Sender, st.NextDaoCreationFee)
	return nil
}

// stepFeeSchedule moves the fees after each creation: the creation fee
// walks down to zero, the per-dao transaction fee walks up to its ceiling.
func stepFeeSchedule(st *MasterState) {
	st.NextDaoCreationFee -= st.CreationFeeDiscount
	if st.NextDaoCreationFee < 0 {
		st.NextDaoCreationFee = 0
	}
	st.NextDaoTransactionFee += st.TransactionFeeIncrease
	if st.NextDaoTransactionFee > st.MaxDaoTransactionFee {
		st.NextDaoTransactionFee = st.MaxDaoTransactionFee
	}
}

func masterWithdraw(env *sdk.Env, msg *sdk.Message) error {
	st, err := requireMasterState()
	if err != nil {
		return err
	}
	if env.Sender != st.Owner {
		return ErrNotOwner
	}
	args := WithdrawArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	if args.Amount <= 0 || sdk.GetBalance() < args.Amount {
		return ErrInsufficientFunds
	}
	sdk.SendMessage(sdk.OutboundMessage{To: st.Owner, Value: args.Amount})
	sdk.Log(fmt.Sprintf("mw|am:%s", args.Amount))
	return nil
}

func masterChangeOwner(env *sdk.Env, msg *sdk.Message) error {
	st, err := requireMasterState()
	if err != nil {
		return err
	}
	if env.Sender != st.Owner {
		return ErrNotOwner
	}
	args := ChangeOwnerArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	if !args.NewOwner.IsValid() {
		return ErrBadPayload
	}
	old := st.Owner
	st.Owner = args.NewOwner
	saveMasterState(st)
	sdk.Log(fmt.Sprintf("mo|old:%s|new:%s", old, args.NewOwner))
	return nil
}

// masterFeeAck receives the per-settlement fee a dao forwards. The value
// lands on commit, only the trace line is left here.
func masterFeeAck(env *sdk.Env) error {
	if _, err := requireMasterState(); err != nil {
		return err
	}
	sdk.Log(fmt.Sprintf("fa|from:%s|am:%s", env.Sender, env.Value))
	return nil
}

// masterStartSale instantiates a single-use escrow for a share sale. Only
// daos this registry deployed may ask, and the escrow creation fee has to
// ride on the message.
func masterStartSale(env *sdk.Env, msg *sdk.Message) error {
	st, err := requireMasterState()
	if err != nil {
		return err
	}
	if !isKnownDao(env.Sender) {
		return rejectf("not_a_dao", "sale requests must come from a registered dao, got %s", env.Sender)
	}
	if env.Value < st.SellerCreationFee {
		return ErrInsufficientFee
	}
	args := StartSaleArgs{}
	if err := decodeRecord(msg.Body, &args); err != nil {
		return err
	}
	index := st.NextSaleIndex
	st.NextSaleIndex++
	// scope the salt by this registry's own address so two registries
	// sharing a seller code never race for the same escrow account
	seller, err := sdk.DeployContract(st.SellerCodeID, fmt.Sprintf("%s:sale-%d", env.ContractID, index))
	if err != nil {
		return rejectf("deploy_failed", "escrow instantiation: %v", err)
	}
	saveSellerByIndex(index, seller)
	sdk.SendMessage(sdk.OutboundMessage{
		To:    seller,
		Op:    SellerOpInit,
		Value: env.Value - st.SellerCreationFee,
		Body: encodeRecord(SellerState{
			Dao:           env.Sender,
			Seller:        args.Seller,
			Buyer:         args.Terms.Buyer,
			Price:         args.Terms.Price,
			ApprovalBlago: args.Terms.ApprovalBlago,
			ProfitBlago:   args.Terms.ProfitBlago,
			Reservation:   args.Terms.Reservation,
		}),
	})
	saveMasterState(st)
	emitMasterSellerDeployed(seller, index, env.Sender)
	return nil
}
