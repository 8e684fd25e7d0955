package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blagodao/chain"
	"blagodao/contract"
	"blagodao/sdk"
)

// bootMaster spins up a chain with just the registry, seeded as given.
func bootMaster(t *testing.T, seed contract.MasterState) (*chain.Chain, sdk.Address) {
	t.Helper()
	c := chain.NewChain()
	c.RegisterCode(codeMaster, contract.HandleMaster)
	c.RegisterCode(codeDao, contract.HandleDao)
	c.RegisterCode(codeSeller, contract.HandleSeller)
	master, err := c.Instantiate(codeMaster, "root")
	require.NoError(t, err)
	c.Fund(owner, sdk.Tokens(1000))
	c.Fund(deployer, sdk.Tokens(1000))
	body := encode(t, &seed)
	deliveries, err := c.SendExternal(owner, master, contract.MasterOpInit, 0, body)
	require.NoError(t, err)
	require.True(t, deliveries[0].OK)
	return c, master
}

func defaultSeed() contract.MasterState {
	return contract.MasterState{
		DaoCodeID:              codeDao,
		SellerCodeID:           codeSeller,
		NextDaoCreationFee:     creationFee,
		NextDaoTransactionFee:  transactionFee,
		CreationFeeDiscount:    creationDiscnt,
		TransactionFeeIncrease: transactionStep,
		MaxDaoTransactionFee:   transactionMax,
		SellerCreationFee:      sellerFee,
	}
}

func TestMasterInitRunsOnce(t *testing.T) {
	c, master := bootMaster(t, defaultSeed())
	deliveries, err := c.SendExternal(owner, master, contract.MasterOpInit, 0, encode(t, &contract.MasterState{
		DaoCodeID: codeDao, SellerCodeID: codeSeller,
	}))
	require.NoError(t, err)
	require.True(t, deliveries[0].Bounced)
	assert.Contains(t, deliveries[0].Err, "already_deployed")
}

func TestMasterRejectsBeforeInit(t *testing.T) {
	c := chain.NewChain()
	c.RegisterCode(codeMaster, contract.HandleMaster)
	master, err := c.Instantiate(codeMaster, "root")
	require.NoError(t, err)
	c.Fund(deployer, sdk.Tokens(100))
	deliveries, err := c.SendExternal(deployer, master, contract.MasterOpDeploy, sdk.Tokens(50), "")
	require.NoError(t, err)
	require.True(t, deliveries[0].Bounced)
	assert.Contains(t, deliveries[0].Err, "not_initialized")
	// the attached value came back
	require.Equal(t, sdk.Tokens(100), c.BalanceOf(deployer))
}

func TestDeployDaoFeeAndSchedule(t *testing.T) {
	f := newFixture(t)

	// the registry kept exactly the creation fee
	require.Equal(t, creationFee, f.chain.BalanceOf(f.master))

	st := f.masterData()
	require.Equal(t, creationFee-creationDiscnt, st.NextDaoCreationFee)
	require.Equal(t, transactionFee+transactionStep, st.NextDaoTransactionFee)

	// one dao per deployer identity, ever
	d := f.sendBounced(deployer, f.master, contract.MasterOpDeploy, creationFee+sdk.Tokens(1), "")
	assert.Contains(t, d.Err, "already_deployed")

	// the next customer pays the stepped fee, short value bounces
	second := sdk.Address("wallet:deployer-2")
	f.chain.Fund(second, sdk.Tokens(100))
	d = f.sendBounced(second, f.master, contract.MasterOpDeploy, st.NextDaoCreationFee-1, "")
	assert.Contains(t, d.Err, "insufficient_fee")

	f.mustSend(second, f.master, contract.MasterOpDeploy, st.NextDaoCreationFee+sdk.Tokens(1), "")
	var dao2 sdk.Address
	require.NoError(t, f.chain.View(f.master, func() error {
		var inner error
		dao2, inner = contract.GetDaoAddressByDeployer(second)
		return inner
	}))
	require.NotEqual(t, f.dao, dao2)
	require.True(t, f.chain.IsContractDeployed(dao2))
}

func TestFeeScheduleFloorsAndCaps(t *testing.T) {
	seed := defaultSeed()
	seed.NextDaoCreationFee = sdk.Tokens(1)
	seed.CreationFeeDiscount = sdk.Tokens(2)
	seed.NextDaoTransactionFee = sdk.Coins(1_500)
	seed.TransactionFeeIncrease = sdk.Coins(1_000)
	seed.MaxDaoTransactionFee = sdk.Coins(2_000)
	c, master := bootMaster(t, seed)

	deliveries, err := c.SendExternal(deployer, master, contract.MasterOpDeploy, sdk.Tokens(1), "")
	require.NoError(t, err)
	for _, d := range deliveries {
		require.False(t, d.Bounced, d.Err)
	}

	var st *contract.MasterState
	require.NoError(t, c.View(master, func() error {
		var inner error
		st, inner = contract.GetMasterData()
		return inner
	}))
	require.Equal(t, sdk.Coins(0), st.NextDaoCreationFee, "creation fee bottoms out at zero")
	require.Equal(t, sdk.Coins(2_000), st.NextDaoTransactionFee, "transaction fee stops at the ceiling")
}

func TestMasterWithdraw(t *testing.T) {
	f := newFixture(t)

	d := f.sendBounced(deployer, f.master, contract.MasterOpWithdrawFunds, 0,
		encode(t, &contract.WithdrawArgs{Amount: sdk.Tokens(1)}))
	assert.Contains(t, d.Err, "not_owner")

	d = f.sendBounced(owner, f.master, contract.MasterOpWithdrawFunds, 0,
		encode(t, &contract.WithdrawArgs{Amount: sdk.Tokens(500)}))
	assert.Contains(t, d.Err, "insufficient_funds")

	before := f.chain.BalanceOf(owner)
	f.mustSend(owner, f.master, contract.MasterOpWithdrawFunds, 0,
		encode(t, &contract.WithdrawArgs{Amount: sdk.Tokens(3)}))
	require.Equal(t, before+sdk.Tokens(3), f.chain.BalanceOf(owner))
	require.Equal(t, creationFee-sdk.Tokens(3), f.chain.BalanceOf(f.master))
}

func TestMasterChangeOwner(t *testing.T) {
	f := newFixture(t)
	successor := sdk.Address("wallet:owner-2")

	f.mustSend(owner, f.master, contract.MasterOpChangeOwner, 0,
		encode(t, &contract.ChangeOwnerArgs{NewOwner: successor}))

	d := f.sendBounced(owner, f.master, contract.MasterOpWithdrawFunds, 0,
		encode(t, &contract.WithdrawArgs{Amount: sdk.Tokens(1)}))
	assert.Contains(t, d.Err, "not_owner")

	before := f.chain.BalanceOf(successor)
	f.mustSend(successor, f.master, contract.MasterOpWithdrawFunds, 0,
		encode(t, &contract.WithdrawArgs{Amount: sdk.Tokens(1)}))
	require.Equal(t, before+sdk.Tokens(1), f.chain.BalanceOf(successor))
}

func TestStartSaleOnlyFromRegisteredDao(t *testing.T) {
	f := newFixture(t)
	d := f.sendBounced(dave, f.master, contract.MasterOpStartBlagoSale, sellerFee,
		encode(t, &contract.StartSaleArgs{Seller: carol, Terms: contract.SaleTerms{Price: sdk.Tokens(1)}}))
	assert.Contains(t, d.Err, "not_a_dao")
}

func TestEscrowsDistinctAcrossRegistries(t *testing.T) {
	f := newFixture(t)
	f.activateFounders()
	first := f.startSale(carol, contract.SaleTerms{ApprovalBlago: 5, ProfitBlago: 5, Price: sdk.Tokens(1)})

	// a second registry on the same chain shares the seller code, so its
	// first sale must not race the first registry for the escrow account
	owner2 := sdk.Address("wallet:owner-2")
	erin := sdk.Address("wallet:erin")
	f.chain.Fund(owner2, sdk.Tokens(100))
	f.chain.Fund(erin, sdk.Tokens(100))

	master2, err := f.chain.Instantiate(codeMaster, "root2")
	require.NoError(t, err)
	f.mustSend(owner2, master2, contract.MasterOpInit, 0, encode(t, &contract.MasterState{
		DaoCodeID:              codeDao,
		SellerCodeID:           codeSeller,
		NextDaoCreationFee:     creationFee,
		NextDaoTransactionFee:  transactionFee,
		CreationFeeDiscount:    creationDiscnt,
		TransactionFeeIncrease: transactionStep,
		MaxDaoTransactionFee:   transactionMax,
		SellerCreationFee:      sellerFee,
	}))
	f.mustSend(erin, master2, contract.MasterOpDeploy, creationFee+sdk.Tokens(20), "")
	var dao2 sdk.Address
	require.NoError(t, f.chain.View(master2, func() error {
		var inner error
		dao2, inner = contract.GetDaoAddressByDeployer(erin)
		return inner
	}))

	// erin holds every seat, so her approval alone carries quorum
	f.mustSend(erin, dao2, contract.DaoOpActivate, 0, encode(t, &contract.ActivateArgs{
		AgreementPercent:     contract.Fraction{Num: 51, Den: 100},
		ProfitReservePercent: contract.Fraction{Num: 10, Den: 100},
		Invitations: []contract.PendingInvitation{
			{Address: erin, ApprovalBlago: 100, ProfitBlago: 100},
		},
	}))
	f.mustSend(erin, dao2, contract.DaoOpAcceptInvitation, 0,
		encode(t, &contract.AcceptInvitationArgs{Passcode: 0}))

	f.mustSend(erin, dao2, contract.DaoOpPropose, transactionFee, encode(t, &contract.ProposeArgs{
		Type:     contract.TxPutUpBlagoForSale,
		Deadline: f.chain.Now() + 3600,
		Info: encode(t, &contract.StartSaleArgs{
			Seller: erin,
			Terms:  contract.SaleTerms{ApprovalBlago: 5, ProfitBlago: 5, Price: sdk.Tokens(1)},
		}),
	}))
	f.mustSend(erin, dao2, contract.DaoOpApprove, sellerFee,
		encode(t, &contract.ApproveArgs{Index: 0}))

	var second sdk.Address
	require.NoError(t, f.chain.View(master2, func() error {
		var inner error
		second, inner = contract.GetSellerAddressByIndex(0)
		return inner
	}))
	require.True(t, f.chain.IsContractDeployed(second))
	require.NotEqual(t, first, second)
}

func TestMasterUnknownOp(t *testing.T) {
	f := newFixture(t)
	d := f.sendBounced(owner, f.master, 77, 0, "")
	assert.Contains(t, d.Err, "unknown_op")
}
