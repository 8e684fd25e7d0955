package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"blagodao/chain"
	"blagodao/contract"
	"blagodao/sdk"
)

const (
	codeMaster = "master-test@1"
	codeDao    = "dao-test@1"
	codeSeller = "seller-test@1"
)

// Genesis fee numbers, in nano units where fractional.
const (
	creationFee     = sdk.Coins(10 * sdk.CoinScale)
	creationDiscnt  = sdk.Coins(10_000) // 0.00001
	transactionFee  = sdk.Coins(1_000)  // 0.000001
	transactionStep = sdk.Coins(1_000)
	transactionMax  = sdk.Coins(1 * sdk.CoinScale)
	sellerFee       = sdk.Coins(1 * sdk.CoinScale)
)

var (
	owner    = sdk.Address("wallet:owner")
	deployer = sdk.Address("wallet:deployer")
	alice    = sdk.Address("wallet:alice")
	bob      = sdk.Address("wallet:bob")
	carol    = sdk.Address("wallet:carol")
	dave     = sdk.Address("wallet:dave")
	shop     = sdk.Address("wallet:shop")
)

type fixture struct {
	t      *testing.T
	chain  *chain.Chain
	master sdk.Address
	dao    sdk.Address
}

type jsonRecord interface {
	MarshalJSON() ([]byte, error)
}

func encode(t *testing.T, v jsonRecord) string {
	t.Helper()
	data, err := v.MarshalJSON()
	require.NoError(t, err)
	return string(data)
}

// newFixture boots a registry and one dao owned by deployer. The dao keeps
// 20 tokens of the deploy value as its starting balance.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := chain.NewChain()
	c.RegisterCode(codeMaster, contract.HandleMaster)
	c.RegisterCode(codeDao, contract.HandleDao)
	c.RegisterCode(codeSeller, contract.HandleSeller)

	master, err := c.Instantiate(codeMaster, "root")
	require.NoError(t, err)

	f := &fixture{t: t, chain: c, master: master}
	for _, w := range []sdk.Address{owner, deployer, alice, bob, carol, dave} {
		c.Fund(w, sdk.Tokens(1000))
	}

	f.mustSend(owner, master, contract.MasterOpInit, 0, encode(t, &contract.MasterState{
		DaoCodeID:              codeDao,
		SellerCodeID:           codeSeller,
		NextDaoCreationFee:     creationFee,
		NextDaoTransactionFee:  transactionFee,
		CreationFeeDiscount:    creationDiscnt,
		TransactionFeeIncrease: transactionStep,
		MaxDaoTransactionFee:   transactionMax,
		SellerCreationFee:      sellerFee,
	}))

	f.mustSend(deployer, master, contract.MasterOpDeploy, creationFee+sdk.Tokens(20), "")
	require.NoError(t, c.View(master, func() error {
		var inner error
		f.dao, inner = contract.GetDaoAddressByDeployer(deployer)
		return inner
	}))
	return f
}

// mustSend submits a message and requires every delivery in the resulting
// cascade to land.
func (f *fixture) mustSend(from, to sdk.Address, op uint32, value sdk.Coins, body string) []chain.Delivery {
	f.t.Helper()
	deliveries, err := f.chain.SendExternal(from, to, op, value, body)
	require.NoError(f.t, err)
	for _, d := range deliveries {
		require.False(f.t, d.Bounced, "message op %d from %s to %s bounced: %s", d.Msg.Op, d.Msg.From, d.Msg.To, d.Err)
	}
	return deliveries
}

// sendBounced submits a message and requires the submitted message itself to
// bounce, returning the delivery so callers can assert on the symbol.
func (f *fixture) sendBounced(from, to sdk.Address, op uint32, value sdk.Coins, body string) chain.Delivery {
	f.t.Helper()
	deliveries, err := f.chain.SendExternal(from, to, op, value, body)
	require.NoError(f.t, err)
	require.NotEmpty(f.t, deliveries)
	require.True(f.t, deliveries[0].Bounced, "expected a bounce, got ok")
	return deliveries[0]
}

// activateFounders activates the dao with the canonical three-seat batch:
// alice 28/37, bob 35/28, carol 37/35, totals 100/100 once everyone joined.
func (f *fixture) activateFounders() {
	f.t.Helper()
	f.mustSend(deployer, f.dao, contract.DaoOpActivate, 0, encode(f.t, &contract.ActivateArgs{
		AgreementPercent:     contract.Fraction{Num: 51, Den: 100},
		ProfitReservePercent: contract.Fraction{Num: 10, Den: 100},
		ProfitableAddresses:  []sdk.Address{shop},
		Invitations: []contract.PendingInvitation{
			{Address: alice, ApprovalBlago: 28, ProfitBlago: 37},
			{Address: bob, ApprovalBlago: 35, ProfitBlago: 28},
			{Address: carol, ApprovalBlago: 37, ProfitBlago: 35},
		},
	}))
	f.accept(alice, 0)
	f.accept(bob, 1)
	f.accept(carol, 2)
}

func (f *fixture) accept(addr sdk.Address, passcode uint32) {
	f.t.Helper()
	f.mustSend(addr, f.dao, contract.DaoOpAcceptInvitation, 0,
		encode(f.t, &contract.AcceptInvitationArgs{Passcode: passcode}))
}

func (f *fixture) daoData() *contract.DaoData {
	f.t.Helper()
	var data *contract.DaoData
	require.NoError(f.t, f.chain.View(f.dao, func() error {
		var inner error
		data, inner = contract.GetDaoData()
		return inner
	}))
	return data
}

func (f *fixture) member(addr sdk.Address) *contract.Member {
	f.t.Helper()
	var m *contract.Member
	require.NoError(f.t, f.chain.View(f.dao, func() error {
		var inner error
		m, inner = contract.GetMember(addr)
		return inner
	}))
	return m
}

func (f *fixture) pendingTx(index uint32) (*contract.PendingTransaction, error) {
	f.t.Helper()
	var tx *contract.PendingTransaction
	err := f.chain.View(f.dao, func() error {
		var inner error
		tx, inner = contract.GetPendingTransaction(index)
		return inner
	})
	return tx, err
}

func (f *fixture) masterData() *contract.MasterState {
	f.t.Helper()
	var st *contract.MasterState
	require.NoError(f.t, f.chain.View(f.master, func() error {
		var inner error
		st, inner = contract.GetMasterData()
		return inner
	}))
	return st
}

// propose submits a pending transaction with the standard fee attached and
// returns its index.
func (f *fixture) propose(from sdk.Address, typ contract.TransactionType, info jsonRecord) uint32 {
	f.t.Helper()
	index := f.daoData().State.NextTransaction
	f.mustSend(from, f.dao, contract.DaoOpPropose, transactionFee, encode(f.t, &contract.ProposeArgs{
		Type:     typ,
		Deadline: f.chain.Now() + 3600,
		Info:     encode(f.t, info),
	}))
	return index
}

func (f *fixture) approve(from sdk.Address, index uint32, value sdk.Coins) []chain.Delivery {
	f.t.Helper()
	return f.mustSend(from, f.dao, contract.DaoOpApprove, value,
		encode(f.t, &contract.ApproveArgs{Index: index}))
}
