package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blagodao/contract"
	"blagodao/sdk"
)

func TestDistributeAndCollect(t *testing.T) {
	f := newFixture(t)
	f.activateFounders()
	f.mustSend(owner, f.dao, contract.DaoOpTopUpBalance, sdk.Tokens(200), "")

	index := f.propose(alice, contract.TxDistribute, &contract.DistributeInfo{Amount: sdk.Tokens(100)})

	aliceBefore := f.chain.BalanceOf(alice)
	bobBefore := f.chain.BalanceOf(bob)
	carolBefore := f.chain.BalanceOf(carol)
	masterBefore := f.chain.BalanceOf(f.master)

	f.approve(bob, index, 0)
	deliveries := f.approve(carol, index, 0)

	// 10% reserve held back, 90 tokens split by profit weight 37/28/35
	require.Equal(t, aliceBefore+sdk.Coins(33_300_000_000), f.chain.BalanceOf(alice))
	require.Equal(t, bobBefore+sdk.Coins(25_200_000_000), f.chain.BalanceOf(bob))
	require.Equal(t, carolBefore+sdk.Coins(31_500_000_000), f.chain.BalanceOf(carol))

	// the captured proposal fee travels to the registry as acknowledgment
	var acked bool
	for _, d := range deliveries {
		if d.Is(f.dao, f.master, contract.MasterOpFeeAck) {
			acked = true
			require.Equal(t, transactionFee, d.Msg.Value)
		}
	}
	require.True(t, acked)
	require.Equal(t, masterBefore+transactionFee, f.chain.BalanceOf(f.master))

	st := f.daoData().State
	require.Equal(t, sdk.Tokens(10), st.ProfitReserved)
	require.Equal(t, sdk.Tokens(10), st.RoundReserve)
	require.Equal(t, uint32(1), st.DistributionRound)

	// reserve claims, once per member per round
	aliceBefore = f.chain.BalanceOf(alice)
	f.mustSend(alice, f.dao, contract.DaoOpCollectProfit, 0, "")
	require.Equal(t, aliceBefore+sdk.Coins(3_700_000_000), f.chain.BalanceOf(alice))

	d := f.sendBounced(alice, f.dao, contract.DaoOpCollectProfit, 0, "")
	assert.Contains(t, d.Err, "nothing_to_collect")

	f.mustSend(bob, f.dao, contract.DaoOpCollectProfit, 0, "")
	f.mustSend(carol, f.dao, contract.DaoOpCollectProfit, 0, "")
	require.Equal(t, sdk.Coins(0), f.daoData().State.ProfitReserved)
}

func TestCollectProfitBeforeAnyRound(t *testing.T) {
	f := newFixture(t)
	f.activateFounders()

	d := f.sendBounced(alice, f.dao, contract.DaoOpCollectProfit, 0, "")
	assert.Contains(t, d.Err, "nothing_to_collect")

	d = f.sendBounced(dave, f.dao, contract.DaoOpCollectProfit, 0, "")
	assert.Contains(t, d.Err, "not_a_member")
}

func TestSecondRoundReopensCollection(t *testing.T) {
	f := newFixture(t)
	f.activateFounders()
	f.mustSend(owner, f.dao, contract.DaoOpTopUpBalance, sdk.Tokens(500), "")

	distribute := func() {
		index := f.propose(alice, contract.TxDistribute, &contract.DistributeInfo{Amount: sdk.Tokens(100)})
		f.approve(bob, index, 0)
		f.approve(carol, index, 0)
	}
	distribute()
	f.mustSend(alice, f.dao, contract.DaoOpCollectProfit, 0, "")

	distribute()
	st := f.daoData().State
	require.Equal(t, uint32(2), st.DistributionRound)
	// alice claimed 3.7 of round one, the new pool is 6.3 + 10
	require.Equal(t, sdk.Coins(16_300_000_000), st.RoundReserve)

	f.mustSend(alice, f.dao, contract.DaoOpCollectProfit, 0, "")
	require.Equal(t, uint32(2), f.member(alice).CollectedRound)
}

func TestDistributeWithoutFundsStaysPending(t *testing.T) {
	f := newFixture(t)
	f.activateFounders()

	// dao holds only its deploy gas, nowhere near 100 tokens
	index := f.propose(alice, contract.TxDistribute, &contract.DistributeInfo{Amount: sdk.Tokens(100)})
	f.approve(bob, index, 0)

	d := f.sendBounced(carol, f.dao, contract.DaoOpApprove, 0,
		encode(t, &contract.ApproveArgs{Index: index}))
	assert.Contains(t, d.Err, "insufficient_funds")

	// the failed settlement rolled carol's approval back with it
	tx, err := f.pendingTx(index)
	require.NoError(t, err)
	require.Equal(t, contract.Blago(35), tx.Received)
	require.NotContains(t, tx.Approvals, carol)

	// the same approval succeeds once the balance is there
	f.mustSend(owner, f.dao, contract.DaoOpTopUpBalance, sdk.Tokens(200), "")
	f.approve(carol, index, 0)
	_, err = f.pendingTx(index)
	require.Error(t, err)
	require.Equal(t, uint32(1), f.daoData().State.DistributionRound)
}
