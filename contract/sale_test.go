package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blagodao/contract"
	"blagodao/sdk"
)

// sellerAddress resolves the escrow the registry deployed at sale index.
func (f *fixture) sellerAddress(index uint32) sdk.Address {
	f.t.Helper()
	var seller sdk.Address
	require.NoError(f.t, f.chain.View(f.master, func() error {
		var inner error
		seller, inner = contract.GetSellerAddressByIndex(index)
		return inner
	}))
	return seller
}

func (f *fixture) sellerData(seller sdk.Address) *contract.SellerState {
	f.t.Helper()
	var st *contract.SellerState
	require.NoError(f.t, f.chain.View(seller, func() error {
		var inner error
		st, inner = contract.GetSellerData()
		return inner
	}))
	return st
}

// startSale drives a blago sale proposal through quorum. The final approval
// carries the escrow creation fee the registry charges.
func (f *fixture) startSale(seller sdk.Address, terms contract.SaleTerms) sdk.Address {
	f.t.Helper()
	saleIndex := f.masterData().NextSaleIndex
	index := f.propose(seller, contract.TxPutUpBlagoForSale, &contract.StartSaleArgs{
		Seller: seller,
		Terms:  terms,
	})
	f.approve(carol, index, 0)
	f.approve(bob, index, sellerFee)
	return f.sellerAddress(saleIndex)
}

func TestShareSaleRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.activateFounders()

	escrow := f.startSale(carol, contract.SaleTerms{
		Buyer:         dave,
		Price:         sdk.Tokens(3),
		ApprovalBlago: 10,
		ProfitBlago:   5,
	})

	// seller's weights are reserved the moment the sale settles
	m := f.member(carol)
	require.Equal(t, contract.Blago(27), m.ApprovalBlago)
	require.Equal(t, contract.Blago(30), m.ProfitBlago)
	data := f.daoData()
	require.Equal(t, contract.Blago(90), data.State.TotalApprovalBlago)
	require.Equal(t, contract.Blago(95), data.State.TotalProfitBlago)

	st := f.sellerData(escrow)
	require.Equal(t, f.dao, st.Dao)
	require.Equal(t, carol, st.Seller)
	require.Equal(t, dave, st.Buyer)
	require.False(t, st.Settled)

	// not the listed buyer
	d := f.sendBounced(alice, escrow, contract.SellerOpBuy, sdk.Tokens(3), "")
	assert.Contains(t, d.Err, "wrong_identity")

	// underpayment
	d = f.sendBounced(dave, escrow, contract.SellerOpBuy, sdk.Tokens(2), "")
	assert.Contains(t, d.Err, "insufficient_payment")

	carolBefore := f.chain.BalanceOf(carol)
	daveBefore := f.chain.BalanceOf(dave)

	// overpayment is refunded, the price goes to the seller
	f.mustSend(dave, escrow, contract.SellerOpBuy, sdk.Tokens(3)+sdk.Coins(500_000_000), "")
	require.Equal(t, carolBefore+sdk.Tokens(3), f.chain.BalanceOf(carol))
	require.Equal(t, daveBefore-sdk.Tokens(3), f.chain.BalanceOf(dave))
	require.True(t, f.sellerData(escrow).Settled)

	// the purchase report landed the weights as an invitation for dave
	data = f.daoData()
	f.accept(dave, data.State.NextPasscode-1)
	data = f.daoData()
	require.Equal(t, contract.Blago(100), data.State.TotalApprovalBlago)
	require.Equal(t, contract.Blago(100), data.State.TotalProfitBlago)
	m = f.member(dave)
	require.Equal(t, contract.Blago(10), m.ApprovalBlago)
	require.Equal(t, contract.Blago(5), m.ProfitBlago)

	// single use
	d = f.sendBounced(dave, escrow, contract.SellerOpBuy, sdk.Tokens(3), "")
	assert.Contains(t, d.Err, "already_settled")
}

func TestShareSaleToMemberCreditsDirectly(t *testing.T) {
	f := newFixture(t)
	f.activateFounders()

	escrow := f.startSale(carol, contract.SaleTerms{
		Price:         sdk.Tokens(1),
		ApprovalBlago: 4,
		ProfitBlago:   4,
	})

	// open sale, any payer wins; a member buyer is credited in place
	f.mustSend(alice, escrow, contract.SellerOpBuy, sdk.Tokens(1), "")
	m := f.member(alice)
	require.Equal(t, contract.Blago(32), m.ApprovalBlago)
	require.Equal(t, contract.Blago(41), m.ProfitBlago)
	data := f.daoData()
	require.Equal(t, contract.Blago(100), data.State.TotalApprovalBlago)
	require.Equal(t, contract.Blago(100), data.State.TotalProfitBlago)
}

func TestSaleProposalGates(t *testing.T) {
	f := newFixture(t)
	f.activateFounders()

	// only the owner of the weights may list them
	d := f.sendBounced(alice, f.dao, contract.DaoOpPropose, transactionFee, encode(t, &contract.ProposeArgs{
		Type:     contract.TxPutUpBlagoForSale,
		Deadline: f.chain.Now() + 3600,
		Info: encode(t, &contract.StartSaleArgs{
			Seller: carol,
			Terms:  contract.SaleTerms{Price: sdk.Tokens(1), ApprovalBlago: 1},
		}),
	}))
	assert.Contains(t, d.Err, "wrong_identity")

	d = f.sendBounced(carol, f.dao, contract.DaoOpPropose, transactionFee, encode(t, &contract.ProposeArgs{
		Type:     contract.TxPutUpBlagoForSale,
		Deadline: f.chain.Now() + 3600,
		Info: encode(t, &contract.StartSaleArgs{
			Seller: carol,
			Terms:  contract.SaleTerms{Price: 0, ApprovalBlago: 1},
		}),
	}))
	assert.Contains(t, d.Err, "bad_payload")
}

func TestSaleOfMoreBlagoThanHeldStaysPending(t *testing.T) {
	f := newFixture(t)
	f.activateFounders()

	index := f.propose(carol, contract.TxPutUpBlagoForSale, &contract.StartSaleArgs{
		Seller: carol,
		Terms:  contract.SaleTerms{Price: sdk.Tokens(1), ApprovalBlago: 50, ProfitBlago: 0},
	})
	f.approve(carol, index, 0)
	d := f.sendBounced(bob, f.dao, contract.DaoOpApprove, sellerFee,
		encode(t, &contract.ApproveArgs{Index: index}))
	assert.Contains(t, d.Err, "insufficient_blago")

	tx, err := f.pendingTx(index)
	require.NoError(t, err)
	require.Equal(t, contract.Blago(37), tx.Received)
}

func TestBoughtBlagoReportNeedsValidReservation(t *testing.T) {
	f := newFixture(t)
	f.activateFounders()

	// reports must come from deployed code, wallets cannot fake a purchase
	d := f.sendBounced(dave, f.dao, contract.DaoOpTransferBoughtBlago, 0,
		encode(t, &contract.TransferBoughtArgs{Buyer: dave, Reservation: 0, ApprovalBlago: 1}))
	assert.Contains(t, d.Err, "wrong_identity")
}
