package contract

import (
	"fmt"

	"blagodao/sdk"
)

// Event lines stay terse and pipe-delimited so indexers can pick them up
// without scanning storage diffs.

// emitDaoDeployed marks a fresh dao with its deployer identity.
func emitDaoDeployed(dao sdk.Address, deployer sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"dd|dao:%s|by:%s",
		dao,
		deployer,
	))
}

// emitActivated signals the dao switched from setup to active.
func emitActivated(members int, totalApproval Blago, totalProfit Blago) {
	sdk.Log(fmt.Sprintf(
		"da|m:%d|ab:%d|pb:%d",
		members,
		totalApproval,
		totalProfit,
	))
}

// emitInvited logs a freshly parked invitation without leaking the passcode.
func emitInvited(candidate sdk.Address, approval Blago, profit Blago) {
	sdk.Log(fmt.Sprintf(
		"iv|to:%s|ab:%d|pb:%d",
		candidate,
		approval,
		profit,
	))
}

// emitJoined writes a tiny "mj" line so watchers know a seat got claimed.
func emitJoined(member sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"mj|by:%s",
		member,
	))
}

// emitQuit mirrors the join ping but signals a seat freed up.
func emitQuit(member sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"mq|by:%s",
		member,
	))
}

// emitAddressChanged tracks identity rekeys, old plus new for audit trails.
func emitAddressChanged(old sdk.Address, updated sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"mc|old:%s|new:%s",
		old,
		updated,
	))
}

// emitProposed logs every new pending transaction with its type tag.
func emitProposed(index uint32, typ TransactionType, by sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"tp|idx:%d|t:%s|by:%s",
		index,
		typ,
		by,
	))
}

// emitApproved includes the raw weight so quorum math can be replayed from
// logs only.
func emitApproved(index uint32, by sdk.Address, weight Blago, received Blago) {
	sdk.Log(fmt.Sprintf(
		"ta|idx:%d|by:%s|w:%d|sum:%d",
		index,
		by,
		weight,
		received,
	))
}

// emitRevoked logs an approval pulled back before settlement.
func emitRevoked(index uint32, by sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"tr|idx:%d|by:%s",
		index,
		by,
	))
}

// emitSettled is the swiss army knife line for any settlement.
func emitSettled(index uint32, typ TransactionType) {
	sdk.Log(fmt.Sprintf(
		"ts|idx:%d|t:%s",
		index,
		typ,
	))
}

// emitDistribution records the split between paid-out and reserved value.
func emitDistribution(round uint32, paid sdk.Coins, reserved sdk.Coins) {
	sdk.Log(fmt.Sprintf(
		"df|r:%d|paid:%s|res:%s",
		round,
		paid,
		reserved,
	))
}

// emitProfitCollected logs one member claiming their reserve share.
func emitProfitCollected(member sdk.Address, amount sdk.Coins, round uint32) {
	sdk.Log(fmt.Sprintf(
		"pc|by:%s|am:%s|r:%d",
		member,
		amount,
		round,
	))
}

// emitSaleStarted notes a brokered share sale leaving for the registry.
func emitSaleStarted(seller sdk.Address, price sdk.Coins, reservation uint32) {
	sdk.Log(fmt.Sprintf(
		"ss|by:%s|p:%s|res:%d",
		seller,
		price,
		reservation,
	))
}

// emitSaleSettled logs escrowed weights landing on the buyer.
func emitSaleSettled(buyer sdk.Address, approval Blago, profit Blago) {
	sdk.Log(fmt.Sprintf(
		"sd|to:%s|ab:%d|pb:%d",
		buyer,
		approval,
		profit,
	))
}

// emitMasterDeployedDao gives explorers a neat line per registered dao.
func emitMasterDeployedDao(dao sdk.Address, deployer sdk.Address, nextFee sdk.Coins) {
	sdk.Log(fmt.Sprintf(
		"md|dao:%s|by:%s|next:%s",
		dao,
		deployer,
		nextFee,
	))
}

// emitMasterSellerDeployed records the escrow index so buyers can find it.
func emitMasterSellerDeployed(seller sdk.Address, index uint32, dao sdk.Address) {
	sdk.Log(fmt.Sprintf(
		"ms|esc:%s|idx:%d|dao:%s",
		seller,
		index,
		dao,
	))
}
