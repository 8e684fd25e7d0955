package contract

import (
	"github.com/CosmWasm/tinyjson"

	"blagodao/sdk"
)

// mustDecode is for records this contract wrote itself, a decode failure
// there means corrupted storage and nothing sensible can continue.
func mustDecode(data string, out tinyjson.Unmarshaler) {
	if err := decodeRecord(data, out); err != nil {
		panic("corrupt state record: " + err.Error())
	}
}

// --- DaoState ---

func saveDaoState(st *DaoState) {
	sdk.StateSetObject(kDaoState, encodeRecord(st))
}

func loadDaoState() (*DaoState, bool) {
	ptr := sdk.StateGetObject(kDaoState)
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	st := &DaoState{}
	mustDecode(*ptr, st)
	return st, true
}

// --- Member ---

func saveMember(m *Member) {
	sdk.StateSetObject(memberKey(m.Address), encodeRecord(m))
}

func loadMember(addr sdk.Address) (*Member, bool) {
	ptr := sdk.StateGetObject(memberKey(addr))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	m := &Member{}
	mustDecode(*ptr, m)
	return m, true
}

func deleteMember(addr sdk.Address) {
	sdk.StateDeleteObject(memberKey(addr))
}

// --- PendingInvitation ---

func saveInvitation(passcode uint32, inv *PendingInvitation) {
	sdk.StateSetObject(invitationKey(passcode), encodeRecord(inv))
}

func loadInvitation(passcode uint32) (*PendingInvitation, bool) {
	ptr := sdk.StateGetObject(invitationKey(passcode))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	inv := &PendingInvitation{}
	mustDecode(*ptr, inv)
	return inv, true
}

func deleteInvitation(passcode uint32) {
	sdk.StateDeleteObject(invitationKey(passcode))
}

// --- PendingTransaction ---

func savePendingTx(index uint32, tx *PendingTransaction) {
	sdk.StateSetObject(pendingTxKey(index), encodeRecord(tx))
}

func loadPendingTx(index uint32) (*PendingTransaction, bool) {
	ptr := sdk.StateGetObject(pendingTxKey(index))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	tx := &PendingTransaction{}
	mustDecode(*ptr, tx)
	return tx, true
}

func deletePendingTx(index uint32) {
	sdk.StateDeleteObject(pendingTxKey(index))
}

// --- profitable addresses ---

func saveProfitable(passcode uint32, addr sdk.Address) {
	sdk.StateSetObject(profitableKey(passcode), addr.String())
}

func loadProfitable(passcode uint32) (sdk.Address, bool) {
	ptr := sdk.StateGetObject(profitableKey(passcode))
	if ptr == nil || *ptr == "" {
		return "", false
	}
	return sdk.Address(*ptr), true
}

// --- ShareReservation ---

func saveReservation(token uint32, r *ShareReservation) {
	sdk.StateSetObject(reservationKey(token), encodeRecord(r))
}

func loadReservation(token uint32) (*ShareReservation, bool) {
	ptr := sdk.StateGetObject(reservationKey(token))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	r := &ShareReservation{}
	mustDecode(*ptr, r)
	return r, true
}

func deleteReservation(token uint32) {
	sdk.StateDeleteObject(reservationKey(token))
}

// --- MasterState ---

func saveMasterState(st *MasterState) {
	sdk.StateSetObject(kMasterState, encodeRecord(st))
}

func loadMasterState() (*MasterState, bool) {
	ptr := sdk.StateGetObject(kMasterState)
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	st := &MasterState{}
	mustDecode(*ptr, st)
	return st, true
}

// --- dao / seller registries on the master ---

func saveDaoByDeployer(deployer sdk.Address, dao sdk.Address) {
	sdk.StateSetObject(daoByDeployerKey(deployer), dao.String())
}

func loadDaoByDeployer(deployer sdk.Address) (sdk.Address, bool) {
	ptr := sdk.StateGetObject(daoByDeployerKey(deployer))
	if ptr == nil || *ptr == "" {
		return "", false
	}
	return sdk.Address(*ptr), true
}

func markKnownDao(dao sdk.Address) {
	sdk.StateSetObject(knownDaoKey(dao), "1")
}

func isKnownDao(dao sdk.Address) bool {
	ptr := sdk.StateGetObject(knownDaoKey(dao))
	return ptr != nil && *ptr != ""
}

func saveSellerByIndex(index uint32, seller sdk.Address) {
	sdk.StateSetObject(sellerByIndexKey(index), seller.String())
}

func loadSellerByIndex(index uint32) (sdk.Address, bool) {
	ptr := sdk.StateGetObject(sellerByIndexKey(index))
	if ptr == nil || *ptr == "" {
		return "", false
	}
	return sdk.Address(*ptr), true
}

// --- SellerState ---

func saveSellerState(st *SellerState) {
	sdk.StateSetObject(kSellerState, encodeRecord(st))
}

func loadSellerState() (*SellerState, bool) {
	ptr := sdk.StateGetObject(kSellerState)
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	st := &SellerState{}
	mustDecode(*ptr, st)
	return st, true
}
