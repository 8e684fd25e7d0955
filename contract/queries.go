package contract

import "blagodao/sdk"

// Read-only views over contract state. They run against whatever host is
// installed, off-chain tooling wraps them in a sandbox view.

// DaoData is the full aggregate an explorer or wallet wants in one shot.
type DaoData struct {
	State               DaoState               `json:"state"`
	Members             []Member               `json:"members"`
	ProfitableAddresses map[uint32]sdk.Address `json:"profitable_addresses"`
}

func GetDaoData() (*DaoData, error) {
	st, ok := loadDaoState()
	if !ok {
		return nil, ErrNotInitialized
	}
	data := &DaoData{
		State:               *st,
		ProfitableAddresses: map[uint32]sdk.Address{},
	}
	for _, addr := range st.Members {
		if m, ok := loadMember(addr); ok {
			data.Members = append(data.Members, *m)
		}
	}
	for p := uint32(0); p < st.ProfitableCount; p++ {
		if addr, ok := loadProfitable(p); ok {
			data.ProfitableAddresses[p] = addr
		}
	}
	return data, nil
}

func GetMember(addr sdk.Address) (*Member, error) {
	m, ok := loadMember(addr)
	if !ok {
		return nil, ErrNotAMember
	}
	return m, nil
}

func GetPendingInvitation(passcode uint32) (*PendingInvitation, error) {
	inv, ok := loadInvitation(passcode)
	if !ok {
		return nil, ErrInvitationNotFound
	}
	return inv, nil
}

func GetPendingTransaction(index uint32) (*PendingTransaction, error) {
	tx, ok := loadPendingTx(index)
	if !ok {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

func GetMasterData() (*MasterState, error) {
	st, ok := loadMasterState()
	if !ok {
		return nil, ErrNotInitialized
	}
	return st, nil
}

func GetDaoAddressByDeployer(deployer sdk.Address) (sdk.Address, error) {
	dao, ok := loadDaoByDeployer(deployer)
	if !ok {
		return "", rejectf("dao_not_found", "no dao registered for deployer %s", deployer)
	}
	return dao, nil
}

func GetSellerAddressByIndex(index uint32) (sdk.Address, error) {
	seller, ok := loadSellerByIndex(index)
	if !ok {
		return "", rejectf("seller_not_found", "no escrow registered at index %d", index)
	}
	return seller, nil
}

func GetSellerData() (*SellerState, error) {
	st, ok := loadSellerState()
	if !ok {
		return nil, ErrNotInitialized
	}
	return st, nil
}
