package contract

import (
	"crypto/sha256"

	"blagodao/sdk"
)

// Storage key layout. Each contract kind lives in its own instance namespace
// so prefixes only need to be unique within one kind.
const (
	// kDaoState holds the serialized DaoState aggregate.
	kDaoState = "cfg"
	// kMasterState holds the serialized MasterState.
	kMasterState = "cfg"
	// kSellerState holds the serialized SellerState.
	kSellerState = "cfg"

	// kMember houses encoded Member structs keyed by identity bytes.
	kMember byte = 0x01
	// kInvitation stores PendingInvitation records keyed by passcode.
	kInvitation byte = 0x02
	// kPendingTx stores PendingTransaction records keyed by index.
	kPendingTx byte = 0x03
	// kProfitable maps sweep passcodes to profitable addresses.
	kProfitable byte = 0x04
	// kReservation parks ShareReservation records keyed by token.
	kReservation byte = 0x05

	// kDaoByDeployer maps hashed deployer identity to the dao address.
	kDaoByDeployer byte = 0x01
	// kSellerByIndex maps sale index to the escrow address.
	kSellerByIndex byte = 0x02
	// kKnownDao flags addresses the registry itself deployed.
	kKnownDao byte = 0x03
)

// packU32LEInline sprinkles a uint32 into dst in little-endian order so our
// keys stay compact.
func packU32LEInline(x uint32, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
}

func memberKey(addr sdk.Address) string {
	s := addr.String()
	buf := make([]byte, 0, 1+len(s))
	buf = append(buf, kMember)
	buf = append(buf, s...)
	return string(buf)
}

func invitationKey(passcode uint32) string {
	var buf [5]byte
	buf[0] = kInvitation
	packU32LEInline(passcode, buf[1:])
	return string(buf[:])
}

func pendingTxKey(index uint32) string {
	var buf [5]byte
	buf[0] = kPendingTx
	packU32LEInline(index, buf[1:])
	return string(buf[:])
}

func profitableKey(passcode uint32) string {
	var buf [5]byte
	buf[0] = kProfitable
	packU32LEInline(passcode, buf[1:])
	return string(buf[:])
}

func reservationKey(token uint32) string {
	var buf [5]byte
	buf[0] = kReservation
	packU32LEInline(token, buf[1:])
	return string(buf[:])
}

// daoByDeployerKey hashes the identity so key length stays fixed no matter
// what address scheme the deployer uses.
func daoByDeployerKey(deployer sdk.Address) string {
	sum := sha256.Sum256([]byte(deployer.String()))
	buf := make([]byte, 0, 1+len(sum))
	buf = append(buf, kDaoByDeployer)
	buf = append(buf, sum[:]...)
	return string(buf)
}

func knownDaoKey(dao sdk.Address) string {
	s := dao.String()
	buf := make([]byte, 0, 1+len(s))
	buf = append(buf, kKnownDao)
	buf = append(buf, s...)
	return string(buf)
}

func sellerByIndexKey(index uint32) string {
	var buf [5]byte
	buf[0] = kSellerByIndex
	packU32LEInline(index, buf[1:])
	return string(buf[:])
}
