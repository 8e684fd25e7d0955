package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type Address string

// String returns the literal representation (like wallet:alice) of the address.
// Example payload: sdk.Address("wallet:alice").String()
func (a Address) String() string {
	return string(a)
}

// Domain quickly checks the prefix to guess if we deal with user/contract/system domain.
// Example payload: sdk.Address("contract:blagodao").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsContract is the common guard for messages that must come from deployed code.
func (a Address) IsContract() bool {
	return a.Domain() == AddressDomainContract
}

// IsValid is a light sanity check: empty or whitespace-only addresses break
// storage keys, everything else is resolved by the transport layer.
func (a Address) IsValid() bool {
	s := a.String()
	return s != "" && strings.TrimSpace(s) == s
}
