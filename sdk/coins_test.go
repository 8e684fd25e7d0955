package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinsString(t *testing.T) {
	assert.Equal(t, "0", Coins(0).String())
	assert.Equal(t, "10", Tokens(10).String())
	assert.Equal(t, "0.00001", Coins(10_000).String())
	assert.Equal(t, "0.000000001", Coins(1).String())
	assert.Equal(t, "1.5", Coins(1_500_000_000).String())
	assert.Equal(t, "-0.25", Coins(-250_000_000).String())
}

func TestParseCoins(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Coins
	}{
		{"0", 0},
		{"10", Tokens(10)},
		{"0.00001", 10_000},
		{"0.000001", 1_000},
		{"1.5", 1_500_000_000},
		{"-0.25", -250_000_000},
		{".5", 500_000_000},
		{" 1 ", Tokens(1)},
	} {
		got, err := ParseCoins(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "x", "1.2.3", "0.0000000001"} {
		_, err := ParseCoins(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseCoinsRoundTripsString(t *testing.T) {
	for _, v := range []Coins{0, 1, 999, Tokens(7), 1_234_567_890} {
		got, err := ParseCoins(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestAddressDomains(t *testing.T) {
	assert.Equal(t, AddressDomainUser, Address("wallet:alice").Domain())
	assert.Equal(t, AddressDomainContract, Address("contract:abc").Domain())
	assert.Equal(t, AddressDomainSystem, Address("system:view").Domain())
	assert.True(t, Address("contract:abc").IsContract())
	assert.False(t, Address("wallet:alice").IsContract())

	assert.True(t, Address("wallet:alice").IsValid())
	assert.False(t, Address("").IsValid())
	assert.False(t, Address(" wallet:alice").IsValid())
}
