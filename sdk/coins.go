package sdk

import (
	"errors"
	"strconv"
	"strings"
)

// Coins counts value in nano units (1 token = 1_000_000_000 nano). All fee
// and quorum math stays in integers so every node lands on the same result.
type Coins int64

const CoinScale = 1_000_000_000

// Tokens builds a Coins value from a whole-token count.
// Example payload: sdk.Tokens(10)
func Tokens(n int64) Coins {
	return Coins(n * CoinScale)
}

// String renders the value as a decimal token amount, trimming zeros,
// so logs read "0.00001" rather than raw nano counts.
func (c Coins) String() string {
	neg := c < 0
	v := int64(c)
	if neg {
		v = -v
	}
	whole := v / CoinScale
	frac := v % CoinScale
	out := strconv.FormatInt(whole, 10)
	if frac != 0 {
		f := strconv.FormatInt(frac, 10)
		f = strings.Repeat("0", 9-len(f)) + f
		out += "." + strings.TrimRight(f, "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// ParseCoins reads a decimal token amount ("1", "0.00001") into nano units.
// Example payload: sdk.ParseCoins("0.05")
func ParseCoins(s string) (Coins, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 9 {
		return 0, errors.New("amount precision exceeds nano units")
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	v := w * CoinScale
	if frac != "" {
		f, err := strconv.ParseInt(frac+strings.Repeat("0", 9-len(frac)), 10, 64)
		if err != nil {
			return 0, err
		}
		v += f
	}
	if neg {
		v = -v
	}
	return Coins(v), nil
}
