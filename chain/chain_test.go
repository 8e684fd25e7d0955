package chain_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"blagodao/chain"
	"blagodao/sdk"
)

var (
	wallet = sdk.Address("wallet:tester")
	peer   = sdk.Address("wallet:peer")
)

func readCounter(t *testing.T, c *chain.Chain, addr sdk.Address) int {
	t.Helper()
	n := 0
	require.NoError(t, c.View(addr, func() error {
		v := sdk.StateGetObject("n")
		require.NotNil(t, v)
		var err error
		n, err = strconv.Atoi(*v)
		return err
	}))
	return n
}

// counter is a minimal handler: op 0 increments a stored counter, op 1
// increments then fails, op 2 forwards half the attached value to peer.
func counter(msg *sdk.Message) error {
	env := sdk.GetEnv()
	n := 1
	if v := sdk.StateGetObject("n"); v != nil {
		prev, err := strconv.Atoi(*v)
		if err != nil {
			return err
		}
		n = prev + 1
	}
	sdk.StateSetObject("n", strconv.Itoa(n))
	switch msg.Op {
	case 1:
		return errors.New("forced failure")
	case 2:
		sdk.SendMessage(sdk.OutboundMessage{To: peer, Value: env.Value / 2})
	case 3:
		panic("forced panic")
	}
	return nil
}

func boot(t *testing.T) (*chain.Chain, sdk.Address) {
	t.Helper()
	c := chain.NewChain()
	c.RegisterCode("counter@1", counter)
	addr, err := c.Instantiate("counter@1", "one")
	require.NoError(t, err)
	c.Fund(wallet, sdk.Tokens(100))
	return c, addr
}

func TestDeterministicAddresses(t *testing.T) {
	a := chain.DeriveAddress("counter@1", "one")
	b := chain.DeriveAddress("counter@1", "one")
	require.Equal(t, a, b)
	require.NotEqual(t, a, chain.DeriveAddress("counter@1", "two"))
	require.True(t, a.IsContract())
}

func TestInstantiateRejectsCollisions(t *testing.T) {
	c, _ := boot(t)
	_, err := c.Instantiate("counter@1", "one")
	require.Error(t, err)
	_, err = c.Instantiate("missing@1", "x")
	require.Error(t, err)
}

func TestRejectionDiscardsWritesAndBouncesValue(t *testing.T) {
	c, addr := boot(t)

	deliveries, err := c.SendExternal(wallet, addr, 0, sdk.Tokens(2), "")
	require.NoError(t, err)
	require.True(t, deliveries[0].OK)
	require.Equal(t, sdk.Tokens(2), c.BalanceOf(addr))

	// the failing op incremented the counter before erroring; nothing sticks
	deliveries, err = c.SendExternal(wallet, addr, 1, sdk.Tokens(5), "")
	require.NoError(t, err)
	require.True(t, deliveries[0].Bounced)
	require.Equal(t, sdk.Tokens(2), c.BalanceOf(addr))
	require.Equal(t, sdk.Tokens(98), c.BalanceOf(wallet))
	require.Equal(t, 1, readCounter(t, c, addr))
}

func TestPanicIsABounce(t *testing.T) {
	c, addr := boot(t)
	deliveries, err := c.SendExternal(wallet, addr, 3, sdk.Tokens(1), "")
	require.NoError(t, err)
	require.True(t, deliveries[0].Bounced)
	require.Contains(t, deliveries[0].Err, "panic")
	require.Equal(t, sdk.Tokens(100), c.BalanceOf(wallet))
}

func TestCascadeDeliveriesAndWalletCredit(t *testing.T) {
	c, addr := boot(t)
	deliveries, err := c.SendExternal(wallet, addr, 2, sdk.Tokens(10), "")
	require.NoError(t, err)
	require.Len(t, deliveries, 2)
	require.True(t, deliveries[1].Is(addr, peer, 0))
	require.Equal(t, sdk.Tokens(5), c.BalanceOf(peer))
	require.Equal(t, sdk.Tokens(5), c.BalanceOf(addr))
}

func TestSendExternalRequiresFunds(t *testing.T) {
	c, addr := boot(t)
	_, err := c.SendExternal(peer, addr, 0, sdk.Tokens(1), "")
	require.Error(t, err)
}

func TestMessageToEmptyContractAddressBounces(t *testing.T) {
	c, _ := boot(t)
	ghost := chain.DeriveAddress("counter@1", "never-deployed")
	deliveries, err := c.SendExternal(wallet, ghost, 0, sdk.Tokens(4), "")
	require.NoError(t, err)
	require.True(t, deliveries[0].Bounced)
	require.Equal(t, sdk.Tokens(100), c.BalanceOf(wallet))
}

func TestClock(t *testing.T) {
	c := chain.NewChain()
	base := c.Now()
	c.Advance(60)
	require.Equal(t, base+60, c.Now())
	c.SetNow(42)
	require.Equal(t, int64(42), c.Now())
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	c, addr := boot(t)
	_, err := c.SendExternal(wallet, addr, 0, sdk.Tokens(3), "")
	require.NoError(t, err)
	c.Advance(120)

	data, err := c.Snapshot()
	require.NoError(t, err)

	restored := chain.NewChain()
	restored.RegisterCode("counter@1", counter)
	require.NoError(t, restored.Restore(data))

	require.Equal(t, c.Now(), restored.Now())
	require.Equal(t, sdk.Tokens(3), restored.BalanceOf(addr))
	require.Equal(t, c.BalanceOf(wallet), restored.BalanceOf(wallet))

	// the restored instance keeps serving messages
	deliveries, err := restored.SendExternal(wallet, addr, 0, 0, "")
	require.NoError(t, err)
	require.True(t, deliveries[0].OK)
	require.Equal(t, 2, readCounter(t, restored, addr))
}
