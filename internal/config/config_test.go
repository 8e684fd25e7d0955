package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blagodao/sdk"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.validate())

	fees, err := cfg.Fees()
	require.NoError(t, err)
	assert.Equal(t, sdk.Tokens(10), fees.CreationFee)
	assert.Equal(t, sdk.Coins(10_000), fees.CreationFeeDiscount)
	assert.Equal(t, sdk.Coins(1_000), fees.TransactionFee)
	assert.Equal(t, sdk.Tokens(1), fees.MaxTransactionFee)
	assert.Equal(t, sdk.Tokens(1), fees.SellerCreationFee)
	assert.Equal(t, sdk.Tokens(1000), fees.Faucet)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().StateFile, cfg.StateFile)
}

func TestLoadOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blagodao.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
state_file: custom.json
master:
  creation_fee: "25"
dao:
  deployer: wallet:someone
  agreement_num: 66
  agreement_den: 100
  invitations:
    - address: wallet:alice
      approval_blago: 28
      profit_blago: 37
  draft:
    name: Northwind Collective
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.json", cfg.StateFile)
	assert.Equal(t, "wallet:someone", cfg.Dao.Deployer)
	assert.Equal(t, uint64(66), cfg.Dao.AgreementNum)
	require.Len(t, cfg.Dao.Invitations, 1)
	assert.Equal(t, uint64(37), cfg.Dao.Invitations[0].ProfitBlago)
	assert.Equal(t, "Northwind Collective", cfg.Dao.Draft.Name)

	// untouched keys keep their defaults
	assert.Equal(t, Default().Master.TransactionFee, cfg.Master.TransactionFee)

	fees, err := cfg.Fees()
	require.NoError(t, err)
	assert.Equal(t, sdk.Tokens(25), fees.CreationFee)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "fraction.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("dao:\n  agreement_num: 120\n"), 0o644))
	_, err := Load(bad)
	require.Error(t, err)

	bad = filepath.Join(dir, "fee.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("master:\n  creation_fee: \"lots\"\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("BLAGODAO_STATE_FILE", "env.json")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.json", cfg.StateFile)
}
