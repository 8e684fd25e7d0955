// Package config loads the CLI configuration: a YAML file with environment
// overrides on top, so one state file can serve scripted and interactive use.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"blagodao/content"
	"blagodao/sdk"
)

// MasterGenesis is the fee schedule seeded into a fresh registry. Amounts
// are decimal token strings ("10", "0.00001") to keep the YAML readable.
type MasterGenesis struct {
	Owner                  string `yaml:"owner" envconfig:"MASTER_OWNER"`
	CreationFee            string `yaml:"creation_fee" envconfig:"MASTER_CREATION_FEE"`
	CreationFeeDiscount    string `yaml:"creation_fee_discount" envconfig:"MASTER_CREATION_FEE_DISCOUNT"`
	TransactionFee         string `yaml:"transaction_fee" envconfig:"MASTER_TRANSACTION_FEE"`
	TransactionFeeIncrease string `yaml:"transaction_fee_increase" envconfig:"MASTER_TRANSACTION_FEE_INCREASE"`
	MaxTransactionFee      string `yaml:"max_transaction_fee" envconfig:"MASTER_MAX_TRANSACTION_FEE"`
	SellerCreationFee      string `yaml:"seller_creation_fee" envconfig:"MASTER_SELLER_CREATION_FEE"`
}

// InvitationDraft is one seat of the first invitation batch.
type InvitationDraft struct {
	Address       string `yaml:"address"`
	ApprovalBlago uint64 `yaml:"approval_blago"`
	ProfitBlago   uint64 `yaml:"profit_blago"`
}

// DaoDefaults describes the dao the CLI deploys and activates.
type DaoDefaults struct {
	Deployer            string            `yaml:"deployer" envconfig:"DAO_DEPLOYER"`
	AgreementNum        uint64            `yaml:"agreement_num" envconfig:"DAO_AGREEMENT_NUM"`
	AgreementDen        uint64            `yaml:"agreement_den" envconfig:"DAO_AGREEMENT_DEN"`
	ReserveNum          uint64            `yaml:"reserve_num" envconfig:"DAO_RESERVE_NUM"`
	ReserveDen          uint64            `yaml:"reserve_den" envconfig:"DAO_RESERVE_DEN"`
	ProfitableAddresses []string          `yaml:"profitable_addresses"`
	Invitations         []InvitationDraft `yaml:"invitations"`
	Draft               content.DaoDraft  `yaml:"draft"`
}

type Config struct {
	StateFile string        `yaml:"state_file" envconfig:"STATE_FILE"`
	Faucet    string        `yaml:"faucet" envconfig:"FAUCET"`
	Master    MasterGenesis `yaml:"master"`
	Dao       DaoDefaults   `yaml:"dao"`
}

// Default mirrors the genesis numbers the contracts ship with.
func Default() *Config {
	return &Config{
		StateFile: "blagodao-state.json",
		Faucet:    "1000",
		Master: MasterGenesis{
			Owner:                  "wallet:master-owner",
			CreationFee:            "10",
			CreationFeeDiscount:    "0.00001",
			TransactionFee:         "0.000001",
			TransactionFeeIncrease: "0.000001",
			MaxTransactionFee:      "1",
			SellerCreationFee:      "1",
		},
		Dao: DaoDefaults{
			Deployer:     "wallet:deployer",
			AgreementNum: 51,
			AgreementDen: 100,
			ReserveNum:   10,
			ReserveDen:   100,
		},
	}
}

// Load reads the YAML file (if it exists) over the defaults, then applies
// BLAGODAO_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := envconfig.Process("blagodao", cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.Fees(); err != nil {
		return err
	}
	if c.Dao.AgreementDen == 0 || c.Dao.AgreementNum > c.Dao.AgreementDen {
		return fmt.Errorf("agreement fraction %d/%d is not a valid percentage",
			c.Dao.AgreementNum, c.Dao.AgreementDen)
	}
	if c.Dao.ReserveDen == 0 || c.Dao.ReserveNum > c.Dao.ReserveDen {
		return fmt.Errorf("reserve fraction %d/%d is not a valid percentage",
			c.Dao.ReserveNum, c.Dao.ReserveDen)
	}
	return nil
}

// Fees parses the genesis amounts into nano units.
type Fees struct {
	CreationFee            sdk.Coins
	CreationFeeDiscount    sdk.Coins
	TransactionFee         sdk.Coins
	TransactionFeeIncrease sdk.Coins
	MaxTransactionFee      sdk.Coins
	SellerCreationFee      sdk.Coins
	Faucet                 sdk.Coins
}

func (c *Config) Fees() (*Fees, error) {
	out := &Fees{}
	for _, f := range []struct {
		name string
		raw  string
		dst  *sdk.Coins
	}{
		{"creation_fee", c.Master.CreationFee, &out.CreationFee},
		{"creation_fee_discount", c.Master.CreationFeeDiscount, &out.CreationFeeDiscount},
		{"transaction_fee", c.Master.TransactionFee, &out.TransactionFee},
		{"transaction_fee_increase", c.Master.TransactionFeeIncrease, &out.TransactionFeeIncrease},
		{"max_transaction_fee", c.Master.MaxTransactionFee, &out.MaxTransactionFee},
		{"seller_creation_fee", c.Master.SellerCreationFee, &out.SellerCreationFee},
		{"faucet", c.Faucet, &out.Faucet},
	} {
		v, err := sdk.ParseCoins(f.raw)
		if err != nil {
			return nil, fmt.Errorf("master fee %s %q: %w", f.name, f.raw, err)
		}
		*f.dst = v
	}
	return out, nil
}
