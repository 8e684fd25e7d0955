// Command blagodao deploys and inspects the governance contracts on a
// sandbox chain persisted to a JSON state file, standing in for the real
// deploy pipeline during development.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"blagodao/chain"
	"blagodao/contract"
	"blagodao/internal/config"
	"blagodao/sdk"
)

const (
	codeMaster = "blagodao-master@1"
	codeDao    = "blagodao-dao@1"
	codeSeller = "blagodao-seller@1"

	masterSalt = "root"
)

var (
	flagConfig string
	flagDebug  bool

	logger *slog.Logger
)

func main() {
	root := &cobra.Command{
		Use:           "blagodao",
		Short:         "deploy and inspect the blagodao contracts on a local sandbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flagDebug {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "blagodao.yaml", "config file path")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	root.AddCommand(
		deployMasterCmd(),
		deployDaoCmd(),
		activateCmd(),
		statusCmd(),
		draftInvitationsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// workspace bundles everything a subcommand needs: parsed config, fee
// schedule and the restored sandbox.
type workspace struct {
	cfg   *config.Config
	fees  *config.Fees
	chain *chain.Chain
}

func openWorkspace() (*workspace, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	fees, err := cfg.Fees()
	if err != nil {
		return nil, err
	}
	c := chain.NewChain()
	c.RegisterCode(codeMaster, contract.HandleMaster)
	c.RegisterCode(codeDao, contract.HandleDao)
	c.RegisterCode(codeSeller, contract.HandleSeller)
	data, err := os.ReadFile(cfg.StateFile)
	if err == nil {
		if err := c.Restore(data); err != nil {
			return nil, fmt.Errorf("restore %s: %w", cfg.StateFile, err)
		}
		logger.Debug("state restored", "file", cfg.StateFile)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return &workspace{cfg: cfg, fees: fees, chain: c}, nil
}

func (w *workspace) save() error {
	data, err := w.chain.Snapshot()
	if err != nil {
		return err
	}
	return os.WriteFile(w.cfg.StateFile, data, 0o644)
}

func (w *workspace) masterAddress() sdk.Address {
	return chain.DeriveAddress(codeMaster, masterSalt)
}

// submit sends one external message and fails loudly when any delivery in
// the cascade bounced.
func (w *workspace) submit(from sdk.Address, to sdk.Address, op uint32, value sdk.Coins, body string) error {
	deliveries, err := w.chain.SendExternal(from, to, op, value, body)
	if err != nil {
		return err
	}
	for _, d := range deliveries {
		logger.Debug("delivery",
			"from", d.Msg.From, "to", d.Msg.To, "op", d.Msg.Op,
			"value", d.Msg.Value.String(), "ok", d.OK, "err", d.Err)
		if d.Bounced {
			return fmt.Errorf("message %d from %s to %s bounced: %s", d.Msg.Op, d.Msg.From, d.Msg.To, d.Err)
		}
	}
	return nil
}

func deployMasterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy-master",
		Short: "instantiate the registry and seed its fee schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}
			if w.chain.IsContractDeployed(w.masterAddress()) {
				return fmt.Errorf("registry already deployed at %s", w.masterAddress())
			}
			addr, err := w.chain.Instantiate(codeMaster, masterSalt)
			if err != nil {
				return err
			}
			owner := sdk.Address(w.cfg.Master.Owner)
			w.chain.Fund(owner, w.fees.Faucet)
			seed := contract.MasterState{
				DaoCodeID:              codeDao,
				SellerCodeID:           codeSeller,
				NextDaoCreationFee:     w.fees.CreationFee,
				NextDaoTransactionFee:  w.fees.TransactionFee,
				CreationFeeDiscount:    w.fees.CreationFeeDiscount,
				TransactionFeeIncrease: w.fees.TransactionFeeIncrease,
				MaxDaoTransactionFee:   w.fees.MaxTransactionFee,
				SellerCreationFee:      w.fees.SellerCreationFee,
			}
			body, err := seed.MarshalJSON()
			if err != nil {
				return err
			}
			if err := w.submit(owner, addr, contract.MasterOpInit, 0, string(body)); err != nil {
				return err
			}
			logger.Info("registry deployed", "address", addr, "owner", owner)
			return w.save()
		},
	}
}

func deployDaoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy-dao",
		Short: "ask the registry to instantiate a dao for the configured deployer",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}
			deployer := sdk.Address(w.cfg.Dao.Deployer)
			w.chain.Fund(deployer, w.fees.Faucet)
			// the surplus over the creation fee becomes the dao's gas
			value := w.fees.CreationFee + sdk.Tokens(5)
			if err := w.submit(deployer, w.masterAddress(), contract.MasterOpDeploy, value, ""); err != nil {
				return err
			}
			var dao sdk.Address
			err = w.chain.View(w.masterAddress(), func() error {
				var inner error
				dao, inner = contract.GetDaoAddressByDeployer(deployer)
				return inner
			})
			if err != nil {
				return err
			}
			logger.Info("dao deployed", "address", dao, "deployer", deployer)
			return w.save()
		},
	}
}

func activateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "activate the deployed dao with the configured fractions and invitations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}
			deployer := sdk.Address(w.cfg.Dao.Deployer)
			var dao sdk.Address
			err = w.chain.View(w.masterAddress(), func() error {
				var inner error
				dao, inner = contract.GetDaoAddressByDeployer(deployer)
				return inner
			})
			if err != nil {
				return err
			}
			activate := contract.ActivateArgs{
				AgreementPercent: contract.Fraction{
					Num: w.cfg.Dao.AgreementNum,
					Den: w.cfg.Dao.AgreementDen,
				},
				ProfitReservePercent: contract.Fraction{
					Num: w.cfg.Dao.ReserveNum,
					Den: w.cfg.Dao.ReserveDen,
				},
			}
			for _, p := range w.cfg.Dao.ProfitableAddresses {
				activate.ProfitableAddresses = append(activate.ProfitableAddresses, sdk.Address(p))
			}
			for _, inv := range w.cfg.Dao.Invitations {
				activate.Invitations = append(activate.Invitations, contract.PendingInvitation{
					Address:       sdk.Address(inv.Address),
					ApprovalBlago: contract.Blago(inv.ApprovalBlago),
					ProfitBlago:   contract.Blago(inv.ProfitBlago),
				})
			}
			body, err := activate.MarshalJSON()
			if err != nil {
				return err
			}
			if err := w.submit(deployer, dao, contract.DaoOpActivate, 0, string(body)); err != nil {
				return err
			}
			logger.Info("dao activated", "address", dao, "invitations", len(activate.Invitations))
			return w.save()
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "print registry and dao state as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace()
			if err != nil {
				return err
			}
			out := map[string]any{}
			if w.chain.IsContractDeployed(w.masterAddress()) {
				err := w.chain.View(w.masterAddress(), func() error {
					master, inner := contract.GetMasterData()
					if inner != nil {
						return inner
					}
					out["master"] = master
					return nil
				})
				if err != nil {
					return err
				}
				deployer := sdk.Address(w.cfg.Dao.Deployer)
				var dao sdk.Address
				lookupErr := w.chain.View(w.masterAddress(), func() error {
					var inner error
					dao, inner = contract.GetDaoAddressByDeployer(deployer)
					return inner
				})
				if lookupErr == nil {
					err := w.chain.View(dao, func() error {
						data, inner := contract.GetDaoData()
						if inner != nil {
							return inner
						}
						out["dao"] = data
						out["dao_address"] = dao
						out["dao_balance"] = w.chain.BalanceOf(dao).String()
						return nil
					})
					if err != nil {
						return err
					}
				}
			} else {
				logger.Info("registry not deployed yet")
			}
			rendered, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(rendered))
			return nil
		},
	}
}

func draftInvitationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draft-invitations",
		Short: "preview the invitation notices and content dictionary for activation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			type preview struct {
				Address string                    `json:"address"`
				Notice  contract.InviteNoticeArgs `json:"notice"`
			}
			previews := make([]preview, 0, len(cfg.Dao.Invitations))
			// passcodes are handed out sequentially from zero at activation
			for i, inv := range cfg.Dao.Invitations {
				previews = append(previews, preview{
					Address: inv.Address,
					Notice: contract.InviteNoticeArgs{
						Passcode:      uint32(i),
						ApprovalBlago: contract.Blago(inv.ApprovalBlago),
						ProfitBlago:   contract.Blago(inv.ProfitBlago),
					},
				})
			}
			out := map[string]any{
				"invitations": previews,
				"content":     cfg.Dao.Draft.Dict(),
			}
			rendered, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(rendered))
			return nil
		},
	}
}
