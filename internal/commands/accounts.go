package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/summary"
)

func newAccountsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List seeded accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := loadProfile(configPath)
			if err != nil {
				return err
			}

			for _, a := range s.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d movements\t%s%s\n",
					a.Username, a.Owner, a.Tier, len(a.Movements),
					summary.Balance(a.Movements).String(), cfg.Bank.Currency)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "bankist.yaml", "profile config file")

	return cmd
}
