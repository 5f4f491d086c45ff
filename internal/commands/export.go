package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/statement"
)

func newExportCommand() *cobra.Command {
	var configPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <username>",
		Short: "Export an account's movement listing as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := loadProfile(configPath)
			if err != nil {
				return err
			}

			acc, ok := s.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown account %q", args[0])
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}

			return statement.WriteMovements(w, acc.Movements)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "bankist.yaml", "profile config file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}
