package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/auditlog"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/session"
	"github.com/bankist-dev/bankist/internal/statement"
)

func newSessionCommand() *cobra.Command {
	var configPath string
	var logPath string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run an interactive banking session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := loadProfile(configPath)
			if err != nil {
				return err
			}
			if logPath != "" {
				cfg.Audit.Enabled = true
				cfg.Audit.Path = logPath
			}

			ctrl := session.NewController(s)
			return runSession(ctrl, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "bankist.yaml", "profile config file")
	cmd.Flags().StringVar(&logPath, "log", "", "audit log file (enables auditing)")

	return cmd
}

// runSession reads one intent per line and runs it against the
// controller, re-rendering the statement after each successful
// mutation. Intents:
//
//	login <username> <pin>
//	transfer <username> <amount>
//	loan <amount>
//	close <username> <pin>
//	sort
//	movements
//	summary
//	quit
func runSession(ctrl *session.Controller, cfg *config.Config, in io.Reader, out io.Writer) error {
	var audit []auditlog.Entry
	defer func() {
		if cfg.Audit.Enabled && len(audit) > 0 {
			if err := auditlog.Append(cfg.Audit.Path, audit); err != nil {
				fmt.Fprintf(out, "audit log: %v\n", err)
			}
		}
	}()

	record := func(username, action, amount string, opErr error) {
		outcome := "ok"
		if opErr != nil {
			outcome = opErr.Error()
		}
		audit = append(audit, auditlog.Entry{
			Timestamp: time.Now(),
			Username:  username,
			Action:    action,
			Amount:    amount,
			Outcome:   outcome,
		})
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "login":
			if len(fields) != 3 {
				fmt.Fprintln(out, "usage: login <username> <pin>")
				continue
			}
			acc, err := ctrl.Login(fields[1], fields[2])
			record(fields[1], "login", "", err)
			if err != nil {
				fmt.Fprintf(out, "rejected: %v\n", err)
				continue
			}
			fmt.Fprintln(out, statement.Welcome(acc))
			renderStatement(ctrl, cfg, out)

		case "transfer":
			if len(fields) != 3 {
				fmt.Fprintln(out, "usage: transfer <username> <amount>")
				continue
			}
			err := ctrl.Transfer(fields[1], fields[2])
			record(currentUsername(ctrl), "transfer", fields[2], err)
			if err != nil {
				fmt.Fprintf(out, "rejected: %v\n", err)
				continue
			}
			renderStatement(ctrl, cfg, out)

		case "loan":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: loan <amount>")
				continue
			}
			err := ctrl.RequestLoan(fields[1])
			record(currentUsername(ctrl), "loan", fields[1], err)
			if err != nil {
				fmt.Fprintf(out, "rejected: %v\n", err)
				continue
			}
			renderStatement(ctrl, cfg, out)

		case "close":
			if len(fields) != 3 {
				fmt.Fprintln(out, "usage: close <username> <pin>")
				continue
			}
			username := currentUsername(ctrl) // the session ends on success
			err := ctrl.CloseAccount(fields[1], fields[2])
			record(username, "close", "", err)
			if err != nil {
				fmt.Fprintf(out, "rejected: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "account closed")

		case "sort":
			asc := ctrl.ToggleSort()
			if _, ok := ctrl.Current(); ok {
				renderStatement(ctrl, cfg, out)
			} else if asc {
				fmt.Fprintln(out, "sorting by amount")
			} else {
				fmt.Fprintln(out, "sorting by date")
			}

		case "movements", "summary":
			if _, ok := ctrl.Current(); !ok {
				fmt.Fprintf(out, "rejected: %v\n", session.ErrNoSession)
				continue
			}
			renderStatement(ctrl, cfg, out)

		case "quit", "exit":
			return nil

		default:
			fmt.Fprintf(out, "unknown command %q\n", fields[0])
		}
	}
	return scanner.Err()
}

func renderStatement(ctrl *session.Controller, cfg *config.Config, out io.Writer) {
	acc, ok := ctrl.Current()
	if !ok {
		return
	}
	movements, err := ctrl.Movements()
	if err != nil {
		return
	}
	for _, line := range statement.Render(acc, movements, cfg.Bank.Currency) {
		fmt.Fprintln(out, line)
	}
}

func currentUsername(ctrl *session.Controller) string {
	if acc, ok := ctrl.Current(); ok {
		return acc.Username
	}
	return ""
}
