package commands_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/commands"
)

// runBankist executes the CLI in-process with the given stdin and args.
func runBankist(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireLine(t *testing.T, output, want string) {
	t.Helper()
	require.Contains(t, strings.Split(output, "\n"), want)
}
