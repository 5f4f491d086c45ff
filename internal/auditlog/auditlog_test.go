package auditlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit-log.csv")
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	err := Append(path, []Entry{
		{Timestamp: ts, Username: "mb", Action: "login", Outcome: "ok"},
		{Timestamp: ts, Username: "mb", Action: "transfer", Amount: "200", Outcome: "ok"},
	})
	require.NoError(t, err)

	// A second append must not repeat the header.
	err = Append(path, []Entry{
		{Timestamp: ts, Username: "mb", Action: "loan", Amount: "5000", Outcome: "loan denied: no qualifying deposit"},
	})
	require.NoError(t, err)

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "login", entries[0].Action)
	assert.Equal(t, "200", entries[1].Amount)
	assert.Equal(t, "loan denied: no qualifying deposit", entries[2].Outcome)
	assert.True(t, entries[0].Timestamp.Equal(ts))
}

func TestRead_Missing(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
