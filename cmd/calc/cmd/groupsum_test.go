package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRecords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.json")
	data := `[
		{"region": "north", "amount": "10.10", "qty": 1},
		{"region": "south", "amount": 2.5, "qty": 2},
		{"region": "north", "amount": 0.205, "qty": 3}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestGroupSumJSON(t *testing.T) {
	path := writeRecords(t)

	out, errOut, code := execute(t, "groupsum", path, "-g", "region", "-s", "amount,qty", "-o", "json")
	require.Equal(t, 0, code, errOut)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "north", rows[0]["region"])
	assert.Equal(t, "10.31", rows[0]["amount"])
	assert.Equal(t, "4", rows[0]["qty"])
	assert.Equal(t, 2.0, rows[0]["count"])
	assert.Equal(t, "2.5", rows[1]["amount"])
}

func TestGroupSumTable(t *testing.T) {
	path := writeRecords(t)

	out, errOut, code := execute(t, "groupsum", path, "--group", "region", "--sum", "amount", "-p", "1")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "region")
	assert.Contains(t, out, "north")
	assert.Contains(t, out, "10.3")
	assert.Contains(t, out, "count")
}

func TestGroupSumMissingFile(t *testing.T) {
	_, errOut, code := execute(t, "groupsum", filepath.Join(t.TempDir(), "none.json"), "-s", "amount")
	assert.NotEqual(t, 0, code)
	assert.Contains(t, errOut, "Error:")
}
