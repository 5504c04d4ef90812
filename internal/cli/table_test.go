package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRendersRows(t *testing.T) {
	table := NewTable(NewTableOpts{
		Headers: []string{"timestamp", "moisture value"},
		Rows: func(t *Table) error {
			if err := t.NewRow(int64(1700000000), 41.5); err != nil {
				return err
			}
			return t.NewRow(int64(1700000060), nil)
		},
	})
	require.NoError(t, table.Render())
	output := table.GetString()
	assert.Contains(t, output, "1700000000")
	assert.Contains(t, output, "41.5")
	assert.Contains(t, output, "1700000060")
}

func TestRenderBoxedMessage(t *testing.T) {
	output := renderBoxedMessage(500, AnsiGreen, "ok", "connected to cache")
	assert.Contains(t, output, "connected to cache")
}
