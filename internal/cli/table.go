package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

type TableRowDataInsertor func(*Table) error

type NewTableOpts struct {
	Headers []string
	Rows    TableRowDataInsertor
}

func NewTable(opts NewTableOpts) *Table {
	table := &Table{
		Rows: opts.Rows,
	}
	return table.Init(opts.Headers)
}

type Table struct {
	data  bytes.Buffer
	table *tablewriter.Table

	Rows TableRowDataInsertor
}

func (t *Table) Init(headers []string) *Table {
	t.table = tablewriter.NewWriter(&t.data)
	t.table.Options(tablewriter.WithHeaderAlignment(tw.AlignLeft))
	t.table.Configure(func(cfg *tablewriter.Config) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
			cfg.MaxWidth = width
		}
	})
	headerCells := make([]any, 0, len(headers))
	for _, header := range headers {
		headerCells = append(headerCells, header)
	}
	t.table.Header(headerCells...)
	return t
}

// Render runs the row insertor, it does not write anything out, use
// GetString for that
func (t *Table) Render() error {
	if t.Rows == nil {
		return nil
	}
	return t.Rows(t)
}

func (t *Table) NewRow(values ...any) error {
	row := []string{}
	for _, value := range values {
		var valueAsString string
		switch v := value.(type) {
		case int, int8, int16, int32, int64, float32, float64:
			valueAsString = fmt.Sprintf("%v", v)
		case bool:
			valueAsString = "✅"
			if !v {
				valueAsString = "❌"
			}
		case string:
			valueAsString = v
		case []string:
			valueAsString = fmt.Sprintf(`["%s"]`, strings.Join(v, `", "`))
		case time.Time:
			valueAsString = v.Format(time.RFC3339)
		case nil:
			valueAsString = "-"
		default:
			valueAsString = fmt.Sprintf("%v", v)
		}
		row = append(row, valueAsString)
	}
	return t.table.Append(row)
}

func (t *Table) GetString() string {
	t.table.Render()
	return t.data.String()
}
