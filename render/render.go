// Package render writes a measurement to the output stream.
package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/xeptore/sizeconv/size"
	"github.com/xeptore/sizeconv/ttyutil"
	"github.com/xeptore/sizeconv/unit"
)

type Format string

const (
	FormatDebug Format = "debug"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

var Formats = []Format{FormatDebug, FormatJSON, FormatTable}

func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !lo.Contains(Formats, f) {
		return "", fmt.Errorf("unknown output format %q, must be one of: debug, json, table", s)
	}

	return f, nil
}

func Write(w io.Writer, m size.Measurement, f Format) error {
	switch f {
	case FormatDebug:
		if _, err := fmt.Fprintln(w, m.String()); nil != err {
			return fmt.Errorf("failed to write measurement: %v", err)
		}
	case FormatJSON:
		if err := json.NewEncoder(w).Encode(m); nil != err {
			return fmt.Errorf("failed to encode measurement: %v", err)
		}
	case FormatTable:
		if _, err := fmt.Fprintln(w, renderTable(m, ttyutil.IsTerminal(w))); nil != err {
			return fmt.Errorf("failed to write measurement table: %v", err)
		}
	default:
		panic("invalid output format: " + string(f))
	}

	return nil
}

func renderTable(m size.Measurement, colored bool) string {
	t := table.NewWriter()
	t.SetStyle(lo.Ternary(colored, table.StyleColoredBright, table.StyleLight))
	t.AppendHeader(table.Row{"Unit", "Size"})
	t.AppendRows(lo.Map(unit.All, func(u unit.Unit, _ int) table.Row {
		return table.Row{u.String(), m.In(u)}
	}))
	t.AppendFooter(table.Row{"Total", humanize.Bytes(m.ByteCount())})

	return t.Render()
}
