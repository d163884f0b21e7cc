package stats

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// RenderTable prints the summary as a small metric/value table.
func RenderTable(w io.Writer, s Summary) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Metric", "Value"})
	t.SetBorder(false)
	t.Append([]string{"fragments", fmt.Sprintf("%d", s.Count)})
	t.Append([]string{"mean length", fmt.Sprintf("%.1f", s.Mean)})
	t.Append([]string{"median length", fmt.Sprintf("%.1f", s.Median)})
	t.Append([]string{"stddev", fmt.Sprintf("%.1f", s.StdDev)})
	t.Append([]string{"min", fmt.Sprintf("%d", s.Min)})
	t.Append([]string{"max", fmt.Sprintf("%d", s.Max)})
	t.Append([]string{"q1", fmt.Sprintf("%.1f", s.Q1)})
	t.Append([]string{"q3", fmt.Sprintf("%.1f", s.Q3)})
	t.Render()
}
