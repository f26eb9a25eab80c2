// Package chart renders analysis results as text charts written to files.
// It stands in for the original notebook-style PNG output: each chart is a
// labeled series plus a file name, overwritten on every run.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const barWidth = 50

// Line renders a single-series line chart and writes it to name under dir.
func Line(dir, name, title string, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("no data for chart %q", name)
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(title),
	)
	return write(dir, name, graph+"\n")
}

// Bars renders a horizontal bar chart, one row per label, scaled to the
// largest value, and writes it to name under dir.
func Bars(dir, name, title string, labels []string, values []float64) error {
	if len(values) == 0 || len(labels) != len(values) {
		return fmt.Errorf("no data for chart %q", name)
	}

	maxVal := values[0]
	labelWidth := 0
	for i, v := range values {
		if v > maxVal {
			maxVal = v
		}
		if len(labels[i]) > labelWidth {
			labelWidth = len(labels[i])
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	for i, v := range values {
		bar := 0
		if maxVal > 0 {
			bar = int(v / maxVal * barWidth)
		}
		fmt.Fprintf(&b, "%-*s %s %.1f\n", labelWidth, labels[i], strings.Repeat("█", bar), v)
	}
	return write(dir, name, b.String())
}

// Histogram renders value counts keyed by an integer bucket as a bar chart.
func Histogram(dir, name, title string, buckets []int, counts []float64) error {
	labels := make([]string, len(buckets))
	for i, bkt := range buckets {
		labels[i] = fmt.Sprintf("%d", bkt)
	}
	return Bars(dir, name, title, labels, counts)
}

func write(dir, name, content string) error {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating chart dir: %w", err)
		}
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing chart %q: %w", path, err)
	}
	fmt.Printf("    Saved %s\n", path)
	return nil
}
