// SPDX-License-Identifier: MIT

package pace

import (
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Format selects a table renderer.
type Format string

// Supported formats.
const (
	Text  Format = "text"
	LaTeX Format = "latex"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("pace: unknown format")

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, LaTeX:
		return f, nil
	}
	return "", errors.Errorf("%w: %q", ErrFormat, s)
}

// Render writes t to w in format f.
func (t *Table) Render(w io.Writer, f Format) error {
	switch f {
	case Text:
		return t.WriteText(w)
	case LaTeX:
		return t.WriteLaTeX(w)
	}
	return errors.Errorf("%w: %q", ErrFormat, string(f))
}

func speedCell(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }

// WriteText writes t as right-aligned columns separated by two spaces.
func (t *Table) WriteText(w io.Writer) error {
	cells := make([][]string, 0, len(t.Rows)+1)
	cells = append(cells, append([]string{t.SpeedLabel}, t.Labels...))
	for _, r := range t.Rows {
		cells = append(cells, append([]string{speedCell(r.Speed)}, r.Paces...))
	}

	widths := make([]int, len(cells[0]))
	for _, line := range cells {
		for i, c := range line {
			widths[i] = max(widths[i], len(c))
		}
	}

	var sb strings.Builder
	for _, line := range cells {
		for i, c := range line {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(strings.Repeat(" ", widths[i]-len(c)))
			sb.WriteString(c)
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "write text table")
	}
	return nil
}

const latexPreamble = `\documentclass[11pt]{article}
\usepackage{amsmath}
\usepackage{fullpage}
\usepackage{booktabs}
\begin{document}
\begin{Large}
\thispagestyle{empty}
\sffamily
\begin{center}
`

const latexClosing = `\bottomrule
\end{tabular}
\end{center}
\end{Large}
\end{document}
`

// WriteLaTeX writes t as a standalone LaTeX document with a booktabs
// tabular.
func (t *Table) WriteLaTeX(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(latexPreamble)
	sb.WriteString(`\begin{tabular}{` + strings.Repeat("r", len(t.Labels)+1) + "}\n")
	sb.WriteString("\\toprule\n")
	for i, l := range append([]string{t.SpeedLabel}, t.Labels...) {
		if i > 0 {
			sb.WriteString(" & ")
		}
		sb.WriteString(`\multicolumn{1}{c}{` + l + "}")
	}
	sb.WriteString(" \\\\ \\midrule\n")
	for _, r := range t.Rows {
		sb.WriteString(speedCell(r.Speed))
		for _, p := range r.Paces {
			sb.WriteString(" & ")
			sb.WriteString(p)
		}
		sb.WriteString(" \\\\\n")
	}
	sb.WriteString(latexClosing)
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "write latex table")
	}
	return nil
}
