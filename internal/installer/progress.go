package installer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
)

// progressLine redraws a single console line as work advances. With a known
// total it renders a bar, otherwise a running counter.
type progressLine struct {
	out    io.Writer
	label  string
	total  int64
	done   int64
	format func(int64) string
	bar    progress.Model
}

func newProgressLine(out io.Writer, label string, total int64, format func(int64) string) *progressLine {
	if out == nil {
		out = io.Discard
	}
	return &progressLine{
		out:    out,
		label:  label,
		total:  total,
		format: format,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// newByteProgress tracks a download; total is the advertised Content-Length or -1.
func newByteProgress(out io.Writer, label string, total int64) *progressLine {
	return newProgressLine(out, label, total, func(n int64) string {
		return humanize.Bytes(uint64(n))
	})
}

// newEntryProgress tracks archive entries; total is -1 for streamed formats.
func newEntryProgress(out io.Writer, label string, total int64) *progressLine {
	return newProgressLine(out, label, total, func(n int64) string {
		return strconv.FormatInt(n, 10)
	})
}

func (p *progressLine) Add(n int64) {
	p.done += n
	p.render()
}

// Fraction is the completed share of total, or -1 when total is unknown.
func (p *progressLine) Fraction() float64 {
	if p.total <= 0 {
		return -1
	}
	f := float64(p.done) / float64(p.total)
	if f > 1 {
		f = 1
	}
	return f
}

func (p *progressLine) render() {
	if f := p.Fraction(); f >= 0 {
		fmt.Fprintf(p.out, "\r%s: %s %s/%s", p.label, p.bar.ViewAs(f), p.format(p.done), p.format(p.total))
		return
	}
	fmt.Fprintf(p.out, "\r%s: %s", p.label, p.format(p.done))
}

// Finish ends the progress line.
func (p *progressLine) Finish() {
	fmt.Fprintln(p.out)
}
