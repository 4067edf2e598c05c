// SPDX-License-Identifier: MPL-2.0

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

// ProgressBar is a cosmetic progress indicator for step-wise work. It
// redraws in place on each advance; there is no background animation, the
// caller drives every update.
type ProgressBar struct {
	console *Console
	model   progress.Model
	label   string
	total   int
	current int
	done    bool
}

// Progress creates a progress bar for total steps, rendered with the
// console's theme.
func (c *Console) Progress(label string, total int) *ProgressBar {
	if total < 1 {
		total = 1
	}
	m := progress.New(
		progress.WithGradient(string(c.theme.Secondary), string(c.theme.Primary)),
		progress.WithWidth(40),
	)
	p := &ProgressBar{
		console: c,
		model:   m,
		label:   label,
		total:   total,
	}
	p.draw()
	return p
}

// Advance moves the bar forward by n steps.
func (p *ProgressBar) Advance(n int) {
	if p.done {
		return
	}
	p.current += n
	if p.current > p.total {
		p.current = p.total
	}
	p.draw()
}

// Done completes the bar and moves to the next line.
func (p *ProgressBar) Done() {
	if p.done {
		return
	}
	p.current = p.total
	p.draw()
	p.done = true
	fmt.Fprintln(p.console.out)
}

func (p *ProgressBar) draw() {
	frac := float64(p.current) / float64(p.total)
	fmt.Fprintf(p.console.out, "\r%s %s", p.label, p.model.ViewAs(frac))
}
