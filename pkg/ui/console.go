// SPDX-License-Identifier: MPL-2.0

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Console is the high-level terminal output facade handed to every command
// through its context. All rendering goes through the active theme.
type Console struct {
	theme Theme
	out   io.Writer
	err   io.Writer

	headerStyle    lipgloss.Style
	subtitleStyle  lipgloss.Style
	successStyle   lipgloss.Style
	warningStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	infoStyle      lipgloss.Style
	panelStyle     lipgloss.Style
	tableHeadStyle lipgloss.Style
}

// Option configures a Console.
type Option func(*Console)

// WithTheme selects a theme by name; unknown names fall back to the default
// theme.
func WithTheme(name string) Option {
	return func(c *Console) {
		c.theme = ResolveTheme(name)
	}
}

// WithOutput redirects normal output (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

// WithErrOutput redirects error output (default os.Stderr).
func WithErrOutput(w io.Writer) Option {
	return func(c *Console) {
		c.err = w
	}
}

// NewConsole creates a Console with the given options.
func NewConsole(opts ...Option) *Console {
	c := &Console{
		theme: DefaultTheme,
		out:   os.Stdout,
		err:   os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.headerStyle = lipgloss.NewStyle().Bold(true).Foreground(c.theme.Header)
	c.subtitleStyle = lipgloss.NewStyle().Foreground(c.theme.Secondary)
	c.successStyle = lipgloss.NewStyle().Bold(true).Foreground(c.theme.Success)
	c.warningStyle = lipgloss.NewStyle().Bold(true).Foreground(c.theme.Warning)
	c.errorStyle = lipgloss.NewStyle().Bold(true).Foreground(c.theme.Error)
	c.infoStyle = lipgloss.NewStyle().Bold(true).Foreground(c.theme.Info)
	c.panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.theme.Primary).
		Padding(0, 2)
	c.tableHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(c.theme.Secondary)

	return c
}

// Theme returns the active theme.
func (c *Console) Theme() Theme {
	return c.theme
}

// Write prints plain text.
func (c *Console) Write(text string) {
	fmt.Fprintln(c.out, text)
}

// Header displays a large framed header with an optional subtitle.
func (c *Console) Header(title string, subtitle ...string) {
	content := c.headerStyle.Render(strings.ToUpper(title))
	if len(subtitle) > 0 && subtitle[0] != "" {
		content += "\n" + c.subtitleStyle.Render(subtitle[0])
	}
	fmt.Fprintln(c.out, c.panelStyle.Padding(1, 2).Render(content))
	fmt.Fprintln(c.out)
}

// Success displays a success message.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.successStyle.Render("✔"), msg)
}

// Error displays an error message. Errors go to the error stream so they
// survive output redirection.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.err, "%s %s\n", c.errorStyle.Render("✖"), msg)
}

// Warning displays a warning message.
func (c *Console) Warning(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.warningStyle.Render("⚠"), msg)
}

// Info displays an informational message.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.infoStyle.Render("ℹ"), msg)
}

// Table renders a bordered table with the given columns and rows.
func (c *Console) Table(columns []string, rows [][]string, title string) {
	if title != "" {
		fmt.Fprintln(c.out, c.headerStyle.Render(title))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(c.theme.Primary)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.tableHeadStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(columns...).
		Rows(rows...)

	fmt.Fprintln(c.out, t.Render())
	fmt.Fprintln(c.out)
}

// Panel displays content inside a rounded border, optionally titled.
func (c *Console) Panel(content, title string) {
	if title != "" {
		content = c.headerStyle.Render(title) + "\n" + content
	}
	fmt.Fprintln(c.out, c.panelStyle.Render(content))
}

// Markdown renders a markdown document styled for the terminal.
func (c *Console) Markdown(md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	fmt.Fprint(c.out, out)
	return nil
}

// Ask prompts for a line of input with an optional default value.
func (c *Console) Ask(question, defaultValue string) (string, error) {
	value := defaultValue
	input := huh.NewInput().
		Title(question).
		Value(&value)
	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Confirm asks a yes/no question.
func (c *Console) Confirm(question string, defaultValue bool) (bool, error) {
	value := defaultValue
	confirm := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return false, err
	}
	return value, nil
}

// Select asks the user to pick one of the given options.
func (c *Console) Select(question string, options []string) (string, error) {
	var value string
	sel := huh.NewSelect[string]().
		Title(question).
		Options(huh.NewOptions(options...)...).
		Value(&value)
	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		return "", err
	}
	return value, nil
}

// Prompt asks for input and validates it through convert, re-asking while
// the value is rejected. The converted value is returned.
func (c *Console) Prompt(question string, convert func(string) (any, error), defaultValue string) (any, error) {
	for {
		raw, err := c.Ask(question, defaultValue)
		if err != nil {
			return nil, err
		}
		v, convErr := convert(raw)
		if convErr != nil {
			c.Error(fmt.Sprintf("Invalid value: %v", convErr))
			continue
		}
		return v, nil
	}
}

// Spinner shows a spinner with the given title while work runs, then
// returns the work function's error.
func (c *Console) Spinner(title string, work func() error) error {
	var workErr error
	if err := spinner.New().
		Title(title).
		Action(func() { workErr = work() }).
		Run(); err != nil {
		return err
	}
	return workErr
}
