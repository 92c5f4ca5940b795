// Package shell implements the interactive GQL shell used by the minigu
// CLI. One shell owns one blocking client; queries run one at a time, which
// matches the handle's single-call-in-flight contract.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	minigu "github.com/minigu-db/minigu-go"
)

// ErrNoTerminal is returned when the shell is started without a TTY.
var ErrNoTerminal = errors.New("shell: interactive shell requires a terminal")

// entry is one executed statement and its outcome.
type entry struct {
	query  string
	result *minigu.Result
	err    error
}

// resultMsg delivers a finished query back to the model.
type resultMsg entry

// Model is the bubbletea model for the shell.
type Model struct {
	styles *Styles
	input  textinput.Model
	client *minigu.Client

	history []entry
	running bool
	width   int
	height  int
}

// New creates a shell model over a blocking client.
func New(client *minigu.Client) *Model {
	input := textinput.New()
	input.Placeholder = "MATCH (n) RETURN n"
	input.Prompt = "gql> "
	input.Focus()

	return &Model{
		styles: DefaultStyles(),
		input:  input,
		client: client,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case resultMsg:
		m.running = false
		m.history = append(m.history, entry(msg))

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if m.running {
				return m, nil
			}

			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}

			m.input.SetValue("")

			if query == ":quit" || query == ":q" {
				return m, tea.Quit
			}

			if query == ":status" {
				m.history = append(m.history, entry{query: query, err: nil, result: statusResult(m.client.Status())})

				return m, nil
			}

			m.running = true

			return m, m.run(query)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// run executes one statement off the UI loop.
func (m *Model) run(query string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.Execute(context.Background(), query)

		return resultMsg{query: query, result: result, err: err}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("minigu"))
	b.WriteString(m.styles.Dim.Render("  interactive GQL shell"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(m.styles.Prompt.Render("gql> "))
		b.WriteString(m.styles.Query.Render(e.query))
		b.WriteString("\n")

		switch {
		case e.err != nil:
			kind := minigu.KindOf(e.err)
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("[%s] %v", kind, e.err)))
		case e.result != nil:
			b.WriteString(RenderTable(m.styles, e.result))
		}

		b.WriteString("\n\n")
	}

	if m.running {
		b.WriteString(m.styles.Dim.Render("running..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(":status connection info · :quit exit · ctrl+c abort"))

	return b.String()
}

// statusResult projects a connection status snapshot into a result so it
// renders through the same table path as query output.
func statusResult(status minigu.Status) *minigu.Result {
	return &minigu.Result{
		Schema: []minigu.Column{
			{Name: "connected", Type: "BOOL"},
			{Name: "closed", Type: "BOOL"},
			{Name: "thread_count", Type: "INT64"},
			{Name: "cache_size", Type: "INT64"},
		},
		Data: [][]any{{
			status.Connected,
			status.Closed,
			status.Config.ThreadCount,
			status.Config.CacheSize,
		}},
	}
}

// Run starts the interactive shell on the current terminal.
func Run(client *minigu.Client) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return ErrNoTerminal
	}

	program := tea.NewProgram(New(client), tea.WithAltScreen())

	_, err := program.Run()

	return err
}
