package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/pml/log"
	"github.com/ardnew/pml/pml"
)

// Edit opens an interactive order editor. The pane beside the editor shows
// the validation result and, for valid orders, the rendered order; both
// update on every keystroke.
type Edit struct {
	Format string `default:"text" enum:"text,tree" help:"Preview format (${enum})." short:"f"`

	Source string `arg:"" help:"Order file to edit; a sample order is loaded if omitted or missing." name:"source" optional:"" type:"path"`
}

// Run executes the edit command.
func (e *Edit) Run(ctx context.Context, proc *pml.Processor) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	text := pml.SampleOrder

	if e.Source != "" {
		data, err := os.ReadFile(e.Source)

		switch {
		case err == nil:
			text = string(data)
		case !errors.Is(err, fs.ErrNotExist):
			return ErrReadSource.With(slog.String("file", e.Source)).Wrap(err)
		}
	}

	m := newEditor(ctx, proc, e.Source, text, e.Format)

	_, err = tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(stdinFrom(ctx)),
		tea.WithOutput(stdout(ctx)),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return ErrEditorAborted.Wrap(err)
	}

	return nil
}

var (
	editTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	editValidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	editErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	editHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	editPaneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	editPreviewTree = newTreeStyle(os.Stdout)
)

// savedMsg reports the outcome of writing the buffer to disk.
type savedMsg struct{ err error }

// editor is the bubbletea model of the edit command.
type editor struct {
	ctx    context.Context
	proc   *pml.Processor
	path   string
	format string

	input   textarea.Model
	valid   bool
	status  string
	preview string
	notice  string
}

func newEditor(
	ctx context.Context,
	proc *pml.Processor,
	path, text, format string,
) editor {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = true
	ta.Placeholder = `{order number="1"} ... {\order}`
	ta.SetWidth(60)
	ta.SetHeight(24)
	ta.SetValue(text)
	ta.Focus()

	m := editor{
		ctx:    ctx,
		proc:   proc,
		path:   path,
		format: format,
		input:  ta,
	}

	return m.refresh()
}

func (m editor) Init() tea.Cmd {
	return textarea.Blink
}

func (m editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.SetWidth(max(msg.Width/2-2, 20))
		m.input.SetHeight(max(msg.Height-6, 5))

		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.notice = editErrorStyle.Render("save failed: " + msg.err.Error())
			log.WarnContext(m.ctx, "save failed",
				slog.String("file", m.path), slog.Any("error", msg.err))
		} else {
			m.notice = editValidStyle.Render("saved " + m.path)
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+s":
			if m.path == "" {
				m.notice = editHintStyle.Render("no file to save to; pass a file name to edit")

				return m, nil
			}

			return m, m.save()
		}
	}

	before := m.input.Value()

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.notice = ""
		m = m.refresh()
	}

	return m, cmd
}

func (m editor) View() string {
	title := "pml edit"
	if m.path != "" {
		title += " " + m.path
	}

	status := editErrorStyle.Render(m.status)
	if m.valid {
		status = editValidStyle.Render(m.status)
	}

	right := status
	if m.preview != "" {
		right += "\n\n" + m.preview
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		editPaneStyle.Render(m.input.View()),
		editPaneStyle.Render(right),
	)

	var b strings.Builder

	b.WriteString(editTitleStyle.Render(title) + "\n")
	b.WriteString(body + "\n")

	if m.notice != "" {
		b.WriteString(m.notice + "\n")
	}

	b.WriteString(editHintStyle.Render("ctrl+s save • esc quit"))

	return b.String()
}

// refresh revalidates the buffer and rebuilds the preview.
func (m editor) refresh() editor {
	order, err := m.proc.Process(m.ctx, m.input.Value())
	if err != nil {
		m.valid = false
		m.preview = ""
		m.status = pml.WrapError(err).Message()

		return m
	}

	m.valid = true
	m.status = pml.Valid

	switch m.format {
	case "tree":
		m.preview = orderTree(order, editPreviewTree).String()
	default:
		m.preview = strings.TrimRight(order.String(), "\n")
	}

	return m
}

// save returns a command writing the buffer to the edited file.
func (m editor) save() tea.Cmd {
	path, text := m.path, m.input.Value()

	return func() tea.Msg {
		return savedMsg{err: os.WriteFile(path, []byte(text), 0o644)}
	}
}
