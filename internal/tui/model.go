// Package tui is the interactive terminal page of cipherpad: a cipher
// selector, a key field, a text area and an output pane.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RowanDark/cipherpad/internal/cipher"
	"github.com/RowanDark/cipherpad/internal/logging"
)

type focusArea int

const (
	focusText focusArea = iota
	focusKey
)

// Options configures New.
type Options struct {
	// Kind is the cipher selected at start.
	Kind cipher.Kind
	// Audit receives one event per encode or decode. Nil discards them.
	Audit *logging.AuditLogger
}

// Model is the bubbletea model of the page.
type Model struct {
	kinds    []cipher.Kind
	selected int

	keyInput textinput.Model
	textArea textarea.Model
	focus    focusArea

	output    string
	outputErr bool

	audit  *logging.AuditLogger
	width  int
	styles Styles
}

// New creates the page with the text area focused.
func New(opts Options) Model {
	ki := textinput.New()
	ki.CharLimit = 256
	ki.Width = 40
	ki.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Type or paste text..."
	ta.ShowLineNumbers = false
	ta.SetWidth(80)
	ta.SetHeight(6)
	ta.Focus()

	audit := opts.Audit
	if audit == nil {
		audit = logging.NewAuditLogger("tui", nil)
	}

	m := Model{
		kinds:    cipher.Kinds(),
		keyInput: ki,
		textArea: ta,
		focus:    focusText,
		audit:    audit,
		styles:   DefaultStyles(),
	}
	if k, err := cipher.ParseKind(string(opts.Kind)); err == nil {
		for i, candidate := range m.kinds {
			if candidate == k {
				m.selected = i
			}
		}
	}
	m.updateCipherUI()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 4; w > 20 {
			m.textArea.SetWidth(w)
			m.keyInput.Width = w - 10
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.selectKind(m.selected + 1)
			return m, nil
		case "shift+tab":
			m.selectKind(m.selected - 1)
			return m, nil
		case "ctrl+k":
			m.toggleFocus()
			return m, nil
		case "ctrl+e":
			m.transform(false)
			return m, nil
		case "ctrl+d":
			m.transform(true)
			return m, nil
		case "ctrl+l":
			m.clear()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusKey {
		m.keyInput, cmd = m.keyInput.Update(msg)
	} else {
		m.textArea, cmd = m.textArea.Update(msg)
	}
	return m, cmd
}

// Kind returns the selected cipher.
func (m Model) Kind() cipher.Kind {
	return m.kinds[m.selected]
}

// KeyEnabled reports whether the selected cipher takes a key.
func (m Model) KeyEnabled() bool {
	c, ok := cipher.Lookup(m.Kind())
	return ok && c.KeySpec().Required
}

// Output returns the output pane content and whether it is an error.
func (m Model) Output() (string, bool) {
	return m.output, m.outputErr
}

func (m *Model) selectKind(i int) {
	n := len(m.kinds)
	m.selected = ((i % n) + n) % n
	m.updateCipherUI()
}

// updateCipherUI syncs the key field and help line with the selected cipher.
func (m *Model) updateCipherUI() {
	c, ok := cipher.Lookup(m.Kind())
	if !ok {
		return
	}
	m.keyInput.Placeholder = c.KeySpec().Placeholder
	if !c.KeySpec().Required && m.focus == focusKey {
		m.focusText()
	}
}

func (m *Model) toggleFocus() {
	if m.focus == focusKey {
		m.focusText()
		return
	}
	if !m.KeyEnabled() {
		return
	}
	m.focus = focusKey
	m.textArea.Blur()
	m.keyInput.Focus()
}

func (m *Model) focusText() {
	m.focus = focusText
	m.keyInput.Blur()
	m.textArea.Focus()
}

func (m *Model) transform(decode bool) {
	m.output, m.outputErr = "", false

	key := ""
	if m.KeyEnabled() {
		key = m.keyInput.Value()
	}
	text := m.textArea.Value()
	res := cipher.TransformRequest(cipher.Request{
		Kind:   m.Kind(),
		Text:   text,
		Key:    key,
		Decode: decode,
	})
	_ = m.audit.Emit(logging.TransformEvent(text, res))

	m.output = res.Message()
	m.outputErr = !res.OK()
}

func (m *Model) clear() {
	m.textArea.Reset()
	m.output, m.outputErr = "", false
}

// View renders the page.
func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("cipherpad"))
	b.WriteString("\n")

	options := make([]string, 0, len(m.kinds))
	for i, k := range m.kinds {
		if i == m.selected {
			options = append(options, s.Selected.Render(string(k)))
		} else {
			options = append(options, s.Option.Render(string(k)))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, s.Label.Render("Cipher"), strings.Join(options, "  ")))
	b.WriteString("\n")

	keyView := s.Disabled.Render(m.keyInput.Placeholder)
	if m.KeyEnabled() {
		keyView = m.keyInput.View()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, s.Label.Render("Key"), keyView))
	b.WriteString("\n")

	if c, ok := cipher.Lookup(m.Kind()); ok {
		b.WriteString(s.Help.Render(c.Help()))
		b.WriteString("\n")
	}

	b.WriteString(s.Pane.Render(m.textArea.View()))
	b.WriteString("\n")

	b.WriteString(s.Label.Render("Output"))
	b.WriteString("\n")
	if m.outputErr {
		b.WriteString(s.Error.Render(m.output))
	} else {
		b.WriteString(s.Output.Render(m.output))
	}
	b.WriteString("\n")

	b.WriteString(s.Footer.Render("tab/shift+tab cipher • ctrl+k key field • ctrl+e encode • ctrl+d decode • ctrl+l clear • esc quit"))
	return b.String()
}

// Run starts the page on the given terminal streams and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
