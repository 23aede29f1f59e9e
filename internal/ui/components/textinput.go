package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for drill answers. Keystrokes
// outside the alphabet never reach the buffer.
type AnswerInput struct {
	Model    textinput.Model
	Alphabet problemgen.Alphabet
}

// NewAnswerInput creates a focused answer input limited to alpha.
func NewAnswerInput(alpha problemgen.Alphabet, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = "?"
	ti.Prompt = ""
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(maxWidth)
	}
	ti.Focus()

	return AnswerInput{Model: ti, Alphabet: alpha}
}

// Init returns the cursor blink command.
func (t AnswerInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards editing keys to the text input and drops printable
// characters the alphabet rejects. The resulting value is sanitized.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
		for _, r := range kmsg.Text {
			if !t.Alphabet.Accepts(r) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if clean := t.Alphabet.Sanitize(t.Model.Value()); clean != t.Model.Value() {
		t.SetValue(clean)
	}
	return t, cmd
}

// SetValue replaces the buffer and moves the cursor to the end.
func (t *AnswerInput) SetValue(v string) {
	t.Model.SetValue(v)
	t.Model.CursorEnd()
}

// Value returns the current buffer.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// View renders the input in the answer box. A locked input is shown
// without focus styling.
func (t AnswerInput) View(locked bool) string {
	if locked {
		return theme.AnswerBoxLocked.Render(t.Model.Value())
	}
	return theme.AnswerBox.Render(t.Model.View())
}
