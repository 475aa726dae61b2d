package prompt

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	cancelled bool
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m textInputModel) render() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s\n%s", m.prompt, m.textInput.View())
}

func newTextInputModel(prompt, initial string) textInputModel {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	ti.CharLimit = 200
	ti.SetWidth(60)

	return textInputModel{
		textInput: ti,
		prompt:    prompt,
	}
}

// TextInput shows a text input prompt pre-filled with initial and returns
// the trimmed input.
func TextInput(prompt, initial string) (TextInputResult, error) {
	m, err := run(newTextInputModel(prompt, initial))
	if err != nil {
		return TextInputResult{}, err
	}
	return TextInputResult{
		Value:     strings.TrimSpace(m.textInput.Value()),
		Cancelled: m.cancelled,
	}, nil
}
