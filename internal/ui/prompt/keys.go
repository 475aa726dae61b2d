package prompt

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/gp/internal/ui/styles"
)

// Key binds key presses to an action.
type Key struct {
	Keys   []string // as reported by tea.KeyPressMsg.String, e.g. "enter", "ctrl+enter", "w"
	Label  string   // shown in the hint, e.g. "↵"
	Help   string
	Action string
}

// KeyResult holds the action of the pressed key.
type KeyResult struct {
	Action    string
	Cancelled bool
}

type keyModel struct {
	keys      []Key
	action    string
	done      bool
	cancelled bool
}

func (m keyModel) Init() tea.Cmd {
	return nil
}

func (m keyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	pressed := key.String()
	for _, k := range m.keys {
		if slices.Contains(k.Keys, pressed) {
			m.action = k.Action
			m.done = true
			return m, tea.Quit
		}
	}
	if pressed == "ctrl+c" {
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m keyModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m keyModel) render() string {
	if m.done {
		return ""
	}
	return "  " + Hint(m.keys) + " "
}

// Hint renders "[label] help · [label] help".
func Hint(keys []Key) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, styles.AccentStyle.Render("["+k.Label+"]")+" "+k.Help)
	}
	return strings.Join(parts, styles.MutedStyle.Render("  ·  "))
}

// ReadKey waits for one of keys and returns its action. Other keys are
// ignored; ctrl+c cancels unless bound.
func ReadKey(keys []Key) (KeyResult, error) {
	m, err := run(keyModel{keys: keys})
	if err != nil {
		return KeyResult{}, err
	}
	return KeyResult{Action: m.action, Cancelled: m.cancelled}, nil
}
