package prompt

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/gp/internal/ui/styles"
)

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

const maxVisible = 12

type options []string

func (o options) String(i int) string { return o[i] }
func (o options) Len() int            { return len(o) }

type selectModel struct {
	prompt    string
	options   options
	filter    string
	matches   []fuzzy.Match
	cursor    int // position in matches
	selected  int // index into options, -1 if none
	done      bool
	cancelled bool
}

func newSelectModel(prompt string, opts []string) selectModel {
	m := selectModel{prompt: prompt, options: opts, selected: -1}
	m.applyFilter()
	return m
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "enter":
		if len(m.matches) == 0 {
			return m, nil
		}
		m.selected = m.matches[m.cursor].Index
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case "up", "ctrl+p", "ctrl+k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n", "ctrl+j":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
	case "backspace":
		if m.filter != "" {
			r := []rune(m.filter)
			m.filter = string(r[:len(r)-1])
			m.applyFilter()
		}
	case "ctrl+u":
		m.filter = ""
		m.applyFilter()
	default:
		if key.Text != "" {
			m.filter += key.Text
			m.applyFilter()
		}
	}
	return m, nil
}

// applyFilter ranks options against the filter. Without a filter the
// original order is kept.
func (m *selectModel) applyFilter() {
	if m.filter == "" {
		m.matches = make([]fuzzy.Match, len(m.options))
		for i, o := range m.options {
			m.matches[i] = fuzzy.Match{Str: o, Index: i}
		}
	} else {
		m.matches = fuzzy.FindFrom(m.filter, m.options)
	}
	m.cursor = 0
}

func (m selectModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m selectModel) render() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Bold.Render(m.prompt) + " " + m.filter + "\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.matches))
	for i := start; i < end; i++ {
		match := m.matches[i]
		if i == m.cursor {
			b.WriteString(styles.AccentStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(highlight(match, i == m.cursor) + "\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching items") + "\n")
	}
	b.WriteString(styles.MutedStyle.Render("↑/↓ move • type to filter • enter select • esc cancel"))
	return b.String()
}

// highlight renders the matched characters of a fuzzy match.
func highlight(match fuzzy.Match, current bool) string {
	base := styles.NormalStyle
	if current {
		base = styles.AccentStyle
	}
	if len(match.MatchedIndexes) == 0 {
		return base.Render(match.Str)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}
	var b strings.Builder
	// MatchedIndexes are byte offsets
	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Select shows a fuzzy-filtered list and returns the chosen option.
func Select(prompt string, opts []string) (SelectResult, error) {
	if len(opts) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	m, err := run(newSelectModel(prompt, opts))
	if err != nil {
		return SelectResult{}, err
	}
	if m.cancelled || m.selected < 0 || m.selected >= len(opts) {
		return SelectResult{Cancelled: true}, nil
	}
	return SelectResult{
		Value: opts[m.selected],
		Index: m.selected,
	}, nil
}
