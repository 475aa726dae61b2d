package prompt

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

// run starts a prompt program on stderr and returns its final model.
func run[M tea.Model](model M) (M, error) {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	final, err := p.Run()
	if err != nil {
		var zero M
		return zero, err
	}
	return final.(M), nil
}
