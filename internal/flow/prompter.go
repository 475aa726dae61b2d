package flow

import (
	"errors"

	"github.com/raphi011/gp/internal/ui/prompt"
)

// ErrCancelled is returned by a Prompter when the user backs out.
var ErrCancelled = errors.New("cancelled")

// Prompter asks the user for input.
type Prompter interface {
	// Select returns the index of the chosen item.
	Select(title string, items []string) (int, error)
	// Action waits for one of keys and returns its Action.
	Action(keys []prompt.Key) (string, error)
	Confirm(question string, defaultYes bool) (bool, error)
	// Input returns the trimmed answer; initial pre-fills the field.
	Input(title, initial string) (string, error)
}

// Terminal is the Prompter backed by the interactive prompts.
type Terminal struct{}

var _ Prompter = Terminal{}

func (Terminal) Select(title string, items []string) (int, error) {
	res, err := prompt.Select(title, items)
	if err != nil {
		return -1, err
	}
	if res.Cancelled {
		return -1, ErrCancelled
	}
	return res.Index, nil
}

func (Terminal) Action(keys []prompt.Key) (string, error) {
	res, err := prompt.ReadKey(keys)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", ErrCancelled
	}
	return res.Action, nil
}

func (Terminal) Confirm(question string, defaultYes bool) (bool, error) {
	res, err := prompt.Confirm(question, defaultYes)
	if err != nil {
		return false, err
	}
	if res.Cancelled {
		return false, ErrCancelled
	}
	return res.Confirmed, nil
}

func (Terminal) Input(title, initial string) (string, error) {
	res, err := prompt.TextInput(title, initial)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", ErrCancelled
	}
	return res.Value, nil
}
