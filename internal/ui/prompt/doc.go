// Package prompt provides simple interactive prompts.
//
// Every prompt is a small bubbletea program that renders on stderr, so
// stdout stays free for command output.
//
// Available prompts:
//   - [Select]: Fuzzy-filtered single selection from a list
//   - [ReadKey]: Single key press mapped to an action
//   - [Confirm]: Yes/No confirmation prompt with a default
//   - [TextInput]: Single-line text input with an initial value
package prompt
