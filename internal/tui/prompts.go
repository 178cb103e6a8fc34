package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via CONFLICTLAB_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (CONFLICTLAB_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("CONFLICTLAB_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// Prompter asks the user for input
type Prompter interface {
	// Input asks for a line of text. An empty answer yields def.
	Input(message, def string) (string, error)
	// Confirm asks a yes/no question
	Confirm(message string, def bool) (bool, error)
}

// NewPrompter returns a terminal prompter when stdin and stdout are a TTY and a
// line-based prompter reading stdin otherwise
func NewPrompter() Prompter {
	if IsTTY() {
		return &SurveyPrompter{}
	}
	return NewLinePrompter(os.Stdin, os.Stdout)
}

// SurveyPrompter prompts on the terminal: survey for text, bubbletea for confirmations
type SurveyPrompter struct{}

// Input prompts the user for text input
func (p *SurveyPrompter) Input(message, def string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return answer, nil
}

// Confirm prompts the user for yes/no confirmation
func (p *SurveyPrompter) Confirm(message string, def bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	m := newConfirmModel(message, def)

	prog := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := prog.Run()
	if err != nil {
		return false, err
	}

	if finalModel, ok := model.(confirmModel); ok {
		if finalModel.err != nil {
			return false, finalModel.err
		}
		return finalModel.choice, nil
	}

	return false, fmt.Errorf("unexpected model type")
}

// confirmKeyMap defines the key bindings of the confirmation prompt
type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Accept key.Binding
	Cancel key.Binding
}

var confirmKeys = confirmKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "default"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// confirmModel is a simple yes/no confirmation prompt model
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
	help   help.Model
}

func newConfirmModel(prompt string, def bool) confirmModel {
	return confirmModel{
		prompt: prompt,
		choice: def,
		help:   help.New(),
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, confirmKeys.Yes):
		m.choice = true
	case key.Matches(keyMsg, confirmKeys.No):
		m.choice = false
	case key.Matches(keyMsg, confirmKeys.Accept):
	case key.Matches(keyMsg, confirmKeys.Cancel):
		m.err = fmt.Errorf("canceled")
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	yesNo := "[y/N]"
	if m.choice {
		yesNo = "[Y/n]"
	}
	helpView := m.help.ShortHelpView([]key.Binding{confirmKeys.Yes, confirmKeys.No, confirmKeys.Accept, confirmKeys.Cancel})
	return styleObj.Render(fmt.Sprintf("%s %s\n\n%s", m.prompt, yesNo, helpView))
}

// LinePrompter reads one answer per line from a reader. It backs piped input
// and tests.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter reading from in and echoing prompts to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Input prints the message and reads one line
func (p *LinePrompter) Input(message, def string) (string, error) {
	if def != "" {
		_, _ = fmt.Fprintf(p.out, "%s [%s]: ", message, def)
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: ", message)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Confirm prints the message and reads y/yes or n/no
func (p *LinePrompter) Confirm(message string, def bool) (bool, error) {
	yesNo := "[y/N]"
	if def {
		yesNo = "[Y/n]"
	}
	_, _ = fmt.Fprintf(p.out, "%s %s: ", message, yesNo)

	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", fmt.Errorf("no input available: %w", err)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
