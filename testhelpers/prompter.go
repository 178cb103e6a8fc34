package testhelpers

import (
	"fmt"
	"strings"
)

// ScriptedPrompter answers prompts from a fixed list, in order. An empty answer
// takes the prompt's default.
type ScriptedPrompter struct {
	Answers []string
	// Asked records every prompt message seen
	Asked []string
}

// NewScriptedPrompter creates a prompter that replays answers
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

// Queue appends more answers
func (p *ScriptedPrompter) Queue(answers ...string) {
	p.Answers = append(p.Answers, answers...)
}

// Input returns the next scripted answer
func (p *ScriptedPrompter) Input(message, def string) (string, error) {
	answer, err := p.next(message)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm returns true when the next scripted answer is y or yes
func (p *ScriptedPrompter) Confirm(message string, def bool) (bool, error) {
	answer, err := p.next(message)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}

func (p *ScriptedPrompter) next(message string) (string, error) {
	p.Asked = append(p.Asked, message)
	if len(p.Answers) == 0 {
		return "", fmt.Errorf("no scripted answer for prompt %q", message)
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

// RecordingOpener records the files it is asked to open instead of opening them
type RecordingOpener struct {
	Opened []string
	// Err is returned from every OpenFile call when set
	Err error
}

// OpenFile records path and returns Err
func (o *RecordingOpener) OpenFile(path string) error {
	o.Opened = append(o.Opened, path)
	return o.Err
}
