package tui

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"
)

// Prompter asks the user for input. PromptUI is the terminal
// implementation.
type Prompter interface {
	Select(label string, items []string) (int, error)
	Input(label string, masked bool) (string, error)
	Confirm(label string) (bool, error)
}

// PromptUI prompts through promptui. Nil streams mean the process's
// standard input and output.
type PromptUI struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (p *PromptUI) Select(label string, items []string) (int, error) {
	sel := promptui.Select{
		Label:    label,
		Items:    items,
		HideHelp: true,
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}
	idx, _, err := sel.Run()
	return idx, err
}

func (p *PromptUI) Input(label string, masked bool) (string, error) {
	prompt := promptui.Prompt{
		Label:  label,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}
	if masked {
		prompt.Mask = '*'
	}
	return prompt.Run()
}

// Confirm treats a "no" answer as false rather than an error.
func (p *PromptUI) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// isCancel reports whether err means the user wants out (Ctrl+C or end of
// input).
func isCancel(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF)
}
