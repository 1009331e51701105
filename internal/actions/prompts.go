package actions

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via BGIT_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (BGIT_NO_INTERACTIVE is set)")

// InteractiveConfirmer asks the user on the terminal. Outside a terminal
// every question is answered with a decline so that scripted runs never
// block on a prompt.
type InteractiveConfirmer struct{}

// Confirm asks a yes/no question with the given default answer
func (InteractiveConfirmer) Confirm(prompt string, def bool) (bool, error) {
	if os.Getenv("BGIT_NO_INTERACTIVE") != "" {
		return false, ErrInteractiveDisabled
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return false, nil
	}

	var answer bool
	question := &survey.Confirm{
		Message: prompt,
		Default: def,
	}
	if err := survey.AskOne(question, &answer); err != nil {
		return false, fmt.Errorf("canceled")
	}
	return answer, nil
}

// FixedConfirmer answers every question with a fixed answer. Used in tests.
type FixedConfirmer struct {
	Answer bool
}

// Confirm returns the fixed answer
func (c FixedConfirmer) Confirm(string, bool) (bool, error) {
	return c.Answer, nil
}
