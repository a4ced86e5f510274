// Package prompt wraps interactive terminal prompts used by the CLIs.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt: aborted")

// ErrNoOptions is returned when a select prompt has nothing to offer.
var ErrNoOptions = errors.New("prompt: no options to select from")

// SelectConfig configures a single choice prompt.
type SelectConfig struct {
	Message  string
	Options  []string
	Default  string
	Help     string
	PageSize int
}

// Selector asks the user to pick one option.
type Selector interface {
	Select(ctx context.Context, cfg SelectConfig) (string, error)
}

// Survey is the terminal Selector.
type Survey struct{}

var _ Selector = Survey{}

// Select implements Selector.
func (Survey) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(cfg.Options) == 0 {
		return "", ErrNoOptions
	}
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if indexOf(cfg.Options, cfg.Default) >= 0 {
		prompt.Default = cfg.Default
	}
	var out string
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	if value == "" {
		return -1
	}
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
