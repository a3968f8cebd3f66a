package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrEmptyPrompt        = errors.New("empty prompt")
)

// ParsingArgError reports the first declared argument whose token failed validation.
type ParsingArgError struct {
	Name     string
	Type     ArgumentType
	Received string
}

func NewParsingArgError(name string, argType ArgumentType, received string) *ParsingArgError {
	return &ParsingArgError{Name: name, Type: argType, Received: received}
}

func (e *ParsingArgError) Error() string {
	return fmt.Sprintf("expected %s for `%s`, got `%s`", e.Type.describe(), e.Name, e.Received)
}

// CommandError is a command-level failure not tied to a single argument. Its message is shown to the user as is.
type CommandError struct {
	Message string
}

func NewCommandError(format string, args ...any) *CommandError {
	return &CommandError{Message: fmt.Sprintf(format, args...)}
}

func (e *CommandError) Error() string {
	return e.Message
}
