package port

import (
	"context"
	"kubbot/internal/config"
	"kubbot/internal/core/domain"
)

// NoDescription is reported for commands that do not implement Describer.
const NoDescription = "[no description provided]"

type Command interface {
	// Name returns the primary name the command is registered under.
	Name() string
	// Arguments returns the command's parameters in call-position order. It must return the same signatures on
	// every call.
	Arguments() []domain.ArgumentSignature
	// Call executes the command with arguments already validated against Arguments.
	Call(ctx context.Context, cc *domain.Context, args []domain.ParsedArgument) error
}

// Aliaser is implemented by commands reachable under additional names.
type Aliaser interface {
	Aliases() []string
}

// Describer is implemented by commands with a help text.
type Describer interface {
	Description() string
}

// Exemplifier is implemented by commands that ship usage examples.
type Exemplifier interface {
	Examples() []domain.Example
}

func AliasesOf(cmd Command) []string {
	if a, ok := cmd.(Aliaser); ok {
		return a.Aliases()
	}

	return nil
}

func DescriptionOf(cmd Command) string {
	if d, ok := cmd.(Describer); ok {
		return d.Description()
	}

	return NoDescription
}

func ExamplesOf(cmd Command) []domain.Example {
	if e, ok := cmd.(Exemplifier); ok {
		return e.Examples()
	}

	return nil
}

// CommandFactory builds a command from the startup configuration.
type CommandFactory interface {
	Make(cfg *config.Config) Command
}

// FactoryFunc adapts a plain function to CommandFactory.
type FactoryFunc func(cfg *config.Config) Command

func (f FactoryFunc) Make(cfg *config.Config) Command {
	return f(cfg)
}

type CommandRunner interface {
	// TryRun validates raw argument tokens against the wrapped command and invokes it.
	TryRun(ctx context.Context, cc *domain.Context, args []string) error
	// Command returns the wrapped command.
	Command() Command
}

type CommandRegistry interface {
	// Get retrieves the runner registered under a name or alias.
	Get(name string) (CommandRunner, error)
	// ListCommands returns the primary names of all registered commands.
	ListCommands() []string
}

type CommandLister interface {
	// Commands returns every registered command once, ordered by name.
	Commands() []Command
	// Lookup resolves a name or alias to a command.
	Lookup(name string) (Command, bool)
}
