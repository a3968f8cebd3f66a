package handler

import (
	"context"
	"errors"
	"fmt"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"
	"kubbot/internal/core/service"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotACommand    = errors.New("message is not a command")
	ErrUnknownCommand = errors.New("no handler for command")
	ErrUnauthorized   = errors.New("chat not authorized")
)

const (
	genericFailure = "something went wrong while running this command"
	timedOut       = "this command took too long and was cancelled"
)

// Command dispatches the messages of one platform to the registered commands.
type Command struct {
	registry   port.CommandRegistry
	authorizer service.Authorizer
	sender     port.TextSender
	prefix     string
	timeout    time.Duration
}

func NewCommand(registry port.CommandRegistry, authorizer service.Authorizer, sender port.TextSender,
	prefix string, timeout time.Duration) *Command {
	return &Command{
		registry:   registry,
		authorizer: authorizer,
		sender:     sender,
		prefix:     prefix,
		timeout:    timeout,
	}
}

// Handle resolves the first token of the message to a command and runs it with the remaining tokens. Failures of
// the command are answered in the chat and also returned.
func (c *Command) Handle(ctx context.Context, message *domain.Message) error {
	tokens := domain.Tokenize(message.Text)
	if len(tokens) == 0 || !strings.HasPrefix(tokens[0], c.prefix) {
		return ErrNotACommand
	}

	name := c.commandName(tokens[0])

	runner, err := c.registry.Get(name)
	if err != nil {
		log.Debug().Str("command", name).Msg("no handler for command")
		return fmt.Errorf("%w %q: %w", ErrUnknownCommand, name, err)
	}

	if c.authorizer != nil && !c.authorizer.IsAuthorized(ctx, message) {
		return ErrUnauthorized
	}

	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("could not create invocation id: %w", err)
	}

	l := log.With().
		Str("invocationId", id.String()).
		Str("platform", string(message.Platform)).
		Str("messageId", message.ID).
		Str("chatId", message.ChatID).
		Str("command", runner.Command().Name()).
		Logger()

	l.Debug().Strs("args", tokens[1:]).Msg("received command")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	err = runner.TryRun(ctx, domain.NewContext(message, c.sender), tokens[1:])
	if err != nil {
		c.reportError(ctx, l, message, err)
		return err
	}

	l.Debug().Dur("took", time.Since(start)).Msg("command finished")

	return nil
}

// commandName strips the prefix and a Telegram style @botname suffix.
func (c *Command) commandName(token string) string {
	name := strings.TrimPrefix(token, c.prefix)
	if i := strings.Index(name, "@"); i > 0 {
		name = name[:i]
	}

	return strings.ToLower(name)
}

func (c *Command) reportError(ctx context.Context, l zerolog.Logger, message *domain.Message, err error) {
	var text string

	var parseErr *domain.ParsingArgError
	var cmdErr *domain.CommandError

	switch {
	case errors.As(err, &parseErr):
		l.Debug().Err(err).Msg("invalid arguments")
		text = parseErr.Error()
	case errors.As(err, &cmdErr):
		l.Debug().Err(err).Msg("command rejected request")
		text = cmdErr.Message
	case errors.Is(err, context.DeadlineExceeded):
		l.Warn().Err(err).Msg("command timed out")
		text = timedOut
	default:
		l.Error().Err(err).Msg("failed to respond to command")
		text = genericFailure
	}

	// the invocation context may be what failed
	replyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	if err := c.sender.SendMessageReply(replyCtx, message, text); err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
	}
}
