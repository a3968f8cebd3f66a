package handler

import (
	"context"
	"errors"
	"kubbot/internal/core/domain"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type Dispatcher interface {
	Handle(ctx context.Context, message *domain.Message) error
}

type Telegram struct {
	dispatcher Dispatcher
}

func NewTelegram(dispatcher Dispatcher) *Telegram {
	return &Telegram{dispatcher: dispatcher}
}

// Handle is registered as a go-telegram/bot handler.
func (t *Telegram) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	message := fromTelegram(update)
	if message == nil {
		return
	}

	if err := t.dispatcher.Handle(ctx, message); err != nil && !errors.Is(err, ErrNotACommand) {
		log.Debug().Err(err).Str("chatId", message.ChatID).Msg("telegram message not handled")
	}
}

func fromTelegram(update *models.Update) *domain.Message {
	if update == nil || update.Message == nil {
		return nil
	}

	msg := update.Message
	if msg.From != nil && msg.From.IsBot {
		return nil
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	message := &domain.Message{
		Platform: domain.Telegram,
		ID:       strconv.Itoa(msg.ID),
		ChatID:   strconv.FormatInt(msg.Chat.ID, 10),
		Text:     text,
	}

	if msg.From != nil {
		message.AuthorID = strconv.FormatInt(msg.From.ID, 10)
		message.Username = getUserNameOrFirstName(msg.From)
	}

	return message
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
