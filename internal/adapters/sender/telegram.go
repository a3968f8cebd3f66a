package sender

import (
	"context"
	"fmt"
	"kubbot/internal/core/domain"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const TelegramMessageLimit = 4096

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

func (s *Telegram) SendMessageReply(ctx context.Context, message *domain.Message, text string) error {
	chatID, err := strconv.ParseInt(message.ChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", message.ChatID, err)
	}

	var reply *models.ReplyParameters
	if messageID, err := strconv.Atoi(message.ID); err == nil {
		reply = &models.ReplyParameters{MessageID: messageID, ChatID: chatID}
	}

	for _, part := range splitMessage(text, TelegramMessageLimit) {
		_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			Text:            part,
			ReplyParameters: reply,
		})
		if err != nil {
			log.Error().Err(err).Int64("chatId", chatID).Msg("failed to send telegram message")
			return err
		}
	}

	return nil
}
