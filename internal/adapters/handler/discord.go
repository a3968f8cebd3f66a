package handler

import (
	"context"
	"errors"
	"kubbot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type Discord struct {
	ctx        context.Context
	dispatcher Dispatcher
}

// NewDiscord creates the Discord glue. discordgo handlers carry no context, so every dispatch derives from ctx.
func NewDiscord(ctx context.Context, dispatcher Dispatcher) *Discord {
	return &Discord{ctx: ctx, dispatcher: dispatcher}
}

// Handle is registered with discordgo.Session.AddHandler.
func (d *Discord) Handle(_ *discordgo.Session, m *discordgo.MessageCreate) {
	message := fromDiscord(m)
	if message == nil {
		return
	}

	if err := d.dispatcher.Handle(d.ctx, message); err != nil && !errors.Is(err, ErrNotACommand) {
		log.Debug().Err(err).Str("chatId", message.ChatID).Msg("discord message not handled")
	}
}

func fromDiscord(m *discordgo.MessageCreate) *domain.Message {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return nil
	}

	return &domain.Message{
		Platform: domain.Discord,
		ID:       m.ID,
		ChatID:   m.ChannelID,
		AuthorID: m.Author.ID,
		Username: m.Author.Username,
		Text:     m.Content,
	}
}
