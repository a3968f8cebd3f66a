package sender

import (
	"context"
	"kubbot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const DiscordMessageLimit = 2000

type DiscordSession interface {
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Discord struct {
	session DiscordSession
}

func NewDiscord(session DiscordSession) *Discord {
	return &Discord{session: session}
}

func (s *Discord) SendMessageReply(ctx context.Context, message *domain.Message, text string) error {
	ref := &discordgo.MessageReference{
		MessageID: message.ID,
		ChannelID: message.ChatID,
	}

	for _, part := range splitMessage(text, DiscordMessageLimit) {
		_, err := s.session.ChannelMessageSendReply(message.ChatID, part, ref, discordgo.WithContext(ctx))
		if err != nil {
			log.Error().Err(err).Str("chatId", message.ChatID).Msg("failed to send discord message")
			return err
		}
	}

	return nil
}
