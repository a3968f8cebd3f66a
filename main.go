package main

import (
	"context"
	"kubbot/internal/adapters/generator"
	"kubbot/internal/adapters/handler"
	"kubbot/internal/adapters/sender"
	"kubbot/internal/config"
	"kubbot/internal/core/domain/command"
	"kubbot/internal/core/domain/commands"
	"kubbot/internal/core/port"
	"kubbot/internal/core/service"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Info().Msg("starting kubbot...")

	cfg, err := config.Load(".", "/etc/kubbot")
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := command.NewRegistry()
	newGenerator := func(cfg *config.Config) port.TextGenerator {
		return generator.NewOpenRouter(cfg.OpenRouter.APIKey, cfg.OpenRouter.SystemPrompt)
	}

	err = registry.RegisterFactories(cfg, commands.Builtin(registry, newGenerator)...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed building command registry")
	}

	var wg sync.WaitGroup

	if cfg.Telegram.Enabled {
		b := startTelegram(cfg, registry)
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Start(ctx)
		}()
	}

	if cfg.Discord.Enabled {
		dg := startDiscord(ctx, cfg, registry)
		defer func() {
			if err := dg.Close(); err != nil {
				log.Warn().Err(err).Msg("failed closing discord session")
			}
		}()
	}

	log.Info().Strs("commands", registry.ListCommands()).Msg("bot listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")
	wg.Wait()
}

func startTelegram(cfg *config.Config, registry *command.Registry) *bot.Bot {
	b, err := bot.New(cfg.Telegram.Token, bot.WithDefaultHandler(noOpHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegram(b)
	dispatcher := handler.NewCommand(registry,
		service.NewAuthorizer(cfg.Telegram.AllowedChats, cfg.Bot.AdminUsername, s),
		s, cfg.Telegram.Prefix, cfg.Handler.Timeout)
	tg := handler.NewTelegram(dispatcher)

	b.RegisterHandler(bot.HandlerTypeMessageText, cfg.Telegram.Prefix, bot.MatchTypePrefix, tg.Handle)
	b.RegisterHandler(bot.HandlerTypePhotoCaption, cfg.Telegram.Prefix, bot.MatchTypePrefix, tg.Handle)

	log.Info().Msg("telegram bot initialized")

	return b
}

func startDiscord(ctx context.Context, cfg *config.Config, registry *command.Registry) *discordgo.Session {
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing discord session")
	}

	dg.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	s := sender.NewDiscord(dg)
	dispatcher := handler.NewCommand(registry,
		service.NewAuthorizer(cfg.Discord.AllowedChats, cfg.Bot.AdminUsername, s),
		s, cfg.Discord.Prefix, cfg.Handler.Timeout)
	dg.AddHandler(handler.NewDiscord(ctx, dispatcher).Handle)

	if err := dg.Open(); err != nil {
		log.Fatal().Err(err).Msg("failed opening discord gateway connection")
	}

	log.Info().Msg("discord session opened")

	return dg
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
