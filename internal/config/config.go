package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const envPrefix = "KUBBOT"

type Config struct {
	Bot        BotConfig        `mapstructure:"bot"`
	Handler    HandlerConfig    `mapstructure:"handler"`
	Telegram   PlatformConfig   `mapstructure:"telegram"`
	Discord    PlatformConfig   `mapstructure:"discord"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Roll       RollConfig       `mapstructure:"roll"`
}

type BotConfig struct {
	LogLevel      string `mapstructure:"log_level"`
	AdminUsername string `mapstructure:"admin_username"`
}

type HandlerConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// PlatformConfig holds the per-transport settings. Token is a secret and is expected to come from the environment.
type PlatformConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	Token        string   `mapstructure:"token"`
	Prefix       string   `mapstructure:"prefix"`
	AllowedChats []string `mapstructure:"allowed_chats"`
}

type OpenRouterConfig struct {
	APIKey       string `mapstructure:"api_key"`
	Model        string `mapstructure:"model"`
	SystemPrompt string `mapstructure:"system_prompt"`
}

type RollConfig struct {
	MaxSides int64 `mapstructure:"max_sides"`
	MaxCount int64 `mapstructure:"max_count"`
}

var (
	ErrNoPlatform   = errors.New("no platform enabled")
	ErrMissingToken = errors.New("platform enabled without token")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("bot.log_level", "info")
	v.SetDefault("handler.timeout", "30s")
	v.SetDefault("telegram.prefix", "/")
	v.SetDefault("discord.prefix", "!")
	v.SetDefault("openrouter.model", "openai/gpt-4.1-mini")
	v.SetDefault("openrouter.system_prompt", "You are a helpful chat bot. Keep your answers short.")
	v.SetDefault("roll.max_sides", 100)
	v.SetDefault("roll.max_count", 20)

	// registered so AutomaticEnv picks them up during Unmarshal
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.allowed_chats", []string{})
	v.SetDefault("discord.enabled", false)
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.allowed_chats", []string{})
	v.SetDefault("openrouter.api_key", "")
	v.SetDefault("bot.admin_username", "")
}

// Load reads config.toml from the given directories, applies KUBBOT_* environment overrides and validates the
// result. A .env file in the working directory is loaded into the environment first if present.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		log.Info().Msg("no config file found, using defaults and environment")
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("read config file")
	}

	var cfg Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.DecodeHookFuncType(stringToList),
	))
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// stringToList splits list values given as a single string, as they are in the environment, on commas and
// whitespace.
func stringToList(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.String {
		return data, nil
	}

	return strings.FieldsFunc(reflect.ValueOf(data).String(), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}), nil
}

func (c *Config) Validate() error {
	if !c.Telegram.Enabled && !c.Discord.Enabled {
		return ErrNoPlatform
	}

	if c.Telegram.Enabled && c.Telegram.Token == "" {
		return fmt.Errorf("telegram: %w", ErrMissingToken)
	}

	if c.Discord.Enabled && c.Discord.Token == "" {
		return fmt.Errorf("discord: %w", ErrMissingToken)
	}

	if c.Handler.Timeout <= 0 {
		return fmt.Errorf("invalid handler timeout: %s", c.Handler.Timeout)
	}

	return nil
}

func (c *Config) LogLevel() zerolog.Level {
	switch c.Bot.LogLevel {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
