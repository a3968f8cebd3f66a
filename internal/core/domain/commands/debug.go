package commands

import (
	"context"
	"fmt"
	"kubbot/internal/config"
	"kubbot/internal/core/domain"
	"kubbot/internal/core/port"
	"runtime"
	"runtime/debug"
	"runtime/metrics"
)

type Debug struct{}

func (Debug) Name() string {
	return "debug"
}

func (Debug) Description() string {
	return "Shows runtime statistics of the bot process."
}

func (Debug) Arguments() []domain.ArgumentSignature {
	return nil
}

const kb = 1024
const debugTemplate = `allocated mem: %d KB
goroutines: %d
heap: %d KB
stack: %d KB
compiled with %s for %s-%s`

func (d Debug) Call(ctx context.Context, cc *domain.Context, _ []domain.ParsedArgument) error {
	l := requestLogger(cc, d.Name())
	l.Info().Msg("handling request")

	data := []metrics.Sample{
		{Name: "/memory/classes/heap/objects:bytes"},
		{Name: "/memory/classes/heap/stacks:bytes"},
		{Name: "/memory/classes/total:bytes"},
	}

	metrics.Read(data)

	for _, sample := range data {
		l.Debug().Str("name", sample.Name).Uint64("value", sample.Value.Uint64()).Msg("read metric")
	}

	goos, goarch := runtime.GOOS, runtime.GOARCH
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "GOOS":
				goos = setting.Value
			case "GOARCH":
				goarch = setting.Value
			}
		}
	}

	return reply(ctx, cc, fmt.Sprintf(
		debugTemplate,
		data[2].Value.Uint64()/kb,
		runtime.NumGoroutine(),
		data[0].Value.Uint64()/kb,
		data[1].Value.Uint64()/kb,
		runtime.Version(), goos, goarch,
	))
}

type DebugFactory struct{}

func (DebugFactory) Make(_ *config.Config) port.Command {
	return Debug{}
}
