package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"resizer/internal/adapters/codec"
	"resizer/internal/adapters/console"
	"resizer/internal/adapters/file"
	"resizer/internal/core/domain"
	"resizer/internal/core/service"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	if err := loadConfig(); err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	zerolog.SetGlobalLevel(parseLogLevel(viper.GetString("log.level")))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	outcome, err := run(ctx, os.Args, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("resize failed")
	}

	log.Debug().Str("result", string(outcome.Result)).Msg("done")
}

func loadConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("resizer")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log.level", "info")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Debug().Msg("no config file, using defaults")
			return nil
		}
		return err
	}

	return nil
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// run resizes the file named by the first argument after args[0]; further arguments are ignored.
func run(ctx context.Context, args []string, in io.Reader, out io.Writer) (domain.Outcome, error) {
	if len(args) < 2 {
		return domain.Outcome{}, domain.ErrMissingFilename
	}

	id, err := uuid.NewV4()
	if err != nil {
		return domain.Outcome{}, err
	}

	l := log.With().Str("runId", id.String()).Logger()
	ctx = l.WithContext(ctx)

	tool, err := service.NewResizeTool(codec.NewImagingCodec(), console.NewTerminalConsole(in, out),
		file.NewInspector(), domain.DefaultScale)
	if err != nil {
		return domain.Outcome{}, err
	}

	return tool.Run(ctx, args[1])
}
