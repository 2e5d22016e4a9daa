package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/stuffkit/pkg/config"
	"github.com/dmitrymomot/stuffkit/pkg/logger"
	"github.com/dmitrymomot/stuffkit/pkg/requestid"
)

// Config is the process configuration shared by every command.
type Config struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	LogTag     string `env:"LOG_TAG" envDefault:"stuffkit"`
	LogEnabled bool   `env:"LOG_ENABLED" envDefault:"true"`
	Capacity   int    `env:"CHUNK_CAPACITY" envDefault:"50"`
	Encoding   string `env:"CHUNK_ENCODING" envDefault:"cl100k_base"`
}

// app carries the loaded configuration and logger into subcommands.
type app struct {
	cfg     Config
	log     *slog.Logger
	envFile string
	version VersionInfo
}

// NewRootCmd builds the command tree.
func NewRootCmd(v VersionInfo) *cobra.Command {
	a := &app{version: v, log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "stuffkit",
		Short: "Weighted chunking, text validation and color parsing",
		Long: `stuffkit exposes a few small helpers on the command line:

  chunk     split lines into chunks whose total weight fits a capacity
  validate  run a YAML rule chain over texts
  color     normalise #RRGGBB, 0xRRGGBB and rgb(r,g,b) notations
  hex       print 32-bit integers as two's complement hex
  serve     run the HTTP playground

Configuration is read from the environment (and an optional .env file):
APP_ENV, LOG_LEVEL, LOG_FORMAT, LOG_TAG, LOG_ENABLED, CHUNK_CAPACITY,
CHUNK_ENCODING and the HTTP_* server settings.`,
		Version:           v.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment from this file instead of ./.env")

	root.AddCommand(
		newChunkCmd(a),
		newValidateCmd(a),
		newColorCmd(a),
		newHexCmd(),
		newServeCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	if err := config.LoadEnv(files...); err != nil {
		return err
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	log, err := newLogger(a.cfg, cmd)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

func newLogger(cfg Config, cmd *cobra.Command) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, ""),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithTag(cfg.LogTag),
		logger.WithEnabled(cfg.LogEnabled),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		p, err := logger.ParsePriority(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithPriority(p))
	}
	if cfg.LogFormat != "" {
		f, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, fmt.Errorf("LOG_FORMAT: %w", err)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...).With(logger.Component(cmd.Name())), nil
}
