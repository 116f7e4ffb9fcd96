package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/xeptore/sizeconv/config"
	"github.com/xeptore/sizeconv/constants"
	"github.com/xeptore/sizeconv/input"
	"github.com/xeptore/sizeconv/log"
	"github.com/xeptore/sizeconv/render"
	"github.com/xeptore/sizeconv/size"
)

const usageExample = `sizeconv "24 mb"`

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.NewDefault(stderr)

	// Loaded before flag parsing so SIZECONV_CONFIG can come from .env.
	if err := godotenv.Load(); nil != err {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug().Msg(".env file was not found")
		} else {
			logger.Warn().Err(err).Msg("Ignoring unreadable .env file")
		}
	} else {
		logger.Debug().Msg(".env file was loaded")
	}

	if err := newApp(stdout, stderr).Run(ctx, args); nil != err {
		if errors.Is(err, context.Canceled) {
			logger.Trace().Msg("Application was canceled")
			return 1
		}

		var exitCode exitCodeError
		if errors.As(err, &exitCode) {
			return int(exitCode)
		}

		logger.Error().Err(err).Msg("Application exited with error")
		return 10
	}

	return 0
}

type exitCodeError int

func (e exitCodeError) Error() string {
	return "error with exit code: " + strconv.Itoa(int(e))
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	//nolint:exhaustruct
	return &cli.Command{
		Name:      "sizeconv",
		Version:   constants.Version,
		Usage:     "Convert a byte size into bytes, kilobytes, megabytes and gigabytes",
		UsageText: usageExample,
		ArgsUsage: `"<number> <unit>"`,
		Metadata: map[string]any{
			"compiled_at": constants.CompileTime,
		},
		Suggest:                    true,
		EnableShellCompletion:      true,
		ShellCompletionCommandName: "shell-completion",
		Writer:                     stdout,
		ErrWriter:                  stderr,
		Flags: []cli.Flag{
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Sources: cli.EnvVars("SIZECONV_CONFIG"),
			},
			//nolint:exhaustruct
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: debug, json or table",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return convert(ctx, cmd, stdout, stderr)
		},
	}
}

func convert(_ context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	in, err := input.FromArgs(cmd.Args().Slice())
	if nil != err {
		return inputError(log.NewPlain(stderr), err)
	}

	conf, err := config.Load(cmd.String("config"))
	if nil != err {
		return fmt.Errorf("load config: %v", err)
	}

	logger := log.FromConfig(stderr, conf.Log)

	logger.Debug().Dict("config", conf.ToDict()).Msg("Config loaded")
	logger.Debug().Dict("input", in.ToDict()).Msg("Input resolved")

	format, err := render.ParseFormat(conf.Output.Format)
	if cmd.IsSet("output") {
		format, err = render.ParseFormat(cmd.String("output"))
	}
	if nil != err {
		return fmt.Errorf("resolve output format: %v", err)
	}

	if err := render.Write(stdout, size.From(in.Value, in.Unit), format); nil != err {
		return fmt.Errorf("write measurement: %w", err)
	}

	return nil
}

func inputError(logger zerolog.Logger, err error) error {
	switch {
	case errors.Is(err, input.ErrMissingArgument):
		logger.Error().Str("usage", usageExample).Msg("Missing size argument. Provide a size and a unit")
	case errors.Is(err, input.ErrMalformedInput):
		logger.Error().Err(err).Msg(`Bad format. Use something like "24 mb" or "300 kb"`)
	case errors.Is(err, input.ErrInvalidNumber):
		logger.Error().Err(err).Msg("Invalid number. The first value must be a valid number")
	case errors.Is(err, input.ErrUnknownUnit):
		logger.Error().Err(err).Msg("Invalid unit. Use b, kb, mb or gb")
	default:
		panic("unexpected input error: " + err.Error())
	}

	return exitCodeError(1)
}
