// Package cmd implements the kimi-auth command line entry point. The real
// host runtime consumes the packages below internal/ directly; the commands
// here act as a minimal host for interactive use and debugging.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/kimicode/kimi-auth/internal/config"
	"github.com/kimicode/kimi-auth/internal/version"
	"github.com/zitadel/logging"
)

// Execute runs the main program logic of kimi-auth.
func Execute(args []string, stdout, stderr io.Writer) int {
	flagSet := config.FlagSet(args[0], stderr)

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		_, _ = fmt.Fprintln(stderr, err.Error())

		return 1
	}

	if versionFlag(flagSet) {
		printVersion(stdout)

		return 0
	}

	conf, err := config.Load(flagSet.Lookup("config").Value.String(), flagSet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, fmt.Errorf("configuration error: %w", err).Error())

		return 1
	}

	logger, err := configureLogger(conf, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, fmt.Errorf("error configure logging: %w", err).Error())

		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logging.ToContext(ctx, logger)

	switch command := flagSet.Arg(0); command {
	case "login":
		return login(ctx, logger, conf, stdout)
	case "refresh":
		return refresh(ctx, logger, conf, flagSet.Arg(1), stdout)
	case "models":
		return models(logger, stdout)
	case "":
		_, _ = fmt.Fprintln(stderr, "usage: kimi-auth [flags] <login|refresh|models>")

		return 1
	default:
		_, _ = fmt.Fprintln(stderr, "unknown command: "+command)

		return 1
	}
}

func versionFlag(flagSet *flag.FlagSet) bool {
	versionArg, ok := flagSet.Lookup("version").Value.(flag.Getter)
	if !ok {
		return false
	}

	enabled, _ := versionArg.Get().(bool)

	return enabled
}

func configureLogger(conf config.Config, writer io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     conf.Log.Level,
	}

	switch conf.Log.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(writer, opts)), nil
	case "console":
		return slog.New(slog.NewTextHandler(writer, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", conf.Log.Format)
	}
}

func printVersion(writer io.Writer) {
	//goland:noinspection GoBoolExpressions
	if version.Version == "dev" {
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			_, _ = fmt.Fprintf(writer, "version: %s\ngo: %s\n", buildInfo.Main.Version, buildInfo.GoVersion)

			return
		}
	}

	_, _ = fmt.Fprintf(writer, "version: %s\ncommit: %s\ndate: %s\ngo: %s\n",
		version.Version, version.Commit, version.Date, runtime.Version())
}
