// Command go-datespinner opens a window with a spinner date picker and lets
// the selected date be exported as a vCard birthday or an iCalendar event.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-datespinner/internal/config"
	"github.com/tartampluch/go-datespinner/internal/locale"
	"github.com/tartampluch/go-datespinner/internal/ui"
)

// cliOptions holds the parsed command line.
type cliOptions struct {
	version bool
	debug   bool
	app     ui.AppOptions
}

func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain returns the process exit code so deferred closes run before exit.
func runMain(args []string) int {
	cli, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return config.ExitCodeSuccess
	}
	if err != nil {
		return config.ExitCodeError
	}
	if cli.version {
		printVersion(os.Stdout)
		return config.ExitCodeSuccess
	}

	if logFile := setupLogging(cli.debug); logFile != nil {
		defer func() {
			_ = logFile.Close()
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, cli.app); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// parseFlags reads the command line into cliOptions.
func parseFlags(args []string) (cliOptions, error) {
	var cli cliOptions
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.BoolVar(&cli.version, config.FlagVersion, false, config.FlagDescVersion)
	fs.BoolVar(&cli.debug, config.FlagDebug, false, config.FlagDescDebug)
	fs.StringVar(&cli.app.Language, config.FlagLang, "", config.FlagDescLang)
	fs.BoolVar(&cli.app.HideYear, config.FlagNoYear, false, config.FlagDescNoYear)
	fs.BoolVar(&cli.app.HideDay, config.FlagNoDay, false, config.FlagDescNoDay)
	err := fs.Parse(args)
	return cli, err
}

// run opens the picker window and blocks until it is closed or ctx ends.
func run(ctx context.Context, opts ui.AppOptions) error {
	catalog, err := locale.NewCatalog()
	if err != nil {
		return err
	}

	a := app.NewWithID(config.AppID)
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	return ui.NewDateSpinnerApp(a, catalog, opts).Run()
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		config.Commit,
		config.Date,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs a JSON logger on stdout and, when the cache
// directory is usable, on a log file that is truncated at each start. The
// returned file is nil when only stdout is used.
func setupLogging(debug bool) *os.File {
	out := []io.Writer{os.Stdout}

	var logFile *os.File
	if path, err := logFilePath(); err == nil {
		f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err != nil {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, path, err)
		} else {
			logFile = f
			out = append(out, f)
		}
	}

	slog.SetDefault(newLogger(io.MultiWriter(out...), debug))
	return logFile
}

// newLogger returns the JSON logger; debug lowers the level and adds sources.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
}

func logFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	dir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return filepath.Join(dir, config.LogFileName), nil
}
