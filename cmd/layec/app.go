package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"layec/internal/observ"
	"layec/internal/prof"
	"layec/internal/trace"
)

// appState: всё, что PersistentPreRunE готовит для подкоманд.
type appState struct {
	config     layeConfig
	configPath string // пусто, если laye.toml не найден

	logger   *slog.Logger
	logClose func() error

	tracer       trace.Tracer
	traceCleanup func()

	timer  *observ.Timer
	quiet  bool
	stderr io.Writer

	profile *prof.Session
}

var app = &appState{
	config: defaultConfig(),
	logger: slog.New(slog.DiscardHandler),
	tracer: trace.Nop,
}

func setupApp(cmd *cobra.Command) error {
	root := cmd.Root()
	app.stderr = cmd.ErrOrStderr()

	configFlag, err := root.PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, path, err := resolveConfig(configFlag, ".")
	if err != nil {
		return err
	}
	app.config = cfg
	app.configPath = path

	levelStr, err := root.PersistentFlags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logFile, err := root.PersistentFlags().GetString("log-file")
	if err != nil {
		return fmt.Errorf("failed to get log-file flag: %w", err)
	}
	logger, closeLog, err := newLogger(os.Stderr, levelStr, logFile)
	if err != nil {
		return err
	}
	app.logger = logger
	app.logClose = closeLog
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	app.traceCleanup = cleanup

	timings, err := root.PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		app.timer = observ.NewTimer()
	}
	if app.quiet, err = root.PersistentFlags().GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	profile, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	app.profile = profile
	return nil
}

func setupProfiling(cmd *cobra.Command) (*prof.Session, error) {
	root := cmd.Root()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = root.PersistentFlags().GetString("cpu-profile"); err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.Mem, err = root.PersistentFlags().GetString("mem-profile"); err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.Trace, err = root.PersistentFlags().GetString("runtime-trace"); err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil, nil
	}
	return prof.Start(cfg)
}

func teardownApp(*cobra.Command) error {
	app.close()
	return nil
}

// close идемпотентен: вызывается и из PostRun, и при ошибке/панике.
// Тайминги печатаются и для неуспешного запуска.
func (a *appState) close() {
	if a.timer != nil {
		if !a.quiet && a.stderr != nil {
			fmt.Fprint(a.stderr, a.timer.Summary())
		}
		a.timer = nil
	}
	if a.profile != nil {
		if err := a.profile.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "layec: profile error: %v\n", err)
		}
		a.profile = nil
	}
	if a.traceCleanup != nil {
		a.traceCleanup()
		a.traceCleanup = nil
	}
	if a.logClose != nil {
		if err := a.logClose(); err != nil {
			fmt.Fprintf(os.Stderr, "layec: log close error: %v\n", err)
		}
		a.logClose = nil
	}
}
