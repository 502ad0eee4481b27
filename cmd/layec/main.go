package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"layec/internal/trace"
	"layec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "layec",
	Short: "Laye lexer front end",
	Long:  `layec reads Laye source files and turns them into tokens with trivia and diagnostics`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupApp(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardownApp(cmd)
	},
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("config", "", "path to laye.toml (default: search upwards from the working directory)")
	pf.String("log-level", "warn", "log level (debug|info|warn|error)")
	pf.String("log-file", "", "also write JSON logs to this file")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|phase|file|debug)")
	pf.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	pf.String("trace-format", "auto", "trace output format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "ring buffer size for --trace-mode=ring|both")
	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")
}

// main запускает корневую команду. Ошибки дают код 1, паника даёт 2.
func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			// последние события трассы помогают понять, где упал лексер
			if ring, ok := trace.Ring(app.tracer); ok {
				fmt.Fprintln(os.Stderr, "layec: internal error, last trace events:")
				_ = ring.Dump(os.Stderr, trace.FormatText)
			}
			fmt.Fprintf(os.Stderr, "layec: panic: %v\n", r)
			app.close()
			code = 2
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		app.close()
		var exit exitError
		if errors.As(err, &exit) {
			return exit.code
		}
		fmt.Fprintf(os.Stderr, "layec: %v\n", err)
		return 1
	}
	return 0
}

// exitError сообщает о ненулевом коде без повторного вывода сообщения.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
