package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"layec/internal/diag"
	"layec/internal/diagfmt"
	"layec/internal/driver"
	"layec/internal/source"
	"layec/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.ly|dir|-",
	Short: "Tokenize Laye source files",
	Long: `Tokenize breaks Laye source into tokens with their trivia.
The argument may be a single file, a directory (every *.ly file below it is
lexed in parallel) or "-" for standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	f := tokenizeCmd.Flags()
	f.String("format", "pretty", "token output format (pretty|json|msgpack)")
	f.String("diag-format", "pretty", "diagnostic output format (pretty|short|json)")
	f.String("stepping", "rune", "cursor stepping over multi-byte input (rune|byte)")
	f.String("paths", "relative", "path display mode (auto|absolute|relative|basename)")
	f.Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	f.Bool("cache", false, "reuse tokens from the on-disk cache")
	f.Bool("clear-cache", false, "drop the token cache before lexing")
	f.String("ui", "auto", "progress UI for directories (auto|on|off)")
	f.Bool("trivia", false, "show trailing trivia in pretty output")
	f.Bool("no-tokens", false, "only report diagnostics")
}

// tokenizeSettings: флаги после слияния с laye.toml.
type tokenizeSettings struct {
	format     string
	diagFormat string
	color      bool
	quiet      bool
	noTokens   bool
	maxDiag    int
	pathMode   diagfmt.PathMode
	ui         uiMode
	tokenOpts  diagfmt.TokenOpts
	driverOpts driver.Options
}

func readTokenizeSettings(cmd *cobra.Command) (*tokenizeSettings, error) {
	cfg := app.config
	s := &tokenizeSettings{}
	var err error

	if s.format, err = stringSetting(cmd, "format", cfg.Output.Format); err != nil {
		return nil, err
	}
	switch s.format {
	case "pretty", "json", "msgpack":
	default:
		return nil, fmt.Errorf("unknown format: %s", s.format)
	}

	if s.diagFormat, err = stringSetting(cmd, "diag-format", ""); err != nil {
		return nil, err
	}
	switch s.diagFormat {
	case "pretty", "short", "json":
	default:
		return nil, fmt.Errorf("unknown diagnostic format: %s", s.diagFormat)
	}

	colorFlag, err := stringSetting(cmd, "color", cfg.Output.Color)
	if err != nil {
		return nil, err
	}
	switch colorFlag {
	case "on":
		s.color = true
	case "off":
	case "auto":
		s.color = isTerminal(os.Stderr)
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}

	if s.quiet, err = boolSetting(cmd, "quiet", false); err != nil {
		return nil, err
	}
	if s.noTokens, err = boolSetting(cmd, "no-tokens", false); err != nil {
		return nil, err
	}
	if s.maxDiag, err = intSetting(cmd, "max-diagnostics", cfg.Lexer.MaxDiagnostics); err != nil {
		return nil, err
	}

	pathStr, err := stringSetting(cmd, "paths", cfg.Output.Paths)
	if err != nil {
		return nil, err
	}
	if s.pathMode, err = diagfmt.ParsePathMode(pathStr); err != nil {
		return nil, err
	}

	uiStr, err := stringSetting(cmd, "ui", "")
	if err != nil {
		return nil, err
	}
	if s.ui, err = readUIMode(uiStr); err != nil {
		return nil, err
	}

	showTrivia, err := boolSetting(cmd, "trivia", false)
	if err != nil {
		return nil, err
	}
	s.tokenOpts = diagfmt.TokenOpts{ShowTrivia: showTrivia, Width: 32}

	steppingStr, err := stringSetting(cmd, "stepping", cfg.Lexer.Stepping)
	if err != nil {
		return nil, err
	}
	stepping, err := parseStepping(steppingStr)
	if err != nil {
		return nil, err
	}
	jobs, err := intSetting(cmd, "jobs", cfg.Build.Jobs)
	if err != nil {
		return nil, err
	}
	useCache, err := boolSetting(cmd, "cache", cfg.Build.Cache)
	if err != nil {
		return nil, err
	}
	clearCache, err := boolSetting(cmd, "clear-cache", false)
	if err != nil {
		return nil, err
	}

	s.driverOpts = driver.Options{
		Stepping: stepping,
		Jobs:     jobs,
		Logger:   app.logger,
		Timer:    app.timer,
	}
	if useCache || clearCache {
		cache, err := driver.OpenTokenCache("layec")
		if err != nil {
			// без кэша всё равно можно работать
			app.logger.Warn("token cache unavailable", "err", err)
		} else {
			if clearCache {
				if err := cache.DropAll(); err != nil {
					return nil, fmt.Errorf("failed to clear token cache: %w", err)
				}
				app.logger.Info("token cache cleared", "dir", cache.Dir())
			}
			if useCache {
				s.driverOpts.Cache = cache
			}
		}
	}
	return s, nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	settings, err := readTokenizeSettings(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	target := args[0]

	if target == "-" {
		return tokenizeStdin(ctx, cmd, settings)
	}
	if st, err := os.Stat(target); err == nil && st.IsDir() {
		return tokenizeDir(ctx, cmd, target, settings)
	}

	// Нечитаемый файл не ошибка драйвера: в Bag будет диагностика
	result, err := driver.Tokenize(ctx, target, settings.driverOpts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if err := reportDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, settings); err != nil {
		return err
	}
	if result.File.Valid() && !settings.noTokens {
		if err := writeTokens(out, result.Tokens, result.File, settings); err != nil {
			return err
		}
	}
	return exitStatus(result.Bag)
}

func tokenizeStdin(ctx context.Context, cmd *cobra.Command, settings *tokenizeSettings) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<stdin>", data))
	result := driver.TokenizeSource(ctx, fs, file, settings.driverOpts)

	if err := reportDiagnostics(cmd.ErrOrStderr(), result.Bag, fs, settings); err != nil {
		return err
	}
	if !settings.noTokens {
		if err := writeTokens(cmd.OutOrStdout(), result.Tokens, file, settings); err != nil {
			return err
		}
	}
	return exitStatus(result.Bag)
}

// fileTokens: элемент дампа каталога в json/msgpack.
type fileTokens struct {
	Path   string                `json:"path" msgpack:"path"`
	Tokens []diagfmt.TokenOutput `json:"tokens" msgpack:"tokens"`
}

func tokenizeDir(ctx context.Context, cmd *cobra.Command, dir string, settings *tokenizeSettings) error {
	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
		err     error
	)
	if shouldUseTUI(settings.ui) && !settings.quiet {
		files, listErr := driver.ListSourceFiles(dir)
		if listErr != nil {
			return listErr
		}
		fileSet, results, err = runTokenizeDirWithUI(ctx, "tokenize "+filepath.Base(dir), dir, files, settings.driverOpts)
	} else {
		fileSet, results, err = driver.TokenizeDir(ctx, dir, settings.driverOpts)
	}
	if err != nil {
		return err
	}

	merged := diag.NewBag()
	for _, r := range results {
		merged.Merge(r.Bag)
	}
	if err := reportDiagnostics(cmd.ErrOrStderr(), merged, fileSet, settings); err != nil {
		return err
	}
	if len(results) == 0 && !settings.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "no %s files found in %s\n", driver.SourceExt, dir)
	}
	if settings.noTokens {
		return exitStatus(merged)
	}

	out := cmd.OutOrStdout()
	switch settings.format {
	case "pretty":
		for i, r := range results {
			f := fileSet.Get(r.FileID)
			if !f.Valid() {
				continue
			}
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s ==\n", r.Path)
			if err := diagfmt.FormatTokensPretty(out, r.Tokens, f, settings.tokenOpts); err != nil {
				return err
			}
		}
	case "json", "msgpack":
		dump := make([]fileTokens, 0, len(results))
		for _, r := range results {
			f := fileSet.Get(r.FileID)
			if !f.Valid() {
				continue
			}
			dump = append(dump, fileTokens{Path: r.Path, Tokens: diagfmt.BuildTokenOutput(r.Tokens, f)})
		}
		if settings.format == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(dump); err != nil {
				return err
			}
		} else if err := msgpack.NewEncoder(out).Encode(dump); err != nil {
			return err
		}
	}
	return exitStatus(merged)
}

func writeTokens(w io.Writer, tokens []token.Token, f *source.File, settings *tokenizeSettings) error {
	switch settings.format {
	case "json":
		return diagfmt.FormatTokensJSON(w, tokens, f)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(w, tokens, f)
	default:
		return diagfmt.FormatTokensPretty(w, tokens, f, settings.tokenOpts)
	}
}

// reportDiagnostics выводит диагностику в stderr. --quiet прячет всё, кроме ошибок.
func reportDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, settings *tokenizeSettings) error {
	if bag.Len() == 0 {
		return nil
	}
	if settings.quiet {
		if !bag.HasErrors() {
			return nil
		}
		filtered := diag.NewBag()
		for _, d := range bag.Items() {
			if d.Severity == diag.SevError {
				filtered.Add(d)
			}
		}
		bag = filtered
	}
	switch settings.diagFormat {
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         settings.pathMode,
			Max:              settings.maxDiag,
			IncludeNotes:     true,
		})
	case "short":
		return diagfmt.Short(w, bag, fs, settings.maxDiag)
	default:
		return diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     settings.color,
			PathMode:  settings.pathMode,
			ShowNotes: true,
			Max:       settings.maxDiag,
		})
	}
}

func exitStatus(bag *diag.Bag) error {
	if bag.HasErrors() {
		return exitError{code: 1}
	}
	return nil
}
