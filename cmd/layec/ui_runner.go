package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"layec/internal/driver"
	"layec/internal/source"
	"layec/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	mode := uiMode(strings.TrimSpace(strings.ToLower(value)))
	switch mode {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return mode, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI: прогресс рисуем в stderr, stdout остаётся под токены.
func shouldUseTUI(mode uiMode) bool {
	if mode == uiModeAuto {
		return isTerminal(os.Stderr)
	}
	return mode == uiModeOn
}

type dirOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

// runTokenizeDirWithUI гоняет TokenizeDir в фоне и показывает прогресс.
// Выход из UI (ctrl+c) отменяет ctx воркеров.
func runTokenizeDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.Options) (*source.FileSet, []driver.TokenizeDirResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		o := opts
		o.Sink = driver.ChannelSink{C: events}
		fs, results, err := driver.TokenizeDir(ctx, dir, o)
		outcomeCh <- dirOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, uiErr := program.Run()

	// UI мог выйти раньше воркеров: дочитываем канал, чтобы отправки не встали
	go func() {
		for range events {
		}
	}()
	if final == nil || !ui.Completed(final) {
		cancel()
	}

	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
