package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"layec/internal/lexer"
)

const configFileName = "laye.toml"

// layeConfig: содержимое laye.toml. Все секции необязательны.
type layeConfig struct {
	Lexer  lexerConfig  `toml:"lexer"`
	Output outputConfig `toml:"output"`
	Build  buildConfig  `toml:"build"`
}

type lexerConfig struct {
	Stepping       string `toml:"stepping"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
	Paths  string `toml:"paths"`
}

type buildConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

func defaultConfig() layeConfig {
	return layeConfig{
		Lexer:  lexerConfig{Stepping: "rune", MaxDiagnostics: 100},
		Output: outputConfig{Format: "pretty", Color: "auto", Paths: "relative"},
	}
}

// findLayeToml ищет laye.toml от startDir вверх до корня.
func findLayeToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig читает файл поверх значений по умолчанию.
func loadConfig(path string) (layeConfig, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return layeConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return layeConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return layeConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c layeConfig) validate() error {
	if _, err := parseStepping(c.Lexer.Stepping); err != nil {
		return fmt.Errorf("lexer.stepping: %w", err)
	}
	if c.Lexer.MaxDiagnostics < 0 {
		return fmt.Errorf("lexer.max_diagnostics must not be negative")
	}
	if c.Build.Jobs < 0 {
		return fmt.Errorf("build.jobs must not be negative")
	}
	switch c.Output.Format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("output.format: unknown format %q (expected pretty|json|msgpack)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("output.color: invalid value %q (expected auto|on|off)", c.Output.Color)
	}
	return nil
}

// resolveConfig: явный --config обязан существовать; иначе ищем laye.toml,
// а если его нет, берём значения по умолчанию.
func resolveConfig(explicit, startDir string) (layeConfig, string, error) {
	if explicit != "" {
		cfg, err := loadConfig(explicit)
		return cfg, explicit, err
	}
	path, ok, err := findLayeToml(startDir)
	if err != nil {
		return layeConfig{}, "", err
	}
	if !ok {
		return defaultConfig(), "", nil
	}
	cfg, err := loadConfig(path)
	return cfg, path, err
}

func parseStepping(s string) (lexer.Stepping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rune":
		return lexer.StepRune, nil
	case "byte":
		return lexer.StepByte, nil
	default:
		return lexer.StepRune, fmt.Errorf("invalid stepping %q (expected rune|byte)", s)
	}
}

// Флаги, явно заданные в командной строке, важнее laye.toml.
// cmd.Flags() после разбора содержит и унаследованные persistent-флаги.

func stringSetting(cmd *cobra.Command, name, fromConfig string) (string, error) {
	flags := cmd.Flags()
	v, err := flags.GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if !flags.Changed(name) && fromConfig != "" {
		return fromConfig, nil
	}
	return v, nil
}

func intSetting(cmd *cobra.Command, name string, fromConfig int) (int, error) {
	flags := cmd.Flags()
	v, err := flags.GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if !flags.Changed(name) && fromConfig != 0 {
		return fromConfig, nil
	}
	return v, nil
}

func boolSetting(cmd *cobra.Command, name string, fromConfig bool) (bool, error) {
	flags := cmd.Flags()
	v, err := flags.GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if !flags.Changed(name) {
		return fromConfig, nil
	}
	return v, nil
}
