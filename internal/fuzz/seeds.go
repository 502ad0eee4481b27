package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// builtinSeeds покрывают ветки лексера, которых может не быть в testdata.
var builtinSeeds = []string{
	"",
	"123",
	"a1 _b c_2",
	"1_000 18446744073709551616",
	"16#FF",
	`"hi\n" "unterminated`,
	"a // line\n/* block */ b",
	"/* never closed",
	"== != <= >= << >> -> :: += -= *= /= %= &= |= ~= := !",
	"&& || $ @",
	"é \xa9 \xff",
	"\xef\xbb\xbfbom",
	"x\x00after nul",
	"a\r\nb",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.ly файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".ly" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
