package source

import (
	"bytes"
	"fmt"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeContent приводит содержимое файла к UTF-8.
// UTF-16 с BOM перекодируется, UTF-8 BOM отрезается, всё остальное
// передаётся лексеру как есть (CRLF не трогаем: '\r' это обычный пробел).
func decodeContent(content []byte) ([]byte, FileFlags, error) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return content[len(bomUTF8):], FileHadBOM, nil
	case bytes.HasPrefix(content, bomUTF16LE):
		out, err := transcodeUTF16(content, unicode.LittleEndian)
		return out, FileHadBOM | FileTranscoded, err
	case bytes.HasPrefix(content, bomUTF16BE):
		out, err := transcodeUTF16(content, unicode.BigEndian)
		return out, FileHadBOM | FileTranscoded, err
	}
	return content, 0, nil
}

func transcodeUTF16(content []byte, order unicode.Endianness) ([]byte, error) {
	dec := unicode.UTF16(order, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, content)
	if err != nil {
		return nil, fmt.Errorf("transcode utf-16: %w", err)
	}
	return out, nil
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath returns target relative to baseDir, or the normalized
// absolute path when target lies outside baseDir.
func RelativePath(target, baseDir string) (string, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return "", err
	}
	if rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return normalizePath(absTarget), nil
	}
	return normalizePath(rel), nil
}

// BaseName returns the last element of p.
func BaseName(p string) string {
	return filepath.Base(p)
}
