package source

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.ly", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	// Добавляем тот же файл с новым содержимым
	id2 := fs.Add("test.ly", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("test.ly")
	if !exists || latestID != id2 {
		t.Errorf("GetLatest = %d, %v; want %d", latestID, exists, id2)
	}
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Get(FileID(99)) != nil {
		t.Errorf("Get of unknown id should be nil")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("lines.ly", []byte("first\nsecond\n\nfourth")))

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, ""},
		{4, "fourth"},
		{5, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestOpenMissingFileIsInvalid(t *testing.T) {
	fs := NewFileSet()
	f := fs.Open(filepath.Join(t.TempDir(), "missing.ly"))
	if f.Valid() {
		t.Fatalf("missing file must be invalid")
	}
	if !errors.Is(f.Err, os.ErrNotExist) {
		t.Fatalf("Err = %v, want not-exist", f.Err)
	}
	if len(f.Content) != 0 {
		t.Fatalf("invalid file must have no content")
	}
}

func TestLoadStripsUTF8BOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.ly")
	if err := os.WriteFile(path, append([]byte{0xEF, 0xBB, 0xBF}, "x := 1"...), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	f := fs.Open(path)
	if !f.Valid() {
		t.Fatalf("unexpected error: %v", f.Err)
	}
	if string(f.Content) != "x := 1" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Fatalf("FileHadBOM not set")
	}
}

func TestLoadTranscodesUTF16(t *testing.T) {
	// "aé" в UTF-16LE с BOM
	le := []byte{0xFF, 0xFE, 'a', 0x00, 0xE9, 0x00}
	// то же в UTF-16BE
	be := []byte{0xFE, 0xFF, 0x00, 'a', 0x00, 0xE9}

	for name, raw := range map[string][]byte{"le": le, "be": be} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name+".ly")
			if err := os.WriteFile(path, raw, 0o600); err != nil {
				t.Fatal(err)
			}
			f := NewFileSet().Open(path)
			if !f.Valid() {
				t.Fatalf("unexpected error: %v", f.Err)
			}
			if !bytes.Equal(f.Content, []byte("aé")) {
				t.Fatalf("content = % X", f.Content)
			}
			if f.Flags&FileTranscoded == 0 {
				t.Fatalf("FileTranscoded not set")
			}
		})
	}
}

func TestLoadKeepsCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.ly")
	if err := os.WriteFile(path, []byte("a\r\nb"), 0o600); err != nil {
		t.Fatal(err)
	}
	f := NewFileSet().Open(path)
	if string(f.Content) != "a\r\nb" {
		t.Fatalf("content = %q", f.Content)
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	target := filepath.Join(tmp, "other", "file.ly")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("RelativePath = %q, want %q", got, want)
	}

	inside := filepath.Join(baseDir, "pkg", "a.ly")
	got, err = RelativePath(inside, baseDir)
	if err != nil {
		t.Fatal(err)
	}
	if got != "pkg/a.ly" {
		t.Fatalf("RelativePath inside = %q", got)
	}
}
