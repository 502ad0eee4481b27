package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"layec/internal/diag"
	"layec/internal/lexer"
	"layec/internal/source"
	"layec/internal/token"
)

// Current schema version - increment when CachedTokens format changes
const tokenCacheSchemaVersion uint16 = 1

// CacheKey identifies one lexing result: file content plus the options
// that influence it.
type CacheKey [sha256.Size]byte

// KeyFor derives the cache key for f lexed with step.
func KeyFor(f *source.File, step lexer.Stepping) CacheKey {
	h := sha256.New()
	_, _ = h.Write(f.Hash[:])
	_, _ = h.Write([]byte{byte(tokenCacheSchemaVersion >> 8), byte(tokenCacheSchemaVersion), byte(step)})
	var out CacheKey
	copy(out[:], h.Sum(nil))
	return out
}

func (k CacheKey) String() string { return hex.EncodeToString(k[:]) }

// CachedTokens is what goes to disk. Spans are stored with whatever FileID
// they had when written; Get rebinds them.
type CachedTokens struct {
	Schema      uint16            `msgpack:"schema"`
	Path        string            `msgpack:"path"`
	Tokens      []token.Token     `msgpack:"tokens"`
	Diagnostics []diag.Diagnostic `msgpack:"diagnostics"`
}

// TokenCache хранит результаты лексинга на диске, ключ по содержимому файла.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenTokenCache opens the cache under $XDG_CACHE_HOME/<app>/tokens.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenTokenCacheAt(filepath.Join(base, app, "tokens"))
}

// OpenTokenCacheAt opens (and creates) a cache rooted at dir.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *TokenCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *TokenCache) pathFor(key CacheKey) string {
	hexKey := key.String()
	// два символа подкаталога, как в git objects
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Put writes an entry atomically (temp file + rename).
func (c *TokenCache) Put(key CacheKey, entry *CachedTokens) (err error) {
	if c == nil || entry == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	entry.Schema = tokenCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		_ = f.Close()
		return fmt.Errorf("token cache encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get loads the entry for key and rebinds every span to file. A missing
// entry or one written by another schema reports false without error.
func (c *TokenCache) Get(key CacheKey, file source.FileID) (*CachedTokens, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var entry CachedTokens
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("token cache decode %s: %w", key, err)
	}
	if entry.Schema != tokenCacheSchemaVersion {
		return nil, false, nil
	}
	rebind(&entry, file)
	return &entry, true, nil
}

// DropAll removes every cached entry.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func rebind(entry *CachedTokens, id source.FileID) {
	for i := range entry.Tokens {
		tok := &entry.Tokens[i]
		tok.Span.File = id
		for j := range tok.Leading {
			tok.Leading[j].Span.File = id
		}
		for j := range tok.Trailing {
			tok.Trailing[j].Span.File = id
		}
	}
	for i := range entry.Diagnostics {
		d := &entry.Diagnostics[i]
		d.Primary.File = id
		for j := range d.Notes {
			d.Notes[j].Span.File = id
		}
	}
}
