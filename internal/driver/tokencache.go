package driver

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"monkey/internal/diag"
	"monkey/internal/source"
	"monkey/internal/token"
)

// Bump when cachePayload changes shape.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache stores lexed token streams on disk, keyed by the SHA-256 of
// the normalized file content. Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedToken struct {
	Kind  uint8  `msgpack:"k"`
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
	Text  string `msgpack:"t,omitempty"`
	Value int64  `msgpack:"v,omitempty"`
}

type cachePayload struct {
	Schema uint16        `msgpack:"schema"`
	Hash   [32]byte      `msgpack:"hash"`
	Tokens []cachedToken `msgpack:"tokens"`
}

// OpenTokenCache initializes the cache at the standard location,
// $XDG_CACHE_HOME/<app>/toks (falling back to ~/.cache).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "toks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// OpenTokenCacheAt initializes the cache in an explicit directory.
// Tests use this with t.TempDir.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".mpk")
}

// Get returns the cached token stream for file, when a valid entry with a
// matching schema and content hash exists. Spans are rebased onto file's
// current FileID.
func (c *TokenCache) Get(file *source.File) ([]token.Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(file.Hash))
	if err != nil {
		return nil, false
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != tokenCacheSchemaVersion || payload.Hash != file.Hash {
		return nil, false
	}

	tokens := make([]token.Token, 0, len(payload.Tokens))
	for _, ct := range payload.Tokens {
		tokens = append(tokens, token.Token{
			Kind:  token.Kind(ct.Kind),
			Span:  source.Span{File: file.ID, Start: ct.Start, End: ct.End},
			Text:  ct.Text,
			Value: ct.Value,
		})
	}
	return tokens, true
}

// Put stores the token stream for file. Write is atomic: temp file plus
// rename, so a concurrent Get never sees a partial entry.
func (c *TokenCache) Put(file *source.File, tokens []token.Token) error {
	payload := cachePayload{
		Schema: tokenCacheSchemaVersion,
		Hash:   file.Hash,
		Tokens: make([]cachedToken, 0, len(tokens)),
	}
	for _, tok := range tokens {
		payload.Tokens = append(payload.Tokens, cachedToken{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  tok.Text,
			Value: tok.Value,
		})
	}

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	dst := c.pathFor(file.Hash)
	tmp, err := os.CreateTemp(c.dir, "tok-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, dst)
}

// Evict removes the entry for hash, if present.
func (c *TokenCache) Evict(hash [32]byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.Remove(c.pathFor(hash))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// TokenizeCached is Tokenize with a read-through cache. A cache hit skips
// lexing entirely (cached streams carry no diagnostics: entries are only
// written for clean runs). cache may be nil.
func TokenizeCached(path string, maxDiagnostics int, cache *TokenCache) (*TokenizeResult, error) {
	if cache == nil {
		return Tokenize(path, maxDiagnostics)
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	file := fileSet.Get(fileID)

	if tokens, ok := cache.Get(file); ok {
		return &TokenizeResult{
			FileSet: fileSet,
			File:    file,
			Tokens:  tokens,
			Bag:     diag.NewBag(maxDiagnostics),
		}, nil
	}

	res := tokenizeFile(fileSet, fileID, maxDiagnostics)
	if !res.Bag.HasErrors() && !res.Bag.HasWarnings() {
		// best effort; a failed write only costs the next run a re-lex
		_ = cache.Put(file, res.Tokens)
	}
	return res, nil
}
