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

	"yangfmt/internal/format"
)

// Increment when the payload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache remembers which file contents are already in canonical form, so
// repeated runs over a large model tree skip files that have not changed.
// Entries are keyed by a digest of the content and the formatting options.
// Thread-safe; a nil *DiskCache is a valid no-op cache.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload is the msgpack-encoded record stored per digest.
type cachePayload struct {
	Schema uint16
	Clean  bool
}

// OpenDiskCache initializes a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "clean", hexKey+".mp")
}

// IsClean reports whether the digest is recorded as already formatted.
// Cache read failures count as misses.
func (c *DiskCache) IsClean(key [32]byte) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return false
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return false
	}
	return payload.Schema == diskCacheSchemaVersion && payload.Clean
}

// MarkClean records that the digest's content is in canonical form. Write
// failures are ignored; the cache only ever saves work.
func (c *DiskCache) MarkClean(key [32]byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	tmp := f.Name()

	payload := cachePayload{Schema: diskCacheSchemaVersion, Clean: true}
	encodeErr := msgpack.NewEncoder(f).Encode(&payload)
	closeErr := f.Close()
	if encodeErr != nil || closeErr != nil {
		_ = os.Remove(tmp)
		return
	}
	// Atomic replacement.
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
	}
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.RemoveAll(c.dir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// cacheKey mixes the content hash with the formatting options, so changing
// a flag never reuses stale entries.
func cacheKey(contentHash [32]byte, opts format.Options) [32]byte {
	desc := fmt.Sprintf("%x:w=%d:i=%d:c=%t",
		contentHash, opts.MaxWidth, opts.IndentWidth, opts.CanonicalOrder)
	return sha256.Sum256([]byte(desc))
}

func hashBytes(data []byte) [32]byte {
	return sha256.Sum256(data)
}
