package contentid

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"sync/atomic"

	"sortd/internal/services"
)

// DefaultChunkSize is the read buffer size used when none is configured.
const DefaultChunkSize = 64 * 1024

// Hasher produces a content fingerprint for a file path.
type Hasher interface {
	Fingerprint(path string) (string, error)
}

// SHA256Hasher streams file content through SHA-256 in fixed-size chunks.
type SHA256Hasher struct {
	chunkSize int
}

// NewSHA256Hasher constructs a hasher with the given chunk size in bytes.
// Sizes <= 0 fall back to DefaultChunkSize.
func NewSHA256Hasher(chunkSize int) *SHA256Hasher {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &SHA256Hasher{chunkSize: chunkSize}
}

// Fingerprint returns the hex digest of the file's content. Failures are
// tagged with services.ErrRead so callers can treat them as per-file skips.
func (h *SHA256Hasher) Fingerprint(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", services.Wrap(services.ErrRead, "fingerprint", "open", path, err)
	}
	defer file.Close()

	digest := sha256.New()
	buf := make([]byte, h.chunkSize)
	if _, err := io.CopyBuffer(digest, file, buf); err != nil {
		return "", services.Wrap(services.ErrRead, "fingerprint", "read", path, err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// CountingHasher wraps another hasher and counts Fingerprint invocations.
type CountingHasher struct {
	inner Hasher
	calls atomic.Int64
}

// NewCountingHasher wraps inner with an invocation counter.
func NewCountingHasher(inner Hasher) *CountingHasher {
	return &CountingHasher{inner: inner}
}

func (c *CountingHasher) Fingerprint(path string) (string, error) {
	c.calls.Add(1)
	return c.inner.Fingerprint(path)
}

// Calls reports how many fingerprints were requested.
func (c *CountingHasher) Calls() int64 {
	return c.calls.Load()
}
