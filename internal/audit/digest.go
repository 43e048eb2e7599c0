package audit

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// Algorithm identifies the digest algorithm. One algorithm is applied
// uniformly across manifest generation and verification; the verifier
// rejects manifests whose digests have a different width rather than
// comparing across algorithms.
type Algorithm string

// Supported algorithms. SHA256 is the default and the documented choice.
const (
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// DefaultAlgorithm is used when nothing else is configured.
const DefaultAlgorithm = SHA256

// ParseAlgorithm validates a configured algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case SHA256:
		return SHA256, nil
	case SHA512:
		return SHA512, nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm %q: supported algorithms are %q and %q", name, SHA256, SHA512)
	}
}

func (a Algorithm) newHash() hash.Hash {
	if a == SHA512 {
		return sha512.New()
	}
	return sha256.New()
}

// HexLen returns the fixed width of the algorithm's lowercase hex digest.
func (a Algorithm) HexLen() int {
	if a == SHA512 {
		return 128
	}
	return 64
}

// DigestFile computes the hex digest of a file's byte content.
func DigestFile(algo Algorithm, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s for digest: %w", path, err)
	}
	defer f.Close()

	h := algo.newHash()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("digesting %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// DigestBytes computes the hex digest of a byte slice. It matches
// DigestFile for identical content.
func DigestBytes(algo Algorithm, data []byte) string {
	h := algo.newHash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
