// Package docstore persists whole JSON documents under short keys. Every save replaces
// the stored document; concurrent writers race and the last one wins.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNotFound   = errors.New("document not found")
	ErrInvalidKey = errors.New("invalid document key")
)

type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// ValidateKey rejects keys that could escape the store's namespace, e.g. path
// separators coming from a sprint id in the URL.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
