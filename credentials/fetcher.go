// Package credentials fetches the service-account credential document used
// to authenticate the notification backend.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mpraski/sa-fetcher/secret"
)

type (
	Config struct {
		ProjectID  string `split_words:"true" default:"sharedshoppinglist-feecd"`
		SecretName string `split_words:"true" default:"firebase-service-account"`
	}

	Fetcher struct {
		source secret.Source
		name   string
	}
)

var ErrInvalidUTF8 = errors.New("secret payload is not valid utf-8")

func New(source secret.Source, name string) *Fetcher {
	return &Fetcher{source: source, name: name}
}

func (f *Fetcher) Name() string { return f.name }

// GetServiceAccountJSON returns the latest payload of the configured secret
// as text. The document is not parsed.
func (f *Fetcher) GetServiceAccountJSON(ctx context.Context) (string, error) {
	b, err := f.source.Get(ctx, f.name)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, f.name)
	}

	return string(b), nil
}
