package secret

import (
	"context"
	"errors"
)

type (
	Secret = []byte

	Source interface {
		Get(context.Context, string) (Secret, error)
	}
)

var ErrSecretNotFound = errors.New("secret_not_found")
