package secret

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
)

type (
	Encoding string

	// EnvSource reads secrets from environment variables. Values are taken
	// as-is unless the source was built with EncodingBase64.
	EnvSource struct {
		encoding Encoding
	}
)

const (
	EncodingRaw    Encoding = "raw"
	EncodingBase64 Encoding = "base64"
)

var _ Source = (*EnvSource)(nil)

func NewEnvSource(encoding Encoding) (*EnvSource, error) {
	switch encoding {
	case EncodingRaw, EncodingBase64:
		return &EnvSource{encoding: encoding}, nil
	default:
		return nil, fmt.Errorf("unknown env encoding %q", encoding)
	}
}

func (s *EnvSource) Get(_ context.Context, name string) (Secret, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil, fmt.Errorf("%w: %s", ErrSecretNotFound, name)
	}

	if s.encoding == EncodingRaw {
		return []byte(v), nil
	}

	b, err := base64.StdEncoding.DecodeString(v)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return b, nil
}
