package secret

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvSource_GetRaw(t *testing.T) {
	s, err := NewEnvSource(EncodingRaw)
	require.NoError(t, err)

	ctx := context.Background()

	t.Setenv("SA_RAW", `{"type":"service_account"}`)
	t.Setenv("SA_LOOKS_ENCODED", "test")

	raw, err := s.Get(ctx, "SA_RAW")
	require.NoError(t, err)
	assert.Equal(t, `{"type":"service_account"}`, string(raw))

	// "test" is valid base64 but must come back untouched.
	plain, err := s.Get(ctx, "SA_LOOKS_ENCODED")
	require.NoError(t, err)
	assert.Equal(t, "test", string(plain))

	_, err = s.Get(ctx, "SA_UNSET_FOR_TEST")
	assert.ErrorIs(t, err, ErrSecretNotFound)
}

func TestEnvSource_GetBase64(t *testing.T) {
	s, err := NewEnvSource(EncodingBase64)
	require.NoError(t, err)

	ctx := context.Background()

	t.Setenv("SA_B64", base64.StdEncoding.EncodeToString([]byte("décodé")))
	t.Setenv("SA_NOT_B64", `{"type":"service_account"}`)

	decoded, err := s.Get(ctx, "SA_B64")
	require.NoError(t, err)
	assert.Equal(t, "décodé", string(decoded))

	b, err := s.Get(ctx, "SA_NOT_B64")
	assert.Error(t, err)
	assert.Nil(t, b)
	assert.NotErrorIs(t, err, ErrSecretNotFound)
}

func TestNewEnvSource_UnknownEncoding(t *testing.T) {
	s, err := NewEnvSource("hex")
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestFileSource_Get(t *testing.T) {
	s := NewFileSource()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "sa.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"project_id":"p"}`), 0o600))

	b, err := s.Get(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, `{"project_id":"p"}`, string(b))

	_, err = s.Get(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrSecretNotFound)
}
