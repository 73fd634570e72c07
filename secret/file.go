package secret

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

type FileSource struct{}

func NewFileSource() *FileSource { return &FileSource{} }

var _ Source = (*FileSource)(nil)

func (s *FileSource) Get(_ context.Context, name string) (Secret, error) {
	b, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSecretNotFound, name)
	}

	return b, err
}
