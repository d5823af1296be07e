package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
)

// Exists reports whether a regular file or directory is present at path. A missing path is not an error.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	err = fmt.Errorf("error checking file %w", err)
	log.Error().Err(err).Str("path", path).Send()
	return false, err
}

// Size returns the size in bytes of the file at path.
func Size(path string) (int64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		err = fmt.Errorf("error reading file info %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return 0, err
	}

	return stat.Size(), nil
}

// Inspector exposes the local filesystem checks to the core services.
type Inspector struct{}

func NewInspector() *Inspector {
	return &Inspector{}
}

func (i *Inspector) Exists(path string) (bool, error) {
	return Exists(path)
}
