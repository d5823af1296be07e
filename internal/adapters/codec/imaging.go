package codec

import (
	"fmt"
	"image"
	"resizer/internal/adapters/file"
	"resizer/internal/core/domain"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

type ImagingCodec struct {
	filter imaging.ResampleFilter
	exists func(path string) (bool, error)
	size   func(path string) (int64, error)
}

// NewImagingCodec resamples with nearest-neighbour, the filter an unqualified resize falls back to in PIL.
func NewImagingCodec() *ImagingCodec {
	return &ImagingCodec{filter: imaging.NearestNeighbor, exists: file.Exists, size: file.Size}
}

func (c *ImagingCodec) Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		err = fmt.Errorf("error decoding image %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return nil, err
	}

	log.Debug().Str("path", path).Stringer("bounds", img.Bounds()).Msg("decoded image")

	return img, nil
}

func (c *ImagingCodec) Resize(img image.Image, size domain.Dimensions) image.Image {
	return imaging.Resize(img, size.Width, size.Height, c.filter)
}

// Save only fails when encoding or writing fails. The file stats around it feed the debug log and are not fatal.
func (c *ImagingCodec) Save(img image.Image, path string) error {
	replacing, err := c.exists(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not check for existing file")
	}

	if err := imaging.Save(img, path); err != nil {
		err = fmt.Errorf("error encoding image %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return err
	}

	size, err := c.size(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not read size of saved file")
	}

	log.Debug().Str("path", path).Bool("replaced", replacing).Int64("bytes", size).Msg("saved image")

	return nil
}
