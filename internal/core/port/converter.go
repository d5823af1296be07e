package port

import (
	"image"
	"resizer/internal/core/domain"
)

type ImageCodec interface {
	// Open decodes the image stored at path, detecting the format from its content.
	Open(path string) (image.Image, error)
	// Resize resamples img to exactly the given dimensions.
	Resize(img image.Image, size domain.Dimensions) image.Image
	// Save encodes img to path, inferring the format from the file extension and replacing any existing file.
	Save(img image.Image, path string) error
}
