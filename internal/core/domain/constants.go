package domain

import "errors"

const (
	// DefaultScale is applied to both width and height of the image.
	DefaultScale ScaleFactor = 0.9
	// ConfirmAnswer is the only prompt answer that triggers a resize.
	ConfirmAnswer = "y"
	// ConfirmQuestion is shown before reading the answer.
	ConfirmQuestion = "resize image? "
	// BackupPrefix is prepended to the base name of the original file.
	BackupPrefix = "bak."
	// SkippedSuffix is appended to the filename when the user declines.
	SkippedSuffix = "skipped"
)

var (
	ErrMissingFilename = errors.New("missing filename argument")
	ErrNoAnswer        = errors.New("no answer on input")
	ErrDegenerateSize  = errors.New("resized image would have zero width or height")
	ErrInvalidScale    = errors.New("scale factor must be within (0, 1]")
)
