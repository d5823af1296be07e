package domain

import (
	"fmt"
	"math"
)

// Validate checks that the factor shrinks (or keeps) an image and is a usable number.
func (s ScaleFactor) Validate() error {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, f)
	}

	return nil
}

// ScaleDimensions multiplies both sides by the factor, truncating toward zero.
// A side that ends up as zero is reported as ErrDegenerateSize.
func ScaleDimensions(size Dimensions, scale ScaleFactor) (Dimensions, error) {
	scaled := Dimensions{
		Width:  int(math.Floor(float64(size.Width) * float64(scale))),
		Height: int(math.Floor(float64(size.Height) * float64(scale))),
	}

	if scaled.Width <= 0 || scaled.Height <= 0 {
		return Dimensions{}, fmt.Errorf("%w: %s scaled by %v gives %s", ErrDegenerateSize, size, float64(scale), scaled)
	}

	return scaled, nil
}

// BackupName returns the path of the backup copy: BackupPrefix followed by the filename exactly as given, relative
// to the working directory. A filename with a directory part names a "bak."-prefixed directory.
func BackupName(filename string) string {
	return BackupPrefix + filename
}

// SkipMessage is printed when the user declines. Filename and suffix are not separated.
func SkipMessage(filename string) string {
	return filename + SkippedSuffix
}
