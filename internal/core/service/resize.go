package service

import (
	"context"
	"fmt"
	"resizer/internal/core/domain"
	"resizer/internal/core/port"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ResizeTool struct {
	codec   port.ImageCodec
	console port.Console
	files   port.FileInspector
	scale   domain.ScaleFactor
}

func NewResizeTool(codec port.ImageCodec, console port.Console, files port.FileInspector,
	scale domain.ScaleFactor) (*ResizeTool, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}

	return &ResizeTool{codec: codec, console: console, files: files, scale: scale}, nil
}

// Run asks for confirmation and, if given, shrinks filename in place after saving a backup copy of the original.
// Any answer other than exactly "y" leaves the filesystem untouched.
func (t *ResizeTool) Run(ctx context.Context, filename string) (domain.Outcome, error) {
	if filename == "" {
		return domain.Outcome{}, domain.ErrMissingFilename
	}

	l := zerolog.Ctx(ctx).With().Str("file", filename).Logger()
	if l.GetLevel() == zerolog.Disabled {
		l = log.With().Str("file", filename).Logger()
	}

	outcome := domain.Outcome{Filename: filename}

	if err := t.console.Println(ctx, filename); err != nil {
		return outcome, fmt.Errorf("failed to print filename: %w", err)
	}

	answer, err := t.console.Ask(ctx, domain.ConfirmQuestion)
	if err != nil {
		return outcome, fmt.Errorf("failed to read answer: %w", err)
	}

	if answer != domain.ConfirmAnswer {
		outcome.Result = domain.Skipped
		l.Debug().Str("answer", answer).Msg("resize declined")
		if err := t.console.Println(ctx, domain.SkipMessage(filename)); err != nil {
			return outcome, fmt.Errorf("failed to print skip message: %w", err)
		}
		return outcome, nil
	}

	img, err := t.codec.Open(filename)
	if err != nil {
		return outcome, fmt.Errorf("failed to open image: %w", err)
	}

	bounds := img.Bounds()
	outcome.Original = domain.Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}

	outcome.New, err = domain.ScaleDimensions(outcome.Original, t.scale)
	if err != nil {
		return outcome, err
	}

	l.Debug().Stringer("from", outcome.Original).Stringer("to", outcome.New).Msg("resizing image")

	resized := t.codec.Resize(img, outcome.New)

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	outcome.BackupPath = domain.BackupName(filename)

	exists, err := t.files.Exists(outcome.BackupPath)
	if err != nil {
		return outcome, fmt.Errorf("failed to check backup path: %w", err)
	}
	if exists {
		// a second run replaces the first backup, so the true original is lost
		l.Warn().Str("backup", outcome.BackupPath).Msg("overwriting existing backup")
	}

	if err := t.codec.Save(img, outcome.BackupPath); err != nil {
		return outcome, fmt.Errorf("failed to write backup: %w", err)
	}

	l.Debug().Str("backup", outcome.BackupPath).Msg("backup written")

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	if err := t.codec.Save(resized, filename); err != nil {
		return outcome, fmt.Errorf("failed to write resized image: %w", err)
	}

	outcome.Result = domain.Resized
	l.Info().Stringer("size", outcome.New).Str("backup", outcome.BackupPath).Msg("image resized")

	return outcome, nil
}
