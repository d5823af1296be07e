package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"resizer/internal/core/domain"
	"strings"

	"github.com/rs/zerolog/log"
)

type TerminalConsole struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalConsole(in io.Reader, out io.Writer) *TerminalConsole {
	return &TerminalConsole{in: bufio.NewReader(in), out: out}
}

func (c *TerminalConsole) Println(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(c.out, text)
	return err
}

type answer struct {
	line string
	err  error
}

// Ask blocks until a full line, EOF or cancellation of ctx. On cancellation the pending read is abandoned and
// ctx.Err() is returned.
func (c *TerminalConsole) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := io.WriteString(c.out, question); err != nil {
		return "", err
	}

	read := make(chan answer, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		read <- answer{line: line, err: err}
	}()

	var res answer
	select {
	case res = <-read:
	case <-ctx.Done():
		log.Debug().Msg("prompt interrupted")
		return "", ctx.Err()
	}

	if res.err != nil {
		if !errors.Is(res.err, io.EOF) {
			return "", fmt.Errorf("error reading answer %w", res.err)
		}
		if res.line == "" {
			return "", domain.ErrNoAnswer
		}
		log.Debug().Msg("answer ended without newline")
	}

	line := strings.TrimSuffix(res.line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}
