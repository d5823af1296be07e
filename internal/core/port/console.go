package port

import "context"

type Console interface {
	// Println writes a single line of user-facing output.
	Println(ctx context.Context, text string) error
	// Ask shows the question and blocks until one line of input has been read. The returned answer has its line
	// terminator removed and is otherwise untouched.
	Ask(ctx context.Context, question string) (string, error)
}
