package domain

import "fmt"

type ScaleFactor float64

type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

type Result string

const (
	Skipped Result = "skipped"
	Resized Result = "resized"
)

// Outcome describes what a single run did to the filesystem. Result stays empty when the run failed.
type Outcome struct {
	Result     Result
	Filename   string
	BackupPath string
	Original   Dimensions
	New        Dimensions
}
