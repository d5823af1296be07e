package port

type FileInspector interface {
	// Exists reports whether a file is present at path.
	Exists(path string) (bool, error)
}
