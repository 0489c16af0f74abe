package ports

// FileSync provides the file system operations used by the generation pipeline.
//
//go:generate mockgen -source=file_sync.go -destination=mocks/mock_file_sync.go -package=mocks
type FileSync interface {
	// ReadFile returns the content of the file at path.
	ReadFile(path string) (string, error)

	// WriteIfChanged writes content to path unless the file already holds it.
	// Missing parent directories are created. It reports whether the file was written.
	WriteIfChanged(path, content string) (bool, error)

	// Exists reports whether path exists.
	Exists(path string) bool

	// Glob returns the files matching pattern in lexical order.
	Glob(pattern string) ([]string, error)
}
