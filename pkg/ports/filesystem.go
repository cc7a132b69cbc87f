package ports

// FileSystem abstracts the filesystem operations a resource action performs.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file in full, creating it if necessary.
	WriteFile(path string, data []byte) error

	// TempFile creates an empty file with a unique name in dir (the system
	// temporary directory if dir is empty) and returns its path. Creation is
	// exclusive: two concurrent calls never return the same path.
	TempFile(dir, pattern string) (string, error)

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
