package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	// FileTranscoded marks content converted from UTF-16 to UTF-8 on load.
	FileTranscoded
	// FileInvalid marks a file the provider could not read; Content is empty.
	FileInvalid
)

// File is the immutable source text handed to the lexer.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
	// Err holds the load failure for invalid files.
	Err error
}

// Valid reports whether the file was read successfully.
func (f *File) Valid() bool {
	return f != nil && f.Flags&FileInvalid == 0
}

// Name is the display name used in locations and diagnostics.
func (f *File) Name() string {
	if f == nil {
		return ""
	}
	return f.Path
}
