package diagfmt

import "layec/internal/source"

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	if fs == nil {
		return "<unknown>"
	}
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// lineStart returns the byte offset where line (1-based) begins.
func lineStart(f *source.File, line uint32) uint32 {
	if line <= 1 || int(line-2) >= len(f.LineIdx) {
		return 0
	}
	return f.LineIdx[line-2] + 1
}
