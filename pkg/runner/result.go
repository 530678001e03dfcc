package runner

// FileOutcome records the result of converting a single file.
type FileOutcome struct {
	// Path is the input HTML file path.
	Path string

	// OutputPath is the Markdown file path written, or "" if the file
	// was not written (Error set).
	OutputPath string

	// BytesWritten is the size of the Markdown output in bytes. Zero if
	// the file was skipped or errored.
	BytesWritten int

	// Skipped is true if an existing output file already held identical
	// content and was left untouched.
	Skipped bool

	// BackedUp is true if an existing output file was saved to a
	// sidecar backup before being overwritten.
	BackedUp bool

	// Error is set if the file could not be read, converted, or written.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesConverted is the number of files successfully converted and
	// written.
	FilesConverted int

	// FilesSkipped is the number of files whose output was already
	// up to date.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// BytesWritten is the total size of all Markdown output written, in
	// bytes.
	BytesWritten int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered
	// deterministically by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to convert.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesConverted++
	r.Stats.BytesWritten += outcome.BytesWritten
}
