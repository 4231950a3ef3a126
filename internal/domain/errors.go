package domain

import "errors"

var (
	// ErrUnsupportedFileType indicates an upload whose MIME type is not
	// one of the supported document formats.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrExtraction indicates an empty or unparseable document.
	ErrExtraction = errors.New("document text extraction failed")

	// ErrAnalysis indicates the analysis pipeline failed; terminal for
	// that document.
	ErrAnalysis = errors.New("document analysis failed")

	// ErrGeneration indicates plan synthesis failed. Callers substitute
	// the default plan rather than surfacing this to the user.
	ErrGeneration = errors.New("plan generation failed")

	// ErrDateParse indicates a Start/Finish value did not match the plan
	// date format. A date shift hitting this aborts and leaves the plan
	// unmodified.
	ErrDateParse = errors.New("invalid plan date format")
)
