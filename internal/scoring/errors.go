package scoring

import "errors"

var (
	ErrUnknownLevel         = errors.New("unknown level")
	ErrUnknownSection       = errors.New("unknown section")
	ErrUnknownSubsection    = errors.New("unknown subsection")
	ErrDuplicateInput       = errors.New("duplicate scoring input")
	ErrInvalidCounts        = errors.New("invalid correct/total counts")
	ErrNoSections           = errors.New("no sections to score")
	ErrInvalidSectionConfig = errors.New("invalid section config")
)
