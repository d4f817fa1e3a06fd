package generation

import "errors"

var (
	// ErrGenerationFailed is returned when no acceptable split was found
	// within the configured number of attempts.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrInvalidOptions is returned by Options.Validate and NewDungeon.
	ErrInvalidOptions = errors.New("invalid dungeon options")

	// ErrCoverage is returned by ValidateCoverage when leaves leave gaps or overlap.
	ErrCoverage = errors.New("partition coverage violated")
)
