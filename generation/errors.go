package generation

import (
	"errors"
	"fmt"
)

// ErrGenerationFailed is wrapped by the error LevelBuilder returns once it has
// run out of attempts.
var ErrGenerationFailed = errors.New("level generation failed")

// GenerationError is returned when an architect cannot reach its target
// layout within its iteration ceiling. LevelBuilder retries these.
type GenerationError struct {
	Architect ArchitectKind
	Reason    string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s architect: %s", e.Architect, e.Reason)
}

// IsRetryable reports whether err came from an architect giving up, as
// opposed to a configuration or programming error.
func IsRetryable(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
