package parsing

import "fmt"

// InvalidInputError is returned when a parser receives empty or
// whitespace-only input. It is the only failure mode of the engine; every
// other extraction degrades to a documented default instead of erroring.
type InvalidInputError struct {
	Document string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: empty or whitespace-only %s content", e.Document)
}
