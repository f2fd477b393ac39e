// File: graphs/errors.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package graphs

import "fmt"

// Errors returned by graph constructors.
var (
	// ErrInvalidOrder is returned when a graph order below 1 is requested.
	ErrInvalidOrder = fmt.Errorf("graphs: order must be at least 1")

	// ErrInvalidProbability is returned when an edge probability lies
	// outside [0, 1].
	ErrInvalidProbability = fmt.Errorf("graphs: edge probability must be in [0, 1]")

	// ErrInvalidTrials is returned when an experiment asks for fewer
	// than one trial.
	ErrInvalidTrials = fmt.Errorf("graphs: trials must be at least 1")
)
