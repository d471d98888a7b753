package sim

import "errors"

// ErrInvalidSteps indicates a negative step count.
var ErrInvalidSteps = errors.New("sim: step count must not be negative")
