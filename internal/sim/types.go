package sim

// DefaultSteps is the run length used when Config.Steps is zero.
const DefaultSteps = 5000

// Sample is one recorded loop step: time index, reference, error, control
// signal and output.
type Sample struct {
	T int
	R int
	E int
	U float64
	Y int
}

type Controller interface {
	Work(e int) float64
}

// Plant consumes a work command and returns the new output.
type Plant interface {
	Work(u float64) int
}

// SetPoint maps a time index to the reference value. Implementations must be
// pure: the same t always yields the same reference.
type SetPoint interface {
	At(t int) int
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s Sample)
}

type Config struct {
	Steps int
}

type Result struct {
	Samples []Sample
	Metrics map[string]float64
}
