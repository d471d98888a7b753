package control

// PI is a discrete proportional-integral controller over integer error
// signals. The integral term is never clamped; sustained error winds it up.
type PI struct {
	kp       float64
	ki       float64
	integral int
}

func NewPI(kp, ki float64) *PI {
	return &PI{kp: kp, ki: ki}
}

// Work folds e into the integral and returns kp*e + ki*integral.
func (p *PI) Work(e int) float64 {
	p.integral += e
	return p.kp*float64(e) + p.ki*float64(p.integral)
}

func (p *PI) Kp() float64   { return p.kp }
func (p *PI) Ki() float64   { return p.ki }
func (p *PI) Integral() int { return p.integral }

// GetParams returns the gains for display.
func (p *PI) GetParams() map[string]float64 {
	return map[string]float64{
		"Kp": p.kp,
		"Ki": p.ki,
	}
}
