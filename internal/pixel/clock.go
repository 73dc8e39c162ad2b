package pixel

// Clock accumulates elapsed time and normalizes it into the dimensionless
// animation phase the generators consume. The divisor is fixed at
// construction; elapsed time only ever grows, so resetting means making a
// new Clock.
type Clock struct {
	elapsed float64
	divisor float64
}

// NewClock returns a clock with the given normalization divisor. A zero
// divisor is treated as 1 so Normalize never divides by zero.
func NewClock(divisor float64) *Clock {
	if divisor == 0 {
		divisor = 1
	}
	return &Clock{divisor: divisor}
}

// Update adds dt seconds to the elapsed time.
func (c *Clock) Update(dt float64) {
	c.elapsed += dt
}

// Elapsed returns the accumulated seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Normalize returns elapsed time divided by the divisor.
func (c *Clock) Normalize() float64 {
	return c.elapsed / c.divisor
}
