// scale provides the invertible linear mappings used to project world
// coordinates (meters, experiment space) into pixel coordinates and back.
// Each viewport pairs one horizontal and one vertical [Linear] scale;
// tiled panes clone the full-view scales and compress their ranges into
// grid cells, so clones must be fully independent of their originals.
package scale

import "log"

// Linear is a pure linear mapping from a domain interval onto a range
// interval. [Linear.Call]() projects domain values into the range and
// [Linear.Inv]() is its exact mathematical inverse, within floating
// point tolerance.
//
// Domain and range intervals may be decreasing (e.g. a range of
// [height, 0] to flip the vertical axis).
type Linear struct {
	domain      [2]float64
	rng         [2]float64
	checkBounds bool
}

// Creates a [Linear] scale mapping the given domain onto the given range.
// Degenerate intervals (zero span) are a caller error; Call would map
// everything onto one point and Inv would divide by zero.
func NewLinear(domain, rng [2]float64) *Linear {
	return &Linear{domain: domain, rng: rng}
}

// Projects a domain value into the range.
func (self *Linear) Call(x float64) float64 {
	if self.checkBounds { self.warnOutside("domain", x, self.domain) }
	t := (x - self.domain[0]) / (self.domain[1] - self.domain[0])
	return self.rng[0] + t*(self.rng[1] - self.rng[0])
}

// Projects a range value back into the domain. Inverse of [Linear.Call]().
func (self *Linear) Inv(y float64) float64 {
	if self.checkBounds { self.warnOutside("range", y, self.rng) }
	t := (y - self.rng[0]) / (self.rng[1] - self.rng[0])
	return self.domain[0] + t*(self.domain[1] - self.domain[0])
}

// Returns an independent copy of the scale. Mutating the clone (e.g.
// through [Linear.SetRange]()) never affects the original.
func (self *Linear) Clone() *Linear {
	clone := *self
	return &clone
}

// Returns the domain interval.
func (self *Linear) Domain() [2]float64 { return self.domain }

// Returns the range interval.
func (self *Linear) Range() [2]float64 { return self.rng }

// Replaces the range interval. The domain is left untouched.
func (self *Linear) SetRange(rng [2]float64) { self.rng = rng }

// Enables or disables advisory bounds checking. When enabled, inputs
// falling outside the configured domain (for Call) or range (for Inv)
// are reported through the standard logger. Purely advisory: the value
// is still projected and nothing fails.
func (self *Linear) SetBoundsCheck(enabled bool) { self.checkBounds = enabled }

func (self *Linear) warnOutside(name string, value float64, bounds [2]float64) {
	lo, hi := bounds[0], bounds[1]
	if lo > hi { lo, hi = hi, lo }
	if value < lo || value > hi {
		log.Printf("scale: %s value %g outside [%g, %g]", name, value, lo, hi)
	}
}
