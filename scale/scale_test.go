package scale

import "math"
import "testing"

func TestCall(t *testing.T) {
	tests := []struct {
		domain [2]float64
		rng    [2]float64
		in     float64
		out    float64
	}{
		{[2]float64{0, 10}, [2]float64{0, 100}, 5, 50},
		{[2]float64{0, 10}, [2]float64{0, 100}, 0, 0},
		{[2]float64{0, 10}, [2]float64{0, 100}, 10, 100},
		{[2]float64{0, 10}, [2]float64{100, 0}, 2.5, 75}, // flipped range
		{[2]float64{-5, 5}, [2]float64{0, 100}, 0, 50},
		{[2]float64{0, 10}, [2]float64{0, 100}, 12, 120}, // out of domain still projects
	}

	for i, test := range tests {
		s := NewLinear(test.domain, test.rng)
		out := s.Call(test.in)
		if math.Abs(out-test.out) > 1e-9 {
			t.Fatalf("test #%d: Call(%g) expected %g, got %g", i, test.in, test.out, out)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	scales := []*Linear{
		NewLinear([2]float64{0, 10}, [2]float64{0, 640}),
		NewLinear([2]float64{-3.2, 18.9}, [2]float64{480, 0}),
		NewLinear([2]float64{100, 2000}, [2]float64{-1, 1}),
	}
	values := []float64{0, 1, 2.5, 7.77, 9.999, -3.2, 18.9, 1234}

	for i, s := range scales {
		for _, x := range values {
			back := s.Inv(s.Call(x))
			if math.Abs(back-x) > 1e-9*math.Max(1, math.Abs(x)) {
				t.Fatalf("scale #%d: Inv(Call(%g)) = %g, want round trip", i, x, back)
			}
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	original := NewLinear([2]float64{0, 10}, [2]float64{0, 100})
	clone := original.Clone()
	clone.SetRange([2]float64{0, 50})

	if out := original.Call(10); out != 100 {
		t.Fatalf("mutating the clone changed the original: Call(10) = %g", out)
	}
	if out := clone.Call(10); out != 50 {
		t.Fatalf("clone range not applied: Call(10) = %g", out)
	}
	if original.Range() != [2]float64{0, 100} {
		t.Fatalf("original range changed: %v", original.Range())
	}
}
