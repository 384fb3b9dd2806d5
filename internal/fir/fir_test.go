package fir

import (
	"testing"

	"pgregory.net/rapid"
)

// dcWindow builds a 2*Length-1 sample window of constant value c, valid
// around center = Length-1.
func dcWindow(c int32) []int32 {
	x := make([]int32, 2*Length-1)
	for i := range x {
		x[i] = c
	}
	return x
}

func TestEvalDCGain(t *testing.T) {
	for _, h := range []*[Length]int32{&H3, &H8} {
		rapid.Check(t, func(rt *rapid.T) {
			c := int32(rapid.Int32Range(-1000, 1000).Draw(rt, "c"))
			x := dcWindow(c)
			got := Eval(h, x, Length-1)
			want := int32((int64(c) * Sum(h)) >> scaleShift)
			if got != want {
				rt.Fatalf("Eval(dc=%d) = %d, want %d", c, got, want)
			}
		})
	}
}

func TestEvalOffCenter(t *testing.T) {
	// A window with values only valid around an arbitrary center must
	// still be addressable via the (base, center) convention.
	x := make([]int32, 200)
	for i := range x {
		x[i] = 7
	}
	got := Eval(&H3, x, 100)
	want := int32((int64(7) * Sum(&H3)) >> scaleShift)
	if got != want {
		t.Fatalf("got %d want %d", got, want)
	}
}
