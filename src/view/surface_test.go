package view

import "testing"

func TestNegotiateMargins(t *testing.T) {
	w, h := Negotiate(80, 24)
	if w != 78 || h != 19 {
		t.Fatalf("Negotiate(80,24) = %vx%v, expected 78x19", w, h)
	}
}

func TestNegotiateIdempotent(t *testing.T) {
	w1, h1 := Negotiate(120, 40)
	w2, h2 := Negotiate(120, 40)
	if w1 != w2 || h1 != h2 {
		t.Fatalf("same report negotiated %vx%v then %vx%v", w1, h1, w2, h2)
	}
}

func TestNegotiateDegenerateSizes(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {2, 4}, {-5, -5}} {
		w, h := Negotiate(size[0], size[1])
		if w < 0 || h < 0 {
			t.Fatalf("Negotiate(%v,%v) = %vx%v, negative dimensions", size[0], size[1], w, h)
		}
	}
	if w, h := Negotiate(1, 1); w != 0 || h != 0 {
		t.Fatalf("tiny terminal negotiated %vx%v, expected 0x0", w, h)
	}
}

func TestNegotiateMonotonic(t *testing.T) {
	lastW, lastH := -1, -1
	for s := 0; s < 300; s++ {
		w, h := Negotiate(s, s)
		if w < lastW || h < lastH {
			t.Fatalf("growing terminal to %v shrank the grid to %vx%v", s, w, h)
		}
		lastW, lastH = w, h
	}
}

func TestNegotiateCaps(t *testing.T) {
	w, h := Negotiate(10000, 10000)
	if w != MaxGridWidth || h != MaxGridHeight {
		t.Fatalf("huge terminal negotiated %vx%v, expected caps %vx%v", w, h, MaxGridWidth, MaxGridHeight)
	}
}
