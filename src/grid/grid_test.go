package grid

import (
	"math/rand"
	"testing"
)

//glider cells, the orientation that travels one cell down-right every 4 generations
var glider = [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

func settle(g *Grid, cells [][]int, dx int, dy int) {
	for _, c := range cells {
		g.Set(c[0]+dx, c[1]+dy, true)
	}
}

func aliveSet(g *Grid) map[[2]int]bool {
	s := map[[2]int]bool{}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Alive(x, y) {
				s[[2]int{x, y}] = true
			}
		}
	}
	return s
}

func TestStepAllDeadStaysDead(t *testing.T) {
	g := New(3, 3)
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("all-dead grid produced %v live cells after a step", g.Population())
	}
	if g.Width != 3 || g.Height != 3 {
		t.Fatalf("step changed dimensions to %vx%v", g.Width, g.Height)
	}
}

func TestGliderMovesDiagonally(t *testing.T) {
	g := New(10, 10)
	settle(g, glider, 1, 1)

	for i := 0; i < 4; i++ {
		g.Step()
	}

	want := map[[2]int]bool{}
	for _, c := range glider {
		want[[2]int{c[0] + 2, c[1] + 2}] = true
	}
	got := aliveSet(g)
	if len(got) != len(want) {
		t.Fatalf("expected %v live cells, got %v", len(want), len(got))
	}
	for c := range want {
		if !got[c] {
			t.Fatalf("expected live cell at %v", c)
		}
	}
}

func TestBlinkerOscillates(t *testing.T) {
	g := New(5, 5)
	settle(g, [][]int{{2, 1}, {2, 2}, {2, 3}}, 0, 0)

	g.Step()
	want := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if g.Alive(x, y) != want[[2]int{x, y}] {
				t.Fatalf("cell (%v,%v) alive=%v, expected %v", x, y, g.Alive(x, y), want[[2]int{x, y}])
			}
		}
	}

	g.Step()
	want = map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if g.Alive(x, y) != want[[2]int{x, y}] {
				t.Fatalf("after second step cell (%v,%v) alive=%v, expected %v", x, y, g.Alive(x, y), want[[2]int{x, y}])
			}
		}
	}
}

func TestBoundedEdges(t *testing.T) {
	//a blinker touching the top edge must not wrap around to the bottom
	g := New(3, 3)
	settle(g, [][]int{{0, 0}, {1, 0}, {2, 0}}, 0, 0)

	g.Step()
	if g.Alive(1, 2) {
		t.Fatal("edge row wrapped around to the opposite side")
	}
	if !g.Alive(1, 0) || !g.Alive(1, 1) {
		t.Fatal("blinker at the edge lost its center column")
	}
}

func TestClearIdempotent(t *testing.T) {
	g := New(4, 4)
	g.Randomize(rand.New(rand.NewSource(1)), 1)
	g.Clear()
	first := aliveSet(g)
	g.Clear()
	if len(first) != 0 || g.Population() != 0 {
		t.Fatalf("clear left %v live cells", g.Population())
	}
}

func TestRandomizeIsTotal(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	g := New(8, 6)
	g.Randomize(r, 0.5)
	if g.Width != 8 || g.Height != 6 {
		t.Fatalf("randomize changed dimensions to %vx%v", g.Width, g.Height)
	}

	g.Randomize(r, 0)
	if g.Population() != 0 {
		t.Fatalf("density 0 left %v live cells", g.Population())
	}
	g.Randomize(r, 1)
	if g.Population() != 8*6 {
		t.Fatalf("density 1 produced %v live cells, expected %v", g.Population(), 8*6)
	}

	//degenerate grids must not panic
	New(0, 0).Randomize(r, 0.5)
	New(0, 5).Randomize(r, 0.5)
	New(5, 0).Randomize(r, 0.5)
}

func TestResizeResets(t *testing.T) {
	g := New(6, 6)
	g.Randomize(rand.New(rand.NewSource(7)), 1)

	g.Resize(4, 3)
	if g.Width != 4 || g.Height != 3 {
		t.Fatalf("resize yielded %vx%v, expected 4x3", g.Width, g.Height)
	}
	if g.Population() != 0 {
		t.Fatalf("resized grid holds %v live cells, expected a cleared field", g.Population())
	}
}

func TestResizeSameSizeIsNoop(t *testing.T) {
	g := New(4, 3)
	g.Set(2, 1, true)
	g.Resize(4, 3)
	if !g.Alive(2, 1) || g.Population() != 1 {
		t.Fatal("same-size resize did not preserve the contents")
	}
}

func TestZeroAreaStep(t *testing.T) {
	//must not panic, simply produces no cells
	New(0, 0).Step()
	New(0, 4).Step()
	New(4, 0).Step()
}

func Benchmark_Step(b *testing.B) {
	g := New(200, 200)
	settle(g, glider, 10, 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}
