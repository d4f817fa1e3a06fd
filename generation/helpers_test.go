package generation

// scriptedSource replays a fixed list of uniform draws, cycling when exhausted
type scriptedSource struct {
	reals []float64
	next  int
}

func (s *scriptedSource) Real(min, max float64) float64 {
	u := s.reals[s.next%len(s.reals)]
	s.next++
	return min + u*(max-min)
}

func (s *scriptedSource) Int(min, max int) int {
	return min + int(s.Real(0, 1)*float64(max-min+1))
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}

func mustDungeon(t interface {
	Helper()
	Fatalf(string, ...any)
}, opts Options, seed int64) *Dungeon {
	t.Helper()
	d, err := NewDungeon(opts, NewSeededRandom(seed))
	if err != nil {
		t.Fatalf("NewDungeon(seed %d): %v", seed, err)
	}
	return d
}
