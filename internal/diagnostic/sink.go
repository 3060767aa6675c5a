package diagnostic

// Sink is the append-only, single-producer diagnostic collector owned by one
// ValidationContext. Merging diagnostics across units is the
// driver's responsibility, not this package's.
type Sink struct {
	diagnostics []Diagnostic
}

func NewSink() *Sink { return &Sink{} }

// Push records a diagnostic. Never fails, never aborts traversal.
func (s *Sink) Push(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// All returns every diagnostic pushed so far, in push order.
func (s *Sink) All() []Diagnostic {
	return s.diagnostics
}

// Count returns the number of diagnostics pushed so far.
func (s *Sink) Count() int {
	return len(s.diagnostics)
}
