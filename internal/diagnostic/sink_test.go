package diagnostic

import (
	"testing"

	"github.com/stvalidate/stvalidate/internal/source"
)

func TestSinkPushAppendsInOrder(t *testing.T) {
	s := NewSink()
	s.Push(NewUnresolvedReference("A", source.Range{}))
	s.Push(NewUnresolvedReference("B", source.Range{}))

	all := s.All()
	if len(all) != 2 || all[0].Args[0] != "A" || all[1].Args[0] != "B" {
		t.Fatalf("expected [A B] in push order, got %v", all)
	}
	if s.Count() != 2 {
		t.Fatalf("expected Count to track pushes, got %d", s.Count())
	}
}

func TestSinkNeverHaltsOnPriorDiagnostics(t *testing.T) {
	s := NewSink()
	for i := 0; i < 5; i++ {
		s.Push(NewUnresolvedReference("X", source.Range{}))
	}
	if s.Count() != 5 {
		t.Fatalf("expected every push to be recorded regardless of count, got %d", s.Count())
	}
}
