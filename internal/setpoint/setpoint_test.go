package setpoint

import (
	"errors"
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		t    int
		want int
	}{
		{-1, 10},
		{0, 0},
		{99, 0},
		{100, 50},
		{300, 50},
		{301, 10},
		{4999, 10},
	}

	for _, tt := range tests {
		if got := Canonical.At(tt.t); got != tt.want {
			t.Errorf("Canonical.At(%d) = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestCanonical_Pure(t *testing.T) {
	forward := make([]int, 400)
	for i := range forward {
		forward[i] = Canonical.At(i)
	}
	for i := len(forward) - 1; i >= 0; i-- {
		if got := Canonical.At(i); got != forward[i] {
			t.Fatalf("At(%d) changed with call order: %d vs %d", i, got, forward[i])
		}
	}
}

func TestConstant(t *testing.T) {
	c := Constant(42)
	for _, ti := range []int{-10, 0, 1000} {
		if c.At(ti) != 42 {
			t.Errorf("Constant.At(%d) = %d", ti, c.At(ti))
		}
	}
}

func TestSchedule_MatchesCanonical(t *testing.T) {
	s, err := NewSchedule(10,
		Segment{From: 301, Value: 10},
		Segment{From: 0, Value: 0},
		Segment{From: 100, Value: 50},
	)
	if err != nil {
		t.Fatalf("NewSchedule failed: %v", err)
	}

	for ti := -5; ti < 600; ti++ {
		if s.At(ti) != Canonical.At(ti) {
			t.Fatalf("t=%d: schedule %d, canonical %d", ti, s.At(ti), Canonical.At(ti))
		}
	}
}

func TestSchedule_Empty(t *testing.T) {
	s, err := NewSchedule(7)
	if err != nil {
		t.Fatal(err)
	}
	if s.At(0) != 7 || s.At(1000) != 7 {
		t.Error("empty schedule should always return the before value")
	}
}

func TestSchedule_Duplicate(t *testing.T) {
	_, err := NewSchedule(0, Segment{From: 5, Value: 1}, Segment{From: 5, Value: 2})
	if !errors.Is(err, errDuplicateSegment) {
		t.Errorf("expected duplicate segment error, got %v", err)
	}
}

func TestSchedule_Isolated(t *testing.T) {
	segs := []Segment{{From: 0, Value: 1}}
	s, err := NewSchedule(0, segs...)
	if err != nil {
		t.Fatal(err)
	}
	segs[0].Value = 99

	if s.At(3) != 1 {
		t.Error("schedule must not alias the caller's segments")
	}
	out := s.Segments()
	out[0].Value = 77
	if s.At(3) != 1 {
		t.Error("Segments must return a copy")
	}
}

func TestFunc(t *testing.T) {
	f := Func(func(t int) int { return t * 2 })
	if f.At(21) != 42 {
		t.Errorf("Func.At(21) = %d", f.At(21))
	}
}
