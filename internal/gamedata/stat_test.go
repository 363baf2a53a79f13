package gamedata

import (
	"errors"
	"testing"
	"time"
)

func intp(v int) *int { return &v }

func TestNewStat_AllUndefined(t *testing.T) {
	t.Parallel()

	s := NewStat([]*int{nil, nil, nil})
	if !s.IsAbsent() {
		t.Errorf("NewStat(all nil).IsAbsent() = false, want true")
	}
	if s.Len() != 0 {
		t.Errorf("NewStat(all nil).Len() = %d, want 0", s.Len())
	}
}

func TestNewStat_PartiallyDefined(t *testing.T) {
	t.Parallel()

	s := NewStat([]*int{intp(10), nil, intp(30)})
	if s.IsAbsent() {
		t.Fatal("IsAbsent() = true, want false")
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	got, err := s.At(2)
	if err != nil {
		t.Fatalf("At(2) error: %v", err)
	}
	if got != 0 {
		t.Errorf("At(2) = %d, want 0 for undefined entry", got)
	}
}

func TestStat_At(t *testing.T) {
	t.Parallel()

	s := NewStat([]*int{intp(50), intp(56), intp(62)})

	tests := []struct {
		level   int
		want    int
		wantErr bool
	}{
		{1, 50, false},
		{2, 56, false},
		{3, 62, false},
		{0, 0, true},
		{4, 0, true},
		{-1, 0, true},
	}

	for _, tt := range tests {
		got, err := s.At(tt.level)
		if tt.wantErr {
			var oor *OutOfRangeError
			if !errors.As(err, &oor) {
				t.Errorf("At(%d) error = %v, want OutOfRangeError", tt.level, err)
				continue
			}
			if oor.Level != tt.level || oor.Max != 3 {
				t.Errorf("At(%d) OutOfRangeError = %+v, want Level=%d Max=3", tt.level, oor, tt.level)
			}
			continue
		}
		if err != nil {
			t.Errorf("At(%d) error: %v", tt.level, err)
			continue
		}
		if got != tt.want {
			t.Errorf("At(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestStat_Equal(t *testing.T) {
	t.Parallel()

	a := NewStat([]*int{intp(1), intp(2)})
	b := NewStat([]*int{intp(1), intp(2)})
	c := NewStat([]*int{intp(1), intp(3)})
	absent := NewStat(nil)

	if !a.Equal(b) {
		t.Error("equal series compare unequal")
	}
	if a.Equal(c) {
		t.Error("different series compare equal")
	}
	if a.Equal(absent) {
		t.Error("defined series equals absent series")
	}
	if !absent.Equal(NewStat([]*int{nil})) {
		t.Error("two absent series compare unequal")
	}
}

func TestStat_Max(t *testing.T) {
	t.Parallel()

	if got := NewStat([]*int{intp(3), intp(7)}).Max(); got != 7 {
		t.Errorf("Max() = %d, want 7", got)
	}
	if got := NewStat(nil).Max(); got != 0 {
		t.Errorf("absent Max() = %d, want 0", got)
	}
}

func TestDurationStat(t *testing.T) {
	t.Parallel()

	// уровни без значения пропускаются, как в исходных данных
	s := NewDurationStat([]*int{intp(6), nil, intp(10)}, time.Hour)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (nil entries compacted)", s.Len())
	}
	got, err := s.At(2)
	if err != nil {
		t.Fatalf("At(2) error: %v", err)
	}
	if got != 10*time.Hour {
		t.Errorf("At(2) = %v, want 10h", got)
	}

	if _, err := s.At(3); err == nil {
		t.Error("At(3) = nil error, want OutOfRangeError")
	}

	absent := NewDurationStat([]*int{nil, nil}, time.Minute)
	if !absent.IsAbsent() {
		t.Error("all-nil DurationStat is not absent")
	}
}
