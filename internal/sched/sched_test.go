package sched

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func TestAdvanceRunsDueTasksInOrder(t *testing.T) {
	s := New()
	var got []string
	record := func(name string) func(context.Context) {
		return func(context.Context) { got = append(got, name) }
	}

	s.After(300*time.Millisecond, record("c"))
	s.After(100*time.Millisecond, record("a"))
	s.After(100*time.Millisecond, record("b"))
	s.After(time.Second, record("late"))

	if n := s.Advance(context.Background(), 50*time.Millisecond); n != 0 {
		t.Errorf("Advance(50ms) ran %d tasks, want 0", n)
	}
	if n := s.Advance(context.Background(), 300*time.Millisecond); n != 3 {
		t.Errorf("Advance(+300ms) ran %d tasks, want 3", n)
	}

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("run order = %v, want %v", got, want)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
}

func TestCancel(t *testing.T) {
	s := New()
	ran := false
	id := s.After(time.Second, func(context.Context) { ran = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel() = false, want true")
	}
	if s.Cancel(id) {
		t.Error("second Cancel() = true, want false")
	}
	s.Advance(context.Background(), 2*time.Second)
	if ran {
		t.Error("cancelled task ran")
	}
}

func TestCancelAll(t *testing.T) {
	s := New()
	count := 0
	for i := 0; i < 3; i++ {
		s.After(time.Duration(i)*time.Millisecond, func(context.Context) { count++ })
	}
	s.CancelAll()
	s.Advance(context.Background(), time.Second)
	if count != 0 || s.Pending() != 0 {
		t.Errorf("after CancelAll: ran=%d pending=%d, want 0 and 0", count, s.Pending())
	}
}

func TestZeroDelayTaskScheduledDuringAdvance(t *testing.T) {
	s := New()
	var got []string

	s.After(100*time.Millisecond, func(context.Context) {
		got = append(got, "first")
		s.After(0, func(context.Context) { got = append(got, "chained") })
		s.After(time.Second, func(context.Context) { got = append(got, "later") })
	})

	if n := s.Advance(context.Background(), 100*time.Millisecond); n != 2 {
		t.Errorf("Advance() ran %d tasks, want 2", n)
	}
	if want := []string{"first", "chained"}; !reflect.DeepEqual(got, want) {
		t.Errorf("run order = %v, want %v", got, want)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
}

func TestTaskCancelsSibling(t *testing.T) {
	s := New()
	ran := false
	var sibling ID

	s.After(10*time.Millisecond, func(context.Context) { s.Cancel(sibling) })
	sibling = s.After(10*time.Millisecond, func(context.Context) { ran = true })

	s.Advance(context.Background(), 20*time.Millisecond)
	if ran {
		t.Error("task cancelled by an earlier task in the same Advance still ran")
	}
}

func TestNegativeDeltaDoesNotRewind(t *testing.T) {
	s := New()
	s.Advance(context.Background(), time.Second)
	s.Advance(context.Background(), -time.Hour)
	if s.Now() != time.Second {
		t.Errorf("Now() = %v, want 1s", s.Now())
	}
}

func TestDueTimes(t *testing.T) {
	s := New()
	s.After(1500*time.Millisecond, func(context.Context) {})
	s.After(time.Second, func(context.Context) {})
	s.Advance(context.Background(), 200*time.Millisecond)

	want := []time.Duration{800 * time.Millisecond, 1300 * time.Millisecond}
	if got := s.DueTimes(); !reflect.DeepEqual(got, want) {
		t.Errorf("DueTimes() = %v, want %v", got, want)
	}
}
