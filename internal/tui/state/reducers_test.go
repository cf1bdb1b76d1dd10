package state

import "testing"

func TestScrollUpFloorsAtZero(t *testing.T) {
	s := UIState{}
	s = ScrollUp(s)
	if s.Scroll != 0 {
		t.Fatalf("expected scroll to stay at 0, got %d", s.Scroll)
	}
	s.Scroll = 2
	s = ScrollUp(s)
	if s.Scroll != 1 {
		t.Fatalf("expected scroll 1, got %d", s.Scroll)
	}
}

func TestScrollDownCapsAtMax(t *testing.T) {
	s := UIState{}
	for i := 0; i < 60; i++ {
		s = ScrollDown(s, 50, 10)
	}
	if s.Scroll != 40 {
		t.Fatalf("expected scroll capped at 40, got %d", s.Scroll)
	}
}

func TestScrollDownNoOpWhenListFits(t *testing.T) {
	s := UIState{}
	s = ScrollDown(s, 5, 10)
	if s.Scroll != 0 {
		t.Fatalf("expected scroll 0 when everything fits, got %d", s.Scroll)
	}
}

func TestClampScrollKeepsStoredOffset(t *testing.T) {
	s := UIState{Scroll: 40}
	// pane shrank: effective offset clamps, stored offset survives
	if got := ClampScroll(s, 50, 45); got != 5 {
		t.Fatalf("expected effective offset 5, got %d", got)
	}
	if s.Scroll != 40 {
		t.Fatalf("stored offset changed: %d", s.Scroll)
	}
	// pane grew back: stored offset is effective again
	if got := ClampScroll(s, 50, 10); got != 40 {
		t.Fatalf("expected effective offset 40, got %d", got)
	}
}

func TestClampScrollWithinBounds(t *testing.T) {
	for _, count := range []int{0, 1, 10, 50} {
		for _, height := range []int{1, 5, 10, 100} {
			s := UIState{}
			for i := 0; i < count+height; i++ {
				s = ScrollDown(s, count, height)
			}
			got := ClampScroll(s, count, height)
			if got < 0 || got > MaxScroll(count, height) {
				t.Fatalf("offset %d out of range for count=%d height=%d", got, count, height)
			}
		}
	}
}

func TestToggleFind(t *testing.T) {
	s := UIState{Mode: Normal}
	s = ToggleFind(s)
	if s.Mode != Editing || s.Notice == "" {
		t.Fatalf("expected Editing mode with notice")
	}
	s = ToggleFind(s)
	if s.Mode != Normal || s.Notice != "" {
		t.Fatalf("expected Normal mode with cleared notice")
	}
}

func TestResize(t *testing.T) {
	s := Resize(UIState{}, 80, 24)
	if s.Width != 80 || s.Height != 24 {
		t.Fatalf("expected 80x24, got %dx%d", s.Width, s.Height)
	}
}
