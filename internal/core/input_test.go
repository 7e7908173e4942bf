package core

import "testing"

func TestClickTracker(t *testing.T) {
	tests := []struct {
		name      string
		events    []PointerEvent
		wantClick bool
	}{
		{"press and release in place", []PointerEvent{Down(10, 10), Up(10, 10)}, true},
		{"release within slop", []PointerEvent{Down(10, 10), Up(12, 10)}, true},
		{"drag away", []PointerEvent{Down(10, 10), Move(50, 50), Up(50, 50)}, false},
		{"release without press", []PointerEvent{Up(10, 10)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ct := NewClickTracker(5)
			clicked := false
			for _, ev := range tc.events {
				for _, out := range ct.Feed(ev) {
					if out.Gesture == GestureClick {
						clicked = true
					}
				}
			}
			if clicked != tc.wantClick {
				t.Errorf("clicked = %v, expected %v", clicked, tc.wantClick)
			}
		})
	}
}
