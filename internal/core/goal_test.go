package core

import "testing"

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		name    string
		current int64
		target  int64
		want    int
	}{
		{"partial", 32500_00, 50000_00, 65},
		{"zero target degrades", 0, 0, 0},
		{"zero current", 0, 50000_00, 0},
		{"complete", 50000_00, 50000_00, 100},
		{"overfunded not clamped", 60000_00, 50000_00, 120},
		{"rounds nearest", 1_00, 3_00, 33},
		{"negative target degrades", 10_00, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GoalProgress(Money{Paisa: tc.current}, Money{Paisa: tc.target})
			if got != tc.want {
				t.Fatalf("GoalProgress(%d, %d) = %d, want %d", tc.current, tc.target, got, tc.want)
			}
		})
	}
}

func TestGoalRemaining(t *testing.T) {
	if got := GoalRemaining(rupees(32500), rupees(50000)); got != rupees(17500) {
		t.Errorf("remaining = %v, want 17500", got)
	}
	if got := GoalRemaining(rupees(60000), rupees(50000)); got.Paisa != 0 {
		t.Errorf("overfunded remaining = %v, want 0", got)
	}
}
