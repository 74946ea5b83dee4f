package core

import "math"

// GoalProgress reports how far a goal is funded as a whole percentage,
// rounded to nearest. There is no clamp at 100: a goal funded beyond its
// target legitimately reports more. A non-positive target degrades to 0
// instead of dividing by zero; creation already rejects such targets.
func GoalProgress(current, target Money) int {
	if target.Paisa <= 0 {
		return 0
	}
	return int(math.Round(float64(current.Paisa) / float64(target.Paisa) * 100))
}

// GoalRemaining returns the amount still needed to reach the target,
// floored at zero once the goal is overfunded.
func GoalRemaining(current, target Money) Money {
	rem := target.Paisa - current.Paisa
	if rem < 0 {
		rem = 0
	}
	return Money{Paisa: rem}
}
