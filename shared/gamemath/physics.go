package gamemath

// ApplyFriction reduces speed toward zero by friction amount, snapping to
// zero instead of crossing it.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApproachCap bleeds a speed whose magnitude exceeds max back toward max by
// amount, never going below the cap. Speeds already within the cap are
// returned unchanged.
func ApproachCap(speed, max, amount float64) float64 {
	switch {
	case speed > max:
		if speed-amount < max {
			return max
		}
		return speed - amount
	case speed < -max:
		if speed+amount > -max {
			return -max
		}
		return speed + amount
	}
	return speed
}

// ClampDelta caps a frame delta in milliseconds to [0, max].
func ClampDelta(ms, max float64) float64 {
	if ms < 0 {
		return 0
	}
	if ms > max {
		return max
	}
	return ms
}
