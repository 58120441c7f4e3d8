package gamemath

// ApplyGravity adds one tick of gravity to a vertical speed and caps the
// result at maxFall. Upward speeds are never clamped.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}

// WalkSpeed returns the horizontal speed for the held direction keys. Holding
// both keys cancels out.
func WalkSpeed(left, right bool, speed float64) float64 {
	var dx float64
	if right {
		dx += speed
	}
	if left {
		dx -= speed
	}
	return dx
}

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
