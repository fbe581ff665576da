package pong

// Track returns the AI paddle velocity: full speed toward the ball while it is
// farther than deadZone*paddleH from the paddle center, otherwise zero.
func Track(ballY, paddleY, paddleH, deadZone, speed float64) float64 {
	diff := ballY - paddleY
	threshold := paddleH * deadZone

	switch {
	case diff > threshold:
		return speed
	case diff < -threshold:
		return -speed
	default:
		return 0
	}
}
