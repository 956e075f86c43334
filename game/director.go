package game

// Director plays the game in place of a human
type Director interface {
	// Act performs a single move. It returns false once there is nothing
	// left to do.
	Act(*Field) (bool, error)
}
