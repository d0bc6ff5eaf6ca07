package core

// Color is the role of a screen cell. The platform layer picks the actual
// terminal color for each role.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorApple
	ColorBorder
	ColorText
	ColorAlert // Overlay headlines
)
