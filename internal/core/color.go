package core

// Color is a foreground color for a screen cell, mapped to ANSI codes by the platform.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorSkin
	ColorHair
	ColorGray
)
