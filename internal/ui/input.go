package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	isKeyPressed         = ebiten.IsKeyPressed
	wheel                = ebiten.Wheel
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	key func(ebiten.Key) bool,
	wh func() (float64, float64),
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldKey := isKeyPressed
	oldWheel := wheel
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	isKeyPressed = key
	wheel = wh
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		isKeyPressed = oldKey
		wheel = oldWheel
	}
}

// zoomModifierHeld reports whether the zoom modifier (Ctrl) is down.
func zoomModifierHeld() bool {
	return isKeyPressed(ebiten.KeyControlLeft) || isKeyPressed(ebiten.KeyControlRight)
}
