package canvas

import "math"

// DisplayToBuffer converts a position on a displayed (possibly resized) view
// of the canvas into canvas pixel coordinates:
//
//	bufferCoord = floor(displayCoord * (bufferDimension / displayDimension))
//
// ok is false when the display dimensions are not positive. The result is
// not clamped: a position outside the displayed view maps outside the canvas,
// which the fill engine treats as a miss.
func DisplayToBuffer(displayX, displayY, displayWidth, displayHeight float64, width, height int) (x, y int, ok bool) {
	if displayWidth <= 0 || displayHeight <= 0 {
		return 0, 0, false
	}
	x = int(math.Floor(displayX * (float64(width) / displayWidth)))
	y = int(math.Floor(displayY * (float64(height) / displayHeight)))
	return x, y, true
}
