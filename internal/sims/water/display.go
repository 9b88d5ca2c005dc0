package water

// quantizeHeight maps a surface height to a display byte. The ramp input is
// min(|h|*4, 1): flat water is 0 and the palette saturates at |h| = 0.25, so
// modest waves already use the full color range.
func quantizeHeight(h float32) uint8 {
	a := float64(h)
	if a < 0 {
		a = -a
	}
	a *= 4
	if a >= 1 {
		return 255
	}
	return uint8(a * 255)
}

func (w *World) rebuildDisplay() {
	for i, h := range w.field.Curr() {
		w.display[i] = quantizeHeight(h)
	}
}

// Snapshot appends a copy of the display buffer to dst and returns it, for
// consumers that render on another goroutine. dst is reused when large
// enough.
func (w *World) Snapshot(dst []uint8) []uint8 {
	return append(dst[:0], w.display...)
}

// CopyHeights appends a copy of the current height buffer to dst and returns
// it, for consumers that map heights to geometry rather than color.
func (w *World) CopyHeights(dst []float32) []float32 {
	return append(dst[:0], w.field.Curr()...)
}
