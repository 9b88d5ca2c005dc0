package water

// The propagation kernel advances the damped wave equation
//
//	d2h/dt2 = c^2 * lap(h) - damping * dh/dt
//
// with the explicit leapfrog scheme over the 4-neighbor Laplacian:
//
//	next = 2*curr - prev + speed^2*lap - damping*(curr - prev)
//
// Boundary policy: Dirichlet zero. Border cells are pinned to height 0 every
// tick, so waves reflect off the walls. An impulse landing on a border cell
// feeds its interior neighbors for exactly one tick before the wall re-pins.
//
// The scheme is stable for speed <= 1/sqrt(2), about 0.707, at unit grid
// spacing and timestep; the parameter bounds keep user speeds at or below 0.7.
//
// Injection writes the current buffer only, so the first tick after an
// impulse sees prev lagging behind curr: a unit impulse at rest becomes
// 2 - 4*speed^2 - damping at its own cell and speed^2 at each 4-neighbor.
func (w *World) propagate() {
	width := w.field.W
	height := w.field.H
	curr := w.field.Curr()
	prev := w.field.Prev()
	next := w.field.Next()

	s2 := float32(w.params.WaveSpeed * w.params.WaveSpeed)
	damp := float32(w.params.Damping)

	for y := 1; y < height-1; y++ {
		row := y * width
		center := curr[row : row+width]
		top := curr[row-width : row]
		bottom := curr[row+width : row+2*width]
		prevRow := prev[row : row+width]
		nextRow := next[row : row+width]

		for x := 1; x < width-1; x++ {
			c := center[x]
			lap := center[x-1] + center[x+1] + top[x] + bottom[x] - 4*c
			nextRow[x] = 2*c - prevRow[x] + s2*lap - damp*(c-prevRow[x])
		}
		nextRow[0] = 0
		nextRow[width-1] = 0
	}

	for x := 0; x < width; x++ {
		next[x] = 0
	}
	base := (height - 1) * width
	for x := 0; x < width; x++ {
		next[base+x] = 0
	}

	w.field.Rotate()
}
