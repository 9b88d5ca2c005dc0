package rings

import "math"

// rebuildDisplay rasters the scene back to front: cloud, waterline, drops,
// rings. Overlapping cells keep the brightest shade.
func (w *World) rebuildDisplay() {
	for i := range w.display {
		w.display[i] = 0
	}
	w.drawCloud()
	w.drawWaterline()
	w.drawDrops()
	w.drawRings()
}

func (w *World) plot(x, y int, shade uint8) {
	if x < 0 || x >= w.cfg.Width || y < 0 || y >= w.cfg.Height {
		return
	}
	idx := y*w.cfg.Width + x
	if w.display[idx] < shade {
		w.display[idx] = shade
	}
}

func (w *World) drawWaterline() {
	y := w.cfg.Height - 1
	for x := 0; x < w.cfg.Width; x++ {
		w.plot(x, y, waterlineShade)
	}
}

func (w *World) drawCloud() {
	cx := w.cloudX()
	cy := float64(w.cloudTop()) + float64(w.cloudHeight())/2
	a := float64(w.cloudWidth()) / 2
	b := float64(w.cloudHeight()) / 2
	if a <= 0 || b <= 0 {
		return
	}
	for y := int(cy - b); y <= int(cy+b); y++ {
		for x := int(cx - a); x <= int(cx+a); x++ {
			dx := (float64(x) - cx) / a
			dy := (float64(y) - cy) / b
			if dx*dx+dy*dy <= 1 {
				w.plot(x, y, cloudShade)
			}
		}
	}
}

// Drops draw as short vertical streaks with the tail trailing above the
// falling head, length proportional to the drop size.
func (w *World) drawDrops() {
	for _, d := range w.drops {
		x := int(math.Round(d.X))
		y := int(math.Round(d.Y))
		length := int(d.Size + 0.5)
		if length < 1 {
			length = 1
		}
		for i := 0; i < length; i++ {
			w.plot(x, y-i, dropShade)
		}
	}
}

func (w *World) drawRings() {
	for _, r := range w.rings {
		shade := uint8(r.Opacity * 255)
		w.drawCircle(int(math.Round(r.X)), int(math.Round(r.Y)), int(math.Round(r.Radius)), shade)
	}
}

// drawCircle rasters an unfilled midpoint circle, clipped to the grid.
func (w *World) drawCircle(cx, cy, r int, shade uint8) {
	if r <= 0 {
		w.plot(cx, cy, shade)
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		w.plot(cx+x, cy+y, shade)
		w.plot(cx-x, cy+y, shade)
		w.plot(cx+x, cy-y, shade)
		w.plot(cx-x, cy-y, shade)
		w.plot(cx+y, cy+x, shade)
		w.plot(cx-y, cy+x, shade)
		w.plot(cx+y, cy-x, shade)
		w.plot(cx-y, cy-x, shade)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}
