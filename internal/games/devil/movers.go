package devil

// updateMovingPlatforms advances each moving platform and reverses it at the canvas edges.
func updateMovingPlatforms(lvl *Level, canvasWidth float64) {
	for i := range lvl.Moving {
		mp := &lvl.Moving[i]
		oldX := mp.X
		mp.X += mp.Velocity()

		if mp.X <= 0 {
			mp.X = 0
			mp.Direction = 1
		} else if mp.X+mp.W >= canvasWidth {
			mp.X = canvasWidth - mp.W
			mp.Direction = -1
		}
		mp.LastDX = mp.X - oldX
	}
}

// updateBombs drops every bomb and recycles the ones that left the canvas.
func updateBombs(lvl *Level, canvasHeight float64, gen *Generator) {
	for i := range lvl.Bombs {
		b := &lvl.Bombs[i]
		b.Y += b.VY
		if b.Y > canvasHeight {
			gen.respawnBomb(b)
		}
	}
}
