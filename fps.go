package pinchzoom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawStats prints frame rate and zoom state in the top-left corner.
func (v *Viewer) drawStats(screen *ebiten.Image) {
	z := v.zoomer
	off := v.view.ScrollOffset()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nscale: %.2f / %.2f\nscroll: %.0f,%.0f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), z.Scale(), z.MaxScale(), off.X, off.Y))
}
