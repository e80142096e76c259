package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/spacefabric/scene"
	"github.com/plus3/spacefabric/star"
)

// StarRenderer fills a disc for every star in a scene.
type StarRenderer struct{}

func (StarRenderer) Draw(screen *ebiten.Image, sc *scene.Scene, p Projector) {
	sc.Bodies(func(_ scene.BodyId, body *star.Star) bool {
		x, y := p.ProjectBottom(body.Position)
		vector.DrawFilledCircle(screen, x, y, body.Radius*p.Scale, body.Color.NRGBA(), true)
		return true
	})
}
