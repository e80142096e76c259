package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spacefabric/fabric"
	"github.com/plus3/spacefabric/render"
	"github.com/plus3/spacefabric/scene"
	"github.com/plus3/spacefabric/star"
)

// FabricPanel edits the probe, the falloff and the stars of a scene.
func FabricPanel(sc *scene.Scene, fr *render.FabricRenderer) func() {
	var lastErr error

	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(320, 320), imgui.CondOnce)

		if !imgui.BeginV("Fabric", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		opts := sc.Mesh.Options()
		imgui.Text(fmt.Sprintf("Grid: %dx%d, spacing %.3f", opts.Rows, opts.Columns, opts.Spacing))

		imgui.Checkbox("Probe", &sc.Probe.Enabled)
		mass := float32(sc.Probe.Mass)
		if imgui.SliderFloat("Probe mass", &mass, 0, 2) {
			sc.Probe.Mass = float64(mass)
		}
		imgui.Checkbox("Shade by curvature", &fr.Shaded)

		imgui.Separator()
		rebuild := false
		if imgui.RadioButtonBool("1/d", opts.Falloff == fabric.InverseLinear) {
			opts.Falloff = fabric.InverseLinear
			rebuild = true
		}
		imgui.SameLine()
		if imgui.RadioButtonBool("1/d²", opts.Falloff == fabric.InverseSquare) {
			opts.Falloff = fabric.InverseSquare
			rebuild = true
		}
		eps := float32(opts.Epsilon)
		if imgui.SliderFloat("Epsilon", &eps, 1e-4, 0.1) {
			opts.Epsilon = float64(eps)
			rebuild = true
		}
		if rebuild {
			lastErr = sc.Rebuild(opts)
		}
		if lastErr != nil {
			imgui.Text(lastErr.Error())
		}

		imgui.Separator()
		if imgui.Button("Add star") {
			sc.Add(star.New(fabric.Vec2{}, 0.1, 1))
		}

		var remove []scene.BodyId
		sc.Bodies(func(id scene.BodyId, body *star.Star) bool {
			imgui.PushIDInt(int32(id))
			m := body.Mass
			if imgui.SliderFloat(fmt.Sprintf("%c star #%d", body.Class(), id), &m, star.MinMass, star.MaxMass) {
				body.SetMass(m)
			}
			imgui.SameLine()
			if imgui.Button("x") {
				remove = append(remove, id)
			}
			imgui.PopID()
			return true
		})
		for _, id := range remove {
			sc.Remove(id)
		}

		imgui.End()
	}
}
