package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spacefabric/scene"
)

// PerformancePanel shows frame times and per-system scheduler statistics.
func PerformancePanel(sc *scene.Scene, scheduler *scene.Scheduler) func() {
	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)

		if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		perf := sc.Metrics
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", perf.AvgFrameTime, perf.AvgFPS))
		imgui.Text(fmt.Sprintf("Min/Max: %.2f / %.2f ms", perf.MinFrameTime, perf.MaxFrameTime))
		imgui.Text(fmt.Sprintf("Vertices: %d  Sources: %d", sc.Mesh.Len(), perf.Sources))
		imgui.Text(fmt.Sprintf("Deepest: %.2f", perf.DeepestZ))

		if len(perf.Samples) > 0 {
			imgui.Separator()
			imgui.Text("Frame Time Graph (ms)")
			imgui.PlotLinesFloatPtr("##frametime", &perf.Samples[0], int32(len(perf.Samples)))
		}

		if imgui.TreeNodeStr("Systems") {
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SystemStats", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("System")
				imgui.TableSetupColumn("Runs")
				imgui.TableSetupColumn("Avg")
				imgui.TableSetupColumn("Max")
				imgui.TableHeadersRow()

				for _, st := range scheduler.Stats().Systems {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(st.Name)
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%d", st.ExecutionCount))
					imgui.TableNextColumn()
					imgui.Text(st.AvgDuration.String())
					imgui.TableNextColumn()
					imgui.Text(st.MaxDuration.String())
				}

				imgui.EndTable()
			}
			imgui.TreePop()
		}

		imgui.End()
	}
}
