package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/brickfall/breakout"
	"github.com/plus3/brickfall/engine"
)

// DestructionLog lists the blocks destroyed since the grid was last generated.
type DestructionLog struct{}

func (dl *DestructionLog) Render(world *engine.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 260), imgui.CondOnce)

	if !imgui.BeginV("Destroyed Blocks", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	m := world.Metrics
	imgui.Text(fmt.Sprintf("Destroyed: %d  Lives lost: %d  Restarts: %d", m.BlocksDestroyed, m.LivesLost, m.Restarts))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("DestroyedTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Block")
		imgui.TableSetupColumn("Row/Col")
		imgui.TableSetupColumn("Tick")
		imgui.TableHeadersRow()

		for _, entry := range m.Destroyed() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entry.ID))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d/%d", int(entry.ID)/breakout.BlockColumns, int(entry.ID)%breakout.BlockColumns))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entry.Tick))
		}

		imgui.EndTable()
	}

	imgui.End()
}
