package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/pong/ecs"
)

// PerformanceStats is an ImGui window with frame times, storage counts and
// per-system scheduler timings.
type PerformanceStats struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	timer     FrameTimer

	frameHistory  []float32
	systemHistory map[string][]float32
	frameIndex    int
	recorded      int
}

func NewPerformanceStats(storage *ecs.Storage, scheduler *ecs.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		storage:       storage,
		scheduler:     scheduler,
		timer:         FrameTimer{lastFrameTime: time.Now()},
		frameHistory:  make([]float32, max(historyFrames, 1)),
		systemHistory: make(map[string][]float32),
	}
}

// Record adds a frame time in milliseconds, and the last run time of every
// system, to the history ring.
func (ps *PerformanceStats) Record(frameMs float32) {
	ps.frameHistory[ps.frameIndex] = frameMs
	for _, sys := range ps.scheduler.GetStats().Systems {
		samples, ok := ps.systemHistory[sys.Name]
		if !ok {
			samples = make([]float32, len(ps.frameHistory))
			ps.systemHistory[sys.Name] = samples
		}
		samples[ps.frameIndex] = float32(sys.LastDuration.Seconds() * 1000)
	}
	ps.frameIndex = (ps.frameIndex + 1) % len(ps.frameHistory)
	ps.recorded = min(ps.recorded+1, len(ps.frameHistory))
}

// AverageFrameTime returns the mean of the recorded frame times in milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var total float32
	for _, ft := range ps.frameHistory[:ps.recorded] {
		total += ft
	}
	return total / float32(ps.recorded)
}

func (ps *PerformanceStats) Render() {
	ps.Record(ps.timer.GetDeltaTime() * 1000)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 230), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d  Archetypes: %d  Singletons: %d",
		stats.TotalEntityCount, stats.ArchetypeCount, stats.SingletonCount))

	avg := ps.AverageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range ps.scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System Latency") {
		if implot.BeginPlotV("##latency", imgui.NewVec2(-1, 200), 0) {
			implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
			for _, name := range sortedKeys(ps.systemHistory) {
				samples := ps.systemHistory[name]
				implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Archetype Details") {
		for _, arch := range stats.ArchetypeBreakdown {
			imgui.BulletText(fmt.Sprintf("0x%X: %d entities, %d components", arch.ID, arch.EntityCount, len(arch.ComponentTypes)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func sortedKeys(m map[string][]float32) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type FrameTimer struct {
	lastFrameTime time.Time
}

// GetDeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
