package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/motionlab/motion/scene"
)

// PerformanceStats shows frame timings, scene population and per-system
// scheduler statistics.
type PerformanceStats struct {
	frameTimes *History
	particles  *History
	plot       []float32
}

// NewPerformanceStats keeps historyFrames samples for each plot.
func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		frameTimes: NewHistory(historyFrames),
		particles:  NewHistory(historyFrames),
		plot:       make([]float32, max(historyFrames, 1)),
	}
}

// Record samples one frame. Call it once per frame before Render.
func (ps *PerformanceStats) Record(deltaTime float32, stats scene.Stats) {
	ps.frameTimes.Push(deltaTime * 1000.0)
	ps.particles.Push(float32(stats.Particles))
}

// Render draws the stats window. scheduler may be nil.
func (ps *PerformanceStats) Render(s *scene.Scene, scheduler *scene.Scheduler) {
	imgui.SetNextWindowPosV(imgui.NewVec2(960, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(310, 420), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := s.CollectStats()
	imgui.Text(fmt.Sprintf("Emitters: %d (%d active)", stats.Emitters, stats.ActiveEmitters))
	imgui.Text(fmt.Sprintf("Bodies: %d", stats.Bodies))
	imgui.Text(fmt.Sprintf("Particles: %d", stats.Particles))
	imgui.Text(fmt.Sprintf("Sim Time: %.1fs", s.Elapsed))

	avgFrameTime := ps.frameTimes.Average()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	plot := ps.frameTimes.Ordered(ps.plot)
	imgui.PlotLinesFloatPtr("##frametime", &plot[0], int32(len(plot)))

	imgui.Text("Particle Count")
	plot = ps.particles.Ordered(ps.plot)
	imgui.PlotLinesFloatPtr("##particles", &plot[0], int32(len(plot)))

	if scheduler != nil && imgui.TreeNodeStr("System Details") {
		schedStats := scheduler.GetStats()
		imgui.Text(fmt.Sprintf("Frames: %d", schedStats.Frames))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Min")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range schedStats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(formatDuration(sys.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(sys.MinDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(sys.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Emitters") {
		for id, e := range s.Emitters() {
			cfg := e.Config()
			imgui.BulletText(fmt.Sprintf("%s %s %d/%d", id, cfg.Pattern, e.ParticleCount(), cfg.ParticleCount))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000.0)
}

// FrameTimer measures wall-clock time between frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

// NewFrameTimer starts timing from now.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// GetDeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
