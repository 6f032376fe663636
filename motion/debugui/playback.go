package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Playback pauses, single-steps and time-scales a simulation loop.
type Playback struct {
	Paused    bool
	TimeScale float32

	stepRequested bool
	timeToAdvance float64
	timeAdvanced  float64
}

// NewPlayback returns a running playback at normal speed.
func NewPlayback() *Playback {
	return &Playback{TimeScale: 1}
}

// Step turns a wall-clock frame length into the dt the scheduler should be
// given. It returns false when the simulation should not tick this frame.
func (p *Playback) Step(dt float64) (float64, bool) {
	if !p.Paused {
		return dt * float64(p.TimeScale), true
	}

	if p.stepRequested {
		p.stepRequested = false
		return dt, true
	}

	if p.timeToAdvance > 0 {
		p.timeAdvanced += dt
		if p.timeAdvanced >= p.timeToAdvance {
			p.timeToAdvance = 0
			p.timeAdvanced = 0
		}
		return dt, true
	}

	return 0, false
}

// RequestStep advances a paused simulation by exactly one frame.
func (p *Playback) RequestStep() {
	p.stepRequested = true
}

// Advance runs a paused simulation for the given number of seconds.
func (p *Playback) Advance(seconds float64) {
	p.timeToAdvance = seconds
	p.timeAdvanced = 0
}

// Render draws the playback controls window.
func (p *Playback) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 480), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(250, 170), imgui.CondOnce)

	if !imgui.BeginV("Playback", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if p.Paused {
		if imgui.Button("Resume") {
			p.Paused = false
			p.timeToAdvance = 0
			p.timeAdvanced = 0
		}
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")

		if p.timeToAdvance > 0 {
			progress := float32(p.timeAdvanced / p.timeToAdvance)
			imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("%.1f/%.1fs", p.timeAdvanced, p.timeToAdvance))
		}

		imgui.Separator()
		if imgui.Button("1 Tick") {
			p.RequestStep()
		}
		imgui.SameLine()
		if imgui.Button("1 Second") {
			p.Advance(1)
		}
	} else {
		if imgui.Button("Pause") {
			p.Paused = true
		}
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.Separator()
	imgui.SetNextItemWidth(120)
	if imgui.InputFloat("Time Scale", &p.TimeScale) {
		p.TimeScale = max(p.TimeScale, 0)
	}

	imgui.End()
}
