package scene

type UpdateFrame struct {
	DeltaTime float64
	// Elapsed is the scene time at the end of this frame.
	Elapsed  float64
	Commands *Commands
	Scene    *Scene
}

func newUpdateFrame(dt float64, scene *Scene) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Elapsed:   scene.Elapsed,
		Commands:  newCommands(),
		Scene:     scene,
	}
}
