package scene

// System represents a behavior that runs against the scene once per frame.
// Systems are plain structs; any fields they carry persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
