package scene

// System is a per-frame behaviour run by the Scheduler. Systems may keep
// state in their own fields between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is passed to every system during one scheduler tick.
type UpdateFrame struct {
	DeltaTime float64
	Scene     *Scene
}
