package graphics

// Context defines the interface for the window and OpenGL context the demo
// renders into.
type Context interface {
	MakeCurrent()
	Shutdown()
	// PollEvents returns every event queued since the previous call. It
	// never blocks.
	PollEvents() []Event
	// SwapBuffers presents the frame. It may wait for vertical sync.
	SwapBuffers()
	SetShouldClose(bool)
	GetFramebufferSize() (int, int)
}
