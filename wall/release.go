package wall

type releaser interface{ Release() }

// frameCleanup collects the short-lived handles of one frame (surface
// texture, views, encoders, command buffers) and releases them in reverse
// acquisition order once the frame is presented or abandoned.
type frameCleanup struct {
	handles []releaser
}

func (c *frameCleanup) Add(handle releaser) {
	c.handles = append(c.handles, handle)
}

func (c *frameCleanup) Release() {
	for i := len(c.handles) - 1; i >= 0; i-- {
		c.handles[i].Release()
	}

	c.handles = nil
}
