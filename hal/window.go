package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	// Width and Height size the framebuffer in pixels.
	Width  int
	Height int
	// Scale multiplies the window size over the framebuffer size.
	Scale int
	// TPS is the window update rate.
	TPS int
}

func (c WindowConfig) normalized() WindowConfig {
	if c.Title == "" {
		c.Title = "donut"
	}
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}
