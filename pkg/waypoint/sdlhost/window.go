// Package sdlhost shows navigation titles in an SDL window caption.
package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// WindowChrome implements frame.Chrome for an SDL window.
type WindowChrome struct {
	Window *sdl.Window
}

// Open initializes the SDL video subsystem and creates a centered window.
func Open(title string, width, height int32, options WindowOptions) (*WindowChrome, error) {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdlhost: init video: %w", err)
	}

	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, options.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("sdlhost: create window: %w", err)
	}

	return &WindowChrome{Window: window}, nil
}

func (c *WindowChrome) SetTitle(title string) {
	c.Window.SetTitle(title)
}

// Title returns the current window caption.
func (c *WindowChrome) Title() string {
	return c.Window.GetTitle()
}

// Close destroys the window and shuts down the video subsystem.
func (c *WindowChrome) Close() error {
	err := c.Window.Destroy()
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
	return err
}
