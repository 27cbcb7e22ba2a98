package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"

	"github.com/go-theft-auto/glcourse"
)

// Platform implements glcourse.Platform with GLFW and the go-gl loader.
type Platform struct {
	log    logrus.FieldLogger
	driver *Driver
}

var _ glcourse.Platform = (*Platform)(nil)

// NewPlatform creates a GLFW platform. GLFW calls must happen on the main
// thread, so callers lock it with runtime.LockOSThread in init.
func NewPlatform(log logrus.FieldLogger) *Platform {
	return &Platform{log: log}
}

// Init initializes GLFW and sets the context hints from cfg.
func (p *Platform) Init(cfg *glcourse.Config) error {
	if err := glfw.Init(); err != nil {
		return err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	// Core profile: no deprecated fixed-function API.
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	return nil
}

// CreateWindow opens the window. Escape requests it to close.
func (p *Platform) CreateWindow(cfg *glcourse.Config) (glcourse.Window, error) {
	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	w.SetKeyCallback(keyCallback)
	return &Window{window: w, vsync: cfg.VSync}, nil
}

// InitLoader makes the window's context current and loads the GL functions.
func (p *Platform) InitLoader(w glcourse.Window) (glcourse.Driver, error) {
	win, ok := w.(*Window)
	if !ok {
		return nil, fmt.Errorf("window %T was not created by this platform", w)
	}
	win.window.MakeContextCurrent()
	if win.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, err
	}

	p.driver = NewDriver()
	version, renderer := p.driver.Version()
	p.log.WithFields(logrus.Fields{"version": version, "renderer": renderer}).Info("OpenGL initialized")
	return p.driver, nil
}

// Driver returns the driver created by InitLoader, or nil before it.
func (p *Platform) Driver() *Driver {
	return p.driver
}

// PollEvents processes pending window events.
func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

// Terminate destroys remaining windows and releases GLFW.
func (p *Platform) Terminate() {
	glfw.Terminate()
}

// Window wraps a GLFW window.
type Window struct {
	window *glfw.Window
	vsync  bool
}

var _ glcourse.Window = (*Window)(nil)

// ShouldClose reports whether closing was requested.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SetShouldClose sets or clears the close request.
func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size on scaled displays.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	w.window.Destroy()
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}
