package glcourse

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Window is a window with a current GL context.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	FramebufferSize() (width, height int)
	SwapBuffers()
	Destroy()
}

// Platform is the windowing library together with the GL function loader.
type Platform interface {
	Init(cfg *Config) error
	CreateWindow(cfg *Config) (Window, error)
	// InitLoader makes the window's context current, loads the GL
	// functions and returns a driver bound to them.
	InitLoader(w Window) (Driver, error)
	PollEvents()
	Terminate()
}

type runOptions struct {
	log       logrus.FieldLogger
	onContext func(*RenderContext)
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithRunLogger sets the logger for Run and everything it creates.
func WithRunLogger(log logrus.FieldLogger) RunOption {
	return func(o *runOptions) { o.log = log }
}

// OnRenderContext registers a callback invoked once the render context
// exists, before the first frame.
func OnRenderContext(fn func(*RenderContext)) RunOption {
	return func(o *runOptions) { o.onContext = fn }
}

// Run opens the window, sets up the lesson and renders until the window is
// closed, ctx is cancelled or cfg.MaxFrames frames have been drawn.
func Run(ctx context.Context, cfg *Config, platform Platform, opts ...RunOption) error {
	o := runOptions{log: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := platform.Init(cfg); err != nil {
		platform.Terminate()
		return fmt.Errorf("%w: %w", ErrPlatformInit, err)
	}
	defer platform.Terminate()

	window, err := platform.CreateWindow(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateWindow, err)
	}
	defer window.Destroy()

	width, height := window.FramebufferSize()

	driver, err := platform.InitLoader(window)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoaderInit, err)
	}

	rc, err := NewRenderContext(driver, cfg, WithLogger(log))
	if err != nil {
		return err
	}
	defer rc.Delete()

	rc.Resize(width, height)
	log.WithFields(logrus.Fields{
		"lesson": cfg.Lesson.String(),
		"width":  width,
		"height": height,
	}).Info("Window ready")

	if o.onContext != nil {
		o.onContext(rc)
	}

	for !window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			log.WithError(err).Info("Render loop interrupted")
			break
		}
		if cfg.MaxFrames > 0 && rc.Frames() >= cfg.MaxFrames {
			break
		}

		platform.PollEvents()

		if w, h := window.FramebufferSize(); w != width || h != height {
			width, height = w, h
			rc.Resize(width, height)
			log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("Framebuffer resized")
		}

		rc.Frame()
		window.SwapBuffers()
	}

	log.WithField("frames", rc.Frames()).Info("Render loop finished")
	return nil
}
