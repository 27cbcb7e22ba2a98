// Command gen renders every lesson into a hidden window, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/go-theft-auto/glcourse"
	"github.com/go-theft-auto/glcourse/backend/opengl"
)

const frames = 2

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(glcourse.ExitCode(err))
	}
}

func run() error {
	log, err := glcourse.NewLogger(os.Stderr, "warn")
	if err != nil {
		return err
	}

	cfg := glcourse.DefaultConfig()
	cfg.Title = "screenshot-gen"
	cfg.Hidden = true
	cfg.VSync = false

	platform := opengl.NewPlatform(log)
	if err := platform.Init(cfg); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer platform.Terminate()

	window, err := platform.CreateWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	if _, err := platform.InitLoader(window); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	driver := platform.Driver()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	width, height := window.FramebufferSize()
	for _, lesson := range glcourse.Lessons() {
		cfg.Lesson = lesson
		if err := capture(driver, cfg, log, width, height, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", lesson, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", lesson, width, height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(glcourse.Lessons()), outDir)
	return nil
}

func capture(driver *opengl.Driver, cfg *glcourse.Config, log logrus.FieldLogger, width, height int, outDir string) error {
	// Fresh context per lesson so no GL objects leak between captures.
	rc, err := glcourse.NewRenderContext(driver, cfg, glcourse.WithLogger(log))
	if err != nil {
		return err
	}
	defer rc.Delete()

	rc.Resize(width, height)
	for i := 0; i < frames; i++ {
		rc.Frame()
	}

	img := driver.Snapshot(width, height)

	path := filepath.Join(outDir, cfg.Lesson.String()+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
