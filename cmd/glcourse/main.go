// Command glcourse runs one lesson of the OpenGL course: a window that is
// cleared every frame and, from the triangle lesson on, a red triangle.
//
//	go run ./cmd/glcourse --lesson triangle
//	go run ./cmd/glcourse --config lesson.toml --verbosity debug
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/go-theft-auto/glcourse"
	"github.com/go-theft-auto/glcourse/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	lessonFlag = &cli.StringFlag{
		Name:  "lesson",
		Usage: "course step to run: window, buffers, triangle or validate",
		Value: glcourse.LessonValidate.String(),
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "window width",
		Value: 800,
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "window height",
		Value: 600,
	}
	titleFlag = &cli.StringFlag{
		Name:  "title",
		Usage: "window title",
		Value: "Test Window",
	}
	vertexFlag = &cli.PathFlag{
		Name:  "vertex",
		Usage: "vertex shader file (requires --fragment)",
	}
	fragmentFlag = &cli.PathFlag{
		Name:  "fragment",
		Usage: "fragment shader file (requires --vertex)",
	}
	framesFlag = &cli.Uint64Flag{
		Name:  "frames",
		Usage: "stop after this many frames (0 = until closed)",
	}
	vsyncFlag = &cli.BoolFlag{
		Name:  "vsync",
		Usage: "synchronize buffer swaps with the display",
		Value: true,
	}
	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "exit when the shader program fails to build",
		Value: true,
	}
	hiddenFlag = &cli.BoolFlag{
		Name:  "hidden",
		Usage: "create an invisible window",
	}
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level: panic, fatal, error, warn, info, debug or trace",
		Value: "info",
	}
)

var appFlags = []cli.Flag{
	configFlag,
	lessonFlag,
	widthFlag,
	heightFlag,
	titleFlag,
	vertexFlag,
	fragmentFlag,
	framesFlag,
	vsyncFlag,
	strictFlag,
	hiddenFlag,
	verbosityFlag,
}

func main() {
	app := &cli.App{
		Name:  "glcourse",
		Usage: "OpenGL course lessons",
		Flags:  appFlags,
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(glcourse.ExitCode(err))
	}
}

func run(c *cli.Context) error {
	log, err := glcourse.NewLogger(os.Stderr, c.String(verbosityFlag.Name))
	if err != nil {
		return err
	}

	cfg, err := makeConfig(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return glcourse.Run(ctx, cfg, opengl.NewPlatform(log), glcourse.WithRunLogger(log))
}

// makeConfig loads the config file, if any, and applies the flags that were
// set explicitly on top of it.
func makeConfig(c *cli.Context) (*glcourse.Config, error) {
	cfg := glcourse.DefaultConfig()
	if path := c.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = glcourse.LoadConfig(path); err != nil {
			return nil, err
		}
	}

	if c.IsSet(lessonFlag.Name) {
		if err := cfg.Lesson.UnmarshalText([]byte(c.String(lessonFlag.Name))); err != nil {
			return nil, err
		}
	}
	if c.IsSet(widthFlag.Name) {
		cfg.Width = c.Int(widthFlag.Name)
	}
	if c.IsSet(heightFlag.Name) {
		cfg.Height = c.Int(heightFlag.Name)
	}
	if c.IsSet(titleFlag.Name) {
		cfg.Title = c.String(titleFlag.Name)
	}
	if c.IsSet(vertexFlag.Name) {
		cfg.VertexShader = c.Path(vertexFlag.Name)
	}
	if c.IsSet(fragmentFlag.Name) {
		cfg.FragmentShader = c.Path(fragmentFlag.Name)
	}
	if c.IsSet(framesFlag.Name) {
		cfg.MaxFrames = c.Uint64(framesFlag.Name)
	}
	if c.IsSet(vsyncFlag.Name) {
		cfg.VSync = c.Bool(vsyncFlag.Name)
	}
	if c.IsSet(strictFlag.Name) {
		cfg.StrictShaders = c.Bool(strictFlag.Name)
	}
	if c.IsSet(hiddenFlag.Name) {
		cfg.Hidden = c.Bool(hiddenFlag.Name)
	}

	return cfg, cfg.Validate()
}
