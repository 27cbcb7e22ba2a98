/*
Package glcourse is a small OpenGL course program. It opens a window, loads
the GL functions, uploads a triangle into a vertex buffer, builds a shader
program and clears and draws every frame.

# Quick Start

	cfg := glcourse.DefaultConfig()
	platform := opengl.NewPlatform(log)
	if err := glcourse.Run(ctx, cfg, platform, glcourse.WithRunLogger(log)); err != nil {
	    fmt.Fprintln(os.Stderr, err)
	    os.Exit(glcourse.ExitCode(err))
	}

# Lessons

The course is split into steps; each one does everything the previous did.

	window    open a window and clear it to red
	buffers   upload the triangle into a VAO/VBO, clear to black
	triangle  compile and link the shaders, draw the triangle
	validate  also validate the linked program (default)

# Shader Programs

Builder compiles the vertex and fragment stage, attaches them to a program
and links it:

	b := glcourse.NewBuilder(driver, glcourse.WithValidation(true))
	prog, err := b.Build(glcourse.EmbeddedSources())
	if err != nil {
	    var buildErr *glcourse.BuildError
	    if errors.As(err, &buildErr) {
	        fmt.Println(buildErr.Stage, buildErr.Log)
	    }
	}

A stage that fails to compile is never attached, and a program that fails to
link is deleted, so a returned *Program is always drawable. Validation is
advisory: a failed validation leaves Program.Validated false and keeps the
driver log in Program.ValidationLog.

# Errors

Startup failures wrap ErrPlatformInit, ErrCreateWindow or ErrLoaderInit and
map to exit status 1. Shader failures unwrap to ErrCompileShader or
ErrLinkProgram; they are fatal unless Config.StrictShaders is false, in which
case the lesson keeps running and only clears the screen.

# Configuration

Settings come from DefaultConfig, an optional TOML file (LoadConfig) and the
command line flags of cmd/glcourse:

	width = 800
	height = 600
	title = "Test Window"
	lesson = "triangle"
	clear_color = [0.0, 0.0, 0.0, 1.0]
	vertex_shader = "shaders/tri.vert"
	fragment_shader = "shaders/tri.frag"
*/
package glcourse
