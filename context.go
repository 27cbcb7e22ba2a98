package glcourse

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// RenderContext owns the GL objects of a lesson and draws its frames.
type RenderContext struct {
	driver     Driver
	log        logrus.FieldLogger
	lesson     Lesson
	clearColor mgl32.Vec4

	mesh    *uploadedMesh
	program *Program

	width, height int
	frames        uint64
	draws         uint64
}

// ContextOption configures a RenderContext.
type ContextOption func(*RenderContext)

// WithLogger sets the logger used by the context and its shader builder.
func WithLogger(log logrus.FieldLogger) ContextOption {
	return func(rc *RenderContext) { rc.log = log }
}

// NewRenderContext creates the GL objects the configured lesson needs.
// A shader build failure is returned when cfg.StrictShaders is set;
// otherwise it is logged and the context only clears the screen.
func NewRenderContext(driver Driver, cfg *Config, opts ...ContextOption) (*RenderContext, error) {
	rc := &RenderContext{
		driver:     driver,
		log:        discardLogger(),
		lesson:     cfg.Lesson,
		clearColor: cfg.EffectiveClearColor(),
	}
	for _, opt := range opts {
		opt(rc)
	}

	if rc.lesson.UsesMesh() {
		mesh, err := uploadMesh(driver, TriangleMesh())
		if err != nil {
			return nil, fmt.Errorf("failed to upload mesh: %w", err)
		}
		rc.mesh = mesh
	}

	if rc.lesson.UsesShaders() {
		if err := rc.buildProgram(cfg); err != nil {
			if cfg.StrictShaders {
				rc.Delete()
				return nil, fmt.Errorf("failed to create shader: %w", err)
			}
			rc.log.WithError(err).Error("Shader program unavailable, rendering clear only")
		}
	}

	return rc, nil
}

func (rc *RenderContext) buildProgram(cfg *Config) error {
	vertex, fragment, err := cfg.Sources()
	if err != nil {
		return err
	}
	builder := NewBuilder(rc.driver,
		WithBuilderLogger(rc.log),
		WithValidation(rc.lesson.Validates()),
	)
	prog, err := builder.Build(vertex, fragment)
	if err != nil {
		return err
	}
	rc.program = prog
	return nil
}

// Program returns the linked program, or nil when the lesson has none.
func (rc *RenderContext) Program() *Program {
	return rc.program
}

// Lesson returns the lesson being rendered.
func (rc *RenderContext) Lesson() Lesson {
	return rc.lesson
}

// Resize updates the viewport to the framebuffer size.
func (rc *RenderContext) Resize(width, height int) {
	rc.width = width
	rc.height = height
	rc.driver.Viewport(0, 0, int32(width), int32(height))
}

// Size returns the last framebuffer size passed to Resize.
func (rc *RenderContext) Size() (width, height int) {
	return rc.width, rc.height
}

// Frame clears the screen and draws the lesson's geometry.
func (rc *RenderContext) Frame() {
	rc.driver.Clear(rc.clearColor)

	if rc.program.Ready() && rc.mesh != nil {
		rc.driver.UseProgram(rc.program.ID)
		rc.driver.DrawTriangles(rc.mesh.vao, 0, rc.mesh.count)
		rc.driver.UseProgram(0)
		rc.draws++
	}

	rc.frames++
}

// Frames returns the number of frames rendered.
func (rc *RenderContext) Frames() uint64 {
	return rc.frames
}

// Draws returns the number of draw calls issued.
func (rc *RenderContext) Draws() uint64 {
	return rc.draws
}

// Delete releases the GL objects.
func (rc *RenderContext) Delete() {
	if rc.program != nil {
		rc.driver.DeleteProgram(rc.program.ID)
		rc.program = nil
	}
	if rc.mesh != nil {
		rc.driver.DeleteVertices(rc.mesh.vao, rc.mesh.vbo)
		rc.mesh = nil
	}
}
