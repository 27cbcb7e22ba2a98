package glcourse

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// ProgramState is the position of a program in its build.
type ProgramState int

const (
	ProgramCreated ProgramState = iota
	ProgramStagesAttached
	ProgramLinkAttempted
	ProgramLinked
	ProgramLinkFailed
)

func (s ProgramState) String() string {
	switch s {
	case ProgramCreated:
		return "created"
	case ProgramStagesAttached:
		return "stages-attached"
	case ProgramLinkAttempted:
		return "link-attempted"
	case ProgramLinked:
		return "linked"
	case ProgramLinkFailed:
		return "link-failed"
	default:
		return "unknown"
	}
}

// Program is a linked GL program.
type Program struct {
	ID    uint32
	State ProgramState

	// Validated is false when validation was skipped or failed.
	// Validation never blocks use of a linked program.
	Validated     bool
	ValidationLog string
}

// Ready reports whether the program can be drawn with.
func (p *Program) Ready() bool {
	return p != nil && p.ID != 0 && p.State == ProgramLinked
}

// Builder compiles shader stages and links them into programs.
type Builder struct {
	driver   ShaderDriver
	log      logrus.FieldLogger
	validate bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBuilderLogger sets where diagnostics are reported.
func WithBuilderLogger(log logrus.FieldLogger) BuilderOption {
	return func(b *Builder) { b.log = log }
}

// WithValidation enables the validation step after a successful link.
func WithValidation(enabled bool) BuilderOption {
	return func(b *Builder) { b.validate = enabled }
}

// NewBuilder creates a Builder on top of the given driver.
func NewBuilder(driver ShaderDriver, opts ...BuilderOption) *Builder {
	b := &Builder{
		driver: driver,
		log:    discardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CompileStage compiles src and attaches it to program.
// A stage that fails to compile is deleted and never attached.
func (b *Builder) CompileStage(program uint32, src Source) (uint32, error) {
	if src.Empty() {
		return 0, ErrEmptySource
	}
	fields := logrus.Fields{"stage": src.Kind.String(), "type": uint32(src.Kind), "name": src.Name}

	shader := b.driver.CreateShader(src.Kind)
	if shader == 0 {
		b.log.WithFields(fields).Error("Error creating shader")
		return 0, ErrCreateShader
	}

	b.driver.ShaderSource(shader, src.Text)
	b.driver.CompileShader(shader)

	if !b.driver.CompileStatus(shader) {
		diag := cleanLog(b.driver.ShaderInfoLog(shader))
		b.log.WithFields(fields).WithField("log", diag).Errorf("Error compiling the %d shader", uint32(src.Kind))
		b.driver.DeleteShader(shader)
		return 0, &BuildError{Phase: PhaseCompile, Stage: src.Kind, Log: diag}
	}

	b.driver.AttachShader(program, shader)
	return shader, nil
}

// Build compiles both stages, links them and, if enabled, validates the
// result. On failure the program object is deleted and nil is returned
// together with the reason.
func (b *Builder) Build(vertex, fragment Source) (*Program, error) {
	id := b.driver.CreateProgram()
	if id == 0 {
		b.log.Error("Error creating shader program")
		return nil, ErrCreateProgram
	}
	prog := &Program{ID: id, State: ProgramCreated}

	var shaders []uint32
	release := func() {
		for _, s := range shaders {
			b.driver.DeleteShader(s)
		}
	}

	for _, src := range []Source{vertex, fragment} {
		shader, err := b.CompileStage(id, src)
		if err != nil {
			release()
			b.driver.DeleteProgram(id)
			return nil, err
		}
		shaders = append(shaders, shader)
	}
	prog.State = ProgramStagesAttached

	b.driver.LinkProgram(id)
	prog.State = ProgramLinkAttempted
	linked := b.driver.LinkStatus(id)
	release()

	if !linked {
		prog.State = ProgramLinkFailed
		diag := cleanLog(b.driver.ProgramInfoLog(id))
		b.log.WithField("log", diag).Error("Error linking program")
		b.driver.DeleteProgram(id)
		return nil, &BuildError{Phase: PhaseLink, Log: diag}
	}
	prog.State = ProgramLinked

	if b.validate {
		b.driver.ValidateProgram(id)
		prog.Validated = b.driver.ValidateStatus(id)
		if !prog.Validated {
			prog.ValidationLog = cleanLog(b.driver.ProgramInfoLog(id))
			b.log.WithField("log", prog.ValidationLog).Warn("Error validating program")
		}
	}

	b.log.WithFields(logrus.Fields{"program": id, "validated": prog.Validated}).Debug("Shader program ready")
	return prog, nil
}

// cleanLog strips the NUL terminator and trailing whitespace GL leaves
// in info logs.
func cleanLog(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, " \t\r\n")
}
