package glcourse

import "fmt"

// ConstErr is an error that can be declared as a constant.
type ConstErr string

func (e ConstErr) Error() string {
	return string(e)
}

const (
	// ErrPlatformInit indicates that the windowing library failed to initialize.
	ErrPlatformInit ConstErr = "failed to initialize windowing library"
	// ErrCreateWindow indicates that the window or its context couldn't be created.
	ErrCreateWindow ConstErr = "failed to create window"
	// ErrLoaderInit indicates that the GL function loader failed.
	ErrLoaderInit ConstErr = "failed to initialize GL loader"

	// ErrEmptySource indicates that a shader stage has no source text.
	ErrEmptySource ConstErr = "shader source is empty"
	// ErrCreateShader indicates that a shader object couldn't be created.
	ErrCreateShader ConstErr = "failed to create shader"
	// ErrCreateProgram indicates that a program object couldn't be created.
	ErrCreateProgram ConstErr = "failed to create program"
	// ErrCompileShader indicates that a shader failed to compile.
	ErrCompileShader ConstErr = "failed to compile shader"
	// ErrLinkProgram indicates that a program failed to link.
	ErrLinkProgram ConstErr = "failed to link program"

	// ErrEmptyMesh indicates that a mesh has no vertices to upload.
	ErrEmptyMesh ConstErr = "mesh has no vertices"
)

// Phase names the step of a program build that failed.
type Phase string

const (
	PhaseCompile Phase = "compile"
	PhaseLink    Phase = "link"
)

// BuildError describes a failed compile or link together with the
// driver's info log.
type BuildError struct {
	Phase Phase
	Stage StageKind // zero for link failures
	Log   string
}

func (e *BuildError) Error() string {
	if e.Phase == PhaseCompile {
		return fmt.Sprintf("%s %s shader (type %d): %s", ErrCompileShader, e.Stage, uint32(e.Stage), e.Log)
	}
	return fmt.Sprintf("%s: %s", ErrLinkProgram, e.Log)
}

// Unwrap returns the sentinel matching the failed phase.
func (e *BuildError) Unwrap() error {
	if e.Phase == PhaseCompile {
		return ErrCompileShader
	}
	return ErrLinkProgram
}

// ExitCode maps the result of Run to a process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
