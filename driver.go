package glcourse

import "github.com/go-gl/mathgl/mgl32"

// ShaderDriver is the part of the GL driver that compiles and links shaders.
// Status queries return the boolean form of the GL status flags.
type ShaderDriver interface {
	CreateShader(kind StageKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ValidateProgram(program uint32)
	ValidateStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
}

// MeshDriver uploads vertex data into vertex array and buffer objects.
type MeshDriver interface {
	// UploadVertices stores tightly packed float vertices with the given
	// number of components in attribute 0 and returns the new VAO and VBO.
	UploadVertices(vertices []float32, components int32) (vao, vbo uint32)
	DeleteVertices(vao, vbo uint32)
}

// FrameDriver issues the per-frame calls.
type FrameDriver interface {
	Viewport(x, y, width, height int32)
	Clear(color mgl32.Vec4)
	UseProgram(program uint32)
	DrawTriangles(vao uint32, first, count int32)
}

// Driver is the GL driver consumed by the builder and the render context.
type Driver interface {
	ShaderDriver
	MeshDriver
	FrameDriver
}
