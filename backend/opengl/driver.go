// Package opengl implements the glcourse driver and platform on top of
// OpenGL 4.1 core bindings and GLFW.
package opengl

import (
	"image"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glcourse"
)

// Driver implements glcourse.Driver with direct GL calls.
// It must only be used on the thread owning the current context.
type Driver struct{}

var _ glcourse.Driver = (*Driver)(nil)

// NewDriver returns a driver for the current context. gl.Init must have
// been called.
func NewDriver() *Driver {
	return &Driver{}
}

// Version returns the GL version and renderer strings of the context.
func (d *Driver) Version() (version, renderer string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER))
}

// CreateShader creates an empty shader object of the given stage.
func (d *Driver) CreateShader(kind glcourse.StageKind) uint32 {
	return gl.CreateShader(uint32(kind))
}

// ShaderSource replaces the source of a shader, NUL-terminating it for GL.
func (d *Driver) ShaderSource(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

// CompileShader compiles the shader's current source.
func (d *Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// CompileStatus reports whether the last compile succeeded.
func (d *Driver) CompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the whole compiler log of a shader.
func (d *Driver) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return string(log)
}

// DeleteShader flags a shader object for deletion.
func (d *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram creates an empty program object.
func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader attaches a compiled shader to a program.
func (d *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// LinkProgram links the attached stages.
func (d *Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// LinkStatus reports whether the last link succeeded.
func (d *Driver) LinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ValidateProgram checks the program against the current GL state.
func (d *Driver) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

// ValidateStatus reports whether the last validation succeeded.
func (d *Driver) ValidateStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns the whole link or validation log of a program.
func (d *Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return string(log)
}

// DeleteProgram deletes a program; zero is ignored.
func (d *Driver) DeleteProgram(program uint32) {
	if program != 0 {
		gl.DeleteProgram(program)
	}
}

// UploadVertices creates a VAO and a VBO holding vertices as attribute 0.
func (d *Driver) UploadVertices(vertices []float32, components int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, components, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, vbo
}

// DeleteVertices deletes the buffers created by UploadVertices.
func (d *Driver) DeleteVertices(vao, vbo uint32) {
	if vbo != 0 {
		gl.DeleteBuffers(1, &vbo)
	}
	if vao != 0 {
		gl.DeleteVertexArrays(1, &vao)
	}
}

// Viewport sets the viewport rectangle.
func (d *Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// Clear clears the color buffer to color.
func (d *Driver) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// UseProgram makes program current; zero unbinds.
func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// DrawTriangles draws count vertices of vao as triangles.
func (d *Driver) DrawTriangles(vao uint32, first, count int32) {
	gl.BindVertexArray(vao)
	gl.DrawArrays(gl.TRIANGLES, first, count)
	gl.BindVertexArray(0)
}

// Snapshot reads the lower-left width×height pixels of the framebuffer
// into an image with the usual top-down row order.
func (d *Driver) Snapshot(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// GL rows start at the bottom.
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, img.Pix[top:top+rowLen])
		copy(img.Pix[top:top+rowLen], img.Pix[bot:bot+rowLen])
		copy(img.Pix[bot:bot+rowLen], tmp)
	}
	return img
}
