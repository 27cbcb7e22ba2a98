package glcourse_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glcourse"
)

// mockDriver records GL calls without a GPU. Sources containing a key of
// compileErrors fail to compile with the mapped log.
type mockDriver struct {
	nextID uint32

	compileErrors map[string]string
	linkError     string
	validateError string
	noProgram     bool
	noShader      bool

	calls    []string
	sources  map[uint32]string
	kinds    map[uint32]glcourse.StageKind
	attached map[uint32][]uint32
	compiled map[uint32]bool
	deleted  map[uint32]bool
	programs map[uint32]bool
	compiles int
}

func newMockDriver() *mockDriver {
	return &mockDriver{
		compileErrors: make(map[string]string),
		sources:       make(map[uint32]string),
		kinds:         make(map[uint32]glcourse.StageKind),
		attached:      make(map[uint32][]uint32),
		compiled:      make(map[uint32]bool),
		deleted:       make(map[uint32]bool),
		programs:      make(map[uint32]bool),
	}
}

func (m *mockDriver) record(format string, args ...any) {
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

func (m *mockDriver) id() uint32 {
	m.nextID++
	return m.nextID
}

func (m *mockDriver) CreateShader(kind glcourse.StageKind) uint32 {
	if m.noShader {
		return 0
	}
	id := m.id()
	m.kinds[id] = kind
	m.record("CreateShader %s", kind)
	return id
}

func (m *mockDriver) ShaderSource(shader uint32, source string) {
	m.sources[shader] = source
}

func (m *mockDriver) CompileShader(shader uint32) {
	m.compiles++
	m.record("CompileShader %s", m.kinds[shader])
	m.compiled[shader] = m.compileError(shader) == ""
}

func (m *mockDriver) compileError(shader uint32) string {
	for marker, log := range m.compileErrors {
		if strings.Contains(m.sources[shader], marker) {
			return log
		}
	}
	return ""
}

func (m *mockDriver) CompileStatus(shader uint32) bool {
	return m.compiled[shader]
}

func (m *mockDriver) ShaderInfoLog(shader uint32) string {
	// GL terminates info logs with a NUL.
	return m.compileError(shader) + "\n\x00"
}

func (m *mockDriver) DeleteShader(shader uint32) {
	m.deleted[shader] = true
}

func (m *mockDriver) CreateProgram() uint32 {
	if m.noProgram {
		return 0
	}
	id := m.id()
	m.programs[id] = true
	m.record("CreateProgram")
	return id
}

func (m *mockDriver) AttachShader(program, shader uint32) {
	m.attached[program] = append(m.attached[program], shader)
	m.record("AttachShader %s", m.kinds[shader])
}

func (m *mockDriver) LinkProgram(program uint32) {
	m.record("LinkProgram")
}

func (m *mockDriver) LinkStatus(program uint32) bool {
	return m.linkError == ""
}

func (m *mockDriver) ValidateProgram(program uint32) {
	m.record("ValidateProgram")
}

func (m *mockDriver) ValidateStatus(program uint32) bool {
	return m.validateError == ""
}

func (m *mockDriver) ProgramInfoLog(program uint32) string {
	if m.linkError != "" {
		return m.linkError
	}
	return m.validateError
}

func (m *mockDriver) DeleteProgram(program uint32) {
	delete(m.programs, program)
	m.record("DeleteProgram")
}

func (m *mockDriver) UploadVertices(vertices []float32, components int32) (uint32, uint32) {
	m.record("UploadVertices %d/%d", len(vertices), components)
	return m.id(), m.id()
}

func (m *mockDriver) DeleteVertices(vao, vbo uint32) {
	m.record("DeleteVertices")
}

func (m *mockDriver) Viewport(x, y, width, height int32) {
	m.record("Viewport %dx%d", width, height)
}

func (m *mockDriver) Clear(color mgl32.Vec4) {
	m.record("Clear %v", color)
}

func (m *mockDriver) UseProgram(program uint32) {
	m.record("UseProgram %d", program)
}

func (m *mockDriver) DrawTriangles(vao uint32, first, count int32) {
	m.record("DrawTriangles %d", count)
}

// count returns how many recorded calls start with prefix.
func (m *mockDriver) count(prefix string) int {
	n := 0
	for _, c := range m.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (m *mockDriver) reset() {
	m.calls = nil
}

// mockWindow closes itself after closeAfter swaps when closeAfter > 0.
type mockWindow struct {
	closeAfter int
	swaps      int
	closed     bool
	destroyed  bool
	sizes      [][2]int // framebuffer sizes returned in order, last one repeats
	sizeCalls  int
}

func (w *mockWindow) ShouldClose() bool { return w.closed }

func (w *mockWindow) SetShouldClose(v bool) { w.closed = v }

func (w *mockWindow) FramebufferSize() (int, int) {
	if len(w.sizes) == 0 {
		return 800, 600
	}
	i := w.sizeCalls
	if i >= len(w.sizes) {
		i = len(w.sizes) - 1
	}
	w.sizeCalls++
	return w.sizes[i][0], w.sizes[i][1]
}

func (w *mockWindow) SwapBuffers() {
	w.swaps++
	if w.closeAfter > 0 && w.swaps >= w.closeAfter {
		w.closed = true
	}
}

func (w *mockWindow) Destroy() { w.destroyed = true }

type mockPlatform struct {
	initErr   error
	windowErr error
	loaderErr error

	window *mockWindow
	driver *mockDriver

	polls      int
	terminated int
}

func newMockPlatform() *mockPlatform {
	return &mockPlatform{
		window: &mockWindow{},
		driver: newMockDriver(),
	}
}

func (p *mockPlatform) Init(cfg *glcourse.Config) error { return p.initErr }

func (p *mockPlatform) CreateWindow(cfg *glcourse.Config) (glcourse.Window, error) {
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	return p.window, nil
}

func (p *mockPlatform) InitLoader(w glcourse.Window) (glcourse.Driver, error) {
	if p.loaderErr != nil {
		return nil, p.loaderErr
	}
	return p.driver, nil
}

func (p *mockPlatform) PollEvents() { p.polls++ }

func (p *mockPlatform) Terminate() { p.terminated++ }

var errMock = errors.New("mock failure")
