package glcourse

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// StageKind identifies a shader stage. Values match the GL enums so they can
// be handed to the driver unchanged.
type StageKind uint32

const (
	FragmentStage StageKind = 0x8B30 // GL_FRAGMENT_SHADER
	VertexStage   StageKind = 0x8B31 // GL_VERTEX_SHADER
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%#x)", uint32(k))
	}
}

// Lesson selects one of the incremental steps of the course.
// Each lesson does everything the previous one does.
type Lesson int

const (
	LessonWindow   Lesson = iota + 1 // open a window and clear it
	LessonBuffers                    // upload the triangle vertices
	LessonTriangle                   // compile shaders and draw
	LessonValidate                   // also validate the linked program
)

var lessonNames = map[Lesson]string{
	LessonWindow:   "window",
	LessonBuffers:  "buffers",
	LessonTriangle: "triangle",
	LessonValidate: "validate",
}

// Lessons returns every lesson in course order.
func Lessons() []Lesson {
	return []Lesson{LessonWindow, LessonBuffers, LessonTriangle, LessonValidate}
}

func (l Lesson) String() string {
	if name, ok := lessonNames[l]; ok {
		return name
	}
	return fmt.Sprintf("lesson(%d)", int(l))
}

// Valid reports whether l is a known lesson.
func (l Lesson) Valid() bool {
	_, ok := lessonNames[l]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (l Lesson) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("unknown lesson %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Lesson) UnmarshalText(text []byte) error {
	lesson, err := ParseLesson(string(text))
	if err != nil {
		return err
	}
	*l = lesson
	return nil
}

// ParseLesson returns the lesson with the given name.
func ParseLesson(name string) (Lesson, error) {
	for l, n := range lessonNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown lesson %q", name)
}

// UsesMesh reports whether the lesson uploads vertex data.
func (l Lesson) UsesMesh() bool { return l >= LessonBuffers }

// UsesShaders reports whether the lesson builds and draws with a program.
func (l Lesson) UsesShaders() bool { return l >= LessonTriangle }

// Validates reports whether the lesson validates the linked program.
func (l Lesson) Validates() bool { return l >= LessonValidate }

// ClearColor returns the colour the lesson clears the screen to.
// The first lesson clears to red so an empty window is visibly working.
func (l Lesson) ClearColor() mgl32.Vec4 {
	if l == LessonWindow {
		return mgl32.Vec4{1, 0, 0, 1}
	}
	return mgl32.Vec4{0, 0, 0, 1}
}
