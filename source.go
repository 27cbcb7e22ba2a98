package glcourse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// VertexShaderSource scales the incoming triangle down so it sits in the
// middle of the window.
const VertexShaderSource = `
#version 330

layout (location = 0) in vec3 pos;

void main()
{
    gl_Position = vec4(0.4 * pos.x, 0.4 * pos.y, pos.z, 1.0);
}
`

// FragmentShaderSource paints every fragment red.
const FragmentShaderSource = `
#version 330

out vec4 colour;

void main()
{
    colour = vec4(1.0, 0.0, 0.0, 1.0);
}
`

// Source is the text of one shader stage.
type Source struct {
	Kind StageKind
	Name string
	Text string
}

// Empty reports whether the source has no text besides whitespace.
func (s Source) Empty() bool {
	return strings.TrimSpace(s.Text) == ""
}

// EmbeddedSources returns the built-in vertex and fragment sources.
func EmbeddedSources() (vertex, fragment Source) {
	return Source{Kind: VertexStage, Name: "embedded.vert", Text: VertexShaderSource},
		Source{Kind: FragmentStage, Name: "embedded.frag", Text: FragmentShaderSource}
}

// LoadSource reads a shader stage from a file.
func LoadSource(path string, kind StageKind) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read %s shader: %w", kind, err)
	}
	src := Source{Kind: kind, Name: filepath.Base(path), Text: string(data)}
	if src.Empty() {
		return Source{}, fmt.Errorf("%s: %w", path, ErrEmptySource)
	}
	return src, nil
}
