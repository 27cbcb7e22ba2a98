package glcourse

import "github.com/go-gl/mathgl/mgl32"

// Mesh is a list of triangle vertices in normalized device coordinates.
type Mesh struct {
	Vertices []mgl32.Vec3
}

// TriangleMesh returns the course triangle spanning the whole viewport.
func TriangleMesh() Mesh {
	return Mesh{Vertices: []mgl32.Vec3{
		{-1, -1, 0},
		{1, -1, 0},
		{0, 1, 0},
	}}
}

// Flatten returns the vertices as tightly packed x, y, z floats.
func (m Mesh) Flatten() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, v.X(), v.Y(), v.Z())
	}
	return out
}

// uploadedMesh is a mesh living in GPU buffers.
type uploadedMesh struct {
	vao, vbo uint32
	count    int32
}

func uploadMesh(driver MeshDriver, m Mesh) (*uploadedMesh, error) {
	if len(m.Vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	vao, vbo := driver.UploadVertices(m.Flatten(), 3)
	return &uploadedMesh{vao: vao, vbo: vbo, count: int32(len(m.Vertices))}, nil
}
