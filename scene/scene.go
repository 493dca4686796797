package scene

// Scene is the set of meshes and lights a renderer draws
type Scene struct {
	Meshes      []*InstancedMesh
	Ambient     []*AmbientLight
	PointLights []*PointLight
}

func New() *Scene {
	return &Scene{}
}

func (s *Scene) AddMesh(m *InstancedMesh) { s.Meshes = append(s.Meshes, m) }

func (s *Scene) AddAmbient(l *AmbientLight) { s.Ambient = append(s.Ambient, l) }

func (s *Scene) AddPointLight(l *PointLight) { s.PointLights = append(s.PointLights, l) }

// Traverse visits every mesh
func (s *Scene) Traverse(fn func(*InstancedMesh)) {
	for _, m := range s.Meshes {
		fn(m)
	}
}

// Clear disposes every mesh's geometry and material and empties the scene
func (s *Scene) Clear() {
	s.Traverse(func(m *InstancedMesh) {
		if m.Material != nil {
			m.Material.Dispose()
		}
		if m.Geometry != nil {
			m.Geometry.Dispose()
		}
		m.Matrices = nil
		m.Colors = nil
	})
	s.Meshes = nil
	s.Ambient = nil
	s.PointLights = nil
}
