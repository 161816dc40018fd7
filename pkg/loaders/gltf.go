// Package loaders imports external geometry into scene primitives.
package loaders

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/fathom3d/fathom/pkg/geometry"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// LoadGLTF reads a glTF/GLB file and returns its triangles with per-vertex
// normals and UVs. Meshes without normals get flat ones; meshes without UVs
// get zero UVs. Non-triangle primitives are skipped.
func LoadGLTF(path string) ([]*geometry.Triangle, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var tris []*geometry.Triangle
	for _, m := range doc.Meshes {
		meshTris, err := meshTriangles(doc, m)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		tris = append(tris, meshTris...)
	}
	return tris, nil
}

func meshTriangles(doc *gltf.Document, m *gltf.Mesh) ([]*geometry.Triangle, error) {
	var tris []*geometry.Triangle
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		var normals []vmath.Vec3
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			if normals, err = readVec3Accessor(doc, normIdx); err != nil {
				return nil, fmt.Errorf("read normals: %w", err)
			}
		}

		var uvs []vmath.Vec2
		if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			if uvs, err = readVec2Accessor(doc, uvIdx); err != nil {
				return nil, fmt.Errorf("read uvs: %w", err)
			}
		}

		var indices []int
		if prim.Indices != nil {
			if indices, err = readIndices(doc, *prim.Indices); err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			v0, v1, v2 := positions[a], positions[b], positions[c]

			var n0, n1, n2 vmath.Vec3
			if len(normals) > 0 {
				n0, n1, n2 = normals[a], normals[b], normals[c]
			} else {
				flat := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
				n0, n1, n2 = flat, flat, flat
			}

			var uv0, uv1, uv2 vmath.Vec2
			if len(uvs) > 0 {
				// glTF puts V=0 at the top of the texture; flip it to the
				// bottom-origin convention the textures here use.
				uv0 = vmath.NewVec2(uvs[a].X, 1-uvs[a].Y)
				uv1 = vmath.NewVec2(uvs[b].X, 1-uvs[b].Y)
				uv2 = vmath.NewVec2(uvs[c].X, 1-uvs[c].Y)
			}

			tris = append(tris, geometry.NewSmoothTriangle(v0, v1, v2, n0, n1, n2, uv0, uv1, uv2))
		}
	}
	return tris, nil
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]vmath.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}
	result := make([]vmath.Vec3, accessor.Count)
	for i := range result {
		off := i * stride
		result[i] = vmath.NewVec3(
			vmath.Real(readFloat32(data[off:])),
			vmath.Real(readFloat32(data[off+4:])),
			vmath.Real(readFloat32(data[off+8:])),
		)
	}
	return result, nil
}

func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([]vmath.Vec2, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("expected VEC2, got %v", accessor.Type)
	}
	data, stride, err := accessorBytes(doc, accessor, 8)
	if err != nil {
		return nil, err
	}
	result := make([]vmath.Vec2, accessor.Count)
	for i := range result {
		off := i * stride
		result[i] = vmath.NewVec2(
			vmath.Real(readFloat32(data[off:])),
			vmath.Real(readFloat32(data[off+4:])),
		)
	}
	return result, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unsupported index component type %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		off := i * stride
		switch size {
		case 1:
			result[i] = int(data[off])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[off:]))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return result, nil
}

// accessorBytes returns the raw bytes backing an accessor plus the element
// stride. Only embedded (GLB) buffers are supported.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]
	if buffer.URI != "" {
		return nil, 0, fmt.Errorf("external buffers not supported")
	}
	if buffer.Data == nil {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	start := view.ByteOffset + accessor.ByteOffset
	return buffer.Data[start:], stride, nil
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
