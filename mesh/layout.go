// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the size of one interleaved vertex in bytes:
// position (12) + normal (12) + tangent (16) + uv (8).
const VertexStride = 48

// Buffer usages for uploading a mesh.
const (
	VertexBufferUsage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	IndexBufferUsage  = gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
)

// IndexFormat is the format of Mesh.Indices.
const IndexFormat = gputypes.IndexFormatUint32

// VertexLayout describes the buffer written by Interleave.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
			{Format: gputypes.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2}, // tangent
			{Format: gputypes.VertexFormatFloat32x2, Offset: 40, ShaderLocation: 3}, // uv
		},
	}
}

// PrimitiveState describes how Mesh.Indices assemble into triangles.
// Faces are counter-clockwise seen from outside the slab.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeBack,
	}
}

// Interleave appends the mesh's vertices to dst in VertexLayout order,
// little-endian, and returns the extended slice.
func (m *Mesh) Interleave(dst []byte) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, len(m.Positions)*VertexStride)...)
	for i := range m.Positions {
		buf := dst[n+i*VertexStride : n+(i+1)*VertexStride]
		put := func(off int, vs ...float32) {
			for k, v := range vs {
				binary.LittleEndian.PutUint32(buf[off+4*k:], math.Float32bits(v))
			}
		}
		p, nr, t, uv := m.Positions[i], m.Normals[i], m.Tangents[i], m.UVs[i]
		put(0, p[0], p[1], p[2])
		put(12, nr[0], nr[1], nr[2])
		put(24, t[0], t[1], t[2], t[3])
		put(40, uv[0], uv[1])
	}
	return dst
}

// IndexBytes appends Mesh.Indices to dst as little-endian uint32 values.
func (m *Mesh) IndexBytes(dst []byte) []byte {
	for _, idx := range m.Indices {
		dst = binary.LittleEndian.AppendUint32(dst, idx)
	}
	return dst
}
