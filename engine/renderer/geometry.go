package renderer

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl64"
)

// LineVertexStride is the size of one LineVertex in the vertex buffer.
const LineVertexStride = 28

// LineVertex is one end of a line segment. Segments are consecutive vertex pairs (line list).
type LineVertex struct {
	Position [3]float32
	Color    [4]float32
}

var (
	gridColor      = [4]float32{0.35, 0.35, 0.35, 1}
	gridMajorColor = [4]float32{0.55, 0.55, 0.55, 1}
	axisXColor     = [4]float32{0.9, 0.25, 0.25, 1}
	axisYColor     = [4]float32{0.25, 0.9, 0.25, 1}
	axisZColor     = [4]float32{0.25, 0.45, 0.95, 1}
)

// GridLines builds a square grid on the XZ plane centred on the origin.
// Every fifth line is drawn in the major colour. The centre lines are left to AxisLines.
//
// Parameters:
//   - halfCells: number of cells from the centre to each edge
//   - spacing: world-space distance between lines
//
// Returns:
//   - []LineVertex: a line list, two vertices per segment
func GridLines(halfCells int, spacing float64) []LineVertex {
	if halfCells <= 0 || spacing <= 0 {
		return nil
	}
	extent := float32(float64(halfCells) * spacing)
	lines := make([]LineVertex, 0, halfCells*8)
	for i := -halfCells; i <= halfCells; i++ {
		if i == 0 {
			continue
		}
		c := gridColor
		if i%5 == 0 {
			c = gridMajorColor
		}
		o := float32(float64(i) * spacing)
		lines = append(lines,
			LineVertex{Position: [3]float32{o, 0, -extent}, Color: c},
			LineVertex{Position: [3]float32{o, 0, extent}, Color: c},
			LineVertex{Position: [3]float32{-extent, 0, o}, Color: c},
			LineVertex{Position: [3]float32{extent, 0, o}, Color: c},
		)
	}
	return lines
}

// AxisLines builds the three positive world axes from the origin, coloured X red, Y green, Z blue.
func AxisLines(length float64) []LineVertex {
	l := float32(length)
	return []LineVertex{
		{Position: [3]float32{0, 0, 0}, Color: axisXColor},
		{Position: [3]float32{l, 0, 0}, Color: axisXColor},
		{Position: [3]float32{0, 0, 0}, Color: axisYColor},
		{Position: [3]float32{0, l, 0}, Color: axisYColor},
		{Position: [3]float32{0, 0, 0}, Color: axisZColor},
		{Position: [3]float32{0, 0, l}, Color: axisZColor},
	}
}

// TargetMarker builds a small three-axis cross centred on an orbit target.
func TargetMarker(target mgl64.Vec3, size float64) []LineVertex {
	c := [4]float32{1, 0.8, 0.2, 1}
	lines := make([]LineVertex, 0, 6)
	for axis := 0; axis < 3; axis++ {
		var d mgl64.Vec3
		d[axis] = size / 2
		a, b := target.Sub(d), target.Add(d)
		lines = append(lines,
			LineVertex{Position: common.Vec3ToFloat32(a), Color: c},
			LineVertex{Position: common.Vec3ToFloat32(b), Color: c},
		)
	}
	return lines
}

// MarshalLineVertices packs vertices into a little-endian vertex buffer, LineVertexStride bytes each.
func MarshalLineVertices(vertices []LineVertex) []byte {
	buf := make([]byte, len(vertices)*LineVertexStride)
	for i, v := range vertices {
		off := i * LineVertexStride
		for j, f := range v.Position {
			binary.LittleEndian.PutUint32(buf[off+j*4:], math.Float32bits(f))
		}
		for j, f := range v.Color {
			binary.LittleEndian.PutUint32(buf[off+12+j*4:], math.Float32bits(f))
		}
	}
	return buf
}
