package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Geometry holds CPU-side vertex data pending GPU upload.
// Vertices are interleaved position(3), normal(3), texcoord(2).
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexStride is the number of floats per interleaved vertex.
const VertexStride = 8

// VertexCount returns the number of vertices in the geometry.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / VertexStride
}

func (g *Geometry) addVertex(pos, normal mgl32.Vec3, u, v float32) uint32 {
	idx := uint32(g.VertexCount())
	g.Vertices = append(g.Vertices,
		pos.X(), pos.Y(), pos.Z(),
		normal.X(), normal.Y(), normal.Z(),
		u, v,
	)
	return idx
}

func (g *Geometry) addTriangle(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

func (g *Geometry) addQuad(a, b, c, d uint32) {
	g.addTriangle(a, b, c)
	g.addTriangle(a, c, d)
}

// PlaneGeometry builds a unit plane in the XZ plane, spanning [-1, 1] on both
// axes at y=0, facing +Y.
func PlaneGeometry() Geometry {
	var g Geometry
	n := mgl32.Vec3{0, 1, 0}
	a := g.addVertex(mgl32.Vec3{-1, 0, -1}, n, 0, 1)
	b := g.addVertex(mgl32.Vec3{-1, 0, 1}, n, 0, 0)
	c := g.addVertex(mgl32.Vec3{1, 0, 1}, n, 1, 0)
	d := g.addVertex(mgl32.Vec3{1, 0, -1}, n, 1, 1)
	g.addQuad(a, b, c, d)
	return g
}

// BoxGeometry builds a unit cube centered at the origin, edge length 1.
// Each face has its own four vertices so normals stay flat.
func BoxGeometry() Geometry {
	var g Geometry
	faces := []struct {
		normal, uAxis, vAxis mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},  // front
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}}, // back
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},  // right
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},  // left
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},  // top
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},  // bottom
	}
	for _, f := range faces {
		center := f.normal.Mul(0.5)
		u := f.uAxis.Mul(0.5)
		v := f.vAxis.Mul(0.5)
		a := g.addVertex(center.Sub(u).Sub(v), f.normal, 0, 0)
		b := g.addVertex(center.Add(u).Sub(v), f.normal, 1, 0)
		c := g.addVertex(center.Add(u).Add(v), f.normal, 1, 1)
		d := g.addVertex(center.Sub(u).Add(v), f.normal, 0, 1)
		g.addQuad(a, b, c, d)
	}
	return g
}

// SphereGeometry builds a unit-radius sphere centered at the origin using a
// latitude/longitude grid.
//
// Parameters:
//   - stacks: latitudinal subdivisions (minimum 3)
//   - slices: longitudinal subdivisions (minimum 3)
func SphereGeometry(stacks, slices int) Geometry {
	if stacks < 3 {
		stacks = 3
	}
	if slices < 3 {
		slices = 3
	}
	var g Geometry
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		y := float32(math.Cos(phi))
		r := float32(math.Sin(phi))
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			x := r * float32(math.Cos(theta))
			z := r * float32(math.Sin(theta))
			pos := mgl32.Vec3{x, y, z}
			g.addVertex(pos, pos, float32(j)/float32(slices), 1-float32(i)/float32(stacks))
		}
	}
	cols := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*cols + uint32(j)
			b := a + cols
			g.addTriangle(a, b, a+1)
			g.addTriangle(a+1, b, b+1)
		}
	}
	return g
}

// CylinderGeometry builds a capped cylinder with the given top and bottom
// radii, base at y=0 and top at y=1. Equal radii give a straight cylinder; a
// smaller top radius gives the tapered variant; a zero top radius degenerates
// into a cone without its own apex handling.
//
// Parameters:
//   - bottomRadius: radius at y=0
//   - topRadius: radius at y=1
//   - slices: circumferential subdivisions (minimum 3)
func CylinderGeometry(bottomRadius, topRadius float32, slices int) Geometry {
	if slices < 3 {
		slices = 3
	}
	var g Geometry

	// Side normals lean by the taper slope: for a profile r(y) running from
	// bottomRadius to topRadius over unit height, the outward normal's Y
	// component is (bottomRadius - topRadius) against a unit radial component.
	slope := bottomRadius - topRadius
	for j := 0; j <= slices; j++ {
		theta := 2 * math.Pi * float64(j) / float64(slices)
		c := float32(math.Cos(theta))
		s := float32(math.Sin(theta))
		n := mgl32.Vec3{c, slope, s}.Normalize()
		u := float32(j) / float32(slices)
		g.addVertex(mgl32.Vec3{bottomRadius * c, 0, bottomRadius * s}, n, u, 0)
		g.addVertex(mgl32.Vec3{topRadius * c, 1, topRadius * s}, n, u, 1)
	}
	for j := 0; j < slices; j++ {
		a := uint32(j * 2)
		g.addQuad(a, a+2, a+3, a+1)
	}

	addCap(&g, bottomRadius, 0, mgl32.Vec3{0, -1, 0}, slices)
	if topRadius > 0 {
		addCap(&g, topRadius, 1, mgl32.Vec3{0, 1, 0}, slices)
	}
	return g
}

// ConeGeometry builds a cone with the given base radius at y=0 and its apex at
// y=1, capped at the base.
//
// Parameters:
//   - radius: base radius
//   - slices: circumferential subdivisions (minimum 3)
func ConeGeometry(radius float32, slices int) Geometry {
	if slices < 3 {
		slices = 3
	}
	var g Geometry
	for j := 0; j < slices; j++ {
		t0 := 2 * math.Pi * float64(j) / float64(slices)
		t1 := 2 * math.Pi * float64(j+1) / float64(slices)
		mid := (t0 + t1) / 2

		n0 := coneNormal(t0, radius)
		n1 := coneNormal(t1, radius)
		a := g.addVertex(basePoint(t0, radius), n0, float32(j)/float32(slices), 0)
		b := g.addVertex(basePoint(t1, radius), n1, float32(j+1)/float32(slices), 0)
		apex := g.addVertex(mgl32.Vec3{0, 1, 0}, coneNormal(mid, radius), (float32(j)+0.5)/float32(slices), 1)
		g.addTriangle(a, apex, b)
	}
	addCap(&g, radius, 0, mgl32.Vec3{0, -1, 0}, slices)
	return g
}

// TorusGeometry builds a torus in the XZ plane centered at the origin.
//
// Parameters:
//   - majorRadius: distance from the center to the tube center
//   - tubeRadius: radius of the tube itself
//   - rings: subdivisions around the main ring (minimum 3)
//   - sides: subdivisions around the tube (minimum 3)
func TorusGeometry(majorRadius, tubeRadius float32, rings, sides int) Geometry {
	if rings < 3 {
		rings = 3
	}
	if sides < 3 {
		sides = 3
	}
	var g Geometry
	for i := 0; i <= rings; i++ {
		theta := 2 * math.Pi * float64(i) / float64(rings)
		ct := float32(math.Cos(theta))
		st := float32(math.Sin(theta))
		ringCenter := mgl32.Vec3{majorRadius * ct, 0, majorRadius * st}
		for j := 0; j <= sides; j++ {
			phi := 2 * math.Pi * float64(j) / float64(sides)
			cp := float32(math.Cos(phi))
			sp := float32(math.Sin(phi))
			normal := mgl32.Vec3{ct * cp, sp, st * cp}
			pos := ringCenter.Add(normal.Mul(tubeRadius))
			g.addVertex(pos, normal, float32(i)/float32(rings), float32(j)/float32(sides))
		}
	}
	cols := uint32(sides + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			a := uint32(i)*cols + uint32(j)
			b := a + cols
			g.addTriangle(a, b, a+1)
			g.addTriangle(a+1, b, b+1)
		}
	}
	return g
}

func basePoint(theta float64, radius float32) mgl32.Vec3 {
	return mgl32.Vec3{radius * float32(math.Cos(theta)), 0, radius * float32(math.Sin(theta))}
}

func coneNormal(theta float64, radius float32) mgl32.Vec3 {
	c := float32(math.Cos(theta))
	s := float32(math.Sin(theta))
	// Outward normal of a unit-height cone surface: radial component 1, Y
	// component equal to the base radius.
	return mgl32.Vec3{c, radius, s}.Normalize()
}

// addCap appends a triangle-fan disk at the given height facing along normal.
func addCap(g *Geometry, radius, y float32, normal mgl32.Vec3, slices int) {
	center := g.addVertex(mgl32.Vec3{0, y, 0}, normal, 0.5, 0.5)
	start := g.VertexCount()
	for j := 0; j <= slices; j++ {
		theta := 2 * math.Pi * float64(j) / float64(slices)
		c := float32(math.Cos(theta))
		s := float32(math.Sin(theta))
		g.addVertex(mgl32.Vec3{radius * c, y, radius * s}, normal, 0.5+c/2, 0.5+s/2)
	}
	for j := 0; j < slices; j++ {
		a := uint32(start + j)
		b := uint32(start + j + 1)
		if normal.Y() > 0 {
			g.addTriangle(center, b, a)
		} else {
			g.addTriangle(center, a, b)
		}
	}
}
