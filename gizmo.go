package main

import (
	"github.com/go-gl/mathgl/mgl32"
)

// The gizmo cube is centered at the origin with half-size 1 and is
// observed by an orthographic camera looking down -Z. gizmoHalfExtent is
// the camera half-extent in cube units; it leaves margin for the cube's
// corner diagonal under rotation.
const gizmoHalfExtent = 1.8

// faceCorners lists each face's quad corners in counter-clockwise order
// seen from outside the cube, in Face constant order. The vertex buffer,
// the face texture array and the raycast face table all derive from this
// single ordering: hit triangle i belongs to Face(i/2).
var faceCorners = [6][4]mgl32.Vec3{
	FaceFront:  {{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	FaceBack:   {{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
	FaceLeft:   {{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
	FaceRight:  {{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
	FaceTop:    {{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
	FaceBottom: {{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
}

var faceUVs = [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// cubeVertexData returns the interleaved (x, y, z, u, v) triangle
// vertices of all six faces, two triangles per face, face-major.
func cubeVertexData() []float32 {
	buf := make([]float32, 0, 6*6*5)
	for _, c := range faceCorners {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			buf = append(buf, c[i][0], c[i][1], c[i][2], faceUVs[i][0], faceUVs[i][1])
		}
	}
	return buf
}

// cubeEdgeData returns the 12 cube edges as line segment vertex pairs
// for the edge overlay.
func cubeEdgeData() []float32 {
	corners := [8]mgl32.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	buf := make([]float32, 0, 12*2*3)
	for _, e := range edges {
		a, b := corners[e[0]], corners[e[1]]
		buf = append(buf, a[0], a[1], a[2], b[0], b[1], b[2])
	}
	return buf
}

// gizmoOrientation is the cube model orientation mirroring the main
// camera: the cube shows the attitude an observer of the main scene
// would see, so it counter-rotates the camera.
func gizmoOrientation(camera mgl32.Quat) mgl32.Quat {
	return camera.Inverse()
}

// pickFace casts a ray from the gizmo's orthographic camera through the
// normalized device coordinate (ndcX, ndcY) against the cube oriented by
// model, and returns the nearest hit face. A miss returns ok == false.
func pickFace(ndcX, ndcY float32, model mgl32.Quat) (Face, bool) {
	inv := model.Inverse()
	origin := inv.Rotate(mgl32.Vec3{ndcX * gizmoHalfExtent, ndcY * gizmoHalfExtent, 10})
	dir := inv.Rotate(mgl32.Vec3{0, 0, -1})

	best := Face(-1)
	bestT := float32(mgl32.MaxValue)
	for fi, c := range faceCorners {
		tris := [2][3]mgl32.Vec3{
			{c[0], c[1], c[2]},
			{c[0], c[2], c[3]},
		}
		for _, tri := range tris {
			if t, ok := intersectTriangle(origin, dir, tri[0], tri[1], tri[2]); ok && t < bestT {
				bestT = t
				best = Face(fi)
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// intersectTriangle is the Moller-Trumbore ray/triangle test. Backfaces
// count as hits; the nearest-t selection in pickFace discards them.
func intersectTriangle(origin, dir, a, b, c mgl32.Vec3) (float32, bool) {
	const eps = 1e-7

	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := dir.Cross(e2)
	det := e1.Dot(p)
	if det > -eps && det < eps {
		return 0, false
	}
	invDet := 1 / det

	tv := origin.Sub(a)
	u := tv.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := tv.Cross(e1)
	v := dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * invDet
	if t <= eps {
		return 0, false
	}
	return t, true
}
