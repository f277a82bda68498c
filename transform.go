package grasp

import "github.com/chewxy/math32"

// Affine is a 3D affine matrix stored as four column vectors:
// basis X (0-2), basis Y (3-5), basis Z (6-8), translation (9-11).
//
//	| m0  m3  m6  m9  |
//	| m1  m4  m7  m10 |
//	| m2  m5  m8  m11 |
type Affine [12]float32

// identityAffine is the identity affine matrix.
var identityAffine = Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties.
//
// Composition order:
//
//	Scale -> Rotate(X) -> Rotate(Y) -> Rotate(Z) -> Translate
func computeLocalTransform(n *Node) Affine {
	sx, cx := math32.Sincos(n.Rotation.X)
	sy, cy := math32.Sincos(n.Rotation.Y)
	sz, cz := math32.Sincos(n.Rotation.Z)

	// Combined rotation R = Rz * Ry * Rx.
	r00 := cz * cy
	r01 := cz*sy*sx - sz*cx
	r02 := cz*sy*cx + sz*sx
	r10 := sz * cy
	r11 := sz*sy*sx + cz*cx
	r12 := sz*sy*cx - cz*sx
	r20 := -sy
	r21 := cy * sx
	r22 := cy * cx

	s := n.Scale
	return Affine{
		r00 * s.X, r10 * s.X, r20 * s.X,
		r01 * s.Y, r11 * s.Y, r21 * s.Y,
		r02 * s.Z, r12 * s.Z, r22 * s.Z,
		n.Position.X, n.Position.Y, n.Position.Z,
	}
}

// mulAffine multiplies two affine matrices: result = parent * child.
func mulAffine(p, c Affine) Affine {
	return Affine{
		p[0]*c[0] + p[3]*c[1] + p[6]*c[2],
		p[1]*c[0] + p[4]*c[1] + p[7]*c[2],
		p[2]*c[0] + p[5]*c[1] + p[8]*c[2],

		p[0]*c[3] + p[3]*c[4] + p[6]*c[5],
		p[1]*c[3] + p[4]*c[4] + p[7]*c[5],
		p[2]*c[3] + p[5]*c[4] + p[8]*c[5],

		p[0]*c[6] + p[3]*c[7] + p[6]*c[8],
		p[1]*c[6] + p[4]*c[7] + p[7]*c[8],
		p[2]*c[6] + p[5]*c[7] + p[8]*c[8],

		p[0]*c[9] + p[3]*c[10] + p[6]*c[11] + p[9],
		p[1]*c[9] + p[4]*c[10] + p[7]*c[11] + p[10],
		p[2]*c[9] + p[5]*c[10] + p[8]*c[11] + p[11],
	}
}

// invertAffine computes the inverse of an affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m Affine) Affine {
	det := m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
	if det > -1e-9 && det < 1e-9 {
		return identityAffine
	}
	invDet := 1.0 / det

	b00 := (m[4]*m[8] - m[7]*m[5]) * invDet
	b01 := (m[6]*m[5] - m[3]*m[8]) * invDet
	b02 := (m[3]*m[7] - m[6]*m[4]) * invDet
	b10 := (m[7]*m[2] - m[1]*m[8]) * invDet
	b11 := (m[0]*m[8] - m[6]*m[2]) * invDet
	b12 := (m[6]*m[1] - m[0]*m[7]) * invDet
	b20 := (m[1]*m[5] - m[4]*m[2]) * invDet
	b21 := (m[3]*m[2] - m[0]*m[5]) * invDet
	b22 := (m[0]*m[4] - m[3]*m[1]) * invDet

	return Affine{
		b00, b10, b20,
		b01, b11, b21,
		b02, b12, b22,
		-(b00*m[9] + b01*m[10] + b02*m[11]),
		-(b10*m[9] + b11*m[10] + b12*m[11]),
		-(b20*m[9] + b21*m[10] + b22*m[11]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m Affine, v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z + m[9],
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z + m[10],
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z + m[11],
	}
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform Affine, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n)
		n.worldTransform = mulAffine(parentTransform, local)
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// UpdateTransforms refreshes world transforms for n and its whole subtree.
// [Engine.Update] calls this on the registered scene root at the start of
// every frame; hosts that keep nodes outside that root must call it
// themselves before positions are read.
func UpdateTransforms(n *Node) {
	parent := identityAffine
	if n.Parent != nil {
		parent = n.Parent.worldTransform
	}
	updateWorldTransform(n, parent, true)
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(p Vec3) {
	n.Position = p
	n.transformDirty = true
}

// SetRotation sets the node's Euler rotation (radians) and marks it dirty.
func (n *Node) SetRotation(r Vec3) {
	n.Rotation = r
	n.transformDirty = true
}

// SetScale sets the node's scale and marks it dirty.
func (n *Node) SetScale(s Vec3) {
	n.Scale = s
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next refresh. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local space.
func (n *Node) WorldToLocal(w Vec3) Vec3 {
	return transformPoint(invertAffine(n.worldTransform), w)
}

// LocalToWorld converts a local-space point to world space.
func (n *Node) LocalToWorld(l Vec3) Vec3 {
	return transformPoint(n.worldTransform, l)
}

// WorldPosition returns the node's position in world space, as of the last
// transform refresh.
func (n *Node) WorldPosition() Vec3 {
	return Vec3{n.worldTransform[9], n.worldTransform[10], n.worldTransform[11]}
}
