package gm

// Translate appends a translation to the transformation. The translation
// is applied in the local space of m, that is before m itself.
func (m Mat3) Translate(translate Vec2) Mat3 {
	return m.Mul(TranslationMat3Vec(translate))
}

// Rotate appends a rotation around the origin of the local space.
func (m Mat3) Rotate(angle Rad) Mat3 {
	return m.Mul(RotateZMat3(angle))
}

// Scale appends a scale along the local x and y axis.
func (m Mat3) Scale(scale Vec2) Mat3 {
	return m.Mul(ScaleMat3(scale[0], scale[1]))
}

// Translate appends a translation in the local space of m.
func (m Mat4) Translate(translate Vec3) Mat4 {
	return m.Mul(TranslationMat4Vec(translate))
}

func (m Mat4) RotateX(angle Rad) Mat4 {
	return m.Mul(RotateXMat4(angle))
}

func (m Mat4) RotateY(angle Rad) Mat4 {
	return m.Mul(RotateYMat4(angle))
}

func (m Mat4) RotateZ(angle Rad) Mat4 {
	return m.Mul(RotateZMat4(angle))
}

func (m Mat4) Scale(scale Vec3) Mat4 {
	return m.Mul(ScaleMat4Vec(scale))
}
