// Package gm (stands for geometry math) provides fixed size float32 vector
// and matrix types for 2d and 3d game math.
//
// Vectors Vec2, Vec3 and Vec4 as well as the matrices Mat3 and Mat4 are plain
// arrays. Indexing, slicing and the == operator work on them directly and
// copying a value yields an independent value. Matrices are stored in column
// major order, so Mat3{...}[c*3 + r] is the element in column c and row r.
//
// Methods with a value receiver return a new value, methods with an Assign
// suffix as well as Normalise and SafeNormalise update the receiver in place.
//
// Comparisons with a tolerance go through Equals, AlmostEquals uses
// the package wide default Tolerance.
//
// There is also a type named Rad to represent angle values in radian.
package gm
