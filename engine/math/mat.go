package math

import (
	"fmt"
	m "math"
	"strings"
)

/**
 * @brief Builds a matrix from exactly C columns.
 */
func NewMat[T Float, C Dim, R Dim](cols ...Vec[T, R]) (Mat[T, C, R], error) {
	var out Mat[T, C, R]
	if len(cols) != dimLen[C]() {
		return out, fmt.Errorf("matrix with %d columns built from %d columns", dimLen[C](), len(cols))
	}
	copy(out.cols[:], cols)
	return out, nil
}

/**
 * @brief Creates and returns an identity matrix.
 */
func Identity[T Float, N Dim]() Mat[T, N, N] {
	var out Mat[T, N, N]
	for i := 0; i < dimLen[N](); i++ {
		out.cols[i].e[i] = 1
	}
	return out
}

// Cols returns C and Rows returns R.
func (mt Mat[T, C, R]) Cols() int { return dimLen[C]() }
func (mt Mat[T, C, R]) Rows() int { return dimLen[R]() }

func (mt Mat[T, C, R]) checkCol(c int) {
	if c < 0 || c >= dimLen[C]() {
		panic(fmt.Sprintf("math: column %d out of range for matrix with %d columns", c, dimLen[C]()))
	}
}

// Col returns column c. It panics if c is not in [0, C).
func (mt Mat[T, C, R]) Col(c int) Vec[T, R] {
	mt.checkCol(c)
	return mt.cols[c]
}

// SetCol replaces column c.
func (mt *Mat[T, C, R]) SetCol(c int, v Vec[T, R]) {
	mt.checkCol(c)
	mt.cols[c] = v
}

/**
 * @brief Gathers row r, one component from each column.
 */
func (mt Mat[T, C, R]) Row(r int) Vec[T, C] {
	var out Vec[T, C]
	for c := 0; c < dimLen[C](); c++ {
		out.e[c] = mt.cols[c].At(r)
	}
	return out
}

// At returns the element in column c, row r.
func (mt Mat[T, C, R]) At(c, r int) T {
	mt.checkCol(c)
	return mt.cols[c].At(r)
}

// Set assigns the element in column c, row r.
func (mt *Mat[T, C, R]) Set(c, r int, x T) {
	mt.checkCol(c)
	mt.cols[c].Set(r, x)
}

/**
 * @brief Returns the elements column by column, the layout glUniformMatrix
 * expects with transpose disabled.
 */
func (mt Mat[T, C, R]) Data() []T {
	out := make([]T, 0, dimLen[C]()*dimLen[R]())
	for c := 0; c < dimLen[C](); c++ {
		out = mt.cols[c].AppendTo(out)
	}
	return out
}

func (mt Mat[T, C, R]) String() string {
	rows := make([]string, dimLen[R]())
	for r := range rows {
		rows[r] = mt.Row(r).String()
	}
	return strings.Join(rows, "\n")
}

func (mt Mat[T, C, R]) zip(other Mat[T, C, R], op func(a, b Vec[T, R]) Vec[T, R]) Mat[T, C, R] {
	var out Mat[T, C, R]
	for c := 0; c < dimLen[C](); c++ {
		out.cols[c] = op(mt.cols[c], other.cols[c])
	}
	return out
}

func (mt Mat[T, C, R]) each(op func(a Vec[T, R]) Vec[T, R]) Mat[T, C, R] {
	var out Mat[T, C, R]
	for c := 0; c < dimLen[C](); c++ {
		out.cols[c] = op(mt.cols[c])
	}
	return out
}

// Componentwise operators. There is deliberately no componentwise Mul:
// products go through MulVec and Mul.

func (mt Mat[T, C, R]) Add(other Mat[T, C, R]) Mat[T, C, R] {
	return mt.zip(other, Vec[T, R].Add)
}

func (mt Mat[T, C, R]) Sub(other Mat[T, C, R]) Mat[T, C, R] {
	return mt.zip(other, Vec[T, R].Sub)
}

func (mt Mat[T, C, R]) Div(other Mat[T, C, R]) Mat[T, C, R] {
	return mt.zip(other, Vec[T, R].Div)
}

func (mt Mat[T, C, R]) AddScalar(s T) Mat[T, C, R] {
	return mt.each(func(v Vec[T, R]) Vec[T, R] { return v.AddScalar(s) })
}

func (mt Mat[T, C, R]) SubScalar(s T) Mat[T, C, R] {
	return mt.each(func(v Vec[T, R]) Vec[T, R] { return v.SubScalar(s) })
}

func (mt Mat[T, C, R]) MulScalar(s T) Mat[T, C, R] {
	return mt.each(func(v Vec[T, R]) Vec[T, R] { return v.MulScalar(s) })
}

func (mt Mat[T, C, R]) DivScalar(s T) Mat[T, C, R] {
	return mt.each(func(v Vec[T, R]) Vec[T, R] { return v.DivScalar(s) })
}

// ScalarSubMat returns s - mt for every element.
func ScalarSubMat[T Float, C Dim, R Dim](s T, mt Mat[T, C, R]) Mat[T, C, R] {
	return mt.each(func(v Vec[T, R]) Vec[T, R] { return ScalarSub(s, v) })
}

/**
 * @brief Transforms v by mt. Component r of the result is the dot product
 * of row r with v.
 */
func MulVec[T Float, C Dim, R Dim](mt Mat[T, C, R], v Vec[T, C]) Vec[T, R] {
	var out Vec[T, R]
	for r := 0; r < dimLen[R](); r++ {
		out.e[r] = Dot(mt.Row(r), v)
	}
	return out
}

/**
 * @brief Composes a and b. Column j of the result is a applied to column j
 * of b, so the columns of a must match the rows of b.
 */
func Mul[T Float, M Dim, C1 Dim, R0 Dim](a Mat[T, M, R0], b Mat[T, C1, M]) Mat[T, C1, R0] {
	var out Mat[T, C1, R0]
	for c := 0; c < dimLen[C1](); c++ {
		out.cols[c] = MulVec(a, b.cols[c])
	}
	return out
}

// Transpose swaps rows and columns.
func Transpose[T Float, C Dim, R Dim](mt Mat[T, C, R]) Mat[T, R, C] {
	var out Mat[T, R, C]
	for r := 0; r < dimLen[R](); r++ {
		out.cols[r] = mt.Row(r)
	}
	return out
}

/**
 * @brief Compares all elements of a and b and ensures the difference is
 * within tolerance.
 */
func MatApproxEqual[T Float, C Dim, R Dim](a, b Mat[T, C, R], tolerance T) bool {
	for c := 0; c < dimLen[C](); c++ {
		if !ApproxEqual(a.cols[c], b.cols[c], tolerance) {
			return false
		}
	}
	return true
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func Translation[T Float](position Vec[T, D3]) Mat[T, D4, D4] {
	out := Identity[T, D4]()
	out.cols[3] = NewVec4(position.X(), position.Y(), position.Z(), 1)
	return out
}

/**
 * @brief Creates and returns a scale matrix.
 */
func Scaling[T Float](scale Vec[T, D3]) Mat[T, D4, D4] {
	out := Identity[T, D4]()
	out.cols[0].e[0] = scale.X()
	out.cols[1].e[1] = scale.Y()
	out.cols[2].e[2] = scale.Z()
	return out
}

/**
 * @brief Creates a rotation matrix about the z axis.
 */
func RotationZ[T Float](angleRadians T) Mat[T, D4, D4] {
	out := Identity[T, D4]()
	c := T(m.Cos(float64(angleRadians)))
	s := T(m.Sin(float64(angleRadians)))
	out.cols[0].e[0] = c
	out.cols[0].e[1] = s
	out.cols[1].e[0] = -s
	out.cols[1].e[1] = c
	return out
}

/**
 * @brief Creates and returns an orthographic projection matrix.
 */
func Orthographic[T Float](left, right, bottom, top, nearClip, farClip T) Mat[T, D4, D4] {
	out := Identity[T, D4]()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (nearClip - farClip)

	out.cols[0].e[0] = -2.0 * lr
	out.cols[1].e[1] = -2.0 * bt
	out.cols[2].e[2] = 2.0 * nf

	out.cols[3].e[0] = (left + right) * lr
	out.cols[3].e[1] = (top + bottom) * bt
	out.cols[3].e[2] = (farClip + nearClip) * nf
	return out
}
