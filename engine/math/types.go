package math

import "golang.org/x/exp/constraints"

/** @brief Scalars a Vec can hold. Booleans live in BVec instead. */
type Number interface {
	constraints.Integer | constraints.Float
}

/** @brief Scalars a Mat can hold. */
type Float interface {
	constraints.Float
}

/**
 * @brief Compile-time dimension of a vector or matrix. Only D2, D3 and D4
 * satisfy it, which keeps every length in [2, 4].
 */
type Dim interface {
	D2 | D3 | D4
	Len() int
}

type D2 struct{}
type D3 struct{}
type D4 struct{}

func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }

func dimLen[N Dim]() int {
	var n N
	return n.Len()
}

/**
 * @brief A fixed-length vector of N components. Only the first N entries of
 * the backing array are live; the rest stay zero. Vec is a plain value.
 */
type Vec[T Number, N Dim] struct {
	e [4]T
}

/** @brief A fixed-length vector of booleans, the result of comparisons. */
type BVec[N Dim] struct {
	e [4]bool
}

/**
 * @brief A column-major matrix with C columns of R rows each. Columns are
 * stored; rows are gathered on demand.
 */
type Mat[T Float, C Dim, R Dim] struct {
	cols [4]Vec[T, R]
}

// GLSL names.
type (
	Vec2 = Vec[float32, D2]
	Vec3 = Vec[float32, D3]
	Vec4 = Vec[float32, D4]

	DVec2 = Vec[float64, D2]
	DVec3 = Vec[float64, D3]
	DVec4 = Vec[float64, D4]

	IVec2 = Vec[int32, D2]
	IVec3 = Vec[int32, D3]
	IVec4 = Vec[int32, D4]

	UVec2 = Vec[uint32, D2]
	UVec3 = Vec[uint32, D3]
	UVec4 = Vec[uint32, D4]

	BVec2 = BVec[D2]
	BVec3 = BVec[D3]
	BVec4 = BVec[D4]

	Mat2x2 = Mat[float32, D2, D2]
	Mat2x3 = Mat[float32, D2, D3]
	Mat2x4 = Mat[float32, D2, D4]
	Mat3x2 = Mat[float32, D3, D2]
	Mat3x3 = Mat[float32, D3, D3]
	Mat3x4 = Mat[float32, D3, D4]
	Mat4x2 = Mat[float32, D4, D2]
	Mat4x3 = Mat[float32, D4, D3]
	Mat4x4 = Mat[float32, D4, D4]

	Mat2 = Mat2x2
	Mat3 = Mat3x3
	Mat4 = Mat4x4
)
