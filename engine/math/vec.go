package math

import (
	"fmt"
	m "math"
)

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2[T Number](x, y T) Vec[T, D2] {
	return Vec[T, D2]{e: [4]T{x, y}}
}

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVec3[T Number](x, y, z T) Vec[T, D3] {
	return Vec[T, D3]{e: [4]T{x, y, z}}
}

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4[T Number](x, y, z, w T) Vec[T, D4] {
	return Vec[T, D4]{e: [4]T{x, y, z, w}}
}

/**
 * @brief Returns a vector with every live component set to s.
 */
func NewVecFill[T Number, N Dim](s T) Vec[T, N] {
	var v Vec[T, N]
	for i := 0; i < dimLen[N](); i++ {
		v.e[i] = s
	}
	return v
}

/**
 * @brief Builds a vector from exactly N values.
 */
func NewVecFromSlice[T Number, N Dim](values []T) (Vec[T, N], error) {
	var v Vec[T, N]
	if len(values) != dimLen[N]() {
		return v, fmt.Errorf("vector of length %d built from %d values", dimLen[N](), len(values))
	}
	copy(v.e[:], values)
	return v, nil
}

// Len returns N.
func (v Vec[T, N]) Len() int {
	return dimLen[N]()
}

func (v Vec[T, N]) check(i int) {
	if i < 0 || i >= dimLen[N]() {
		panic(fmt.Sprintf("math: index %d out of range for vector of length %d", i, dimLen[N]()))
	}
}

// At returns component i. It panics if i is not in [0, N).
func (v Vec[T, N]) At(i int) T {
	v.check(i)
	return v.e[i]
}

// Set assigns component i. It panics if i is not in [0, N).
func (v *Vec[T, N]) Set(i int, x T) {
	v.check(i)
	v.e[i] = x
}

// Slice returns a copy of the live components.
func (v Vec[T, N]) Slice() []T {
	return v.AppendTo(nil)
}

// AppendTo appends the live components to dst, packed with no padding.
func (v Vec[T, N]) AppendTo(dst []T) []T {
	return append(dst, v.e[:dimLen[N]()]...)
}

func (v Vec[T, N]) String() string {
	return fmt.Sprint(v.e[:dimLen[N]()])
}

// Component accessors. The ones past Y need a long enough vector and panic
// otherwise.

func (v Vec[T, N]) X() T { return v.e[0] }
func (v Vec[T, N]) Y() T { return v.e[1] }
func (v Vec[T, N]) Z() T { return v.component(2, "z") }
func (v Vec[T, N]) W() T { return v.component(3, "w") }

func (v Vec[T, N]) R() T { return v.e[0] }
func (v Vec[T, N]) G() T { return v.e[1] }
func (v Vec[T, N]) B() T { return v.component(2, "b") }
func (v Vec[T, N]) A() T { return v.component(3, "a") }

func (v Vec[T, N]) S() T { return v.e[0] }
func (v Vec[E, N]) T() E { return v.e[1] }
func (v Vec[T, N]) P() T { return v.component(2, "p") }
func (v Vec[T, N]) Q() T { return v.component(3, "q") }

func (v Vec[T, N]) component(i int, name string) T {
	if i >= dimLen[N]() {
		panic(fmt.Sprintf("math: component %s needs a vector of length %d, have %d", name, i+1, dimLen[N]()))
	}
	return v.e[i]
}

/**
 * @brief Builds a new vector from the components at the given indices,
 * which may repeat or reorder. Every index must be in [0, N); an
 * out-of-range index panics.
 */
func (v Vec[T, N]) Swizzle2(x, y int) Vec[T, D2] {
	return NewVec2(v.At(x), v.At(y))
}

func (v Vec[T, N]) Swizzle3(x, y, z int) Vec[T, D3] {
	return NewVec3(v.At(x), v.At(y), v.At(z))
}

func (v Vec[T, N]) Swizzle4(x, y, z, w int) Vec[T, D4] {
	return NewVec4(v.At(x), v.At(y), v.At(z), v.At(w))
}

func (v Vec[T, N]) zip(other Vec[T, N], op func(a, b T) T) Vec[T, N] {
	var out Vec[T, N]
	for i := 0; i < dimLen[N](); i++ {
		out.e[i] = op(v.e[i], other.e[i])
	}
	return out
}

func (v Vec[T, N]) each(op func(a T) T) Vec[T, N] {
	var out Vec[T, N]
	for i := 0; i < dimLen[N](); i++ {
		out.e[i] = op(v.e[i])
	}
	return out
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec[T, N]) Add(other Vec[T, N]) Vec[T, N] {
	return v.zip(other, func(a, b T) T { return a + b })
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec[T, N]) Sub(other Vec[T, N]) Vec[T, N] {
	return v.zip(other, func(a, b T) T { return a - b })
}

/**
 * @brief Multiplies v by other componentwise and returns a copy of the result.
 */
func (v Vec[T, N]) Mul(other Vec[T, N]) Vec[T, N] {
	return v.zip(other, func(a, b T) T { return a * b })
}

/**
 * @brief Divides v by other componentwise and returns a copy of the result.
 * Integer division by a zero component panics as usual.
 */
func (v Vec[T, N]) Div(other Vec[T, N]) Vec[T, N] {
	return v.zip(other, func(a, b T) T { return a / b })
}

func (v Vec[T, N]) AddScalar(s T) Vec[T, N] {
	return v.each(func(a T) T { return a + s })
}

func (v Vec[T, N]) SubScalar(s T) Vec[T, N] {
	return v.each(func(a T) T { return a - s })
}

func (v Vec[T, N]) MulScalar(s T) Vec[T, N] {
	return v.each(func(a T) T { return a * s })
}

func (v Vec[T, N]) DivScalar(s T) Vec[T, N] {
	return v.each(func(a T) T { return a / s })
}

// ScalarSub returns s - v for every component.
func ScalarSub[T Number, N Dim](s T, v Vec[T, N]) Vec[T, N] {
	return v.each(func(a T) T { return s - a })
}

// ScalarDiv returns s / v for every component.
func ScalarDiv[T Number, N Dim](s T, v Vec[T, N]) Vec[T, N] {
	return v.each(func(a T) T { return s / a })
}

// In-place variants of the operators above.

func (v *Vec[T, N]) AddAssign(other Vec[T, N]) { *v = v.Add(other) }
func (v *Vec[T, N]) SubAssign(other Vec[T, N]) { *v = v.Sub(other) }
func (v *Vec[T, N]) MulAssign(other Vec[T, N]) { *v = v.Mul(other) }
func (v *Vec[T, N]) DivAssign(other Vec[T, N]) { *v = v.Div(other) }
func (v *Vec[T, N]) AddScalarAssign(s T) { *v = v.AddScalar(s) }
func (v *Vec[T, N]) SubScalarAssign(s T) { *v = v.SubScalar(s) }
func (v *Vec[T, N]) MulScalarAssign(s T) { *v = v.MulScalar(s) }
func (v *Vec[T, N]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

/**
 * @brief Sum of the componentwise product of a and b.
 */
func Dot[T Number, N Dim](a, b Vec[T, N]) T {
	var sum T
	for i := 0; i < dimLen[N](); i++ {
		sum += a.e[i] * b.e[i]
	}
	return sum
}

/**
 * @brief Calculates and returns the cross product of the supplied 3-vectors.
 */
func Cross[T Number](a, b Vec[T, D3]) Vec[T, D3] {
	return NewVec3(
		a.e[1]*b.e[2]-a.e[2]*b.e[1],
		a.e[2]*b.e[0]-a.e[0]*b.e[2],
		a.e[0]*b.e[1]-a.e[1]*b.e[0],
	)
}

/**
 * @brief Returns the length of the provided vector.
 */
func Length[T Float, N Dim](a Vec[T, N]) T {
	return T(m.Sqrt(float64(Dot(a, a))))
}

/**
 * @brief Returns a unit-length copy of a. The caller guarantees that a is
 * not the zero vector; there the result is NaN.
 */
func Norm[T Float, N Dim](a Vec[T, N]) Vec[T, N] {
	return a.DivScalar(Length(a))
}

/**
 * @brief Compares all components of a and b and ensures the difference is
 * within tolerance.
 */
func ApproxEqual[T Float, N Dim](a, b Vec[T, N], tolerance T) bool {
	for i := 0; i < dimLen[N](); i++ {
		if m.Abs(float64(a.e[i]-b.e[i])) > float64(tolerance) {
			return false
		}
	}
	return true
}

// Equal compares a and b componentwise.
func Equal[T Number, N Dim](a, b Vec[T, N]) BVec[N] {
	var out BVec[N]
	for i := 0; i < dimLen[N](); i++ {
		out.e[i] = a.e[i] == b.e[i]
	}
	return out
}

// LessThan compares a and b componentwise.
func LessThan[T Number, N Dim](a, b Vec[T, N]) BVec[N] {
	var out BVec[N]
	for i := 0; i < dimLen[N](); i++ {
		out.e[i] = a.e[i] < b.e[i]
	}
	return out
}

func NewBVec2(x, y bool) BVec[D2] { return BVec[D2]{e: [4]bool{x, y}} }
func NewBVec3(x, y, z bool) BVec[D3] { return BVec[D3]{e: [4]bool{x, y, z}} }
func NewBVec4(x, y, z, w bool) BVec[D4] { return BVec[D4]{e: [4]bool{x, y, z, w}} }

func (b BVec[N]) Len() int { return dimLen[N]() }

// At returns component i. It panics if i is not in [0, N).
func (b BVec[N]) At(i int) bool {
	if i < 0 || i >= dimLen[N]() {
		panic(fmt.Sprintf("math: index %d out of range for vector of length %d", i, dimLen[N]()))
	}
	return b.e[i]
}

// All reports whether every component is true.
func (b BVec[N]) All() bool {
	for i := 0; i < dimLen[N](); i++ {
		if !b.e[i] {
			return false
		}
	}
	return true
}

// Any reports whether at least one component is true.
func (b BVec[N]) Any() bool {
	for i := 0; i < dimLen[N](); i++ {
		if b.e[i] {
			return true
		}
	}
	return false
}

func (b BVec[N]) Not() BVec[N] {
	var out BVec[N]
	for i := 0; i < dimLen[N](); i++ {
		out.e[i] = !b.e[i]
	}
	return out
}
