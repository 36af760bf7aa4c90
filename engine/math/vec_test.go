package math

import (
	m "math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iterations = 200

func randFloat[T Float](r *rand.Rand) T {
	return T(r.Float64()*20 - 10)
}

func randInt[T Number](r *rand.Rand) T {
	return T(r.IntN(200) - 100)
}

func randUint[T Number](r *rand.Rand) T {
	return T(r.IntN(1000))
}

func randVec[T Number, N Dim](r *rand.Rand, gen func(*rand.Rand) T) Vec[T, N] {
	var v Vec[T, N]
	for i := 0; i < v.Len(); i++ {
		v.Set(i, gen(r))
	}
	return v
}

func checkAddSubExact[T Number, N Dim](t *testing.T, r *rand.Rand, gen func(*rand.Rand) T) {
	t.Helper()
	for i := 0; i < iterations; i++ {
		a, b := randVec[T, N](r, gen), randVec[T, N](r, gen)
		require.Equal(t, a, a.Add(b).Sub(b))
	}
}

func checkAddSubApprox[T Float, N Dim](t *testing.T, r *rand.Rand, tol T) {
	t.Helper()
	for i := 0; i < iterations; i++ {
		a, b := randVec[T, N](r, randFloat[T]), randVec[T, N](r, randFloat[T])
		require.True(t, ApproxEqual(a, a.Add(b).Sub(b), tol), "a=%v b=%v", a, b)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	checkAddSubExact[int32, D2](t, r, randInt[int32])
	checkAddSubExact[int32, D3](t, r, randInt[int32])
	checkAddSubExact[int32, D4](t, r, randInt[int32])
	// unsigned wrap-around still round-trips
	checkAddSubExact[uint32, D2](t, r, randUint[uint32])
	checkAddSubExact[uint32, D3](t, r, randUint[uint32])
	checkAddSubExact[uint32, D4](t, r, randUint[uint32])
	checkAddSubExact[int8, D4](t, r, randInt[int8])

	checkAddSubApprox[float32, D2](t, r, 1e-5)
	checkAddSubApprox[float32, D3](t, r, 1e-5)
	checkAddSubApprox[float32, D4](t, r, 1e-5)
	checkAddSubApprox[float64, D2](t, r, 1e-12)
	checkAddSubApprox[float64, D3](t, r, 1e-12)
	checkAddSubApprox[float64, D4](t, r, 1e-12)
}

func TestCrossIsOrthogonal(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < iterations; i++ {
		a, b := randVec[float64, D3](r, randFloat[float64]), randVec[float64, D3](r, randFloat[float64])
		c := Cross(a, b)
		assert.InDelta(t, 0, Dot(c, a), 1e-9)
		assert.InDelta(t, 0, Dot(c, b), 1e-9)

		ia, ib := randVec[int32, D3](r, randInt[int32]), randVec[int32, D3](r, randInt[int32])
		ic := Cross(ia, ib)
		assert.Zero(t, Dot(ic, ia))
		assert.Zero(t, Dot(ic, ib))
	}

	x := NewVec3[float32](1, 0, 0)
	y := NewVec3[float32](0, 1, 0)
	assert.Equal(t, NewVec3[float32](0, 0, 1), Cross(x, y))
	assert.Equal(t, NewVec3[float32](0, 0, -1), Cross(y, x))
}

func checkNormIsUnit[T Float, N Dim](t *testing.T, r *rand.Rand, tol float64) {
	t.Helper()
	for i := 0; i < iterations; i++ {
		a := randVec[T, N](r, randFloat[T])
		if Length(a) < 1e-3 {
			continue
		}
		assert.InDelta(t, 1, float64(Length(Norm(a))), tol)
	}
}

func TestNormHasUnitLength(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	checkNormIsUnit[float32, D2](t, r, 1e-5)
	checkNormIsUnit[float32, D3](t, r, 1e-5)
	checkNormIsUnit[float32, D4](t, r, 1e-5)
	checkNormIsUnit[float64, D2](t, r, 1e-12)
	checkNormIsUnit[float64, D3](t, r, 1e-12)
	checkNormIsUnit[float64, D4](t, r, 1e-12)

	assert.Equal(t, float32(5), Length(NewVec2[float32](3, 4)))
	// zero length is the caller's problem
	assert.True(t, m.IsNaN(float64(Norm(DVec3{}).X())))
}

func TestDot(t *testing.T) {
	assert.Equal(t, int32(32), Dot(NewVec3[int32](1, 2, 3), NewVec3[int32](4, 5, 6)))
	assert.Equal(t, float64(70), Dot(NewVec4(1.0, 2, 3, 4), NewVec4(5.0, 6, 7, 8)))
}

func TestScalarOperators(t *testing.T) {
	v := NewVec3[float32](2, 4, 8)

	assert.Equal(t, NewVec3[float32](3, 5, 9), v.AddScalar(1))
	assert.Equal(t, NewVec3[float32](1, 3, 7), v.SubScalar(1))
	assert.Equal(t, NewVec3[float32](4, 8, 16), v.MulScalar(2))
	assert.Equal(t, NewVec3[float32](1, 2, 4), v.DivScalar(2))
	assert.Equal(t, NewVec3[float32](8, 6, 2), ScalarSub(10, v))
	assert.Equal(t, NewVec3[float32](4, 2, 1), ScalarDiv(8, v))

	assert.Equal(t, NewVec3[float32](4, 16, 64), v.Mul(v))
	assert.Equal(t, NewVecFill[float32, D3](1), v.Div(v))

	w := v
	w.AddAssign(v)
	assert.Equal(t, NewVec3[float32](4, 8, 16), w)
	w.SubAssign(v)
	w.MulScalarAssign(3)
	assert.Equal(t, NewVec3[float32](6, 12, 24), w)
	w.DivScalarAssign(2)
	w.AddScalarAssign(1)
	w.SubScalarAssign(2)
	assert.Equal(t, NewVec3[float32](2, 5, 11), w)
	w.MulAssign(NewVec3[float32](2, 2, 2))
	w.DivAssign(NewVec3[float32](2, 5, 11))
	assert.Equal(t, NewVec3[float32](2, 2, 2), w)
	// the source vector is a value and stays untouched
	assert.Equal(t, NewVec3[float32](2, 4, 8), v)
}

func TestAccessors(t *testing.T) {
	v := NewVec4(1, 2, 3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{v.X(), v.Y(), v.Z(), v.W()})
	assert.Equal(t, []int{1, 2, 3, 4}, []int{v.R(), v.G(), v.B(), v.A()})
	assert.Equal(t, []int{1, 2, 3, 4}, []int{v.S(), v.T(), v.P(), v.Q()})
	assert.Equal(t, 4, v.Len())

	v2 := NewVec2(1, 2)
	assert.PanicsWithValue(t, "math: component z needs a vector of length 3, have 2", func() { v2.Z() })
	assert.Panics(t, func() { NewVec3(1, 2, 3).W() })
	assert.Panics(t, func() { v2.At(2) })
	assert.Panics(t, func() { v2.At(-1) })
}

func TestSwizzle(t *testing.T) {
	v := NewVec4[float32](1, 2, 3, 4)
	assert.Equal(t, NewVec2[float32](4, 1), v.Swizzle2(3, 0))
	assert.Equal(t, NewVec3[float32](2, 2, 2), v.Swizzle3(1, 1, 1))
	assert.Equal(t, NewVec4[float32](4, 3, 2, 1), v.Swizzle4(3, 2, 1, 0))

	// indices past the live length are rejected even though storage exists
	v3 := NewVec3[float32](1, 2, 3)
	assert.Panics(t, func() { v3.Swizzle2(0, 3) })
}

func TestVecFromSlice(t *testing.T) {
	v, err := NewVecFromSlice[float32, D3]([]float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, NewVec3[float32](1, 2, 3), v)
	assert.Equal(t, []float32{1, 2, 3}, v.Slice())
	assert.Equal(t, []float32{0, 1, 2, 3}, v.AppendTo([]float32{0}))
	assert.Equal(t, "[1 2 3]", v.String())

	_, err = NewVecFromSlice[float32, D2]([]float32{1, 2, 3})
	assert.Error(t, err)
}

func TestBoolVectors(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(1, 5, 3)

	eq := Equal(a, b)
	assert.Equal(t, NewBVec3(true, false, true), eq)
	assert.True(t, eq.Any())
	assert.False(t, eq.All())
	assert.Equal(t, NewBVec3(false, true, false), eq.Not())
	assert.Equal(t, NewBVec3(false, true, false), LessThan(a, b))
	assert.True(t, Equal(a, a).All())
	assert.False(t, NewBVec2(false, false).Any())
	assert.True(t, NewBVec4(true, true, true, true).At(3))
	assert.Equal(t, 4, BVec4{}.Len())
}
