package math

import (
	m "math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randMat[T Float, C Dim, R Dim](r *rand.Rand) Mat[T, C, R] {
	var out Mat[T, C, R]
	for c := 0; c < out.Cols(); c++ {
		out.SetCol(c, randVec[T, R](r, randFloat[T]))
	}
	return out
}

func TestNewMat(t *testing.T) {
	mt, err := NewMat[float32, D2, D3](NewVec3[float32](1, 2, 3), NewVec3[float32](4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, 2, mt.Cols())
	assert.Equal(t, 3, mt.Rows())
	assert.Equal(t, float32(6), mt.At(1, 2))
	assert.Equal(t, NewVec2[float32](2, 5), mt.Row(1))
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, mt.Data())

	_, err = NewMat[float32, D3, D3](NewVec3[float32](1, 2, 3))
	assert.Error(t, err)

	assert.Panics(t, func() { mt.Col(2) })
	assert.Panics(t, func() { mt.At(0, 3) })
}

func TestIdentity(t *testing.T) {
	id := Identity[float32, D4]()
	assert.Equal(t, []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}, id.Data())

	r := rand.New(rand.NewPCG(7, 8))
	a := randMat[float32, D4, D4](r)
	assert.Equal(t, a, Mul(id, a))
	assert.Equal(t, a, Mul(a, id))
}

func TestMulVecIsRowDot(t *testing.T) {
	// two columns of three rows
	mt, err := NewMat[float64, D2, D3](NewVec3(1.0, 2, 3), NewVec3(4.0, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, NewVec3(5.0, 7, 9), MulVec(mt, NewVec2(1.0, 1)))

	r := rand.New(rand.NewPCG(9, 10))
	for i := 0; i < iterations; i++ {
		a := randMat[float64, D4, D3](r)
		v := randVec[float64, D4](r, randFloat[float64])
		got := MulVec(a, v)
		for row := 0; row < a.Rows(); row++ {
			assert.InDelta(t, Dot(a.Row(row), v), got.At(row), 1e-12)
		}
	}
}

func TestMul(t *testing.T) {
	a, _ := NewMat[float32, D2, D2](NewVec2[float32](1, 2), NewVec2[float32](3, 4))
	b, _ := NewMat[float32, D2, D2](NewVec2[float32](5, 6), NewVec2[float32](7, 8))
	want, _ := NewMat[float32, D2, D2](NewVec2[float32](23, 34), NewVec2[float32](31, 46))
	assert.Equal(t, want, Mul(a, b))

	r := rand.New(rand.NewPCG(11, 12))
	// columns of the left operand must match rows of the right one
	var ab Mat[float64, D4, D2] = Mul(randMat[float64, D3, D2](r), randMat[float64, D4, D3](r))
	assert.Equal(t, 4, ab.Cols())
	assert.Equal(t, 2, ab.Rows())
}

func TestMulIsAssociative(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	for i := 0; i < iterations; i++ {
		a := randMat[float64, D3, D2](r)
		b := randMat[float64, D4, D3](r)
		c := randMat[float64, D2, D4](r)
		left := Mul(Mul(a, b), c)
		right := Mul(a, Mul(b, c))
		require.True(t, MatApproxEqual(left, right, 1e-9), "\n%v\n!=\n%v", left, right)

		sa := randMat[float64, D4, D4](r)
		sb := randMat[float64, D4, D4](r)
		sc := randMat[float64, D4, D4](r)
		require.True(t, MatApproxEqual(Mul(Mul(sa, sb), sc), Mul(sa, Mul(sb, sc)), 1e-9))
	}
}

func TestTranspose(t *testing.T) {
	mt, _ := NewMat[float32, D2, D3](NewVec3[float32](1, 2, 3), NewVec3[float32](4, 5, 6))
	tr := Transpose(mt)
	assert.Equal(t, 3, tr.Cols())
	assert.Equal(t, 2, tr.Rows())
	assert.Equal(t, NewVec2[float32](1, 4), tr.Col(0))
	assert.Equal(t, mt, Transpose(tr))
}

func TestElementwise(t *testing.T) {
	a, _ := NewMat[float32, D2, D2](NewVec2[float32](2, 4), NewVec2[float32](6, 8))
	ones, _ := NewMat[float32, D2, D2](NewVecFill[float32, D2](1), NewVecFill[float32, D2](1))

	assert.Equal(t, []float32{3, 5, 7, 9}, a.Add(ones).Data())
	assert.Equal(t, []float32{1, 3, 5, 7}, a.Sub(ones).Data())
	assert.Equal(t, []float32{1, 1, 1, 1}, a.Div(a).Data())
	assert.Equal(t, []float32{4, 6, 8, 10}, a.AddScalar(2).Data())
	assert.Equal(t, []float32{0, 2, 4, 6}, a.SubScalar(2).Data())
	assert.Equal(t, []float32{4, 8, 12, 16}, a.MulScalar(2).Data())
	assert.Equal(t, []float32{1, 2, 3, 4}, a.DivScalar(2).Data())
	assert.Equal(t, []float32{8, 6, 4, 2}, ScalarSubMat(10, a).Data())
}

func TestTransforms(t *testing.T) {
	p := NewVec4[float64](1, 1, 1, 1)

	moved := MulVec(Translation(NewVec3[float64](1, 2, 3)), p)
	assert.Equal(t, NewVec4[float64](2, 3, 4, 1), moved)

	scaled := MulVec(Scaling(NewVec3[float64](2, 3, 4)), p)
	assert.Equal(t, NewVec4[float64](2, 3, 4, 1), scaled)

	rotated := MulVec(RotationZ(m.Pi/2), NewVec4[float64](1, 0, 0, 1))
	assert.True(t, ApproxEqual(NewVec4[float64](0, 1, 0, 1), rotated, 1e-12), "%v", rotated)

	ortho := Orthographic[float64](-1, 1, -1, 1, -1, 1)
	assert.Equal(t, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	}, ortho.Data())
}

func TestUtils(t *testing.T) {
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, 0, Clamp(-3, 0, 5))
	assert.Equal(t, float32(0.5), Clamp[float32](0.5, 0, 1))
	assert.InDelta(t, K_PI, DegToRad(180), 1e-6)
	assert.InDelta(t, 360, RadToDeg(K_PI_2), 1e-4)
}
