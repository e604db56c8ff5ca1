package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorOps(t *testing.T) {
	v := NewVector(3, []float64{3, -1, 2})
	assert.Equal(t, 3, v.Len())
	assert.True(t, near(v.Min(), -1))
	assert.True(t, near(v.Max(), 3))

	v.AddVec(1, 2)
	assert.True(t, near(v.AtVec(1), 1))

	w := v.Copy().Scale(2)
	assert.True(t, near(w.AtVec(0), 6))
	assert.True(t, near(v.AtVec(0), 3)) // receiver untouched by Copy

	w.Apply(func(x float64) float64 { return -x })
	assert.True(t, near(w.AtVec(2), -4))

	assert.Equal(t, []float64{3, 1, 2}, v.DataP())

	assert.Panics(t, func() { NewVector(2, []float64{1}) })
}
