package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	f, ok := ParseNumeric("1,234")
	assert.True(t, ok)
	assert.Equal(t, 1234.0, f)

	f, ok = ParseNumeric(" 1,234,567.5 ")
	assert.True(t, ok)
	assert.Equal(t, 1234567.5, f)

	f, ok = ParseNumeric("12")
	assert.True(t, ok)
	assert.Equal(t, 12.0, f)

	/*
		无法解析的值
	*/
	for _, s := range []string{"", "abc", "-", "NaN", "1.2.3"} {
		f, ok = ParseNumeric(s)
		assert.False(t, ok, s)
		assert.True(t, math.IsNaN(f), s)
	}
}

func TestQuantile(t *testing.T) {
	arr := []float64{7, 1, 100, 3, 5, 2, 8, 4, 6}
	assert.Equal(t, 3.0, Quantile(arr, 0.25))
	assert.Equal(t, 7.0, Quantile(arr, 0.75))
	assert.Equal(t, 5.0, Quantile(arr, 0.5))
	assert.Equal(t, 1.0, Quantile(arr, 0))
	assert.Equal(t, 100.0, Quantile(arr, 1))
	// 输入不应被修改
	assert.Equal(t, 7.0, arr[0])

	// 插值
	assert.InDelta(t, 1.75, Quantile([]float64{1, 2, 3, 4}, 0.25), 1e-12)
	assert.InDelta(t, 3.25, Quantile([]float64{4, 3, 2, 1}, 0.75), 1e-12)

	// 忽略NaN
	assert.InDelta(t, 1.75, Quantile([]float64{1, math.NaN(), 2, 3, 4}, 0.25), 1e-12)

	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
	assert.True(t, math.IsNaN(Quantile([]float64{math.NaN()}, 0.5)))
	assert.True(t, math.IsNaN(Quantile([]float64{1}, 1.5)))
}

func TestClip(t *testing.T) {
	assert.Equal(t, 1.0, Clip(-5, 1, 3))
	assert.Equal(t, 3.0, Clip(5, 1, 3))
	assert.Equal(t, 2.0, Clip(2, 1, 3))
	assert.True(t, math.IsNaN(Clip(math.NaN(), 1, 3)))
}

func TestFormatNumeric(t *testing.T) {
	assert.Equal(t, "1.50", FormatNumeric(1.5, 2))
	assert.Equal(t, "", FormatNumeric(math.NaN(), 2))
}
