package model

import (
	"bytes"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestLassoRegressor(t *testing.T) {
	// 单特征时 w = (x·y - n*alpha) / ||x||^2，x、y均已中心化
	x := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	y := []float64{3, 6, 9, 12, 15}
	lasso := NewLassoRegressor(1.0, 1000, 1e-4)
	assert.NoError(t, lasso.Fit(x, y))
	assert.InDelta(t, 2.5, lasso.Coefficients()[0], 1e-9)
	assert.InDelta(t, 1.5, lasso.Intercept(), 1e-9)
	converged, iter := lasso.Converged()
	assert.True(t, converged)
	assert.True(t, iter <= 2)

	p, err := lasso.Predict([]float64{2})
	assert.NoError(t, err)
	assert.InDelta(t, 6.5, p, 1e-9)

	_, err = lasso.Predict([]float64{1, 2})
	assert.Error(t, err)

	/*
		alpha足够大时系数为0，截距为y的平均值
	*/
	heavy := NewLassoRegressor(100, 1000, 1e-4)
	assert.NoError(t, heavy.Fit(x, y))
	assert.Equal(t, 0.0, heavy.Coefficients()[0])
	assert.InDelta(t, 9, heavy.Intercept(), 1e-9)

	/*
		常数列的系数为0
	*/
	withConstant := NewLassoRegressor(1.0, 1000, 1e-4)
	assert.NoError(t, withConstant.Fit(mat.NewDense(5, 2, []float64{
		1, 7,
		2, 7,
		3, 7,
		4, 7,
		5, 7,
	}), y))
	assert.Equal(t, 0.0, withConstant.Coefficients()[1])
	assert.InDelta(t, 2.5, withConstant.Coefficients()[0], 1e-9)
}

func TestLassoInvalid(t *testing.T) {
	lasso := NewLassoRegressor(1.0, 1000, 1e-4)
	_, err := lasso.Predict([]float64{1})
	assert.Error(t, err)

	assert.Error(t, lasso.Fit(mat.NewDense(2, 1, []float64{1, math.NaN()}), []float64{1, 2}))
	assert.Error(t, NewLassoRegressor(-1, 1000, 1e-4).Fit(mat.NewDense(2, 1, []float64{1, 2}), []float64{1, 2}))
}

func TestOutputCoefficients(t *testing.T) {
	lasso := NewLassoRegressor(1.0, 1000, 1e-4)
	assert.NoError(t, lasso.Fit(mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5}), []float64{3, 6, 9, 12, 15}))

	builder := &strings.Builder{}
	assert.NoError(t, OutputCoefficients(builder, lasso, []string{"x"}, 2))
	assert.Equal(t, "feature,coefficient\nx,2.50\n(intercept),1.50\n", builder.String())

	assert.Error(t, OutputCoefficients(builder, lasso, []string{"x", "y"}, 2))
}

func TestNewRegressor(t *testing.T) {
	tree, ok := NewRegressor(DecisionTree, nil).(*DecisionTreeRegressor)
	assert.True(t, ok)
	assert.Equal(t, int64(DefaultRandomState), tree.randomState)

	tree = NewRegressor(DecisionTree, &TreeContext{RandomState: 3}).(*DecisionTreeRegressor)
	assert.Equal(t, int64(3), tree.randomState)

	lasso, ok := NewRegressor(Lasso, &LassoContext{Alpha: 0.5, MaxIter: 10, Tol: 1e-3}).(*LassoRegressor)
	assert.True(t, ok)
	assert.Equal(t, 0.5, lasso.alpha)
	assert.Equal(t, 10, lasso.maxIter)

	// context类型不符时使用默认参数
	lasso = NewRegressor(Lasso, &TreeContext{}).(*LassoRegressor)
	assert.Equal(t, DefaultAlpha, lasso.alpha)
	assert.Equal(t, DefaultMaxIter, lasso.maxIter)

	assert.Nil(t, NewRegressor(AlgorithmType("unknown"), nil))
}

func TestModelLogFollowsOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	utils.SetLogOutput(buf, true)
	defer utils.SetLogOutput(os.Stderr, false)

	NewRegressor(Lasso, &TreeContext{})
	assert.Contains(t, buf.String(), `"component":"model"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
