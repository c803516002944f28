package model

import (
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// 回归算法接口
type Regressor interface {
	// x每行为一个样本，y与x行数相同
	Fit(x mat.Matrix, y []float64) error
	Predict(row []float64) (float64, error)
}

type AlgorithmType string

const (
	DecisionTree = AlgorithmType("decision-tree")
	Lasso        = AlgorithmType("lasso")
)

type TreeContext struct {
	RandomState int64
}

type LassoContext struct {
	Alpha   float64
	MaxIter int
	Tol     float64
}

const (
	DefaultRandomState = 42
	DefaultAlpha       = 1.0
	DefaultMaxIter     = 1000
	DefaultTol         = 1e-4
)

func logger() *zerolog.Logger {
	return utils.Logger("model")
}

// NewRegressor 创建指定类型的回归模型。context为nil或类型不符时使用默认参数。
func NewRegressor(algorithmType AlgorithmType, context interface{}) Regressor {
	switch algorithmType {
	case DecisionTree:
		ctx := &TreeContext{RandomState: DefaultRandomState}
		if context != nil {
			if c, ok := context.(*TreeContext); ok {
				ctx = c
			} else {
				logger().Warn().Msg("输入的context不是TreeContext类型。将使用默认参数")
			}
		}
		return NewDecisionTreeRegressor(ctx.RandomState)
	case Lasso:
		ctx := &LassoContext{Alpha: DefaultAlpha, MaxIter: DefaultMaxIter, Tol: DefaultTol}
		if context != nil {
			if c, ok := context.(*LassoContext); ok {
				ctx = c
			} else {
				logger().Warn().Msg("输入的context不是LassoContext类型。将使用默认参数")
			}
		}
		return NewLassoRegressor(ctx.Alpha, ctx.MaxIter, ctx.Tol)
	default:
		return nil
	}
}
