package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LassoRegressor L1正则化线性回归，使用坐标下降求解
//
//	(1 / (2 * n)) * ||y - Xw - b||^2 + alpha * ||w||_1
//
// 截距b通过中心化X与y求得，不参与正则化。
type LassoRegressor struct {
	alpha   float64
	maxIter int
	tol     float64

	coef      []float64
	intercept float64
	numIter   int
	converged bool
}

func NewLassoRegressor(alpha float64, maxIter int, tol float64) *LassoRegressor {
	return &LassoRegressor{
		alpha:   alpha,
		maxIter: maxIter,
		tol:     tol,
	}
}

func (l *LassoRegressor) Fit(x mat.Matrix, y []float64) error {
	if err := checkTrainingData(x, y); err != nil {
		return err
	}
	if l.alpha < 0 {
		return fmt.Errorf("alpha不能为负数，现在为%f", l.alpha)
	}
	rows, cols := x.Dims()

	// 按列保存中心化后的数据
	xOffset := make([]float64, cols)
	columns := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		columns[j] = mat.Col(nil, j, x)
		xOffset[j] = stat.Mean(columns[j], nil)
		floats.AddConst(-xOffset[j], columns[j])
	}
	yOffset := stat.Mean(y, nil)
	yc := make([]float64, rows)
	copy(yc, y)
	floats.AddConst(-yOffset, yc)

	w, numIter, converged := coordinateDescent(columns, yc, l.alpha*float64(rows), l.maxIter, l.tol)
	if !converged {
		logger().Warn().Int("iterations", numIter).Msg("Lasso坐标下降未收敛")
	}

	l.coef = w
	l.intercept = yOffset - floats.Dot(xOffset, w)
	l.numIter = numIter
	l.converged = converged
	return nil
}

// coordinateDescent 最小化 0.5 * ||y - Xw||^2 + l1Reg * ||w||_1，使用对偶间隙判断收敛
func coordinateDescent(columns [][]float64, y []float64, l1Reg float64, maxIter int, tol float64) ([]float64, int, bool) {
	cols := len(columns)
	w := make([]float64, cols)
	residual := make([]float64, len(y))
	copy(residual, y)

	normCols := make([]float64, cols)
	for j, col := range columns {
		normCols[j] = floats.Dot(col, col)
	}

	dwTol := tol
	tol *= floats.Dot(y, y)

	iter := 0
	for ; iter < maxIter; iter++ {
		wMax := 0.0
		dwMax := 0.0
		for j := 0; j < cols; j++ {
			if normCols[j] == 0 {
				continue
			}
			old := w[j]
			if old != 0 {
				floats.AddScaled(residual, old, columns[j])
			}

			tmp := floats.Dot(columns[j], residual)
			w[j] = math.Copysign(math.Max(math.Abs(tmp)-l1Reg, 0), tmp) / normCols[j]

			if w[j] != 0 {
				floats.AddScaled(residual, -w[j], columns[j])
			}

			dwMax = math.Max(dwMax, math.Abs(w[j]-old))
			wMax = math.Max(wMax, math.Abs(w[j]))
		}

		if wMax == 0 || dwMax/wMax < dwTol || iter == maxIter-1 {
			if dualityGap(columns, y, residual, w, l1Reg) <= tol {
				return w, iter + 1, true
			}
		}
	}
	return w, iter, false
}

func dualityGap(columns [][]float64, y, residual, w []float64, l1Reg float64) float64 {
	dualNorm := 0.0
	for _, col := range columns {
		dualNorm = math.Max(dualNorm, math.Abs(floats.Dot(col, residual)))
	}
	rNorm2 := floats.Dot(residual, residual)

	var gap, constant float64
	if dualNorm > l1Reg {
		constant = l1Reg / dualNorm
		aNorm2 := rNorm2 * constant * constant
		gap = 0.5 * (rNorm2 + aNorm2)
	} else {
		constant = 1
		gap = rNorm2
	}
	gap += l1Reg*floats.Norm(w, 1) - constant*floats.Dot(residual, y)
	return gap
}

func (l *LassoRegressor) Predict(row []float64) (float64, error) {
	if l.coef == nil {
		return 0, fmt.Errorf("Lasso模型尚未训练")
	}
	if len(row) != len(l.coef) {
		return 0, fmt.Errorf("特征数量应为%d，现在为%d", len(l.coef), len(row))
	}
	return floats.Dot(row, l.coef) + l.intercept, nil
}

func (l *LassoRegressor) Coefficients() []float64 {
	result := make([]float64, len(l.coef))
	copy(result, l.coef)
	return result
}

func (l *LassoRegressor) Intercept() float64 {
	return l.intercept
}

// Converged 返回是否收敛以及迭代次数
func (l *LassoRegressor) Converged() (bool, int) {
	return l.converged, l.numIter
}
