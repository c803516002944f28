package model

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Evaluation 主模型在测试集上的表现
type Evaluation struct {
	TrainSize int
	TestSize  int
	RSquared  float64
	MAE       float64
	// 相同训练集上普通最小二乘的测试集R²，用于对比
	BaselineRSquared float64
}

func (e *Evaluation) String() string {
	return fmt.Sprintf("train=%d test=%d R²=%.4f MAE=%.4f baselineR²=%.4f",
		e.TrainSize, e.TestSize, e.RSquared, e.MAE, e.BaselineRSquared)
}

// Evaluate 计算主模型在测试集上的R²与MAE，以及普通最小二乘基线
func Evaluate(main Regressor, train, test Partition) (*Evaluation, error) {
	if main == nil {
		return nil, fmt.Errorf("模型为空")
	}
	if test.Len() == 0 || train.Len() == 0 {
		return nil, fmt.Errorf("训练集或测试集为空")
	}

	predictions := make([]float64, test.Len())
	absErr := 0.0
	for i := range predictions {
		p, err := main.Predict(test.X.RawRowView(i))
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("预测第%d个测试样本出错", i))
		}
		predictions[i] = p
		absErr += math.Abs(p - test.Y[i])
	}

	result := &Evaluation{
		TrainSize: train.Len(),
		TestSize:  test.Len(),
		RSquared:  stat.RSquaredFrom(predictions, test.Y, nil),
		MAE:       absErr / float64(test.Len()),
	}

	baseline, err := baselineScore(train, test)
	if err != nil {
		logger().Warn().Err(err).Msg("计算基线R²失败")
		result.BaselineRSquared = math.NaN()
	} else {
		result.BaselineRSquared = baseline
	}
	return result, nil
}

// baselineScore 在训练集上拟合带截距的普通最小二乘，返回其测试集R²
func baselineScore(train, test Partition) (float64, error) {
	_, cols := train.X.Dims()
	if train.Len() <= cols {
		return 0, fmt.Errorf("训练样本数%d不足以拟合%d个特征", train.Len(), cols)
	}

	design := withIntercept(train.X)
	coef := mat.NewVecDense(cols+1, nil)
	if err := coef.SolveVec(design, mat.NewVecDense(train.Len(), train.Y)); err != nil {
		return 0, errors.Wrap(err, "训练基线模型失败")
	}

	predictions := mat.NewVecDense(test.Len(), nil)
	predictions.MulVec(withIntercept(test.X), coef)
	return stat.RSquaredFrom(predictions.RawVector().Data, test.Y, nil), nil
}

// withIntercept 在第一列前加一列1
func withIntercept(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	result := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		result.Set(i, 0, 1)
		for j := 0; j < cols; j++ {
			result.Set(i, j+1, x.At(i, j))
		}
	}
	return result
}
