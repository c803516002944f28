package model

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/labor-demand/internal/features"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	RandomState = 42
	TestSize    = 0.2
)

// Set 预测所需的三个模型
type Set struct {
	TotalCases Regressor
	PFCases    Regressor
	Main       Regressor
}

// Validate 返回第一个为空的模型
func (s *Set) Validate() error {
	if s == nil {
		return errors.Wrap(core.ErrPredictionFailed, "模型集合为空")
	}
	if s.TotalCases == nil {
		return errors.Wrap(core.ErrPredictionFailed, "缺少模型TotalCases")
	}
	if s.PFCases == nil {
		return errors.Wrap(core.ErrPredictionFailed, "缺少模型PFCases")
	}
	if s.Main == nil {
		return errors.Wrap(core.ErrPredictionFailed, "缺少模型Main")
	}
	return nil
}

// TrainEstimationModels 使用Orders与Vehicles in Plan训练Total Cases与PF Cases的估计模型
func TrainEstimationModels(df dataframe.DataFrame) (totalCases Regressor, pfCases Regressor, err error) {
	required := append(append([]string{}, core.EstimationColumns...), core.ColTotalCasesDispatched, core.ColPFCasesDispatched)
	if err = features.CheckColumns(df, required, core.ErrTrainingDataInvalid); err != nil {
		return nil, nil, err
	}

	totalCases, err = trainTree(df, core.ColTotalCasesDispatched)
	if err != nil {
		return nil, nil, err
	}
	pfCases, err = trainTree(df, core.ColPFCasesDispatched)
	if err != nil {
		return nil, nil, err
	}
	return totalCases, pfCases, nil
}

func trainTree(df dataframe.DataFrame, target string) (Regressor, error) {
	x, y := features.Matrix(df, core.EstimationColumns, target)
	if x == nil {
		return nil, errors.Wrapf(core.ErrTrainingDataInvalid, "没有可用于训练%s的样本", target)
	}
	tree := NewRegressor(DecisionTree, &TreeContext{RandomState: RandomState})
	if err := tree.Fit(x, y); err != nil {
		return nil, errors.Wrapf(core.ErrTrainingDataInvalid, "训练%s估计模型失败: %v", target, err)
	}
	logger().Info().Str("target", target).Int("samples", len(y)).Msg("估计模型训练完成")
	return tree, nil
}

// TrainMainModel 划分训练集与测试集，在训练集上训练Lasso。测试集只用于评估。
func TrainMainModel(x *mat.Dense, y []float64) (main Regressor, train, test Partition, err error) {
	train, test, err = TrainTestSplit(x, y, TestSize, RandomState)
	if err != nil {
		return nil, train, test, errors.Wrapf(core.ErrTrainingDataInvalid, "划分数据失败: %v", err)
	}
	main = NewRegressor(Lasso, &LassoContext{Alpha: DefaultAlpha, MaxIter: DefaultMaxIter, Tol: DefaultTol})
	if err = main.Fit(train.X, train.Y); err != nil {
		return nil, train, test, errors.Wrapf(core.ErrTrainingDataInvalid, "训练主模型失败: %v", err)
	}
	logger().Info().Int("train", train.Len()).Int("test", test.Len()).Msg("主模型训练完成")
	return main, train, test, nil
}
