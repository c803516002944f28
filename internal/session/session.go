package session

import (
	"github.com/packagewjx/labor-demand/internal/datasource"
	"github.com/packagewjx/labor-demand/internal/features"
	"github.com/packagewjx/labor-demand/internal/labor"
	"github.com/packagewjx/labor-demand/internal/model"
	"github.com/packagewjx/labor-demand/internal/predict"
	"github.com/packagewjx/labor-demand/internal/preprocess"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Config struct {
	// 为true时在测试集上评估主模型
	Evaluate bool
}

// Session 一次运行中加载的数据与训练好的模型。New之后只读，可被并发使用。
type Session struct {
	models     *model.Set
	reference  core.PercentileReference
	evaluation *model.Evaluation
	predictor  *predict.Predictor
	logger     zerolog.Logger
}

// New 加载并清洗数据，训练全部模型。只有数据不可用时返回错误，模型训练失败时对应的模型为空。
func New(source datasource.Source, config *Config) (*Session, error) {
	if config == nil {
		config = &Config{}
	}
	s := &Session{
		models:    &model.Set{},
		predictor: predict.NewPredictor(),
		logger:    utils.NewLogger("session"),
	}

	df, err := preprocess.LoadAndClean(source)
	if err != nil {
		return nil, errors.Wrap(err, "加载数据失败")
	}
	s.logger.Info().Int("rows", df.Nrow()).Msg("数据加载完成")

	s.reference = features.Percentiles(df, core.ReferencePercentile)

	totalCases, pfCases, err := model.TrainEstimationModels(df)
	if err != nil {
		s.logger.Error().Err(err).Msg("训练估计模型失败")
	} else {
		s.models.TotalCases = totalCases
		s.models.PFCases = pfCases
	}

	x, y, err := features.Select(df)
	if err != nil {
		s.logger.Error().Err(err).Msg("选择特征失败，主模型不可用")
		return s, nil
	}
	main, train, test, err := model.TrainMainModel(x, y)
	if err != nil {
		s.logger.Error().Err(err).Msg("训练主模型失败")
		return s, nil
	}
	s.models.Main = main

	if config.Evaluate {
		s.evaluation, err = model.Evaluate(main, train, test)
		if err != nil {
			s.logger.Warn().Err(err).Msg("评估主模型失败")
		} else {
			s.logger.Info().Str("evaluation", s.evaluation.String()).Msg("主模型评估完成")
		}
	}
	return s, nil
}

// LaborDemand 计算全部输出。规则部分不受预测结果影响。
func (s *Session) LaborDemand(input core.LiveInput) *core.LaborDemand {
	demand := labor.Calculate(input)
	demand.OutboundFBJacks = s.predictor.Predict(input, s.models, s.reference)
	return demand
}

func (s *Session) Models() *model.Set {
	return s.models
}

func (s *Session) Reference() core.PercentileReference {
	return s.reference
}

// Evaluation 未评估或评估失败时为nil
func (s *Session) Evaluation() *model.Evaluation {
	return s.evaluation
}
