package predict

import (
	"fmt"
	"math"

	"github.com/packagewjx/labor-demand/internal/model"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// 主模型输出的绝对值上限，超出时视为预测失败
const MaxPrediction = math.MaxInt32

// Predictor 使用两个估计模型与主模型预测Outbound F&B Battery Jack
type Predictor struct {
	logger zerolog.Logger
}

func NewPredictor() *Predictor {
	return &Predictor{logger: utils.NewLogger("predictor")}
}

// Predict 任何失败都以不可用的结果返回，不会panic
func (p *Predictor) Predict(input core.LiveInput, set *model.Set, ref core.PercentileReference) (result core.Prediction) {
	if err := set.Validate(); err != nil {
		p.logger.Error().Err(err).Msg("模型不完整，无法预测")
		return core.Unavailable(err)
	}

	defer func() {
		if r := recover(); r != nil {
			err := errors.Wrap(core.ErrPredictionFailed, fmt.Sprintf("预测出现异常: %v", r))
			p.logger.Error().Err(err).Msg("预测失败")
			result = core.Unavailable(err)
		}
	}()

	value, err := p.predict(input, set, ref)
	if err != nil {
		p.logger.Error().Err(err).Msg("预测失败")
		return core.Unavailable(err)
	}
	return core.Predicted(value)
}

func (p *Predictor) predict(input core.LiveInput, set *model.Set, ref core.PercentileReference) (int, error) {
	orders := float64(input.FBOrders)
	vehicles := float64(input.FBExpectedArrival)

	estimationRow := []float64{orders, vehicles}
	totalCases, err := set.TotalCases.Predict(estimationRow)
	if err != nil {
		return 0, errors.Wrap(core.ErrPredictionFailed, fmt.Sprintf("估计Total Cases出错: %v", err))
	}
	pfCases, err := set.PFCases.Predict(estimationRow)
	if err != nil {
		return 0, errors.Wrap(core.ErrPredictionFailed, fmt.Sprintf("估计PF Cases出错: %v", err))
	}

	row := FeatureRow(vehicles, totalCases, pfCases, orders, ref)
	raw, err := set.Main.Predict(row)
	if err != nil {
		return 0, errors.Wrap(core.ErrPredictionFailed, fmt.Sprintf("主模型预测出错: %v", err))
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) || math.Abs(raw) > MaxPrediction {
		return 0, errors.Wrap(core.ErrPredictionFailed, fmt.Sprintf("主模型输出无效: %v", raw))
	}

	p.logger.Debug().
		Float64("totalCases", totalCases).
		Float64("pfCases", pfCases).
		Float64("raw", raw).
		Msg("预测完成")
	return int(math.Ceil(raw)), nil
}

// FeatureRow 按core.FeatureColumns的顺序组装主模型的输入，缺少的分位数使用0
func FeatureRow(vehicles, totalCases, pfCases, orders float64, ref core.PercentileReference) []float64 {
	return []float64{
		vehicles,
		totalCases,
		pfCases,
		ref.Get(core.ColTotalOutboundProd),
		ref.Get(core.ColTotalPFProd),
		ref.Get(core.ColPFLineItems),
		orders,
		ref.Get(core.ColPFItemsPerOBD),
	}
}
