package preprocess

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const iqrFactor = 1.5

// Bounds IQR方法计算的取值范围
type Bounds struct {
	Q1    float64
	Q3    float64
	Lower float64
	Upper float64
}

func (b Bounds) IQR() float64 {
	return b.Q3 - b.Q1
}

// ComputeBounds 计算[Q1-1.5*IQR, Q3+1.5*IQR]，忽略缺失值。没有有效值时返回false。
func ComputeBounds(values []float64) (Bounds, bool) {
	q1 := utils.Quantile(values, 0.25)
	q3 := utils.Quantile(values, 0.75)
	if math.IsNaN(q1) || math.IsNaN(q3) {
		return Bounds{}, false
	}
	iqr := q3 - q1
	return Bounds{
		Q1:    q1,
		Q3:    q3,
		Lower: q1 - iqrFactor*iqr,
		Upper: q3 + iqrFactor*iqr,
	}, true
}

// ClipOutliers 将列中超出范围的值替换为较近的边界。范围由截断前整列数据计算。
func ClipOutliers(columns []string) Preprocessor {
	return &clipOutliers{
		columns: columns,
		logger:  utils.NewLogger("clip"),
	}
}

type clipOutliers struct {
	columns []string
	logger  zerolog.Logger
}

func (c *clipOutliers) Preprocess(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	names := df.Names()
	for _, col := range c.columns {
		if !utils.Contains(names, col) {
			c.logger.Warn().Str("column", col).Msg("数据中不存在此列，跳过异常值处理")
			continue
		}
		s := df.Col(col)
		if s.Type() != series.Float {
			return df, fmt.Errorf("%s列不是数字，需要先转换", col)
		}

		values := s.Float()
		bounds, ok := ComputeBounds(values)
		if !ok {
			c.logger.Warn().Str("column", col).Msg("此列没有有效值，跳过异常值处理")
			continue
		}

		clipped := make([]float64, len(values))
		changed := 0
		for i, f := range values {
			clipped[i] = utils.Clip(f, bounds.Lower, bounds.Upper)
			if clipped[i] != f && !math.IsNaN(f) {
				changed++
			}
		}
		c.logger.Debug().Str("column", col).
			Float64("lower", bounds.Lower).Float64("upper", bounds.Upper).
			Int("clipped", changed).Msg("异常值处理完成")

		df = df.Mutate(series.New(clipped, series.Float, col))
		if df.Err != nil {
			return df, errors.Wrap(df.Err, fmt.Sprintf("处理%s列异常值出错", col))
		}
	}
	return df, nil
}
