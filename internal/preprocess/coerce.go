package preprocess

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Coerce 将列转换为浮点数。去除千位分隔符后无法解析的值记为缺失（NaN），不视为错误。
func Coerce(columns []string) Preprocessor {
	return &coercePreprocessor{
		columns: columns,
		logger:  utils.NewLogger("coerce"),
	}
}

type coercePreprocessor struct {
	columns []string
	logger  zerolog.Logger
}

func (c *coercePreprocessor) Preprocess(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	names := df.Names()
	for _, col := range c.columns {
		if !utils.Contains(names, col) {
			c.logger.Warn().Str("column", col).Msg("数据中不存在此列，跳过转换")
			continue
		}

		s := df.Col(col)
		values := make([]float64, s.Len())
		if s.Type() == series.Float {
			copy(values, s.Float())
		} else {
			missing := 0
			for i, record := range s.Records() {
				f, ok := utils.ParseNumeric(record)
				if !ok {
					missing++
				}
				values[i] = f
			}
			if missing > 0 {
				c.logger.Debug().Str("column", col).Int("missing", missing).Msg("存在无法解析的值，已记为缺失")
			}
		}

		df = df.Mutate(series.New(values, series.Float, col))
		if df.Err != nil {
			return df, errors.Wrap(df.Err, fmt.Sprintf("转换%s列出错", col))
		}
	}
	return df, nil
}
