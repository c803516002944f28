package preprocess

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
)

// PFPercentage 添加PF%列：PF Cases Dispatched / Total Cases Dispatched * 100。
// 除零、无穷与缺失的结果均为0。
func PFPercentage() Preprocessor {
	return &pfPercentage{}
}

type pfPercentage struct {
}

func (p *pfPercentage) Preprocess(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	values := make([]float64, df.Nrow())
	names := df.Names()
	if utils.Contains(names, core.ColPFCasesDispatched) && utils.Contains(names, core.ColTotalCasesDispatched) {
		pf := df.Col(core.ColPFCasesDispatched).Float()
		total := df.Col(core.ColTotalCasesDispatched).Float()
		for i := range values {
			v := pf[i] / total[i] * 100
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			values[i] = v
		}
	}

	df = df.Mutate(series.New(values, series.Float, core.ColPFPercentage))
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "计算PF%出错")
	}
	return df, nil
}
