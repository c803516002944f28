package preprocess

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/labor-demand/internal/datasource"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
)

// Default 数字转换、计算PF%、截断异常值
func Default() Preprocessor {
	return Chain(
		Coerce(core.NumericColumns),
		PFPercentage(),
		ClipOutliers(core.OutlierColumns),
	)
}

// LoadAndClean 读取并清洗数据。数据源不可读时返回的error包装core.ErrDataUnavailable。
func LoadAndClean(source datasource.Source) (dataframe.DataFrame, error) {
	df, err := source.Load()
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	df, err = Default().Preprocess(df)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "清洗数据出错")
	}
	return df, nil
}
