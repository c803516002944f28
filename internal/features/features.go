package features

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

func logger() *zerolog.Logger {
	return utils.Logger("features")
}

// MissingColumnsError 数据中缺少所需的列
type MissingColumnsError struct {
	Kind    error
	Columns []string
}

func (m *MissingColumnsError) Error() string {
	return fmt.Sprintf("%v: 缺少列[%s]", m.Kind, strings.Join(m.Columns, ", "))
}

func (m *MissingColumnsError) Unwrap() error {
	return m.Kind
}

// CheckColumns 检查列是否都存在，不存在时返回以kind归类的MissingColumnsError
func CheckColumns(df dataframe.DataFrame, columns []string, kind error) error {
	names := df.Names()
	missing := make([]string, 0)
	for _, col := range columns {
		if !utils.Contains(names, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Kind: kind, Columns: missing}
	}
	return nil
}

// Matrix 取出columns与target组成的样本矩阵与目标向量。任意一列缺失的行被丢弃。
func Matrix(df dataframe.DataFrame, columns []string, target string) (*mat.Dense, []float64) {
	colData := make([][]float64, len(columns))
	for i, col := range columns {
		colData[i] = df.Col(col).Float()
	}
	targetData := df.Col(target).Float()

	data := make([]float64, 0, df.Nrow()*len(columns))
	y := make([]float64, 0, df.Nrow())
	dropped := 0
	for row := 0; row < df.Nrow(); row++ {
		valid := !math.IsNaN(targetData[row])
		for i := 0; i < len(columns) && valid; i++ {
			valid = !math.IsNaN(colData[i][row])
		}
		if !valid {
			dropped++
			continue
		}
		for i := range columns {
			data = append(data, colData[i][row])
		}
		y = append(y, targetData[row])
	}
	if dropped > 0 {
		logger().Debug().Str("target", target).Int("dropped", dropped).Msg("丢弃含缺失值的行")
	}
	if len(y) == 0 {
		return nil, y
	}
	return mat.NewDense(len(y), len(columns), data), y
}

// Select 取出主模型的特征矩阵X与目标y。缺少列时返回的error包装core.ErrFeaturesUnavailable。
func Select(df dataframe.DataFrame) (*mat.Dense, []float64, error) {
	if err := CheckColumns(df, append(append([]string{}, core.FeatureColumns...), core.TargetColumn), core.ErrFeaturesUnavailable); err != nil {
		return nil, nil, err
	}
	x, y := Matrix(df, core.FeatureColumns, core.TargetColumn)
	if x == nil {
		return nil, nil, errors.Wrap(core.ErrFeaturesUnavailable, "没有完整的样本")
	}
	return x, y, nil
}

// Percentiles 计算参考列的q分位数，忽略缺失值。不存在或全为缺失的列不出现在结果中。
func Percentiles(df dataframe.DataFrame, q float64) core.PercentileReference {
	names := df.Names()
	ref := core.PercentileReference{}
	for _, col := range core.PercentileColumns {
		if !utils.Contains(names, col) {
			logger().Warn().Str("column", col).Msg("数据中不存在此列，分位数将使用0")
			continue
		}
		v := utils.Quantile(df.Col(col).Float(), q)
		if math.IsNaN(v) {
			continue
		}
		ref[col] = v
	}
	return ref
}
