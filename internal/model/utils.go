package model

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// OutputCoefficients 以CSV输出Lasso的每个特征及其系数，最后一行为截距
func OutputCoefficients(output io.Writer, lasso *LassoRegressor, names []string, precision int) error {
	coef := lasso.Coefficients()
	if len(coef) != len(names) {
		return fmt.Errorf("特征名数量%d与系数数量%d不一致", len(names), len(coef))
	}

	writer := csv.NewWriter(output)
	if err := writer.Write([]string{"feature", "coefficient"}); err != nil {
		return errors.Wrap(err, "写入数据错误")
	}
	for i, name := range names {
		err := writer.Write([]string{name, strconv.FormatFloat(coef[i], 'f', precision, 64)})
		if err != nil {
			return errors.Wrap(err, "写入数据错误")
		}
	}
	if err := writer.Write([]string{"(intercept)", strconv.FormatFloat(lasso.Intercept(), 'f', precision, 64)}); err != nil {
		return errors.Wrap(err, "写入数据错误")
	}

	writer.Flush()
	return writer.Error()
}
