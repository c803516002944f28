package utils

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// WriteTable 以CSV格式输出表格，包含表头。数字列按precision输出，缺失值输出为空。
func WriteTable(out io.Writer, df dataframe.DataFrame, precision int) error {
	if df.Err != nil {
		return errors.Wrap(df.Err, "表格数据有误")
	}

	writer := csv.NewWriter(out)
	names := df.Names()
	err := writer.Write(names)
	if err != nil {
		return errors.Wrap(err, "写入表头出错")
	}

	columns := make([][]string, len(names))
	for i, name := range names {
		col := df.Col(name)
		if col.Type() == series.Float {
			floats := col.Float()
			columns[i] = make([]string, len(floats))
			for j, f := range floats {
				columns[i][j] = FormatNumeric(f, precision)
			}
		} else {
			columns[i] = col.Records()
		}
	}

	for row := 0; row < df.Nrow(); row++ {
		record := make([]string, len(names))
		for i := range names {
			record[i] = columns[i][row]
		}
		err = writer.Write(record)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("写入第%d条数据出错", row))
		}
	}

	writer.Flush()
	return writer.Error()
}
