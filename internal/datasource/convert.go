package datasource

import (
	"math"
	"reflect"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/packagewjx/labor-demand/pkg/core"
)

// RecordsFromFrame 将表格转换为记录。不存在的列与无法解析的值为NaN。
func RecordsFromFrame(df dataframe.DataFrame) []*core.OperationalRecord {
	names := df.Names()
	typ := reflect.TypeOf(core.OperationalRecord{})
	columns := make([][]string, core.NumRecordFields)
	for fi := 0; fi < core.NumRecordFields; fi++ {
		name := typ.Field(fi).Tag.Get(core.RecordColumnTag)
		if utils.Contains(names, name) {
			columns[fi] = df.Col(name).Records()
		}
	}

	result := make([]*core.OperationalRecord, df.Nrow())
	for row := 0; row < df.Nrow(); row++ {
		record := &core.OperationalRecord{}
		val := reflect.ValueOf(record).Elem()
		for fi := 0; fi < core.NumRecordFields; fi++ {
			f := math.NaN()
			if columns[fi] != nil {
				f, _ = utils.ParseNumeric(columns[fi][row])
			}
			val.Field(fi).SetFloat(f)
		}
		result[row] = record
	}
	return result
}

// FrameFromRecords 将记录转换为字符串列的表格，列名与数据文件一致，缺失值为空字符串
func FrameFromRecords(records []*core.OperationalRecord) dataframe.DataFrame {
	typ := reflect.TypeOf(core.OperationalRecord{})
	columns := make([]series.Series, core.NumRecordFields)
	for fi := 0; fi < core.NumRecordFields; fi++ {
		values := make([]string, len(records))
		for i, record := range records {
			values[i] = utils.FormatNumeric(reflect.ValueOf(record).Elem().Field(fi).Float(), -1)
		}
		columns[fi] = series.New(values, series.String, typ.Field(fi).Tag.Get(core.RecordColumnTag))
	}
	return dataframe.New(columns...)
}
