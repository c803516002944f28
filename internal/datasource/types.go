package datasource

import "github.com/go-gota/gota/dataframe"

// Source 历史运营数据来源。所有单元格以字符串读取，由清洗步骤转换为数字。
type Source interface {
	// 读取全部数据。无法读取时返回的error包装core.ErrDataUnavailable
	Load() (dataframe.DataFrame, error)
}
