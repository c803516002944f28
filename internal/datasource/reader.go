package datasource

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
)

func NewCsvFileSource(fileName string) Source {
	return &csvFileSource{fileName: fileName}
}

type csvFileSource struct {
	fileName string
}

func (c *csvFileSource) Load() (dataframe.DataFrame, error) {
	fin, err := os.Open(c.fileName)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.ErrDataUnavailable, fmt.Sprintf("打开数据文件%s出错：%v", c.fileName, err))
	}
	defer func() {
		_ = fin.Close()
	}()

	return ReadCsv(fin)
}

func NewCsvSource(reader io.Reader) Source {
	return &csvSource{reader: reader}
}

type csvSource struct {
	reader io.Reader
}

func (c *csvSource) Load() (dataframe.DataFrame, error) {
	return ReadCsv(c.reader)
}

// ReadCsv 读取带表头的CSV，所有列均作为字符串读取
func ReadCsv(reader io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(reader,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.ErrDataUnavailable, fmt.Sprintf("读取CSV数据出错：%v", df.Err))
	}
	return df, nil
}
