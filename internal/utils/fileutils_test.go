package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
)

func TestWriteTable(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"a", "b"}, series.String, "Name"),
		series.New([]float64{1.5, math.NaN()}, series.Float, "Orders"),
	)
	builder := &strings.Builder{}
	err := WriteTable(builder, df, 2)
	assert.NoError(t, err)
	assert.Equal(t, "Name,Orders\na,1.50\nb,\n", builder.String())

	/*
		有错误的表格
	*/
	broken := df.Select([]string{"NotExist"})
	err = WriteTable(builder, broken, 2)
	assert.Error(t, err)
}

func TestReadCounter(t *testing.T) {
	counter := &ReadCounter{Reader: strings.NewReader("hello world")}
	buf := make([]byte, 4)
	_, _ = counter.Read(buf)
	_, _ = counter.Read(buf)
	assert.Equal(t, int64(8), counter.Count)
}
