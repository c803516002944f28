package preprocess

import (
	"github.com/go-gota/gota/dataframe"
)

type Preprocessor interface {
	Preprocess(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

type defaultPreprocess struct {
	chain []Preprocessor
}

func (d *defaultPreprocess) Preprocess(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	var err error
	for _, processor := range d.chain {
		df, err = processor.Preprocess(df)
		if err != nil {
			return df, err
		}
	}
	return df, nil
}

func Chain(processors ...Preprocessor) Preprocessor {
	return &defaultPreprocess{chain: processors}
}
