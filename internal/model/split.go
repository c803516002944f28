package model

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Partition 训练集或测试集
type Partition struct {
	X *mat.Dense
	Y []float64
}

func (p Partition) Len() int {
	return len(p.Y)
}

// TrainTestSplit 按随机种子打乱后划分数据，测试集大小为ceil(testSize * n)
func TrainTestSplit(x *mat.Dense, y []float64, testSize float64, seed int64) (train, test Partition, err error) {
	if x == nil {
		return train, test, fmt.Errorf("数据为空")
	}
	rows, cols := x.Dims()
	if rows != len(y) {
		return train, test, fmt.Errorf("样本数%d与目标值数量%d不一致", rows, len(y))
	}
	if testSize <= 0 || testSize >= 1 {
		return train, test, fmt.Errorf("testSize应在(0, 1)之间，现在为%f", testSize)
	}

	nTest := int(math.Ceil(testSize * float64(rows)))
	nTrain := rows - nTest
	if nTrain <= 0 || nTest <= 0 {
		return train, test, fmt.Errorf("样本数%d过少，无法划分", rows)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(rows)
	test = takeRows(x, y, perm[:nTest], cols)
	train = takeRows(x, y, perm[nTest:], cols)
	return train, test, nil
}

func takeRows(x *mat.Dense, y []float64, indices []int, cols int) Partition {
	p := Partition{
		X: mat.NewDense(len(indices), cols, nil),
		Y: make([]float64, len(indices)),
	}
	for i, idx := range indices {
		p.X.SetRow(i, x.RawRowView(idx))
		p.Y[i] = y[idx]
	}
	return p
}
