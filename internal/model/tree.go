package model

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	// 小于此差值的两个特征值视为相同，不在其间分裂
	featureThreshold = 1e-7
	// 不纯度不大于此值的节点为叶子
	impurityEpsilon = 2.220446049250313e-16
)

// DecisionTreeRegressor CART回归树。均方误差准则，不限制深度，每次选择最优分裂，
// 特征按随机种子生成的排列依次尝试，相同增益时取先尝试的特征。
type DecisionTreeRegressor struct {
	randomState int64
	numFeatures int
	root        *treeNode
}

type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

func NewDecisionTreeRegressor(randomState int64) *DecisionTreeRegressor {
	return &DecisionTreeRegressor{randomState: randomState}
}

type treeBuilder struct {
	x   [][]float64
	y   []float64
	rng *rand.Rand
}

func (d *DecisionTreeRegressor) Fit(x mat.Matrix, y []float64) error {
	rows, cols := x.Dims()
	if err := checkTrainingData(x, y); err != nil {
		return err
	}

	builder := &treeBuilder{
		x:   make([][]float64, rows),
		y:   y,
		rng: rand.New(rand.NewSource(d.randomState)),
	}
	for i := 0; i < rows; i++ {
		builder.x[i] = mat.Row(nil, i, x)
	}

	samples := make([]int, rows)
	for i := range samples {
		samples[i] = i
	}
	d.numFeatures = cols
	d.root = builder.build(samples, cols)
	return nil
}

func (b *treeBuilder) build(samples []int, numFeatures int) *treeNode {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = b.y[s]
	}
	mean, impurity := stat.PopMeanVariance(values, nil)
	node := &treeNode{leaf: true, value: mean}
	if len(samples) < 2 || impurity <= impurityEpsilon {
		return node
	}

	feature, threshold, ok := b.bestSplit(samples, numFeatures)
	if !ok {
		return node
	}

	left := make([]int, 0, len(samples))
	right := make([]int, 0, len(samples))
	for _, s := range samples {
		if b.x[s][feature] <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	node.leaf = false
	node.feature = feature
	node.threshold = threshold
	node.left = b.build(left, numFeatures)
	node.right = b.build(right, numFeatures)
	return node
}

// bestSplit 最大化 sumL²/nL + sumR²/nR，等价于最小化子节点的加权均方误差
func (b *treeBuilder) bestSplit(samples []int, numFeatures int) (feature int, threshold float64, ok bool) {
	n := len(samples)
	sorted := make([]int, n)
	totalSum := 0.0
	for _, s := range samples {
		totalSum += b.y[s]
	}

	bestProxy := math.Inf(-1)
	for _, f := range b.rng.Perm(numFeatures) {
		copy(sorted, samples)
		sort.Slice(sorted, func(i, j int) bool {
			return b.x[sorted[i]][f] < b.x[sorted[j]][f]
		})
		if b.x[sorted[n-1]][f] <= b.x[sorted[0]][f]+featureThreshold {
			continue
		}

		leftSum := 0.0
		for i := 0; i < n-1; i++ {
			leftSum += b.y[sorted[i]]
			cur := b.x[sorted[i]][f]
			next := b.x[sorted[i+1]][f]
			if next <= cur+featureThreshold {
				continue
			}
			nLeft := float64(i + 1)
			nRight := float64(n - i - 1)
			rightSum := totalSum - leftSum
			proxy := leftSum*leftSum/nLeft + rightSum*rightSum/nRight
			if proxy > bestProxy {
				bestProxy = proxy
				feature = f
				threshold = cur/2 + next/2
				if threshold == next || math.IsInf(threshold, 0) {
					threshold = cur
				}
				ok = true
			}
		}
	}
	return
}

func (d *DecisionTreeRegressor) Predict(row []float64) (float64, error) {
	if d.root == nil {
		return 0, fmt.Errorf("决策树尚未训练")
	}
	if len(row) != d.numFeatures {
		return 0, fmt.Errorf("特征数量应为%d，现在为%d", d.numFeatures, len(row))
	}
	node := d.root
	for !node.leaf {
		if row[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value, nil
}

// Depth 树的深度，只有根节点时为0
func (d *DecisionTreeRegressor) Depth() int {
	return depth(d.root)
}

func depth(node *treeNode) int {
	if node == nil || node.leaf {
		return 0
	}
	l := depth(node.left)
	r := depth(node.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func checkTrainingData(x mat.Matrix, y []float64) error {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("训练数据为空")
	}
	if rows != len(y) {
		return fmt.Errorf("样本数量%d与目标数量%d不一致", rows, len(y))
	}
	for i := 0; i < rows; i++ {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return errors.New(fmt.Sprintf("第%d个目标值无效", i))
		}
		for j := 0; j < cols; j++ {
			if v := x.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.New(fmt.Sprintf("第%d行第%d列数据无效", i, j))
			}
		}
	}
	return nil
}
