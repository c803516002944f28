package utils

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ThousandsSeparator 数字中的千位分隔符
const ThousandsSeparator = ","

// ParseNumeric 去除千位分隔符后解析为浮点数。无法解析时返回NaN与false。
func ParseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ThousandsSeparator, ""))
	if s == "" {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return math.NaN(), false
	}
	return f, true
}

// DropNaN 返回不含NaN的副本
func DropNaN(arr []float64) []float64 {
	result := make([]float64, 0, len(arr))
	for _, f := range arr {
		if !math.IsNaN(f) {
			result = append(result, f)
		}
	}
	return result
}

// Quantile 计算q分位数，忽略NaN。在相邻两个顺序统计量之间线性插值，位置为(n-1)*q。
// 没有有效值时返回NaN。
func Quantile(arr []float64, q float64) float64 {
	sorted := DropNaN(arr)
	if len(sorted) == 0 || q < 0 || q > 1 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	pos := float64(len(sorted)-1) * q
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Clip 将f限制在[lower, upper]内，NaN保持不变
func Clip(f, lower, upper float64) float64 {
	if math.IsNaN(f) {
		return f
	}
	if f < lower {
		return lower
	}
	if f > upper {
		return upper
	}
	return f
}

// FormatNumeric 按精度输出数字，NaN输出为空字符串
func FormatNumeric(f float64, precision int) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}

func Contains(arr []string, s string) bool {
	for _, item := range arr {
		if item == s {
			return true
		}
	}
	return false
}
