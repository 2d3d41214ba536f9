package tenant

import "fmt"

// 每元點數的業務上限
const (
	MinDotsPerDollar = 1
	MaxDotsPerDollar = 1000
)

// DotsPerDollar 消費金額轉換為點數的比率值對象
//
// 業務規則：每消費 1 元可獲得的點數，範圍 1-1000
type DotsPerDollar struct {
	value int
}

// NewDotsPerDollar 建構函數（checked 版本）
func NewDotsPerDollar(value int) (DotsPerDollar, error) {
	if value < MinDotsPerDollar || value > MaxDotsPerDollar {
		return DotsPerDollar{}, fmt.Errorf(
			"%w: got %d",
			ErrInvalidDotsPerDollar,
			value,
		)
	}
	return DotsPerDollar{value: value}, nil
}

// Value 取得比率
func (d DotsPerDollar) Value() int {
	return d.value
}
