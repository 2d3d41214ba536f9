package customer

import (
	"fmt"
	"math"
)

// Dots 點數值對象（系統的積分貨幣單位）
// 設計原則：值對象不可變、自我驗證、永遠 >= 0
type Dots struct {
	value int
}

// NewDots 建構函數（checked 版本）
func NewDots(value int) (Dots, error) {
	if value < 0 {
		return Dots{}, fmt.Errorf(
			"%w: attempted to create Dots with value %d",
			ErrNegativeDots,
			value,
		)
	}
	return Dots{value: value}, nil
}

// newDotsUnchecked 內部建構函數
// 前提條件：調用者必須保證 value >= 0
func newDotsUnchecked(value int) Dots {
	return Dots{value: value}
}

// Value 獲取點數
func (d Dots) Value() int {
	return d.value
}

// Add 相加（返回新的 Dots），溢位時返回 ErrDotsOverflow
func (d Dots) Add(other Dots) (Dots, error) {
	if other.value > math.MaxInt-d.value {
		return Dots{}, ErrDotsOverflow.WithContext(
			"current", d.value,
			"adding", other.value,
		)
	}
	return newDotsUnchecked(d.value + other.value), nil
}

// Equals 比較兩個 Dots 是否相等
func (d Dots) Equals(other Dots) bool {
	return d.value == other.value
}
