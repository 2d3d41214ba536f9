package deal

import (
	"math"

	"github.com/shopspring/decimal"
)

// ===========================
// Benefit Calculators
// ===========================

// BenefitCalculator 將觸發的優惠換算為獎勵點數（純函數）
//
// 所有輸出都是向下取整後的非負整數；輸入可為小數。
// 結果超出 int 範圍時返回 ErrBonusOverflow，不可截斷。
type BenefitCalculator func(baseDotsEarned int, benefitValue decimal.Decimal) (int, error)

var maxDots = decimal.NewFromInt(math.MaxInt)

var defaultBenefitCalculators = map[BenefitType]BenefitCalculator{
	BenefitBonusDots:  calculateFixedBonus,
	BenefitMultiplier: calculateMultiplierBonus,
}

// calculateFixedBonus 固定獎勵 floor(benefitValue)，與基礎點數無關
func calculateFixedBonus(_ int, benefitValue decimal.Decimal) (int, error) {
	return floorToDots(benefitValue)
}

// calculateMultiplierBonus 倍數獎勵 floor(baseDots × benefitValue)
//
// 返回的是完整倍數值（例如 base 100、倍數 2 → 200），調用者將其加在基礎點數之上。
func calculateMultiplierBonus(baseDotsEarned int, benefitValue decimal.Decimal) (int, error) {
	return floorToDots(decimal.NewFromInt(int64(baseDotsEarned)).Mul(benefitValue))
}

// floorToDots 向下取整；負值歸零，超出 int 範圍返回 ErrBonusOverflow
func floorToDots(v decimal.Decimal) (int, error) {
	floored := v.Floor()
	if floored.IsNegative() {
		return 0, nil
	}
	if floored.GreaterThan(maxDots) {
		return 0, ErrBonusOverflow.WithContext("bonus_dots", floored.String())
	}
	return int(floored.IntPart()), nil
}

// CalculateBonusDots 依獎勵類型計算獎勵點數
//
// 範例：
//
//	CalculateBonusDots(100, BenefitMultiplier, decimal.NewFromInt(2)) // 200
//	CalculateBonusDots(100, BenefitBonusDots, decimal.NewFromInt(50)) // 50
//
// 未知類型返回 ErrUnsupportedBenefit；結果無法以 int 表示時返回 ErrBonusOverflow
func CalculateBonusDots(baseDotsEarned int, benefitType BenefitType, benefitValue decimal.Decimal) (int, error) {
	return calculateBonusWith(defaultBenefitCalculators, baseDotsEarned, benefitType, benefitValue)
}

func calculateBonusWith(
	calculators map[BenefitType]BenefitCalculator,
	baseDotsEarned int,
	benefitType BenefitType,
	benefitValue decimal.Decimal,
) (int, error) {
	calculate, ok := calculators[benefitType]
	if !ok {
		return 0, ErrUnsupportedBenefit.WithContext("benefit_type", string(benefitType))
	}
	return calculate(baseDotsEarned, benefitValue)
}
