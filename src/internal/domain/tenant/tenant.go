package tenant

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ===========================
// Tenant 聚合根
// ===========================

// Tenant 零售商家帳戶（多租戶資料隔離單位）
//
// 不變條件：
// - name 不為空
// - dotsPerDollar 在 1-1000 之間（由值對象保證）
//
// 所有客戶與優惠模板都屬於唯一一個租戶。
type Tenant struct {
	tenantID      TenantID
	name          string
	dotsPerDollar DotsPerDollar
	isActive      bool
	createdAt     time.Time
}

// NewTenant 創建新租戶（ID 由 Repository 在 Save 時分配）
func NewTenant(name string, dotsPerDollar DotsPerDollar) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidTenantName
	}
	return &Tenant{
		name:          name,
		dotsPerDollar: dotsPerDollar,
		isActive:      true,
		createdAt:     time.Now(),
	}, nil
}

// ReconstructTenant 從持久化存儲重建租戶（僅供 Repository 使用）
func ReconstructTenant(
	tenantID TenantID,
	name string,
	dotsPerDollar int,
	isActive bool,
	createdAt time.Time,
) (*Tenant, error) {
	if tenantID.IsEmpty() {
		return nil, ErrInvalidTenantID.WithContext("reason", "invalid tenant ID in database")
	}
	rate, err := NewDotsPerDollar(dotsPerDollar)
	if err != nil {
		return nil, err
	}
	return &Tenant{
		tenantID:      tenantID,
		name:          name,
		dotsPerDollar: rate,
		isActive:      isActive,
		createdAt:     createdAt,
	}, nil
}

// TenantID 獲取租戶 ID
func (t *Tenant) TenantID() TenantID {
	return t.tenantID
}

// Name 獲取租戶名稱
func (t *Tenant) Name() string {
	return t.name
}

// DotsPerDollar 獲取每元點數
func (t *Tenant) DotsPerDollar() DotsPerDollar {
	return t.dotsPerDollar
}

// IsActive 是否啟用
func (t *Tenant) IsActive() bool {
	return t.isActive
}

// CreatedAt 獲取創建時間
func (t *Tenant) CreatedAt() time.Time {
	return t.createdAt
}

// AssignID 由 Repository 在新增後回填自增主鍵
func (t *Tenant) AssignID(id TenantID) {
	t.tenantID = id
}

// EnsureActive 停用的租戶不能處理新交易
func (t *Tenant) EnsureActive() error {
	if !t.isActive {
		return ErrTenantInactive.WithContext("tenant_id", t.tenantID.Int64())
	}
	return nil
}

// BaseDotsFor 計算一筆消費的基礎點數
//
// 業務規則：
// - 基礎點數 = floor(金額 × 每元點數)
// - 向下取整，永不進位
// - 負數金額返回 0
// - 結果超出 int 範圍返回 ErrBaseDotsOverflow
func (t *Tenant) BaseDotsFor(amount decimal.Decimal) (int, error) {
	dots := amount.Mul(decimal.NewFromInt(int64(t.dotsPerDollar.Value()))).Floor()
	if dots.IsNegative() {
		return 0, nil
	}
	if dots.GreaterThan(decimal.NewFromInt(math.MaxInt)) {
		return 0, ErrBaseDotsOverflow.WithContext(
			"amount", amount.String(),
			"dots_per_dollar", t.dotsPerDollar.Value(),
		)
	}
	return int(dots.IntPart()), nil
}
