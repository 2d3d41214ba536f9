package customer

import (
	"strings"
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/shopspring/decimal"
)

// ===========================
// Customer 聚合根
// ===========================

// Customer 客戶聚合根
//
// 聚合邊界：
// - 累計數據：totalDots / totalSpent / totalVisits（由交易處理更新）
// - 連續到店天數：consecutiveDayStreak + lastVisitAt（由交易處理維護）
// - 生命週期欄位：isActive / deletedAt / deletionReason（由 GDPR 流程擁有，本聚合只讀）
//
// 不變條件：
// - totalDots >= 0（由 Dots 值對象保證）
// - totalSpent >= 0
// - totalVisits >= 0
// - consecutiveDayStreak >= 0
//
// 並發：version 為樂觀鎖版本號，由 Repository.Update 比對。
type Customer struct {
	customerID CustomerID
	tenantID   tenant.TenantID
	name       string

	totalDots   Dots
	totalSpent  decimal.Decimal
	totalVisits int

	consecutiveDayStreak int
	lastVisitAt          *time.Time

	isActive       bool
	deletedAt      *time.Time
	deletionReason string

	createdAt time.Time
	updatedAt time.Time
	version   int

	events []shared.DomainEvent
}

// NewCustomer 創建新客戶（ID 由 Repository 在 Save 時分配）
func NewCustomer(tenantID tenant.TenantID, name string) (*Customer, error) {
	if tenantID.IsEmpty() {
		return nil, tenant.ErrInvalidTenantID.WithContext("reason", "tenantID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidCustomerName
	}

	now := time.Now()
	return &Customer{
		tenantID:   tenantID,
		name:       name,
		totalDots:  newDotsUnchecked(0),
		totalSpent: decimal.Zero,
		isActive:   true,
		createdAt:  now,
		updatedAt:  now,
		version:    1,
		events:     make([]shared.DomainEvent, 0),
	}, nil
}

// CustomerState 重建客戶所需的持久化狀態
type CustomerState struct {
	CustomerID           CustomerID
	TenantID             tenant.TenantID
	Name                 string
	TotalDots            int
	TotalSpent           decimal.Decimal
	TotalVisits          int
	ConsecutiveDayStreak int
	LastVisitAt          *time.Time
	IsActive             bool
	DeletedAt            *time.Time
	DeletionReason       string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Version              int
}

// ReconstructCustomer 從持久化存儲重建聚合根（僅供 Repository 使用）
//
// 即使是從資料庫重建，也必須驗證不變條件，防止損壞資料污染領域層
func ReconstructCustomer(s CustomerState) (*Customer, error) {
	if s.CustomerID.IsEmpty() {
		return nil, ErrInvalidCustomerID.WithContext("reason", "invalid customer ID in database")
	}
	if s.TenantID.IsEmpty() {
		return nil, tenant.ErrInvalidTenantID.WithContext("reason", "invalid tenant ID in database")
	}

	dots, err := NewDots(s.TotalDots)
	if err != nil {
		return nil, ErrCorruptedCustomer.WithContext(
			"customer_id", s.CustomerID.Int64(),
			"total_dots", s.TotalDots,
		)
	}
	if s.TotalSpent.IsNegative() || s.TotalVisits < 0 || s.ConsecutiveDayStreak < 0 {
		return nil, ErrCorruptedCustomer.WithContext(
			"customer_id", s.CustomerID.Int64(),
			"total_spent", s.TotalSpent.String(),
			"total_visits", s.TotalVisits,
			"streak", s.ConsecutiveDayStreak,
		)
	}

	return &Customer{
		customerID:           s.CustomerID,
		tenantID:             s.TenantID,
		name:                 s.Name,
		totalDots:            dots,
		totalSpent:           s.TotalSpent,
		totalVisits:          s.TotalVisits,
		consecutiveDayStreak: s.ConsecutiveDayStreak,
		lastVisitAt:          s.LastVisitAt,
		isActive:             s.IsActive,
		deletedAt:            s.DeletedAt,
		deletionReason:       s.DeletionReason,
		createdAt:            s.CreatedAt,
		updatedAt:            s.UpdatedAt,
		version:              s.Version,
		events:               make([]shared.DomainEvent, 0),
	}, nil
}

// ===========================
// 查詢方法
// ===========================

func (c *Customer) CustomerID() CustomerID {
	return c.customerID
}

func (c *Customer) TenantID() tenant.TenantID {
	return c.tenantID
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) TotalDots() Dots {
	return c.totalDots
}

func (c *Customer) TotalSpent() decimal.Decimal {
	return c.totalSpent
}

func (c *Customer) TotalVisits() int {
	return c.totalVisits
}

// ConsecutiveDayStreak 目前連續到店天數
func (c *Customer) ConsecutiveDayStreak() int {
	return c.consecutiveDayStreak
}

// LastVisitAt 最後一次消費時間（從未消費為 nil）
func (c *Customer) LastVisitAt() *time.Time {
	return c.lastVisitAt
}

func (c *Customer) IsActive() bool {
	return c.isActive
}

func (c *Customer) DeletedAt() *time.Time {
	return c.deletedAt
}

func (c *Customer) DeletionReason() string {
	return c.deletionReason
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// Version 載入時的樂觀鎖版本號
func (c *Customer) Version() int {
	return c.version
}

// AssignID 由 Repository 在新增後回填自增主鍵
func (c *Customer) AssignID(id CustomerID) {
	c.customerID = id
}

// ===========================
// 事件管理
// ===========================

func (c *Customer) addEvent(event shared.DomainEvent) {
	c.events = append(c.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
func (c *Customer) PullEvents() []shared.DomainEvent {
	events := c.events
	c.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// 命令方法
// ===========================

// RecordPurchase 記錄一次消費
//
// 參數：
//
//	amount - 消費金額（>= 0）
//	dotsAwarded - 本次獲得的總點數（基礎點數 + 優惠獎勵）
//	at - 消費時間
//
// 副作用：
// - totalVisits +1、totalSpent += amount、totalDots += dotsAwarded
// - 更新連續到店天數與 lastVisitAt
// - 發布 CustomerPurchaseRecordedEvent
//
// 注意：優惠評估必須在此方法之前進行（讀取的是消費前的 totalVisits）。
func (c *Customer) RecordPurchase(amount decimal.Decimal, dotsAwarded Dots, at time.Time) error {
	if amount.IsNegative() {
		return ErrInvalidPurchaseAmount.WithContext("amount", amount.String())
	}
	if !c.isActive || c.deletedAt != nil {
		return ErrCustomerInactive.WithContext("customer_id", c.customerID.Int64())
	}

	newTotal, err := c.totalDots.Add(dotsAwarded)
	if err != nil {
		return err
	}

	c.advanceStreak(at)
	c.totalDots = newTotal
	c.totalSpent = c.totalSpent.Add(amount)
	c.totalVisits++
	c.updatedAt = time.Now()

	c.addEvent(NewCustomerPurchaseRecordedEvent(
		c.customerID,
		amount,
		dotsAwarded,
		c.totalVisits,
		c.consecutiveDayStreak,
		at,
	))
	return nil
}

// advanceStreak 依日曆日更新連續到店天數
//
// - 首次消費：1
// - 同一天再次消費：不變
// - 前一次消費為昨天：+1
// - 中斷超過一天：重置為 1
// - 補登較早的消費（at 早於 lastVisitAt）：不變
func (c *Customer) advanceStreak(at time.Time) {
	if c.lastVisitAt == nil {
		c.consecutiveDayStreak = 1
		c.lastVisitAt = &at
		return
	}

	last := c.lastVisitAt.In(at.Location())
	switch {
	case at.Before(last) && !sameDay(last, at):
		return
	case sameDay(last, at):
		if c.consecutiveDayStreak == 0 {
			c.consecutiveDayStreak = 1
		}
	case sameDay(last.AddDate(0, 0, 1), at):
		c.consecutiveDayStreak++
	default:
		c.consecutiveDayStreak = 1
	}
	if at.After(last) {
		c.lastVisitAt = &at
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
