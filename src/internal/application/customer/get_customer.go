package customer

import (
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/pkg/errs"
)

// GetCustomerQuery 查詢客戶累計數據
type GetCustomerQuery struct {
	CustomerID int64
}

// CustomerSummary 客戶累計數據
type CustomerSummary struct {
	CustomerID           int64      `json:"customerId"`
	TenantID             int64      `json:"tenantId"`
	Name                 string     `json:"name"`
	TotalDots            int        `json:"totalDots"`
	TotalSpent           string     `json:"totalSpent"`
	TotalVisits          int        `json:"totalVisits"`
	ConsecutiveDayStreak int        `json:"consecutiveDayStreak"`
	LastVisitAt          *time.Time `json:"lastVisitAt,omitempty"`
	Version              int        `json:"version"`
}

// GetCustomerUseCase 查詢客戶 Use Case（只讀）
type GetCustomerUseCase struct {
	customerRepo customer.CustomerRepository
}

// NewGetCustomerUseCase 創建 Use Case 實例
func NewGetCustomerUseCase(repo customer.CustomerRepository) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: repo,
	}
}

// Execute 執行查詢
//
// 錯誤處理：
// - ErrInvalidCustomerID: ID 無效
// - ErrCustomerNotFound: 客戶不存在或已被刪除
func (uc *GetCustomerUseCase) Execute(query GetCustomerQuery) (*CustomerSummary, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢（獨立查詢時可傳入 nil）
func (uc *GetCustomerUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query GetCustomerQuery,
) (*CustomerSummary, error) {
	customerID, err := customer.CustomerIDFromInt64(query.CustomerID)
	if err != nil {
		return nil, err
	}

	c, err := uc.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find customer")
	}

	return &CustomerSummary{
		CustomerID:           c.CustomerID().Int64(),
		TenantID:             c.TenantID().Int64(),
		Name:                 c.Name(),
		TotalDots:            c.TotalDots().Value(),
		TotalSpent:           c.TotalSpent().String(),
		TotalVisits:          c.TotalVisits(),
		ConsecutiveDayStreak: c.ConsecutiveDayStreak(),
		LastVisitAt:          c.LastVisitAt(),
		Version:              c.Version(),
	}, nil
}
