package customer

import "github.com/jackyeh168/dotly/src/internal/domain/shared"

// CustomerMarker 是 CustomerID 的標記類型
type CustomerMarker struct{}

// CustomerID 客戶的唯一標識符
type CustomerID = shared.EntityID[CustomerMarker]

// CustomerIDFromInt64 從整數解析客戶 ID，失敗返回 ErrInvalidCustomerID
func CustomerIDFromInt64(v int64) (CustomerID, error) {
	return shared.EntityIDFromInt64[CustomerMarker](v, ErrInvalidCustomerID)
}
