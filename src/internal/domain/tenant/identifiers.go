package tenant

import "github.com/jackyeh168/dotly/src/internal/domain/shared"

// TenantMarker 是 TenantID 的標記類型
type TenantMarker struct{}

// TenantID 租戶的唯一標識符（資料隔離邊界）
type TenantID = shared.EntityID[TenantMarker]

// TenantIDFromInt64 從整數解析租戶 ID，失敗返回 ErrInvalidTenantID
func TenantIDFromInt64(v int64) (TenantID, error) {
	return shared.EntityIDFromInt64[TenantMarker](v, ErrInvalidTenantID)
}
