package deal

import "github.com/jackyeh168/dotly/src/internal/domain/shared"

// DealTemplateMarker 是 DealTemplateID 的標記類型
type DealTemplateMarker struct{}

// DealTemplateID 優惠模板的唯一標識符
type DealTemplateID = shared.EntityID[DealTemplateMarker]

// DealTemplateIDFromInt64 從整數解析優惠模板 ID，失敗返回 ErrInvalidDealTemplateID
func DealTemplateIDFromInt64(v int64) (DealTemplateID, error) {
	return shared.EntityIDFromInt64[DealTemplateMarker](v, ErrInvalidDealTemplateID)
}

// DealAwardMarker 是 DealAwardID 的標記類型
type DealAwardMarker struct{}

// DealAwardID 優惠獎勵紀錄的唯一標識符
type DealAwardID = shared.EntityID[DealAwardMarker]
