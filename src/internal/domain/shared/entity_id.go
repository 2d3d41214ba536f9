package shared

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 泛型實體 ID 值對象（資料庫自增整數主鍵）
//
// 設計原則：
// 1. 類型安全：EntityID[CustomerMarker] 與 EntityID[DealTemplateMarker] 不能混用
// 2. 不可變性（unexported field）
// 3. 自我驗證：有效 ID 必須 > 0，零值代表「尚未持久化」
//
// 使用範例：
//
//	type CustomerMarker struct{}
//	type CustomerID = shared.EntityID[CustomerMarker]
//
//	id, err := shared.EntityIDFromInt64[CustomerMarker](42, ErrInvalidCustomerID)
type EntityID[T any] struct {
	value int64
}

// EntityIDFromInt64 從整數建立實體 ID
//
// 參數：
//
//	v - 資料庫主鍵（必須 > 0）
//	errTemplate - 驗證失敗時返回的錯誤（由各 bounded context 提供）
//
// errTemplate 若支援 WithContext（如 DomainError），會附加輸入值。
func EntityIDFromInt64[T any](v int64, errTemplate error) (EntityID[T], error) {
	if v <= 0 {
		if domainErr, ok := errTemplate.(interface {
			WithContext(keyValues ...interface{}) error
		}); ok {
			return EntityID[T]{}, domainErr.WithContext("input", v)
		}
		return EntityID[T]{}, errTemplate
	}
	return EntityID[T]{value: v}, nil
}

// MustEntityID 建立實體 ID，v <= 0 時 panic
//
// 僅用於 Repository 重建（資料庫主鍵必定有效）與測試
func MustEntityID[T any](v int64) EntityID[T] {
	if v <= 0 {
		panic("shared.MustEntityID: id must be positive")
	}
	return EntityID[T]{value: v}
}

// Int64 取得原始整數值
func (e EntityID[T]) Int64() int64 {
	return e.value
}

// Equals 比較兩個 EntityID 是否相等（只能比較相同類型）
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 判斷是否為零值（尚未分配主鍵）
func (e EntityID[T]) IsEmpty() bool {
	return e.value == 0
}
