package shared

import (
	"errors"
	"fmt"
)

// ===========================
// 錯誤代碼與分類
// ===========================

// ErrorCode 錯誤代碼類型（各 bounded context 自行定義常量）
type ErrorCode string

// ErrorCategory 錯誤分類，供宿主服務映射回應（如 HTTP 4xx / 5xx、CLI exit code）
type ErrorCategory string

const (
	CategoryInvalidInput  ErrorCategory = "INVALID_INPUT"
	CategoryNotFound      ErrorCategory = "NOT_FOUND"
	CategoryConflict      ErrorCategory = "CONFLICT"
	CategoryConfiguration ErrorCategory = "CONFIGURATION"
	CategoryInternal      ErrorCategory = "INTERNAL"
)

// ===========================
// DomainError 結構
// ===========================

// DomainError 領域錯誤
//
// 設計原則：
// 1. 結構化錯誤代碼（errors.Is 依 Code 比較）
// 2. 上下文信息（用於調試和日誌）
// 3. 不可變性（WithContext 返回新實例）
type DomainError struct {
	Code     ErrorCode
	Category ErrorCategory
	Message  string
	Context  map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:     e.Code,
		Category: e.Category,
		Message:  e.Message,
		Context:  ctx,
	}
}

// Is 實現 errors.Is 接口（依錯誤代碼判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CategoryOf 取得錯誤鏈中第一個 DomainError 的分類
//
// 非領域錯誤（資料庫 I/O 等）一律歸類為 CategoryInternal
func CategoryOf(err error) ErrorCategory {
	var domainErr *DomainError
	if errors.As(err, &domainErr) && domainErr.Category != "" {
		return domainErr.Category
	}
	return CategoryInternal
}

// ===========================
// 共用錯誤
// ===========================

const ErrCodeRepository ErrorCode = "REPOSITORY_ERROR"

// ErrRepository 儲存層 I/O 失敗（連線、SQL 錯誤等），不可由領域層修復
var ErrRepository = &DomainError{
	Code:     ErrCodeRepository,
	Category: CategoryInternal,
	Message:  "資料存取失敗",
}
