package customer

import "github.com/jackyeh168/dotly/src/internal/domain/shared"

// ===========================
// Customer 錯誤定義
// ===========================

const (
	ErrCodeInvalidCustomerID      shared.ErrorCode = "CUSTOMER_ID_INVALID"
	ErrCodeInvalidCustomerName    shared.ErrorCode = "CUSTOMER_NAME_INVALID"
	ErrCodeCustomerNotFound       shared.ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodeNegativeDots           shared.ErrorCode = "DOTS_NEGATIVE"
	ErrCodeDotsOverflow           shared.ErrorCode = "DOTS_OVERFLOW"
	ErrCodeInvalidPurchaseAmount  shared.ErrorCode = "PURCHASE_AMOUNT_INVALID"
	ErrCodeCorruptedCustomer      shared.ErrorCode = "CUSTOMER_CORRUPTED"
	ErrCodeCustomerInactive       shared.ErrorCode = "CUSTOMER_INACTIVE"
	ErrCodeConcurrentModification shared.ErrorCode = "CUSTOMER_CONCURRENT_MODIFICATION"
)

var (
	ErrInvalidCustomerID = &shared.DomainError{
		Code:     ErrCodeInvalidCustomerID,
		Category: shared.CategoryInvalidInput,
		Message:  "無效的客戶 ID",
	}

	ErrInvalidCustomerName = &shared.DomainError{
		Code:     ErrCodeInvalidCustomerName,
		Category: shared.CategoryInvalidInput,
		Message:  "客戶名稱不能為空",
	}

	// ErrCustomerNotFound 客戶不存在（評估致命錯誤，不返回部分結果）
	ErrCustomerNotFound = &shared.DomainError{
		Code:     ErrCodeCustomerNotFound,
		Category: shared.CategoryNotFound,
		Message:  "客戶不存在",
	}

	ErrNegativeDots = &shared.DomainError{
		Code:     ErrCodeNegativeDots,
		Category: shared.CategoryInvalidInput,
		Message:  "點數不能為負數",
	}

	ErrDotsOverflow = &shared.DomainError{
		Code:     ErrCodeDotsOverflow,
		Category: shared.CategoryInvalidInput,
		Message:  "點數超出上限",
	}

	ErrInvalidPurchaseAmount = &shared.DomainError{
		Code:     ErrCodeInvalidPurchaseAmount,
		Category: shared.CategoryInvalidInput,
		Message:  "消費金額不能為負數",
	}

	ErrCorruptedCustomer = &shared.DomainError{
		Code:     ErrCodeCorruptedCustomer,
		Category: shared.CategoryInternal,
		Message:  "客戶資料損壞",
	}

	ErrCustomerInactive = &shared.DomainError{
		Code:     ErrCodeCustomerInactive,
		Category: shared.CategoryInvalidInput,
		Message:  "客戶已停用",
	}

	// ErrConcurrentModification 樂觀鎖版本衝突（調用者可重試整個交易）
	ErrConcurrentModification = &shared.DomainError{
		Code:     ErrCodeConcurrentModification,
		Category: shared.CategoryConflict,
		Message:  "客戶資料已被其他交易修改",
	}
)
