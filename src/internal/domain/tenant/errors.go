package tenant

import "github.com/jackyeh168/dotly/src/internal/domain/shared"

// ===========================
// Tenant 錯誤定義
// ===========================

const (
	ErrCodeInvalidTenantID      shared.ErrorCode = "TENANT_ID_INVALID"
	ErrCodeInvalidDotsPerDollar shared.ErrorCode = "DOTS_PER_DOLLAR_INVALID"
	ErrCodeInvalidTenantName    shared.ErrorCode = "TENANT_NAME_INVALID"
	ErrCodeTenantNotFound       shared.ErrorCode = "TENANT_NOT_FOUND"
	ErrCodeTenantInactive       shared.ErrorCode = "TENANT_INACTIVE"
	ErrCodeBaseDotsOverflow     shared.ErrorCode = "BASE_DOTS_OVERFLOW"
)

var (
	ErrInvalidTenantID = &shared.DomainError{
		Code:     ErrCodeInvalidTenantID,
		Category: shared.CategoryInvalidInput,
		Message:  "無效的租戶 ID",
	}

	ErrInvalidDotsPerDollar = &shared.DomainError{
		Code:     ErrCodeInvalidDotsPerDollar,
		Category: shared.CategoryInvalidInput,
		Message:  "每元點數必須在 1-1000 之間",
	}

	ErrInvalidTenantName = &shared.DomainError{
		Code:     ErrCodeInvalidTenantName,
		Category: shared.CategoryInvalidInput,
		Message:  "租戶名稱不能為空",
	}

	ErrTenantNotFound = &shared.DomainError{
		Code:     ErrCodeTenantNotFound,
		Category: shared.CategoryNotFound,
		Message:  "租戶不存在",
	}

	ErrTenantInactive = &shared.DomainError{
		Code:     ErrCodeTenantInactive,
		Category: shared.CategoryInvalidInput,
		Message:  "租戶已停用",
	}

	ErrBaseDotsOverflow = &shared.DomainError{
		Code:     ErrCodeBaseDotsOverflow,
		Category: shared.CategoryInvalidInput,
		Message:  "消費金額換算的基礎點數超出上限",
	}
)
