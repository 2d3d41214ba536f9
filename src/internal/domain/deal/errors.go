package deal

import "github.com/jackyeh168/dotly/src/internal/domain/shared"

// ===========================
// Deal 錯誤定義
// ===========================

const (
	ErrCodeInvalidDealTemplateID    shared.ErrorCode = "DEAL_TEMPLATE_ID_INVALID"
	ErrCodeInvalidDealTemplate      shared.ErrorCode = "DEAL_TEMPLATE_INVALID"
	ErrCodeDealTemplateNotFound     shared.ErrorCode = "DEAL_TEMPLATE_NOT_FOUND"
	ErrCodeUnsupportedTrigger       shared.ErrorCode = "DEAL_TRIGGER_UNSUPPORTED"
	ErrCodeUnsupportedBenefit       shared.ErrorCode = "DEAL_BENEFIT_UNSUPPORTED"
	ErrCodeTemplateTenantMismatch   shared.ErrorCode = "DEAL_TEMPLATE_TENANT_MISMATCH"
	ErrCodeInvalidTransactionAmount shared.ErrorCode = "TRANSACTION_AMOUNT_INVALID"
	ErrCodeInvalidBaseDots          shared.ErrorCode = "BASE_DOTS_INVALID"
	ErrCodeDuplicateAward           shared.ErrorCode = "DEAL_AWARD_DUPLICATE"
	ErrCodeBonusOverflow            shared.ErrorCode = "DEAL_BONUS_OVERFLOW"
)

var (
	ErrInvalidDealTemplateID = &shared.DomainError{
		Code:     ErrCodeInvalidDealTemplateID,
		Category: shared.CategoryInvalidInput,
		Message:  "無效的優惠模板 ID",
	}

	ErrInvalidDealTemplate = &shared.DomainError{
		Code:     ErrCodeInvalidDealTemplate,
		Category: shared.CategoryInvalidInput,
		Message:  "無效的優惠模板定義",
	}

	ErrDealTemplateNotFound = &shared.DomainError{
		Code:     ErrCodeDealTemplateNotFound,
		Category: shared.CategoryNotFound,
		Message:  "優惠模板不存在",
	}

	// ErrUnsupportedTrigger 目錄設定錯誤：未知的觸發類型（不可略過）
	ErrUnsupportedTrigger = &shared.DomainError{
		Code:     ErrCodeUnsupportedTrigger,
		Category: shared.CategoryConfiguration,
		Message:  "不支援的優惠觸發類型",
	}

	// ErrUnsupportedBenefit 目錄設定錯誤：未知的獎勵類型（不可略過）
	ErrUnsupportedBenefit = &shared.DomainError{
		Code:     ErrCodeUnsupportedBenefit,
		Category: shared.CategoryConfiguration,
		Message:  "不支援的優惠獎勵類型",
	}

	ErrTemplateTenantMismatch = &shared.DomainError{
		Code:     ErrCodeTemplateTenantMismatch,
		Category: shared.CategoryConfiguration,
		Message:  "優惠模板不屬於客戶的租戶",
	}

	ErrInvalidTransactionAmount = &shared.DomainError{
		Code:     ErrCodeInvalidTransactionAmount,
		Category: shared.CategoryInvalidInput,
		Message:  "交易金額不能為負數",
	}

	ErrInvalidBaseDots = &shared.DomainError{
		Code:     ErrCodeInvalidBaseDots,
		Category: shared.CategoryInvalidInput,
		Message:  "基礎點數不能為負數",
	}

	// ErrDuplicateAward 同一筆交易重複發放同一模板的獎勵
	ErrDuplicateAward = &shared.DomainError{
		Code:     ErrCodeDuplicateAward,
		Category: shared.CategoryConflict,
		Message:  "同一筆交易已發放過此優惠",
	}

	// ErrBonusOverflow 獎勵點數（單一或合計）超出可表示範圍，通常是模板數值設定錯誤
	ErrBonusOverflow = &shared.DomainError{
		Code:     ErrCodeBonusOverflow,
		Category: shared.CategoryConfiguration,
		Message:  "優惠獎勵點數超出上限",
	}
)
