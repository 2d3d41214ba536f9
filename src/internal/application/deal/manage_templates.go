package deal

import (
	"context"

	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/jackyeh168/dotly/src/internal/pkg/errs"
	"go.uber.org/zap"
)

// ===========================
// 優惠模板管理 Use Cases
// ===========================
//
// 管理員維護模板；評估引擎對模板只讀。
// 所有寫入都在單一事務中完成。

// CreateDealTemplateCommand 創建模板指令
type CreateDealTemplateCommand struct {
	TenantID   int64
	Definition DealDefinitionInput
}

// CreateDealTemplateUseCase 創建優惠模板
type CreateDealTemplateUseCase struct {
	tenantRepo   tenant.TenantRepository
	templateRepo deal.DealTemplateRepository
	txManager    shared.TransactionManager
	logger       *zap.Logger
}

// NewCreateDealTemplateUseCase 創建 Use Case 實例
func NewCreateDealTemplateUseCase(
	tenantRepo tenant.TenantRepository,
	templateRepo deal.DealTemplateRepository,
	txManager shared.TransactionManager,
	logger *zap.Logger,
) *CreateDealTemplateUseCase {
	return &CreateDealTemplateUseCase{
		tenantRepo:   tenantRepo,
		templateRepo: templateRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute 創建模板並返回新模板
//
// 錯誤：ErrInvalidTenantID、ErrTenantNotFound、ErrInvalidDealTemplate、
// ErrUnsupportedTrigger / ErrUnsupportedBenefit（管理員輸入了未知類型）
func (uc *CreateDealTemplateUseCase) Execute(ctx context.Context, cmd CreateDealTemplateCommand) (*DealTemplateDTO, error) {
	tenantID, err := tenant.TenantIDFromInt64(cmd.TenantID)
	if err != nil {
		return nil, err
	}
	tmpl, err := deal.NewDealTemplate(tenantID, cmd.Definition.toDomain())
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(ctx, func(txCtx shared.TransactionContext) error {
		if _, err := uc.tenantRepo.FindByID(txCtx, tenantID); err != nil {
			return errs.Wrap(err, "failed to find tenant")
		}
		if err := uc.templateRepo.Save(txCtx, tmpl); err != nil {
			return errs.Wrap(err, "failed to save deal template")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("deal template created",
		zap.Int64("deal_template_id", tmpl.TemplateID().Int64()),
		zap.Int64("tenant_id", cmd.TenantID),
		zap.String("trigger_type", string(tmpl.TriggerType())),
		zap.String("benefit_type", string(tmpl.BenefitType())),
	)
	dto := toDTO(tmpl)
	return &dto, nil
}

// UpdateDealTemplateCommand 修改模板指令
//
// IsActive 為 nil 時不變更啟用狀態
type UpdateDealTemplateCommand struct {
	DealTemplateID int64
	Definition     DealDefinitionInput
	IsActive       *bool
}

// UpdateDealTemplateUseCase 修改優惠模板
type UpdateDealTemplateUseCase struct {
	templateRepo deal.DealTemplateRepository
	txManager    shared.TransactionManager
	logger       *zap.Logger
}

// NewUpdateDealTemplateUseCase 創建 Use Case 實例
func NewUpdateDealTemplateUseCase(
	templateRepo deal.DealTemplateRepository,
	txManager shared.TransactionManager,
	logger *zap.Logger,
) *UpdateDealTemplateUseCase {
	return &UpdateDealTemplateUseCase{
		templateRepo: templateRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute 修改模板內容（與創建相同的驗證規則）
func (uc *UpdateDealTemplateUseCase) Execute(ctx context.Context, cmd UpdateDealTemplateCommand) (*DealTemplateDTO, error) {
	templateID, err := deal.DealTemplateIDFromInt64(cmd.DealTemplateID)
	if err != nil {
		return nil, err
	}

	var tmpl *deal.DealTemplate
	err = uc.txManager.InTransaction(ctx, func(txCtx shared.TransactionContext) error {
		tmpl, err = uc.templateRepo.FindByID(txCtx, templateID)
		if err != nil {
			return errs.Wrap(err, "failed to find deal template")
		}
		if err := tmpl.Revise(cmd.Definition.toDomain()); err != nil {
			return err
		}
		if cmd.IsActive != nil {
			if *cmd.IsActive {
				tmpl.Activate()
			} else {
				tmpl.Deactivate()
			}
		}
		if err := uc.templateRepo.Update(txCtx, tmpl); err != nil {
			return errs.Wrap(err, "failed to update deal template")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("deal template updated",
		zap.Int64("deal_template_id", cmd.DealTemplateID),
		zap.Bool("is_active", tmpl.IsActive()),
	)
	dto := toDTO(tmpl)
	return &dto, nil
}

// DeleteDealTemplateUseCase 軟刪除優惠模板（isActive = false）
//
// 冪等：已停用的模板再刪除一次仍視為成功。
type DeleteDealTemplateUseCase struct {
	templateRepo deal.DealTemplateRepository
	txManager    shared.TransactionManager
	logger       *zap.Logger
}

// NewDeleteDealTemplateUseCase 創建 Use Case 實例
func NewDeleteDealTemplateUseCase(
	templateRepo deal.DealTemplateRepository,
	txManager shared.TransactionManager,
	logger *zap.Logger,
) *DeleteDealTemplateUseCase {
	return &DeleteDealTemplateUseCase{
		templateRepo: templateRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute 停用模板；模板不存在返回 ErrDealTemplateNotFound
func (uc *DeleteDealTemplateUseCase) Execute(ctx context.Context, dealTemplateID int64) error {
	templateID, err := deal.DealTemplateIDFromInt64(dealTemplateID)
	if err != nil {
		return err
	}

	err = uc.txManager.InTransaction(ctx, func(txCtx shared.TransactionContext) error {
		tmpl, err := uc.templateRepo.FindByID(txCtx, templateID)
		if err != nil {
			return errs.Wrap(err, "failed to find deal template")
		}
		if !tmpl.IsActive() {
			return nil
		}
		tmpl.Deactivate()
		if err := uc.templateRepo.Update(txCtx, tmpl); err != nil {
			return errs.Wrap(err, "failed to deactivate deal template")
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("deal template deactivated", zap.Int64("deal_template_id", dealTemplateID))
	return nil
}

// ListActiveDealsUseCase 列出租戶啟用中的優惠模板（依 id 升冪）
type ListActiveDealsUseCase struct {
	templateRepo deal.DealTemplateRepository
}

// NewListActiveDealsUseCase 創建 Use Case 實例
func NewListActiveDealsUseCase(templateRepo deal.DealTemplateRepository) *ListActiveDealsUseCase {
	return &ListActiveDealsUseCase{templateRepo: templateRepo}
}

// Execute 查詢（auto-commit）；沒有模板時返回空清單而非 nil
func (uc *ListActiveDealsUseCase) Execute(tenantID int64) ([]DealTemplateDTO, error) {
	id, err := tenant.TenantIDFromInt64(tenantID)
	if err != nil {
		return nil, err
	}
	templates, err := uc.templateRepo.FindActiveByTenant(nil, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load active deals")
	}

	dtos := make([]DealTemplateDTO, 0, len(templates))
	for _, t := range templates {
		dtos = append(dtos, toDTO(t))
	}
	return dtos, nil
}
