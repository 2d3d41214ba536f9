package deal

import (
	"github.com/google/uuid"
	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/infrastructure/persistence/dbctx"
	"gorm.io/gorm"
)

// DealAwardRepositoryImpl 優惠獎勵紀錄倉儲實現（GORM）
type DealAwardRepositoryImpl struct {
	db *gorm.DB
}

// NewDealAwardRepository 創建優惠獎勵紀錄倉儲
func NewDealAwardRepository(db *gorm.DB) deal.DealAwardRepository {
	return &DealAwardRepositoryImpl{db: db}
}

// SaveAll 批次新增獎勵紀錄並回填 ID；空清單為 no-op
//
// (transaction_ref, deal_template_id) 唯一：同一模板在一筆交易中最多發放一次，
// 違反時返回 ErrDuplicateAward
func (r *DealAwardRepositoryImpl) SaveAll(ctx shared.TransactionContext, awards []*deal.DealAward) error {
	if len(awards) == 0 {
		return nil
	}

	models := make([]*DealAwardGORM, 0, len(awards))
	for _, a := range awards {
		models = append(models, awardToGORM(a))
	}
	if err := dbctx.DB(ctx, r.db).Create(&models).Error; err != nil {
		if dbctx.IsUniqueConstraintError(err) {
			return deal.ErrDuplicateAward.WithContext("transaction_ref", awards[0].TransactionRef().String())
		}
		return dbctx.RepositoryError(err, "operation", "save deal awards")
	}
	for i, m := range models {
		awards[i].AssignID(shared.MustEntityID[deal.DealAwardMarker](m.ID))
	}
	return nil
}

// FindByCustomer 依發放時間升冪列出客戶的獎勵紀錄
func (r *DealAwardRepositoryImpl) FindByCustomer(ctx shared.TransactionContext, customerID customer.CustomerID) ([]*deal.DealAward, error) {
	var models []DealAwardGORM
	err := dbctx.DB(ctx, r.db).
		Where("customer_id = ?", customerID.Int64()).
		Order("awarded_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, dbctx.RepositoryError(err, "customer_id", customerID.Int64())
	}
	return toDomainAwards(models)
}

// FindByTransactionRef 列出同一筆交易產生的獎勵紀錄
func (r *DealAwardRepositoryImpl) FindByTransactionRef(ctx shared.TransactionContext, ref uuid.UUID) ([]*deal.DealAward, error) {
	var models []DealAwardGORM
	err := dbctx.DB(ctx, r.db).
		Where("transaction_ref = ?", ref.String()).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, dbctx.RepositoryError(err, "transaction_ref", ref.String())
	}
	return toDomainAwards(models)
}

func toDomainAwards(models []DealAwardGORM) ([]*deal.DealAward, error) {
	awards := make([]*deal.DealAward, 0, len(models))
	for i := range models {
		a, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		awards = append(awards, a)
	}
	return awards, nil
}
