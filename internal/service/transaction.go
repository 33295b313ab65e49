package service

import (
	"github.com/ctabares06/where-my-cash-goes/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionInput is a validated create payload. TransactionType may be
// empty only when CategoryID is set; the validation layer enforces that
// before the service runs.
type TransactionInput struct {
	Quantity        int64    `json:"quantity"`
	Description     string   `json:"description"`
	TransactionType string   `json:"transactionType"`
	CategoryID      *string  `json:"categoryId"`
	Tags            []string `json:"tags"`
}

type TransactionPatch struct {
	Quantity        *int64    `json:"quantity"`
	Description     *string   `json:"description"`
	TransactionType *string   `json:"transactionType"`
	CategoryID      *string   `json:"categoryId"`
	Tags            *[]string `json:"tags"`
}

type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// resolveTags loads the referenced tags scoped to the user. A dangling or
// foreign tag id is a constraint violation, not a not-found: the caller is
// correcting its own payload, not probing a resource.
func (s *TransactionService) resolveTags(userID string, ids []string) ([]models.Tag, *Error) {
	if len(ids) == 0 {
		return nil, nil
	}
	seen := map[string]struct{}{}
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	var tags []models.Tag
	if err := s.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&tags).Error; err != nil {
		return nil, translate("Transaction", err)
	}
	if len(tags) != len(seen) {
		return nil, BadRequest()
	}
	return tags, nil
}

func (s *TransactionService) build(userID string, in TransactionInput) (models.Transaction, *Error) {
	tx := models.Transaction{
		UserID:          userID,
		Quantity:        in.Quantity,
		Description:     in.Description,
		TransactionType: in.TransactionType,
	}
	if in.CategoryID != nil {
		if _, serr := resolveOwned[models.Category](s.db, "Category", userID, *in.CategoryID); serr != nil {
			return tx, BadRequest()
		}
		tx.CategoryID = in.CategoryID
	}
	tags, serr := s.resolveTags(userID, in.Tags)
	if serr != nil {
		return tx, serr
	}
	tx.Tags = tags
	return tx, nil
}

func (s *TransactionService) Create(userID string, in TransactionInput) (*models.Transaction, *Error) {
	tx, serr := s.build(userID, in)
	if serr != nil {
		return nil, serr
	}
	// Omit("Tags.*") links the join rows without re-upserting the tags.
	if err := s.db.Omit("Tags.*").Create(&tx).Error; err != nil {
		return nil, translate("Transaction", err)
	}
	return &tx, nil
}

func (s *TransactionService) CreateBatch(userID string, ins []TransactionInput) ([]models.Transaction, *Error) {
	txs := make([]models.Transaction, 0, len(ins))
	for _, in := range ins {
		tx, serr := s.build(userID, in)
		if serr != nil {
			return nil, serr
		}
		txs = append(txs, tx)
	}
	if len(txs) == 0 {
		return txs, nil
	}
	if err := s.db.Omit("Tags.*").Create(&txs).Error; err != nil {
		return nil, translate("Transaction", err)
	}
	return txs, nil
}

func (s *TransactionService) List(userID string, page, limit *int) ([]models.Transaction, *Error) {
	var txs []models.Transaction
	q := scopedList(s.db.Preload("Category").Preload("Tags"), userID, page, limit)
	if err := q.Find(&txs).Error; err != nil {
		return nil, translate("Transaction", err)
	}
	return txs, nil
}

func (s *TransactionService) Get(id, userID string) (*models.Transaction, *Error) {
	return resolveOwned[models.Transaction](
		s.db.Preload("Category").Preload("Tags"), "Transaction", userID, id)
}

func (s *TransactionService) Update(id, userID string, patch TransactionPatch) (*models.Transaction, *Error) {
	tx, serr := resolveOwned[models.Transaction](
		s.db.Preload("Category").Preload("Tags"), "Transaction", userID, id)
	if serr != nil {
		return nil, serr
	}

	ch := map[string]any{}
	if patch.Quantity != nil {
		ch["quantity"] = *patch.Quantity
	}
	if patch.Description != nil {
		ch["description"] = *patch.Description
	}
	if patch.TransactionType != nil {
		ch["transaction_type"] = *patch.TransactionType
	}
	if patch.CategoryID != nil {
		cat, serr := resolveOwned[models.Category](s.db, "Category", userID, *patch.CategoryID)
		if serr != nil {
			return nil, BadRequest()
		}
		ch["category_id"] = *patch.CategoryID
		tx.Category = cat
	}
	if len(ch) > 0 {
		if err := s.db.Model(tx).Updates(ch).Error; err != nil {
			return nil, translate("Transaction", err)
		}
	}
	if patch.Tags != nil {
		tags, serr := s.resolveTags(userID, *patch.Tags)
		if serr != nil {
			return nil, serr
		}
		if err := s.db.Model(tx).Association("Tags").Replace(tags); err != nil {
			return nil, translate("Transaction", err)
		}
		tx.Tags = tags
	}
	return tx, nil
}

func (s *TransactionService) Delete(id, userID string) (*models.Transaction, *Error) {
	tx, serr := resolveOwned[models.Transaction](
		s.db.Preload("Category").Preload("Tags"), "Transaction", userID, id)
	if serr != nil {
		return nil, serr
	}
	if err := s.db.Select(clause.Associations).Delete(tx).Error; err != nil {
		return nil, translate("Transaction", err)
	}
	return tx, nil
}
