package service

import (
	"github.com/ctabares06/where-my-cash-goes/internal/models"
	"gorm.io/gorm"
)

// CategoryInput is a validated create payload. The owner is never part of
// the input; it is stamped from the session.
type CategoryInput struct {
	Name            string `json:"name"`
	Unicode         string `json:"unicode"`
	TransactionType string `json:"transactionType"`
}

// CategoryPatch carries only the fields present in an update payload.
type CategoryPatch struct {
	Name            *string `json:"name"`
	Unicode         *string `json:"unicode"`
	TransactionType *string `json:"transactionType"`
}

func (p CategoryPatch) changes() map[string]any {
	ch := map[string]any{}
	if p.Name != nil {
		ch["name"] = *p.Name
	}
	if p.Unicode != nil {
		ch["unicode"] = *p.Unicode
	}
	if p.TransactionType != nil {
		ch["transaction_type"] = *p.TransactionType
	}
	return ch
}

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) Create(userID string, in CategoryInput) (*models.Category, *Error) {
	cat := models.Category{
		UserID:          userID,
		Name:            in.Name,
		Unicode:         in.Unicode,
		TransactionType: in.TransactionType,
	}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, translate("Category", err)
	}
	return &cat, nil
}

// CreateBatch inserts all inputs in one statement; generated ids and
// timestamps are backfilled, so the result order matches the input order.
// An empty batch returns an empty list without touching storage.
func (s *CategoryService) CreateBatch(userID string, ins []CategoryInput) ([]models.Category, *Error) {
	cats := make([]models.Category, 0, len(ins))
	for _, in := range ins {
		cats = append(cats, models.Category{
			UserID:          userID,
			Name:            in.Name,
			Unicode:         in.Unicode,
			TransactionType: in.TransactionType,
		})
	}
	if len(cats) == 0 {
		return cats, nil
	}
	if err := s.db.Create(&cats).Error; err != nil {
		return nil, translate("Category", err)
	}
	return cats, nil
}

func (s *CategoryService) List(userID string, page, limit *int) ([]models.Category, *Error) {
	var cats []models.Category
	if err := scopedList(s.db, userID, page, limit).Find(&cats).Error; err != nil {
		return nil, translate("Category", err)
	}
	return cats, nil
}

func (s *CategoryService) Get(id, userID string) (*models.Category, *Error) {
	return resolveOwned[models.Category](s.db, "Category", userID, id)
}

func (s *CategoryService) Update(id, userID string, patch CategoryPatch) (*models.Category, *Error) {
	cat, serr := resolveOwned[models.Category](s.db, "Category", userID, id)
	if serr != nil {
		return nil, serr
	}
	ch := patch.changes()
	if len(ch) == 0 {
		return cat, nil
	}
	if err := s.db.Model(cat).Updates(ch).Error; err != nil {
		return nil, translate("Category", err)
	}
	return cat, nil
}

// Delete removes the record permanently and returns the pre-deletion
// snapshot. Deleting an already-deleted id reports not-found.
func (s *CategoryService) Delete(id, userID string) (*models.Category, *Error) {
	cat, serr := resolveOwned[models.Category](s.db, "Category", userID, id)
	if serr != nil {
		return nil, serr
	}
	if err := s.db.Delete(cat).Error; err != nil {
		return nil, translate("Category", err)
	}
	return cat, nil
}
