package service

import (
	"github.com/ctabares06/where-my-cash-goes/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CycleInput is a validated create payload. isActive defaults to false
// when absent.
type CycleInput struct {
	Label    string `json:"label"`
	Duration int    `json:"duration"`
	IsActive *bool  `json:"isActive"`
}

type CyclePatch struct {
	Label    *string `json:"label"`
	Duration *int    `json:"duration"`
	IsActive *bool   `json:"isActive"`
}

func (p CyclePatch) changes() map[string]any {
	ch := map[string]any{}
	if p.Label != nil {
		ch["label"] = *p.Label
	}
	if p.Duration != nil {
		ch["duration"] = *p.Duration
	}
	if p.IsActive != nil {
		ch["is_active"] = *p.IsActive
	}
	return ch
}

type CycleService struct {
	db *gorm.DB
}

func NewCycleService(db *gorm.DB) *CycleService {
	return &CycleService{db: db}
}

func fromCycleInput(userID string, in CycleInput) models.Cycle {
	c := models.Cycle{UserID: userID, Label: in.Label, Duration: in.Duration}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	return c
}

func (s *CycleService) Create(userID string, in CycleInput) (*models.Cycle, *Error) {
	cycle := fromCycleInput(userID, in)
	if err := s.db.Create(&cycle).Error; err != nil {
		return nil, translate("Cycle", err)
	}
	cycle.Items = []models.CycleItem{}
	return &cycle, nil
}

func (s *CycleService) CreateBatch(userID string, ins []CycleInput) ([]models.Cycle, *Error) {
	cycles := make([]models.Cycle, 0, len(ins))
	for _, in := range ins {
		cycles = append(cycles, fromCycleInput(userID, in))
	}
	if len(cycles) == 0 {
		return cycles, nil
	}
	if err := s.db.Create(&cycles).Error; err != nil {
		return nil, translate("Cycle", err)
	}
	return cycles, nil
}

// List returns the user's cycles with their line items preloaded.
func (s *CycleService) List(userID string, page, limit *int) ([]models.Cycle, *Error) {
	var cycles []models.Cycle
	q := scopedList(s.db.Preload("Items"), userID, page, limit)
	if err := q.Find(&cycles).Error; err != nil {
		return nil, translate("Cycle", err)
	}
	return cycles, nil
}

func (s *CycleService) Get(id, userID string) (*models.Cycle, *Error) {
	return resolveOwned[models.Cycle](s.db.Preload("Items"), "Cycle", userID, id)
}

func (s *CycleService) Update(id, userID string, patch CyclePatch) (*models.Cycle, *Error) {
	cycle, serr := resolveOwned[models.Cycle](s.db.Preload("Items"), "Cycle", userID, id)
	if serr != nil {
		return nil, serr
	}
	ch := patch.changes()
	if len(ch) == 0 {
		return cycle, nil
	}
	if err := s.db.Model(cycle).Updates(ch).Error; err != nil {
		return nil, translate("Cycle", err)
	}
	return cycle, nil
}

func (s *CycleService) Delete(id, userID string) (*models.Cycle, *Error) {
	cycle, serr := resolveOwned[models.Cycle](s.db.Preload("Items"), "Cycle", userID, id)
	if serr != nil {
		return nil, serr
	}
	if err := s.db.Select(clause.Associations).Delete(cycle).Error; err != nil {
		return nil, translate("Cycle", err)
	}
	return cycle, nil
}
