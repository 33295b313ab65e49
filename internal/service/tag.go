package service

import (
	"github.com/ctabares06/where-my-cash-goes/internal/models"
	"gorm.io/gorm"
)

type TagInput struct {
	Name string `json:"name"`
}

type TagPatch struct {
	Name *string `json:"name"`
}

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) Create(userID string, in TagInput) (*models.Tag, *Error) {
	tag := models.Tag{UserID: userID, Name: in.Name}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, translate("Tag", err)
	}
	return &tag, nil
}

func (s *TagService) CreateBatch(userID string, ins []TagInput) ([]models.Tag, *Error) {
	tags := make([]models.Tag, 0, len(ins))
	for _, in := range ins {
		tags = append(tags, models.Tag{UserID: userID, Name: in.Name})
	}
	if len(tags) == 0 {
		return tags, nil
	}
	if err := s.db.Create(&tags).Error; err != nil {
		return nil, translate("Tag", err)
	}
	return tags, nil
}

func (s *TagService) List(userID string, page, limit *int) ([]models.Tag, *Error) {
	var tags []models.Tag
	if err := scopedList(s.db, userID, page, limit).Find(&tags).Error; err != nil {
		return nil, translate("Tag", err)
	}
	return tags, nil
}

func (s *TagService) Get(id, userID string) (*models.Tag, *Error) {
	return resolveOwned[models.Tag](s.db, "Tag", userID, id)
}

func (s *TagService) Update(id, userID string, patch TagPatch) (*models.Tag, *Error) {
	tag, serr := resolveOwned[models.Tag](s.db, "Tag", userID, id)
	if serr != nil {
		return nil, serr
	}
	if patch.Name == nil {
		return tag, nil
	}
	if err := s.db.Model(tag).Update("name", *patch.Name).Error; err != nil {
		return nil, translate("Tag", err)
	}
	return tag, nil
}

func (s *TagService) Delete(id, userID string) (*models.Tag, *Error) {
	tag, serr := resolveOwned[models.Tag](s.db, "Tag", userID, id)
	if serr != nil {
		return nil, serr
	}
	if err := s.db.Delete(tag).Error; err != nil {
		return nil, translate("Tag", err)
	}
	return tag, nil
}
