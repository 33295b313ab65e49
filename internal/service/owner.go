package service

import "gorm.io/gorm"

// Owned is implemented by every user-owned model.
type Owned interface {
	Owner() string
}

// resolveOwned fetches a record by id alone and compares the owner field in
// application code, so a mistake in query building can never hand back a
// foreign record. A record owned by someone else and a record that does not
// exist produce the same not-found result; callers must not be able to probe
// which ids exist. Empty ids short-circuit without touching storage.
func resolveOwned[T any, PT interface {
	*T
	Owned
}](db *gorm.DB, what, userID, id string) (*T, *Error) {
	if userID == "" || id == "" {
		return nil, NotFound(what)
	}

	var rec T
	if err := db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(what, err)
	}
	if PT(&rec).Owner() != userID {
		return nil, NotFound(what)
	}
	return &rec, nil
}

// scopedList applies the user filter and, when both page and limit are
// given, the offset/limit window. One of the two alone is ignored.
func scopedList(db *gorm.DB, userID string, page, limit *int) *gorm.DB {
	q := db.Where("user_id = ?", userID).Order("created_at")
	if page != nil && limit != nil {
		q = q.Offset((*page - 1) * *limit).Limit(*limit)
	}
	return q
}
