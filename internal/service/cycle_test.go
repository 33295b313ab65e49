package service

import (
	"testing"

	"github.com/ctabares06/where-my-cash-goes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleCreateDefaultsInactive(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "alice")
	svc := NewCycleService(db)

	cycle, serr := svc.Create(owner.ID, CycleInput{Label: "August", Duration: 31})
	require.Nil(t, serr)
	assert.False(t, cycle.IsActive)
	assert.NotNil(t, cycle.Items)
	assert.Empty(t, cycle.Items)

	active, serr := svc.Create(owner.ID, CycleInput{Label: "September", Duration: 30, IsActive: boolPtr(true)})
	require.Nil(t, serr)
	assert.True(t, active.IsActive)
}

func TestCycleGetPreloadsItems(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "alice")
	svc := NewCycleService(db)

	cycle, serr := svc.Create(owner.ID, CycleInput{Label: "August", Duration: 31})
	require.Nil(t, serr)

	items := []models.CycleItem{
		{CycleID: cycle.ID, Label: "rent", Amount: 120000},
		{CycleID: cycle.ID, Label: "groceries", Amount: 45000},
	}
	require.NoError(t, db.Create(&items).Error)

	got, serr := svc.Get(cycle.ID, owner.ID)
	require.Nil(t, serr)
	require.Len(t, got.Items, 2)

	list, serr := svc.List(owner.ID, nil, nil)
	require.Nil(t, serr)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Items, 2)
}

func TestCycleUpdate(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "alice")
	svc := NewCycleService(db)

	cycle, serr := svc.Create(owner.ID, CycleInput{Label: "August", Duration: 31})
	require.Nil(t, serr)

	updated, serr := svc.Update(cycle.ID, owner.ID, CyclePatch{
		Duration: intPtr(28),
		IsActive: boolPtr(true),
	})
	require.Nil(t, serr)
	assert.Equal(t, "August", updated.Label)
	assert.Equal(t, 28, updated.Duration)
	assert.True(t, updated.IsActive)
}

func TestCycleDeleteRemovesItems(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "alice")
	svc := NewCycleService(db)

	cycle, serr := svc.Create(owner.ID, CycleInput{Label: "August", Duration: 31})
	require.Nil(t, serr)
	require.NoError(t, db.Create(&models.CycleItem{CycleID: cycle.ID, Label: "rent", Amount: 1}).Error)

	gone, serr := svc.Delete(cycle.ID, owner.ID)
	require.Nil(t, serr)
	assert.Equal(t, cycle.ID, gone.ID)

	var itemCount int64
	require.NoError(t, db.Model(&models.CycleItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestCycleForeignRecordIsNotFound(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "alice")
	other := newTestUser(t, db, "bob")
	svc := NewCycleService(db)

	cycle, serr := svc.Create(owner.ID, CycleInput{Label: "August", Duration: 31})
	require.Nil(t, serr)

	_, serr = svc.Get(cycle.ID, other.ID)
	require.NotNil(t, serr)
	assert.Equal(t, KindNotFound, serr.Kind)
	assert.Equal(t, "Cycle not found", serr.Message)
}
