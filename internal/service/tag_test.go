package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagLifecycle(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "alice")
	svc := NewTagService(db)

	tag, serr := svc.Create(owner.ID, TagInput{Name: "holiday"})
	require.Nil(t, serr)
	assert.NotEmpty(t, tag.ID)
	assert.Equal(t, owner.ID, tag.UserID)

	updated, serr := svc.Update(tag.ID, owner.ID, TagPatch{Name: strPtr("vacation")})
	require.Nil(t, serr)
	assert.Equal(t, "vacation", updated.Name)

	// nil patch leaves the record untouched
	same, serr := svc.Update(tag.ID, owner.ID, TagPatch{})
	require.Nil(t, serr)
	assert.Equal(t, "vacation", same.Name)

	gone, serr := svc.Delete(tag.ID, owner.ID)
	require.Nil(t, serr)
	assert.Equal(t, tag.ID, gone.ID)

	_, serr = svc.Get(tag.ID, owner.ID)
	require.NotNil(t, serr)
	assert.Equal(t, KindNotFound, serr.Kind)
}

func TestTagForeignRecordIsNotFound(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "alice")
	other := newTestUser(t, db, "bob")
	svc := NewTagService(db)

	tag, serr := svc.Create(owner.ID, TagInput{Name: "private"})
	require.Nil(t, serr)

	_, serr = svc.Get(tag.ID, other.ID)
	require.NotNil(t, serr)
	assert.Equal(t, KindNotFound, serr.Kind)
	assert.Equal(t, "Tag not found", serr.Message)
}

func TestTagCreateBatch(t *testing.T) {
	db := newTestDB(t)
	owner := newTestUser(t, db, "alice")
	svc := NewTagService(db)

	tags, serr := svc.CreateBatch(owner.ID, []TagInput{{Name: "a"}, {Name: "b"}})
	require.Nil(t, serr)
	require.Len(t, tags, 2)
	assert.Equal(t, "a", tags[0].Name)
	assert.Equal(t, "b", tags[1].Name)
	assert.NotEqual(t, tags[0].ID, tags[1].ID)

	empty, serr := svc.CreateBatch(owner.ID, nil)
	require.Nil(t, serr)
	assert.Empty(t, empty)
}
