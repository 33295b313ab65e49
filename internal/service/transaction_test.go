package service

import (
	"testing"

	"github.com/ctabares06/where-my-cash-goes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type txFixture struct {
	db       *gorm.DB
	owner    *models.User
	other    *models.User
	category *models.Category
	tags     []models.Tag
	svc      *TransactionService
}

func newTxFixture(t *testing.T) txFixture {
	t.Helper()
	db := newTestDB(t)
	owner := newTestUser(t, db, "alice")
	other := newTestUser(t, db, "bob")

	cat, serr := NewCategoryService(db).Create(owner.ID, CategoryInput{
		Name: "Groceries", Unicode: "\U0001F6D2", TransactionType: "expense",
	})
	require.Nil(t, serr)

	tags, serr := NewTagService(db).CreateBatch(owner.ID, []TagInput{{Name: "weekly"}, {Name: "cash"}})
	require.Nil(t, serr)

	return txFixture{db: db, owner: owner, other: other, category: cat, tags: tags, svc: NewTransactionService(db)}
}

func TestTransactionCreateWithCategoryAndTags(t *testing.T) {
	f := newTxFixture(t)

	tx, serr := f.svc.Create(f.owner.ID, TransactionInput{
		Quantity:    2500,
		Description: "market run",
		CategoryID:  &f.category.ID,
		Tags:        []string{f.tags[0].ID, f.tags[1].ID},
	})
	require.Nil(t, serr)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, f.owner.ID, tx.UserID)

	got, serr := f.svc.Get(tx.ID, f.owner.ID)
	require.Nil(t, serr)
	require.NotNil(t, got.Category)
	assert.Equal(t, f.category.ID, got.Category.ID)
	assert.Len(t, got.Tags, 2)
}

func TestTransactionCreateForeignCategoryIsBadRequest(t *testing.T) {
	f := newTxFixture(t)

	foreign, serr := NewCategoryService(f.db).Create(f.other.ID, CategoryInput{
		Name: "Secret", Unicode: "\U0001F512", TransactionType: "expense",
	})
	require.Nil(t, serr)

	_, serr = f.svc.Create(f.owner.ID, TransactionInput{
		Quantity:    100,
		Description: "sneaky",
		CategoryID:  &foreign.ID,
	})
	require.NotNil(t, serr)
	assert.Equal(t, KindBadRequest, serr.Kind)
	assert.Equal(t, "Invalid data provided", serr.Message)
}

func TestTransactionCreateUnknownTagIsBadRequest(t *testing.T) {
	f := newTxFixture(t)

	_, serr := f.svc.Create(f.owner.ID, TransactionInput{
		Quantity:        100,
		Description:     "bad tag",
		TransactionType: "expense",
		Tags:            []string{"e2a1e3a0-0b5b-4f5e-9f1a-000000000000"},
	})
	require.NotNil(t, serr)
	assert.Equal(t, KindBadRequest, serr.Kind)
}

func TestTransactionCreateForeignTagIsBadRequest(t *testing.T) {
	f := newTxFixture(t)

	foreign, serr := NewTagService(f.db).CreateBatch(f.other.ID, []TagInput{{Name: "theirs"}})
	require.Nil(t, serr)

	_, serr = f.svc.Create(f.owner.ID, TransactionInput{
		Quantity:        100,
		Description:     "bad tag",
		TransactionType: "expense",
		Tags:            []string{foreign[0].ID},
	})
	require.NotNil(t, serr)
	assert.Equal(t, KindBadRequest, serr.Kind)
}

func TestTransactionCreateDedupesTagRefs(t *testing.T) {
	f := newTxFixture(t)

	tx, serr := f.svc.Create(f.owner.ID, TransactionInput{
		Quantity:        100,
		Description:     "doubled tag",
		TransactionType: "expense",
		Tags:            []string{f.tags[0].ID, f.tags[0].ID},
	})
	require.Nil(t, serr)
	assert.Len(t, tx.Tags, 1)
}

func TestTransactionCreateWithoutCategory(t *testing.T) {
	f := newTxFixture(t)

	tx, serr := f.svc.Create(f.owner.ID, TransactionInput{
		Quantity:        4200,
		Description:     "paycheck",
		TransactionType: "income",
	})
	require.Nil(t, serr)
	assert.Nil(t, tx.CategoryID)
	assert.Equal(t, "income", tx.TransactionType)
}

func TestTransactionCreateBatch(t *testing.T) {
	f := newTxFixture(t)

	ins := []TransactionInput{
		{Quantity: 1, Description: "one", TransactionType: "expense", Tags: []string{f.tags[0].ID}},
		{Quantity: 2, Description: "two", CategoryID: &f.category.ID},
	}
	txs, serr := f.svc.CreateBatch(f.owner.ID, ins)
	require.Nil(t, serr)
	require.Len(t, txs, 2)
	assert.Equal(t, "one", txs[0].Description)
	assert.Equal(t, "two", txs[1].Description)
	assert.NotEmpty(t, txs[0].ID)
	assert.NotEmpty(t, txs[1].ID)
	assert.NotEqual(t, txs[0].ID, txs[1].ID)

	empty, serr := f.svc.CreateBatch(f.owner.ID, nil)
	require.Nil(t, serr)
	assert.Empty(t, empty)
}

func TestTransactionUpdateReplacesTags(t *testing.T) {
	f := newTxFixture(t)

	tx, serr := f.svc.Create(f.owner.ID, TransactionInput{
		Quantity:        100,
		Description:     "before",
		TransactionType: "expense",
		Tags:            []string{f.tags[0].ID},
	})
	require.Nil(t, serr)

	updated, serr := f.svc.Update(tx.ID, f.owner.ID, TransactionPatch{
		Description: strPtr("after"),
		Tags:        &[]string{f.tags[1].ID},
	})
	require.Nil(t, serr)
	assert.Equal(t, "after", updated.Description)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, f.tags[1].ID, updated.Tags[0].ID)

	// clearing the tag list detaches everything
	cleared, serr := f.svc.Update(tx.ID, f.owner.ID, TransactionPatch{Tags: &[]string{}})
	require.Nil(t, serr)
	assert.Empty(t, cleared.Tags)
}

func TestTransactionUpdateCategory(t *testing.T) {
	f := newTxFixture(t)

	tx, serr := f.svc.Create(f.owner.ID, TransactionInput{
		Quantity:        100,
		Description:     "uncategorized",
		TransactionType: "expense",
	})
	require.Nil(t, serr)

	updated, serr := f.svc.Update(tx.ID, f.owner.ID, TransactionPatch{CategoryID: &f.category.ID})
	require.Nil(t, serr)
	require.NotNil(t, updated.Category)
	assert.Equal(t, f.category.ID, updated.Category.ID)

	foreign, serr2 := NewCategoryService(f.db).Create(f.other.ID, CategoryInput{
		Name: "Secret", Unicode: "\U0001F512", TransactionType: "expense",
	})
	require.Nil(t, serr2)

	_, serr = f.svc.Update(tx.ID, f.owner.ID, TransactionPatch{CategoryID: &foreign.ID})
	require.NotNil(t, serr)
	assert.Equal(t, KindBadRequest, serr.Kind)
}

func TestTransactionDeleteKeepsTags(t *testing.T) {
	f := newTxFixture(t)

	tx, serr := f.svc.Create(f.owner.ID, TransactionInput{
		Quantity:        100,
		Description:     "short lived",
		TransactionType: "expense",
		Tags:            []string{f.tags[0].ID},
	})
	require.Nil(t, serr)

	gone, serr := f.svc.Delete(tx.ID, f.owner.ID)
	require.Nil(t, serr)
	assert.Equal(t, tx.ID, gone.ID)
	assert.Equal(t, "short lived", gone.Description)

	_, serr = f.svc.Get(tx.ID, f.owner.ID)
	require.NotNil(t, serr)
	assert.Equal(t, KindNotFound, serr.Kind)

	// only the join rows go; the tag itself survives
	tag, serr := NewTagService(f.db).Get(f.tags[0].ID, f.owner.ID)
	require.Nil(t, serr)
	assert.Equal(t, "weekly", tag.Name)
}

func TestTransactionForeignRecordIsNotFound(t *testing.T) {
	f := newTxFixture(t)

	tx, serr := f.svc.Create(f.owner.ID, TransactionInput{
		Quantity:        100,
		Description:     "mine",
		TransactionType: "expense",
	})
	require.Nil(t, serr)

	_, serr = f.svc.Get(tx.ID, f.other.ID)
	require.NotNil(t, serr)
	assert.Equal(t, KindNotFound, serr.Kind)
	assert.Equal(t, "Transaction not found", serr.Message)
}
