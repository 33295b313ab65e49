package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantMsg  string
	}{
		{"missing record", gorm.ErrRecordNotFound, KindNotFound, "Category not found"},
		{"duplicate key", gorm.ErrDuplicatedKey, KindBadRequest, "Invalid data provided"},
		{"foreign key", gorm.ErrForeignKeyViolated, KindBadRequest, "Invalid data provided"},
		{"wrapped driver constraint",
			fmt.Errorf("insert: %w", sqlite3.Error{Code: sqlite3.ErrConstraint}),
			KindBadRequest, "Invalid data provided"},
		{"anything else", errors.New("disk I/O error"), KindInternal, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serr := translate("Category", tt.err)
			assert.Equal(t, tt.wantKind, serr.Kind)
			assert.Equal(t, tt.wantMsg, serr.Message)
		})
	}
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	serr := Internal(cause)
	assert.Equal(t, "Something went wrong", serr.Error())
	assert.ErrorIs(t, serr, cause)
}

func TestBadRequestViolations(t *testing.T) {
	serr := BadRequest("name should not be empty", "amount must be an integer number")
	assert.Equal(t, KindBadRequest, serr.Kind)
	assert.Equal(t, "Invalid data provided", serr.Message)
	assert.Len(t, serr.Violations, 2)

	bare := BadRequest()
	assert.Equal(t, "Invalid data provided", bare.Message)
	assert.Empty(t, bare.Violations)
}
