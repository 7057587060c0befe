package fields_test

import (
	"testing"

	"github.com/chaisql/firevalue/internal/fields"
	"github.com/chaisql/firevalue/internal/model"
	"github.com/stretchr/testify/require"
)

func TestRefComparesOnlyPathWithinBudgetWhenDatabaseIdsMatch(t *testing.T) {
	db := model.NewDatabaseId("proj", "(default)")
	a := fields.NewRef(db, model.NewDocumentKey("users", "alice"))
	b := fields.NewRef(db, model.NewDocumentKey("users", "bob"))

	cmp := a.Compare(b, 20)
	require.EqualValues(t, 20, cmp.Bytes)
}

func TestRefDatabaseIdMismatchSkipsPathEntirely(t *testing.T) {
	dbA := model.NewDatabaseId("proj-a", "(default)")
	dbB := model.NewDatabaseId("proj-b", "(default)")
	a := fields.NewRef(dbA, model.NewDocumentKey("users", "alice"))
	b := fields.NewRef(dbB, model.NewDocumentKey("users", "alice"))

	cmp := a.Compare(b, 1500)
	require.Equal(t, dbA.Compare(dbB), cmp.Cmp)
}

func TestRefBelowDatabaseIdOverheadChargesExactlySixteen(t *testing.T) {
	db := model.NewDatabaseId("proj", "(default)")
	a := fields.NewRef(db, model.NewDocumentKey("users", "alice"))
	b := fields.NewRef(db, model.NewDocumentKey("users", "alice"))

	cmp := a.Compare(b, 10)
	require.EqualValues(t, 16, cmp.Bytes)
	require.Equal(t, 0, cmp.Cmp)
}
