package repository

import (
	"context"
	"quiz_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateAssignsIdentity(t *testing.T) {
	repo := NewMemoryTestRepository()
	test := &model.Test{Title: "Quiz"}

	require.NoError(t, repo.Create(context.Background(), test))

	assert.False(t, test.ID.IsZero())
	assert.Equal(t, int64(1), test.Revision)
	assert.False(t, test.CreatedAt.IsZero())
	assert.NotNil(t, test.Questions)
	assert.NotNil(t, test.Instructions)
}

func TestMemoryFindReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTestRepository()
	test := &model.Test{Title: "Quiz", Questions: []model.Question{{QuestionText: "q", Answer: model.NewAnswer()}}}
	require.NoError(t, repo.Create(ctx, test))

	found, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)
	found.Questions[0].Answer.Text = "unsaved"

	again, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)
	assert.Equal(t, "", again.Questions[0].Answer.Text)
}

func TestMemoryFindMissing(t *testing.T) {
	repo := NewMemoryTestRepository()

	_, err := repo.FindByID(context.Background(), model.GenerateObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySaveComparesRevision(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTestRepository()
	test := &model.Test{Title: "Quiz"}
	require.NoError(t, repo.Create(ctx, test))

	a, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)
	b, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)

	a.Title = "first writer"
	require.NoError(t, repo.Save(ctx, a))
	assert.Equal(t, int64(2), a.Revision)

	b.Title = "second writer"
	assert.ErrorIs(t, repo.Save(ctx, b), ErrRevisionConflict)
	assert.Equal(t, int64(1), b.Revision)

	stored, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)
	assert.Equal(t, "first writer", stored.Title)
}

func TestMemorySaveMissing(t *testing.T) {
	repo := NewMemoryTestRepository()

	err := repo.Save(context.Background(), &model.Test{ID: model.GenerateObjectID(), Revision: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInstrumentedRepositoryDelegates(t *testing.T) {
	ctx := context.Background()
	repo := NewInstrumentedTestRepository(NewMemoryTestRepository(), "memory")
	test := &model.Test{Title: "Quiz"}

	require.NoError(t, repo.Create(ctx, test))
	found, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quiz", found.Title)
	require.NoError(t, repo.Save(ctx, found))
	require.NoError(t, repo.Ping(ctx))

	_, err = repo.FindByID(ctx, model.GenerateObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}
