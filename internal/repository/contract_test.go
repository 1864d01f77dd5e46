package repository

import (
	"context"
	"quiz_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract 各存储实现共同遵守的读写与版本约定
func runRepositoryContract(t *testing.T, repo TestRepository) {
	t.Run("round trip keeps answers", func(t *testing.T) {
		ctx := context.Background()
		paste := false
		test := &model.Test{
			Title:        "Quiz",
			Instructions: []string{"Answer honestly"},
			Questions: []model.Question{
				{QuestionText: "What is 6*7?", MaxTime: 30, Answer: model.NewAnswer()},
				{QuestionText: "Name a prime", ImageURL: "http://img/p.png", PasteAllowed: &paste, Answer: model.NewAnswer()},
			},
		}
		require.NoError(t, repo.Create(ctx, test))
		assert.Equal(t, int64(1), test.Revision)

		found, err := repo.FindByID(ctx, test.ID)
		require.NoError(t, err)
		assert.Equal(t, "Quiz", found.Title)
		assert.Equal(t, []string{"Answer honestly"}, found.Instructions)
		require.Len(t, found.Questions, 2)
		assert.Nil(t, found.Questions[0].Answer.StartTime)
		assert.Nil(t, found.Questions[0].Answer.EndTime)

		started := Now().Add(-time.Minute)
		ended := Now()
		found.Questions[0].Answer.Text = "42"
		found.Questions[0].Answer.StartTime = &started
		found.Questions[0].Answer.EndTime = &ended
		require.NoError(t, repo.Save(ctx, found))
		assert.Equal(t, int64(2), found.Revision)

		stored, err := repo.FindByID(ctx, test.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stored.Revision)
		answer := stored.Questions[0].Answer
		assert.Equal(t, "42", answer.Text)
		require.NotNil(t, answer.StartTime)
		require.NotNil(t, answer.EndTime)
		assert.WithinDuration(t, started, *answer.StartTime, time.Millisecond)
		assert.WithinDuration(t, ended, *answer.EndTime, time.Millisecond)
		assert.Nil(t, stored.Questions[1].Answer.StartTime)
		assert.Equal(t, "http://img/p.png", stored.Questions[1].ImageURL)
		require.NotNil(t, stored.Questions[1].PasteAllowed)
		assert.False(t, *stored.Questions[1].PasteAllowed)
		assert.Equal(t, float64(30), stored.Questions[0].MaxTime)
	})

	t.Run("stale revision is a conflict", func(t *testing.T) {
		ctx := context.Background()
		test := &model.Test{Title: "Quiz"}
		require.NoError(t, repo.Create(ctx, test))

		first, err := repo.FindByID(ctx, test.ID)
		require.NoError(t, err)
		second, err := repo.FindByID(ctx, test.ID)
		require.NoError(t, err)

		first.Title = "first writer"
		require.NoError(t, repo.Save(ctx, first))

		second.Title = "second writer"
		assert.ErrorIs(t, repo.Save(ctx, second), ErrRevisionConflict)
		assert.Equal(t, int64(1), second.Revision)

		stored, err := repo.FindByID(ctx, test.ID)
		require.NoError(t, err)
		assert.Equal(t, "first writer", stored.Title)
		assert.Equal(t, int64(2), stored.Revision)
	})

	t.Run("missing document", func(t *testing.T) {
		ctx := context.Background()
		id := model.GenerateObjectID()

		_, err := repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, repo.Save(ctx, &model.Test{ID: id, Revision: 1}), ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(context.Background()))
	})
}

func TestMemoryRepositoryContract(t *testing.T) {
	runRepositoryContract(t, NewMemoryTestRepository())
}
