package quiz_test

import (
	"context"
	"testing"

	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
	"github.com/saulo-duarte/quiz-lambda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) quiz.QuizRepository {
	t.Helper()
	return quiz.NewRepository(testutil.NewDB(t, &quiz.Quiz{}, &quiz.Question{}))
}

func sampleQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		Title:    "Capitals",
		Username: "teacher",
		Questions: []quiz.Question{
			{Text: "Capital of France?", Options: []string{"Paris", "Rome"}, CorrectOption: "Paris"},
			{Text: "Capital of Japan?", Options: []string{"Osaka", "Tokyo", "Kyoto"}, CorrectOption: "Tokyo"},
			{Text: "Capital of Peru?", Options: []string{"Lima"}, CorrectOption: "Lima"},
		},
	}
}

func TestQuizRepository_SaveKeepsQuestionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	q := sampleQuiz()
	require.NoError(t, repo.Save(ctx, q))
	require.NotZero(t, q.ID)

	got, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Capitals", got.Title)
	require.Len(t, got.Questions, 3)
	assert.Equal(t, "Capital of France?", got.Questions[0].Text)
	assert.Equal(t, "Capital of Japan?", got.Questions[1].Text)
	assert.Equal(t, []string{"Osaka", "Tokyo", "Kyoto"}, []string(got.Questions[1].Options))
	assert.Equal(t, "Tokyo", got.Questions[1].CorrectOption)
	assert.Equal(t, "Lima", got.Questions[2].CorrectOption)
}

func TestQuizRepository_SaveReplacesQuestions(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	q := sampleQuiz()
	require.NoError(t, repo.Save(ctx, q))

	q.Title = "Capitals II"
	q.Questions = q.Questions[1:]
	require.NoError(t, repo.Save(ctx, q))

	got, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Capitals II", got.Title)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, "Capital of Japan?", got.Questions[0].Text)
}

func TestQuizRepository_EmptyQuestions(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	q := &quiz.Quiz{Title: "Empty", Username: "teacher"}
	require.NoError(t, repo.Save(ctx, q))

	got, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Questions)
	assert.Empty(t, got.Questions)
}

func TestQuizRepository_FindAllAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	missing, err := repo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Save(ctx, sampleQuiz()))
	require.NoError(t, repo.Save(ctx, &quiz.Quiz{Title: "Second", Username: "teacher"}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Len(t, all[0].Questions, 3)
	assert.Empty(t, all[1].Questions)

	require.NoError(t, repo.DeleteAll(ctx))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
