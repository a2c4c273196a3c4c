package quizresult_test

import (
	"context"
	"testing"
	"time"

	"github.com/saulo-duarte/quiz-lambda/internal/quizresult"
	"github.com/saulo-duarte/quiz-lambda/internal/testutil"
	util "github.com/saulo-duarte/quiz-lambda/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) quizresult.QuizResultRepository {
	t.Helper()
	return quizresult.NewRepository(testutil.NewDB(t, &quizresult.QuizResult{}))
}

func saveResult(t *testing.T, repo quizresult.QuizResultRepository, userID int64, username string, quizID int64, score, total int, completed time.Time) *quizresult.QuizResult {
	t.Helper()
	r := quizresult.NewQuizResult(userID, username, quizID, "Quiz", score, total)
	r.CompletedAt = util.NewLocalDateTime(completed)
	require.NoError(t, repo.Save(context.Background(), r))
	require.NotZero(t, r.ID)
	return r
}

func ids(results []*quizresult.QuizResult) []int64 {
	out := make([]int64, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}

func TestRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	taken := 120
	r := quizresult.NewQuizResult(5, "alice", 9, "Basic Science", 3, 5)
	r.TimeTakenSeconds = &taken
	require.NoError(t, repo.Save(ctx, r))

	found, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alice", found.Username)
	assert.InDelta(t, 60.0, found.Percentage, 1e-9)
	require.NotNil(t, found.TimeTakenSeconds)
	assert.Equal(t, 120, *found.TimeTakenSeconds)
	assert.WithinDuration(t, r.CompletedAt.Time, found.CompletedAt.Time, time.Second)

	missing, err := repo.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRepository_SaveDefaultsCompletedAt(t *testing.T) {
	repo := newRepo(t)
	r := &quizresult.QuizResult{UserID: 1, QuizID: 1}
	require.NoError(t, repo.Save(context.Background(), r))
	assert.False(t, r.CompletedAt.IsZero())
}

func TestRepository_Finders(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	a := saveResult(t, repo, 1, "alice", 10, 3, 5, base)
	b := saveResult(t, repo, 1, "alice", 20, 5, 5, base.Add(time.Hour))
	c := saveResult(t, repo, 2, "bob", 10, 4, 5, base.Add(2*time.Hour))

	t.Run("ByUserID", func(t *testing.T) {
		got, err := repo.FindByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{a.ID, b.ID}, ids(got))
	})

	t.Run("ByQuizID", func(t *testing.T) {
		got, err := repo.FindByQuizID(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []int64{a.ID, c.ID}, ids(got))
	})

	t.Run("ByUserAndQuiz", func(t *testing.T) {
		got, err := repo.FindByUserIDAndQuizID(ctx, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, []int64{b.ID}, ids(got))
	})

	t.Run("ByUsername", func(t *testing.T) {
		got, err := repo.FindByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, []int64{c.ID}, ids(got))
	})

	t.Run("UnknownUsernameIsEmpty", func(t *testing.T) {
		got, err := repo.FindByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("NewestFirst", func(t *testing.T) {
		got, err := repo.FindAllOrderByCompletedAtDesc(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{c.ID, b.ID, a.ID}, ids(got))
	})

	t.Run("QuizByScoreDesc", func(t *testing.T) {
		got, err := repo.FindByQuizIDOrderByScoreDesc(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []int64{c.ID, a.ID}, ids(got))
	})

	t.Run("BetweenIsInclusive", func(t *testing.T) {
		got, err := repo.FindByCompletedAtBetween(ctx, base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, []int64{a.ID, b.ID}, ids(got))
	})

	t.Run("Recent", func(t *testing.T) {
		got, err := repo.RecentResults(ctx, base.Add(30*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, []int64{c.ID, b.ID}, ids(got))
	})
}

func TestRepository_TopPerformersTieBreak(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	late := saveResult(t, repo, 1, "alice", 7, 4, 5, base.Add(time.Hour))
	early := saveResult(t, repo, 2, "bob", 7, 4, 5, base)
	low := saveResult(t, repo, 3, "carol", 7, 2, 5, base.Add(-time.Hour))
	saveResult(t, repo, 4, "dave", 8, 5, 5, base)

	got, err := repo.TopPerformersForQuiz(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{early.ID, late.ID, low.ID}, ids(got))
}

func TestRepository_AverageScoreForQuiz(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	avg, err := repo.AverageScoreForQuiz(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, avg)

	saveResult(t, repo, 1, "alice", 1, 3, 5, base)
	saveResult(t, repo, 2, "bob", 1, 5, 5, base)

	avg, err = repo.AverageScoreForQuiz(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 80.0, *avg, 1e-9)
}

func TestRepository_QuizStatistics(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	rows, err := repo.QuizStatistics(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	saveResult(t, repo, 1, "alice", 1, 3, 5, base)
	saveResult(t, repo, 2, "bob", 1, 5, 5, base)
	saveResult(t, repo, 3, "carol", 1, 1, 5, base)
	saveResult(t, repo, 1, "alice", 2, 2, 4, base)

	rows, err = repo.QuizStatistics(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(1), rows[0].QuizID)
	assert.Equal(t, "Quiz", rows[0].QuizTitle)
	assert.Equal(t, int64(3), rows[0].TotalAttempts)
	assert.InDelta(t, 60.0, rows[0].AverageScore, 1e-9)
	assert.Equal(t, 5, rows[0].HighestScore)
	assert.Equal(t, 1, rows[0].LowestScore)

	assert.Equal(t, int64(2), rows[1].QuizID)
	assert.Equal(t, int64(1), rows[1].TotalAttempts)
	assert.InDelta(t, 50.0, rows[1].AverageScore, 1e-9)
}

func TestRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	saveResult(t, repo, 1, "alice", 1, 3, 5, base)

	require.NoError(t, repo.DeleteAll(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
