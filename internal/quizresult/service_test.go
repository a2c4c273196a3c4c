package quizresult

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	QuizResultRepository

	saved    []*QuizResult
	attempts []*QuizResult
	average  *float64
	rows     []StatisticsRow
	since    time.Time
	err      error
}

func (f *fakeRepo) Save(_ context.Context, r *QuizResult) error {
	if f.err != nil {
		return f.err
	}
	r.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeRepo) FindByUserIDAndQuizID(context.Context, int64, int64) ([]*QuizResult, error) {
	return f.attempts, f.err
}

func (f *fakeRepo) AverageScoreForQuiz(context.Context, int64) (*float64, error) {
	return f.average, f.err
}

func (f *fakeRepo) QuizStatistics(context.Context) ([]StatisticsRow, error) {
	return f.rows, f.err
}

func (f *fakeRepo) RecentResults(_ context.Context, since time.Time) ([]*QuizResult, error) {
	f.since = since
	return []*QuizResult{}, f.err
}

func (f *fakeRepo) FindByCompletedAtBetween(context.Context, time.Time, time.Time) ([]*QuizResult, error) {
	return []*QuizResult{}, f.err
}

func TestService_CreateResult(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)

	r, err := s.CreateResult(context.Background(), 5, "alice", 9, "Basic Science", 3, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.ID)
	assert.InDelta(t, 60.0, r.Percentage, 1e-9)
	assert.Len(t, repo.saved, 1)
}

func TestService_SaveResultError(t *testing.T) {
	s := NewService(&fakeRepo{err: errors.New("db down")})

	_, err := s.SaveResult(context.Background(), NewQuizResult(1, "a", 1, "q", 1, 1))
	assert.Error(t, err)
}

func TestService_AverageScoreForQuiz(t *testing.T) {
	t.Run("NoResultsIsZero", func(t *testing.T) {
		s := NewService(&fakeRepo{})
		avg, err := s.AverageScoreForQuiz(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, avg)
	})

	t.Run("Average", func(t *testing.T) {
		v := 72.5
		s := NewService(&fakeRepo{average: &v})
		avg, err := s.AverageScoreForQuiz(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 72.5, avg)
	})
}

func TestService_QuizStatistics(t *testing.T) {
	s := NewService(&fakeRepo{rows: []StatisticsRow{
		{QuizID: 1, QuizTitle: "Basic Mathematics", TotalAttempts: 3, AverageScore: 60, HighestScore: 5, LowestScore: 1},
	}})

	stats, err := s.QuizStatistics(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, QuizStatistic{
		QuizID:        1,
		QuizTitle:     "Basic Mathematics",
		TotalAttempts: 3,
		AverageScore:  60,
		HighestScore:  5,
		LowestScore:   1,
	}, stats[0])

	empty, err := NewService(&fakeRepo{}).QuizStatistics(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestService_Attempts(t *testing.T) {
	first := &QuizResult{ID: 1, Score: 4}
	second := &QuizResult{ID: 2, Score: 2}
	tied := &QuizResult{ID: 3, Score: 4}
	s := NewService(&fakeRepo{attempts: []*QuizResult{first, second, tied}})
	ctx := context.Background()

	best, err := s.BestScore(ctx, 1, 1)
	require.NoError(t, err)
	assert.Same(t, first, best)

	n, err := s.AttemptCount(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	taken, err := s.HasTaken(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, taken)

	none := NewService(&fakeRepo{})
	best, err = none.BestScore(ctx, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, best)

	taken, err = none.HasTaken(ctx, 1, 1)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestService_RecentResultsUsesThirtyDayWindow(t *testing.T) {
	now := time.Date(2024, 6, 30, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	s := &quizResultService{repo: repo, now: func() time.Time { return now }}

	_, err := s.RecentResults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC), repo.since)
}

func TestService_ResultsBetweenRejectsInvertedRange(t *testing.T) {
	s := NewService(&fakeRepo{})
	now := time.Now()

	_, err := s.ResultsBetween(context.Background(), now, now.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = s.ResultsBetween(context.Background(), now, now)
	assert.NoError(t, err)
}
