package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveQuizAttemptCompletesQuizOnce(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")

	assert.True(t, s.SaveQuizAttempt(u.ID, "q1", 80, []int{0, 1, 1, 2, 0}, 5, true))
	assert.True(t, s.SaveQuizAttempt(u.ID, "q1", 100, []int{0, 1, 1, 2, 1}, 5, true))

	got := s.GetUserByID(u.ID)
	assert.Equal(t, []string{"q1"}, got.CompletedQuizzes)
	assert.Len(t, got.QuizAttempts, 2)
	assert.False(t, s.SaveQuizAttempt("missing", "q1", 0, nil, 5, false))
}

func TestFailedAttemptDoesNotCompleteQuiz(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")

	require.True(t, s.SaveQuizAttempt(u.ID, "q1", 60, []int{0, 1, 1, 0, 0}, 5, false))
	assert.Empty(t, s.GetUserByID(u.ID).CompletedQuizzes)
}

func TestGetQuizAttemptsKeepsOrder(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")

	require.True(t, s.SaveQuizAttempt(u.ID, "q1", 20, []int{0}, 5, false))
	require.True(t, s.SaveQuizAttempt(u.ID, "q2", 100, []int{0, 1, 1}, 3, true))
	require.True(t, s.SaveQuizAttempt(u.ID, "q1", 40, []int{0, 1}, 5, false))

	attempts := s.GetQuizAttempts(u.ID, "q1")
	require.Len(t, attempts, 2)
	assert.Equal(t, 20, attempts[0].Score)
	assert.Equal(t, 40, attempts[1].Score)
	assert.Equal(t, u.ID, attempts[0].UserID)

	attempts[0].Answers[0] = 3
	assert.Equal(t, 0, s.GetQuizAttempts(u.ID, "q1")[0].Answers[0])
	assert.Empty(t, s.GetQuizAttempts(u.ID, "q9"))
}

func TestSubmitQuiz(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")
	started := time.Now().UTC().Add(-time.Minute)

	sub := s.SubmitQuiz(u.ID, "q1", []int{0, 1, 1, 2, 0}, started)
	require.NotNil(t, sub)
	assert.Equal(t, 4, sub.Result.Correct)
	assert.Equal(t, 80, sub.Result.Score)
	assert.True(t, sub.Result.Passed)
	assert.Equal(t, 5, sub.Attempt.TotalQuestions)
	assert.Equal(t, started, sub.Attempt.StartedAt)

	sub = s.SubmitQuiz(u.ID, "q1", []int{0, 1, 1, 0, 0}, time.Time{})
	require.NotNil(t, sub)
	assert.Equal(t, 60, sub.Result.Score)
	assert.False(t, sub.Result.Passed)

	got := s.GetUserByID(u.ID)
	assert.Equal(t, []string{"q1"}, got.CompletedQuizzes)
	assert.Len(t, got.QuizAttempts, 2)

	assert.Nil(t, s.SubmitQuiz(u.ID, "missing", nil, time.Time{}))
	assert.Nil(t, s.SubmitQuiz("missing", "q1", nil, time.Time{}))
}

func TestQuizAttemptsKeepQuizID(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")

	submitted, clobberSubmitted := reusedBuffer("q1")
	require.NotNil(t, s.SubmitQuiz(u.ID, submitted, []int{0, 1, 1, 2, 1}, time.Time{}))
	clobberSubmitted()

	saved, clobberSaved := reusedBuffer("q2")
	require.True(t, s.SaveQuizAttempt(u.ID, saved, 100, []int{0, 1, 1}, 3, true))
	clobberSaved()

	assert.Len(t, s.GetQuizAttempts(u.ID, "q1"), 1)
	assert.Len(t, s.GetQuizAttempts(u.ID, "q2"), 1)
	assert.Equal(t, []string{"q1", "q2"}, s.GetUserByID(u.ID).CompletedQuizzes)
}

func TestGetQuizLesson(t *testing.T) {
	s := newTestStore(t, true)

	courseID, lessonID, ok := s.GetQuizLesson("q2")
	require.True(t, ok)
	assert.Equal(t, "2", courseID)
	assert.Equal(t, "l7", lessonID)

	courseID, lessonID, ok = s.GetQuizLesson("q1")
	require.True(t, ok)
	assert.Equal(t, "1", courseID)
	assert.Equal(t, "l3", lessonID)

	_, _, ok = s.GetQuizLesson("missing")
	assert.False(t, ok)
}
