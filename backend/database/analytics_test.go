package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCourseAnalytics(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")
	require.True(t, s.Enroll(u.ID, "1"))
	for _, l := range []string{"l1", "l2", "l3"} {
		require.True(t, s.MarkLessonAsCompleted(u.ID, l))
	}
	require.True(t, s.SaveQuizAttempt(u.ID, "q1", 40, []int{0, 1}, 5, false))
	require.True(t, s.SaveQuizAttempt(u.ID, "q1", 100, []int{0, 1, 1, 2, 1}, 5, true))
	require.True(t, s.SaveQuizAttempt(u.ID, "q2", 100, []int{0, 1, 1}, 3, true))

	a := s.GetCourseAnalytics("1")
	require.NotNil(t, a)
	assert.Equal(t, 2, a.Enrollments)
	require.Len(t, a.Students, 2)

	demo, learner := a.Students[0], a.Students[1]
	assert.Equal(t, "1", demo.UserID)
	assert.Equal(t, 20.0, demo.CompletionRate)
	assert.Equal(t, u.ID, learner.UserID)
	assert.Equal(t, 3, learner.LessonsCompleted)
	assert.Equal(t, 60.0, learner.CompletionRate)
	assert.Equal(t, 2, learner.QuizAttempts)
	assert.Equal(t, 1, learner.QuizzesPassed)
	assert.Equal(t, 40.0, a.AvgProgress)

	empty := s.GetCourseAnalytics("3")
	require.NotNil(t, empty)
	assert.Zero(t, empty.Enrollments)
	assert.Nil(t, s.GetCourseAnalytics("missing"))
}
