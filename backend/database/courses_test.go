package database

import (
	"testing"

	"biophilic/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessonIDs(ls ...*models.Lesson) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		if l != nil {
			out[i] = l.ID
		}
	}
	return out
}

func TestLessonNavigationAcrossModules(t *testing.T) {
	s := newTestStore(t, true)

	demo := s.Authenticate("demo@biophilic.edu", "password123")
	require.NotNil(t, demo)
	require.True(t, s.IsEnrolled(demo.ID, "1"))

	assert.Equal(t, "l4", s.GetNextLesson("1", "l3").ID)
	assert.Equal(t, "l3", s.GetPreviousLesson("1", "l4").ID)
	assert.Nil(t, s.GetNextLesson("1", "l5"))
	assert.Nil(t, s.GetPreviousLesson("1", "l1"))
	assert.Nil(t, s.GetNextLesson("1", "missing"))
	assert.Nil(t, s.GetNextLesson("missing", "l1"))
	// l6 belongs to another course.
	assert.Nil(t, s.GetNextLesson("1", "l6"))
}

func TestNavigationFollowsFlattenedSequence(t *testing.T) {
	s := newTestStore(t, false)
	require.NoError(t, s.AddCourse(models.Course{ID: "c", Modules: []models.Module{
		{ID: "m1", Lessons: []models.Lesson{{ID: "a"}, {ID: "b"}}},
		{ID: "empty"},
		{ID: "m3", Lessons: []models.Lesson{{ID: "c"}}},
	}}))

	var forward []*models.Lesson
	for l := s.GetLessonByID("a"); l != nil; l = s.GetNextLesson("c", l.ID) {
		forward = append(forward, l)
	}
	assert.Equal(t, []string{"a", "b", "c"}, lessonIDs(forward...))
	assert.Equal(t, "b", s.GetPreviousLesson("c", "c").ID)
}

func TestEnrollTwice(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")

	assert.True(t, s.Enroll(u.ID, "2"))
	assert.False(t, s.Enroll(u.ID, "2"))
	assert.Equal(t, []string{"2"}, s.GetUserByID(u.ID).EnrolledCourses)

	assert.False(t, s.Enroll(u.ID, "missing"))
	assert.False(t, s.Enroll("missing", "1"))
}

func TestMarkLessonAsCompletedIsIdempotent(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")

	for i := 0; i < 3; i++ {
		assert.True(t, s.MarkLessonAsCompleted(u.ID, "l2"))
	}
	assert.Equal(t, []string{"l2"}, s.GetUserByID(u.ID).CompletedLessons)
	assert.True(t, s.IsLessonCompleted(u.ID, "l2"))
	assert.False(t, s.IsLessonCompleted(u.ID, "l3"))

	assert.False(t, s.MarkLessonAsCompleted(u.ID, "missing"))
	assert.False(t, s.MarkLessonAsCompleted("missing", "l2"))
}

func TestCanAccessLesson(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")

	assert.True(t, s.CanAccessLesson(u.ID, "1", "l1"))
	assert.False(t, s.CanAccessLesson(u.ID, "2", "l6"), "locked course")
	assert.False(t, s.CanAccessLesson(u.ID, "1", "l6"), "lesson outside course")
	assert.False(t, s.CanAccessLesson(u.ID, "missing", "l1"))

	require.True(t, s.Enroll(u.ID, "2"))
	assert.True(t, s.CanAccessLesson(u.ID, "2", "l6"))
	assert.True(t, s.CanAccessLesson(u.ID, "2", "l8"))
}

func TestCourseProgress(t *testing.T) {
	s := newTestStore(t, true)

	p := s.GetCourseProgress("1", "1")
	require.NotNil(t, p)
	assert.Equal(t, 1, p.LessonsCompleted)
	assert.Equal(t, 5, p.TotalLessons)
	assert.Equal(t, 20.0, p.CompletionRate)

	require.True(t, s.MarkLessonAsCompleted("1", "l2"))
	require.True(t, s.MarkLessonAsCompleted("1", "l6"))
	assert.Equal(t, 40.0, s.GetCourseProgress("1", "1").CompletionRate)
	assert.Nil(t, s.GetCourseProgress("1", "missing"))
}

func TestSearchCourses(t *testing.T) {
	s := newTestStore(t, true)

	ids := func(cs []models.Course) []string {
		out := []string{}
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}
	assert.Equal(t, []string{"1", "3"}, ids(s.GetFeaturedCourses()))
	assert.Equal(t, []string{"1"}, ids(s.SearchCourses(CourseFilter{FreeOnly: true})))
	assert.Equal(t, []string{"3"}, ids(s.SearchCourses(CourseFilter{Query: "  PLANT "})))
	assert.Equal(t, []string{"1", "2"}, ids(s.SearchCourses(CourseFilter{Query: "maya"})))
	assert.Empty(t, s.SearchCourses(CourseFilter{Query: "nothing like this"}))
}

func TestGetEnrolledCourses(t *testing.T) {
	s := newTestStore(t, true)

	courses := s.GetEnrolledCourses("1")
	require.Len(t, courses, 1)
	assert.Equal(t, "1", courses[0].ID)
	assert.Nil(t, s.GetEnrolledCourses("missing"))
	assert.Nil(t, s.GetCourseByID("missing"))
}

func TestStoredIDsOutliveCallerBuffers(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")

	courseID, clobberCourse := reusedBuffer("2")
	require.True(t, s.Enroll(u.ID, courseID))
	clobberCourse()

	lessonID, clobberLesson := reusedBuffer("l2")
	require.True(t, s.MarkLessonAsCompleted(u.ID, lessonID))
	clobberLesson()

	assert.True(t, s.IsEnrolled(u.ID, "2"))
	assert.True(t, s.IsLessonCompleted(u.ID, "l2"))
	got := s.GetUserByID(u.ID)
	assert.Equal(t, []string{"2"}, got.EnrolledCourses)
	assert.Equal(t, []string{"l2"}, got.CompletedLessons)
}
