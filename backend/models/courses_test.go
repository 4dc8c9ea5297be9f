package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func twoModuleCourse() *Course {
	return &Course{
		ID: "1",
		Modules: []Module{
			{ID: "m1", Lessons: []Lesson{{ID: "l1"}, {ID: "l2"}, {ID: "l3"}}},
			{ID: "m2", Lessons: []Lesson{{ID: "l4"}, {ID: "l5"}}},
		},
	}
}

func TestLessonSequence(t *testing.T) {
	var ids []string
	for _, l := range LessonSequence(twoModuleCourse()) {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"l1", "l2", "l3", "l4", "l5"}, ids)
	assert.Nil(t, LessonSequence(nil))
}

func TestFindLesson(t *testing.T) {
	c := twoModuleCourse()

	m, l := c.FindLesson("l4")
	assert.Equal(t, "m2", m.ID)
	assert.Equal(t, "l4", l.ID)

	m, l = c.FindLesson("missing")
	assert.Nil(t, m)
	assert.Nil(t, l)
	assert.Equal(t, 5, c.LessonCount())
}

func TestSummarizeCourseHidesPriceOfFreeCourse(t *testing.T) {
	c := *twoModuleCourse()
	c.Price = 49
	c.IsFree = true

	s := SummarizeCourse(c)

	assert.Zero(t, s.Price)
	assert.Equal(t, 2, s.Modules)
	assert.Equal(t, 5, s.Lessons)
}

func TestViewLessonStripsAnswerKey(t *testing.T) {
	quiz := &Quiz{ID: "q", Questions: []QuizQuestion{{ID: "a", CorrectAnswer: 2, Explanation: "because"}}}
	l := Lesson{ID: "l3", Type: LessonQuiz, Quiz: quiz}

	v := ViewLesson("1", "m1", l, true)

	assert.Equal(t, Unanswered, v.Quiz.Questions[0].CorrectAnswer)
	assert.Empty(t, v.Quiz.Questions[0].Explanation)
	assert.Equal(t, 2, quiz.Questions[0].CorrectAnswer, "source quiz must be untouched")
	assert.True(t, v.Completed)
}

func TestUserCloneStripsHashAndCopies(t *testing.T) {
	u := &User{ID: "u", PasswordHash: "hash", EnrolledCourses: []string{"1"}}

	c := u.Clone()
	c.EnrolledCourses[0] = "2"

	assert.Empty(t, c.PasswordHash)
	assert.Equal(t, "1", u.EnrolledCourses[0])
	assert.True(t, u.HasEnrolled("1"))
}

func TestDetailCourse(t *testing.T) {
	c := *twoModuleCourse()
	c.Modules[0].Lessons[2].Quiz = &Quiz{ID: "q", Questions: []QuizQuestion{{ID: "a", CorrectAnswer: 1}}}

	d := DetailCourse(c, func(id string) bool { return id == "l1" })

	assert.Len(t, d.Modules, 2)
	assert.True(t, d.Modules[0].Lessons[0].Completed)
	assert.False(t, d.Modules[0].Lessons[1].Completed)
	assert.Equal(t, Unanswered, d.Modules[0].Lessons[2].Quiz.Questions[0].CorrectAnswer)
	assert.Equal(t, "m2", d.Modules[1].Lessons[0].ModuleID)

	anon := DetailCourse(c, nil)
	assert.False(t, anon.Modules[0].Lessons[0].Completed)
}

func TestCourseCloneIsDeep(t *testing.T) {
	c := twoModuleCourse()
	c.Modules[0].Lessons[2].Quiz = fiveQuestionQuiz()

	cp := c.Clone()
	cp.Modules[0].Lessons[0].Title = "changed"
	cp.Modules[1].Lessons = cp.Modules[1].Lessons[:1]
	cp.Modules[0].Lessons[2].Quiz.Questions[0].CorrectAnswer = 2
	cp.Modules[0].Lessons[2].Quiz.Questions[0].Options[0] = "z"

	assert.Empty(t, c.Modules[0].Lessons[0].Title)
	assert.Len(t, c.Modules[1].Lessons, 2)
	assert.Equal(t, 1, c.Modules[0].Lessons[2].Quiz.Questions[0].CorrectAnswer)
	assert.Equal(t, "a", c.Modules[0].Lessons[2].Quiz.Questions[0].Options[0])

	assert.Nil(t, (*Course)(nil).Clone())
	assert.Nil(t, (*Quiz)(nil).Clone())
}
