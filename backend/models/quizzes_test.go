package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fiveQuestionQuiz() *Quiz {
	q := &Quiz{ID: "q", PassingScore: 70}
	for i := 0; i < 5; i++ {
		q.Questions = append(q.Questions, QuizQuestion{Options: []string{"a", "b", "c"}, CorrectAnswer: 1})
	}
	return q
}

func TestGradeQuiz(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    QuizResult
	}{
		{
			name:    "four of five passes",
			answers: []int{1, 1, 1, 1, 0},
			want:    QuizResult{Correct: 4, Total: 5, Score: 80, Passed: true},
		},
		{
			name:    "three of five fails",
			answers: []int{1, 1, 1, 0, 0},
			want:    QuizResult{Correct: 3, Total: 5, Score: 60, Passed: false},
		},
		{
			name:    "unanswered counts wrong",
			answers: []int{1, Unanswered, 1, 1, Unanswered},
			want:    QuizResult{Correct: 3, Total: 5, Score: 60, Passed: false},
		},
		{
			name:    "short answer list",
			answers: []int{1, 1},
			want:    QuizResult{Correct: 2, Total: 5, Score: 40, Passed: false},
		},
		{
			name:    "all correct",
			answers: []int{1, 1, 1, 1, 1},
			want:    QuizResult{Correct: 5, Total: 5, Score: 100, Passed: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GradeQuiz(fiveQuestionQuiz(), tt.answers))
		})
	}
}

func TestGradeQuizRoundsScore(t *testing.T) {
	q := &Quiz{PassingScore: 67, Questions: []QuizQuestion{{CorrectAnswer: 0}, {CorrectAnswer: 0}, {CorrectAnswer: 0}}}

	res := GradeQuiz(q, []int{0, 0, 1})

	assert.Equal(t, 67, res.Score)
	assert.True(t, res.Passed)
}

func TestGradeQuizWithoutQuestions(t *testing.T) {
	res := GradeQuiz(&Quiz{PassingScore: 0}, nil)
	assert.Equal(t, QuizResult{}, res)
}

func TestNormalizeAnswers(t *testing.T) {
	one, two, negative := 1, 2, -5
	got := NormalizeAnswers([]*int{&one, nil, &two, &negative}, 5)
	assert.Equal(t, []int{1, Unanswered, 2, Unanswered, Unanswered}, got)
}
