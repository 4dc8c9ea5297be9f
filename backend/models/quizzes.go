package models

import (
	"math"
	"time"
)

// Unanswered marks a question the learner skipped in QuizAttempt.Answers.
const Unanswered = -1

type Quiz struct {
	ID           string         `json:"id"`
	Title        string         `json:"title,omitempty"`
	Questions    []QuizQuestion `json:"questions"`
	PassingScore int            `json:"passingScore"`        // percent, 0-100
	TimeLimit    int            `json:"timeLimit,omitempty"` // seconds, 0 means untimed
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type QuizAttempt struct {
	ID             string    `json:"id"`
	QuizID         string    `json:"quizId"`
	UserID         string    `json:"userId"`
	Score          int       `json:"score"`
	Answers        []int     `json:"answers"`
	TotalQuestions int       `json:"totalQuestions"`
	Passed         bool      `json:"passed"`
	StartedAt      time.Time `json:"startedAt"`
	CompletedAt    time.Time `json:"completedAt"`
}

func (a QuizAttempt) clone() QuizAttempt {
	a.Answers = append([]int{}, a.Answers...)
	return a
}

type QuizResult struct {
	Correct int  `json:"correct"`
	Total   int  `json:"total"`
	Score   int  `json:"score"`
	Passed  bool `json:"passed"`
}

// GradeQuiz scores answers against the quiz key. answers is index-aligned
// with q.Questions; a missing index or Unanswered counts as incorrect and
// there is no partial credit. A quiz without questions never passes.
func GradeQuiz(q *Quiz, answers []int) QuizResult {
	res := QuizResult{Total: len(q.Questions)}
	if res.Total == 0 {
		return res
	}
	for i, question := range q.Questions {
		if i < len(answers) && answers[i] != Unanswered && answers[i] == question.CorrectAnswer {
			res.Correct++
		}
	}
	res.Score = int(math.Round(100 * float64(res.Correct) / float64(res.Total)))
	res.Passed = res.Score >= q.PassingScore
	return res
}

// NormalizeAnswers turns a sparse answer list into the stored form, padding
// to total and replacing nil entries with Unanswered.
func NormalizeAnswers(answers []*int, total int) []int {
	n := total
	if len(answers) > n {
		n = len(answers)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = Unanswered
		if i < len(answers) && answers[i] != nil && *answers[i] >= 0 {
			out[i] = *answers[i]
		}
	}
	return out
}

// Clone returns a deep copy of q.
func (q *Quiz) Clone() *Quiz {
	if q == nil {
		return nil
	}
	out := *q
	out.Questions = make([]QuizQuestion, len(q.Questions))
	for i, question := range q.Questions {
		question.Options = append([]string{}, question.Options...)
		out.Questions[i] = question
	}
	return &out
}
