package database

import (
	"strings"
	"time"

	"biophilic/backend/models"
)

// SaveQuizAttempt records an already graded attempt. A passing attempt also
// adds quizID to the user's completed quizzes, once. quizID is copied, so a
// request-scoped string is safe to pass.
func (s *Store) SaveQuizAttempt(userID, quizID string, score int, answers []int, totalQuestions int, passed bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	if u == nil {
		return false
	}
	now := s.now()
	s.appendAttemptLocked(u, models.QuizAttempt{
		QuizID:         strings.Clone(quizID),
		Score:          score,
		Answers:        answers,
		TotalQuestions: totalQuestions,
		Passed:         passed,
		StartedAt:      now,
		CompletedAt:    now,
	})
	return true
}

func (s *Store) appendAttemptLocked(u *models.User, a models.QuizAttempt) models.QuizAttempt {
	a.ID = s.newID()
	a.UserID = u.ID
	a.Answers = append([]int{}, a.Answers...)
	u.QuizAttempts = append(u.QuizAttempts, a)
	if a.Passed && !u.HasCompletedQuiz(a.QuizID) {
		u.CompletedQuizzes = append(u.CompletedQuizzes, a.QuizID)
	}
	s.log.Debug("quiz attempt saved", "user_id", u.ID, "quiz_id", a.QuizID, "score", a.Score, "passed", a.Passed)
	return a
}

// GetQuizAttempts returns the user's attempts at quizID, oldest first.
func (s *Store) GetQuizAttempts(userID, quizID string) []models.QuizAttempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userLocked(userID)
	if u == nil {
		return nil
	}
	out := []models.QuizAttempt{}
	for _, a := range u.QuizAttempts {
		if a.QuizID == quizID {
			a.Answers = append([]int{}, a.Answers...)
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) GetQuizByID(quizID string) *models.Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.quizzes[quizID]
	if !ok {
		return nil
	}
	return ref.lesson().Quiz.Clone()
}

// GetQuizLesson resolves the course and lesson that carry quizID.
func (s *Store) GetQuizLesson(quizID string) (courseID, lessonID string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.quizzes[quizID]
	if !ok {
		return "", "", false
	}
	return ref.course.ID, ref.lesson().ID, true
}

type QuizSubmission struct {
	Attempt models.QuizAttempt `json:"attempt"`
	Result  models.QuizResult  `json:"result"`
}

// SubmitQuiz grades answers against the quiz and records the attempt.
// startedAt may be zero when the caller did not time the attempt.
func (s *Store) SubmitQuiz(userID, quizID string, answers []int, startedAt time.Time) *QuizSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	ref, ok := s.quizzes[quizID]
	if u == nil || !ok {
		return nil
	}
	q := ref.lesson().Quiz
	res := models.GradeQuiz(q, answers)
	now := s.now()
	if startedAt.IsZero() || startedAt.After(now) {
		startedAt = now
	}
	a := s.appendAttemptLocked(u, models.QuizAttempt{
		QuizID:         q.ID,
		Score:          res.Score,
		Answers:        answers,
		TotalQuestions: res.Total,
		Passed:         res.Passed,
		StartedAt:      startedAt,
		CompletedAt:    now,
	})
	a.Answers = append([]int{}, a.Answers...)
	return &QuizSubmission{Attempt: a, Result: res}
}
