package database

import (
	"math"

	"biophilic/backend/models"
)

// GetCourseAnalytics summarises progress of every student enrolled in the
// course, in signup order.
func (s *Store) GetCourseAnalytics(courseID string) *models.CourseAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.coursesByID[courseID]
	if c == nil {
		return nil
	}

	quizIDs := make(map[string]struct{})
	for _, l := range models.LessonSequence(c) {
		if l.Quiz != nil {
			quizIDs[l.Quiz.ID] = struct{}{}
		}
	}

	out := &models.CourseAnalytics{CourseID: c.ID, CourseTitle: c.Title, Students: []models.StudentAnalytics{}}
	var total float64
	for _, u := range s.users {
		if !u.HasEnrolled(courseID) {
			continue
		}
		p := courseProgress(u, c)
		sa := models.StudentAnalytics{
			UserID:           u.ID,
			Name:             u.Name,
			LessonsCompleted: p.LessonsCompleted,
			CompletionRate:   p.CompletionRate,
		}
		for _, a := range u.QuizAttempts {
			if _, ok := quizIDs[a.QuizID]; ok {
				sa.QuizAttempts++
			}
		}
		for _, q := range u.CompletedQuizzes {
			if _, ok := quizIDs[q]; ok {
				sa.QuizzesPassed++
			}
		}
		out.Students = append(out.Students, sa)
		total += p.CompletionRate
	}
	out.Enrollments = len(out.Students)
	if out.Enrollments > 0 {
		out.AvgProgress = math.Round(total/float64(out.Enrollments)*10) / 10
	}
	return out
}
