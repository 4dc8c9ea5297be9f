package database

import (
	"math"
	"strings"

	"biophilic/backend/models"
)

func (s *Store) GetCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, *c.Clone())
	}
	return out
}

func (s *Store) GetCourseByID(id string) *models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.coursesByID[id]
	if !ok {
		return nil
	}
	return c.Clone()
}

func (s *Store) GetFeaturedCourses() []models.Course {
	return s.SearchCourses(CourseFilter{FeaturedOnly: true})
}

type CourseFilter struct {
	// Query matches title, description or instructor, case-insensitively.
	Query        string
	FreeOnly     bool
	FeaturedOnly bool
}

// SearchCourses filters the catalogue, keeping declared order.
func (s *Store) SearchCourses(f CourseFilter) []models.Course {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Course{}
	for _, c := range s.courses {
		if f.FreeOnly && !c.IsFree {
			continue
		}
		if f.FeaturedOnly && !c.IsFeatured {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Description), q) &&
			!strings.Contains(strings.ToLower(c.Instructor), q) {
			continue
		}
		out = append(out, *c.Clone())
	}
	return out
}

// Enroll adds courseID to the user's enrolments. It returns false when
// either side is missing or the user is already enrolled.
func (s *Store) Enroll(userID, courseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	c := s.coursesByID[courseID]
	if u == nil || c == nil || u.HasEnrolled(c.ID) {
		return false
	}
	// Record the catalogue's own id; courseID may alias a request buffer.
	u.EnrolledCourses = append(u.EnrolledCourses, c.ID)
	s.log.Debug("enrolled", "user_id", userID, "course_id", courseID)
	return true
}

func (s *Store) IsEnrolled(userID, courseID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userLocked(userID)
	return u != nil && u.HasEnrolled(courseID)
}

// GetEnrolledCourses returns the user's courses in enrolment order, skipping
// ids that no longer resolve.
func (s *Store) GetEnrolledCourses(userID string) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userLocked(userID)
	if u == nil {
		return nil
	}
	out := []models.Course{}
	for _, id := range u.EnrolledCourses {
		if c := s.coursesByID[id]; c != nil {
			out = append(out, *c.Clone())
		}
	}
	return out
}

func (s *Store) GetLessonByID(id string) *models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.lessons[id]
	if !ok {
		return nil
	}
	l := ref.lesson().Clone()
	return &l
}

func (s *Store) GetModuleByLessonID(lessonID string) *models.Module {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.lessons[lessonID]
	if !ok {
		return nil
	}
	m := ref.course.Modules[ref.module].Clone()
	return &m
}

// GetNextLesson returns the lesson after currentLessonID in the course's
// flattened sequence, crossing module boundaries.
func (s *Store) GetNextLesson(courseID, currentLessonID string) *models.Lesson {
	return s.neighbourLesson(courseID, currentLessonID, 1)
}

// GetPreviousLesson is the mirror of GetNextLesson: from the first lesson
// of a module it steps back to the last lesson of the module before.
func (s *Store) GetPreviousLesson(courseID, currentLessonID string) *models.Lesson {
	return s.neighbourLesson(courseID, currentLessonID, -1)
}

func (s *Store) neighbourLesson(courseID, lessonID string, step int) *models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq := models.LessonSequence(s.coursesByID[courseID])
	for i, l := range seq {
		if l.ID != lessonID {
			continue
		}
		j := i + step
		if j < 0 || j >= len(seq) {
			return nil
		}
		l := seq[j].Clone()
		return &l
	}
	return nil
}

func (s *Store) IsLessonCompleted(userID, lessonID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userLocked(userID)
	return u != nil && u.HasCompletedLesson(lessonID)
}

// MarkLessonAsCompleted records that the user has viewed the lesson. It is
// idempotent and returns false only when the user or lesson is unknown.
func (s *Store) MarkLessonAsCompleted(userID, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	if u == nil {
		return false
	}
	ref, ok := s.lessons[lessonID]
	if !ok {
		return false
	}
	id := ref.lesson().ID
	if !u.HasCompletedLesson(id) {
		u.CompletedLessons = append(u.CompletedLessons, id)
		s.log.Debug("lesson completed", "user_id", userID, "lesson_id", lessonID)
	}
	return true
}

// CanAccessLesson reports whether the user may open the lesson. Enrolment
// unlocks the whole course; without it only lessons whose course, module
// and lesson are all unlocked are open.
func (s *Store) CanAccessLesson(userID, courseID, lessonID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.coursesByID[courseID]
	if c == nil {
		return false
	}
	m, l := c.FindLesson(lessonID)
	if l == nil {
		return false
	}
	if u := s.userLocked(userID); u != nil && u.HasEnrolled(courseID) {
		return true
	}
	return !c.IsLocked && !m.IsLocked && !l.IsLocked
}

// GetCourseProgress counts the user's completed lessons within the course.
func (s *Store) GetCourseProgress(userID, courseID string) *models.CourseProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userLocked(userID)
	c := s.coursesByID[courseID]
	if u == nil || c == nil {
		return nil
	}
	p := courseProgress(u, c)
	return &p
}

func courseProgress(u *models.User, c *models.Course) models.CourseProgress {
	p := models.CourseProgress{CourseID: c.ID}
	for _, l := range models.LessonSequence(c) {
		p.TotalLessons++
		if u.HasCompletedLesson(l.ID) {
			p.LessonsCompleted++
		}
	}
	if p.TotalLessons > 0 {
		p.CompletionRate = math.Round(float64(p.LessonsCompleted)/float64(p.TotalLessons)*1000) / 10
	}
	return p
}
