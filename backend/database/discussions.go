package database

import "biophilic/backend/models"

type NewThread struct {
	CourseID    string
	StudentID   string
	StudentName string
	Title       string
	Message     string
}

type NewMessage struct {
	ThreadID   string
	SenderID   string
	SenderName string
	Role       models.MessageRole
	Content    string
}

// CreateDiscussionThread opens a thread seeded with the student's question.
// It fails when the course does not exist.
func (s *Store) CreateDiscussionThread(in NewThread) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.coursesByID[in.CourseID]
	if course == nil {
		return "", false
	}
	now := s.now()
	t := &models.DiscussionThread{
		ID:          s.newID(),
		CourseID:    course.ID,
		StudentID:   in.StudentID,
		StudentName: in.StudentName,
		Title:       in.Title,
		Status:      models.ThreadOpen,
		Messages: []models.DiscussionMessage{{
			ID:         s.newID(),
			SenderID:   in.StudentID,
			SenderName: in.StudentName,
			Role:       models.MessageFromStudent,
			Content:    in.Message,
			CreatedAt:  now,
		}},
		CreatedAt:     now,
		LastMessageAt: now,
	}
	s.threads = append(s.threads, t)
	s.log.Debug("thread opened", "thread_id", t.ID, "course_id", t.CourseID)
	return t.ID, true
}

// AddDiscussionMessage appends to a thread and bumps LastMessageAt.
func (s *Store) AddDiscussionMessage(in NewMessage) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.threadLocked(in.ThreadID)
	if t == nil {
		return "", false
	}
	role := in.Role
	if role == "" {
		role = models.MessageFromStudent
	}
	msg := models.DiscussionMessage{
		ID:         s.newID(),
		SenderID:   in.SenderID,
		SenderName: in.SenderName,
		Role:       role,
		Content:    in.Content,
		CreatedAt:  s.now(),
	}
	t.Messages = append(t.Messages, msg)
	t.LastMessageAt = msg.CreatedAt
	return msg.ID, true
}

func (s *Store) GetCourseDiscussions(courseID string) []models.DiscussionThread {
	return s.filterThreads(func(t *models.DiscussionThread) bool { return t.CourseID == courseID })
}

func (s *Store) GetStudentDiscussions(studentID string) []models.DiscussionThread {
	return s.filterThreads(func(t *models.DiscussionThread) bool { return t.StudentID == studentID })
}

func (s *Store) filterThreads(keep func(*models.DiscussionThread) bool) []models.DiscussionThread {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.DiscussionThread{}
	for _, t := range s.threads {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (s *Store) GetDiscussionThread(id string) *models.DiscussionThread {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.threadLocked(id)
	if t == nil {
		return nil
	}
	cp := t.Clone()
	return &cp
}

func (s *Store) CloseDiscussionThread(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.threadLocked(id)
	if t == nil {
		return false
	}
	t.Status = models.ThreadClosed
	return true
}

func (s *Store) threadLocked(id string) *models.DiscussionThread {
	for _, t := range s.threads {
		if t.ID == id {
			return t
		}
	}
	return nil
}
