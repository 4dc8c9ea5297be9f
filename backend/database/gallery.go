package database

import "biophilic/backend/models"

type StudyItemInput struct {
	Title    string
	Type     models.StudyItemType
	Content  string
	CourseID string
	ModuleID string
	LessonID string
}

// AddStudyNote appends an item to the user's gallery; Type defaults to note.
func (s *Store) AddStudyNote(userID string, in StudyItemInput) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	if u == nil {
		return "", false
	}
	if in.Type == "" {
		in.Type = models.StudyNote
	}
	item := models.StudyItem{
		ID:        s.newID(),
		Title:     in.Title,
		Type:      in.Type,
		Content:   in.Content,
		CourseID:  in.CourseID,
		ModuleID:  in.ModuleID,
		LessonID:  in.LessonID,
		CreatedAt: s.now(),
	}
	u.StudyGallery = append(u.StudyGallery, item)
	return item.ID, true
}

func (s *Store) GetStudyGallery(userID string) []models.StudyItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.userLocked(userID)
	if u == nil {
		return nil
	}
	return append([]models.StudyItem{}, u.StudyGallery...)
}

// DeleteStudyItem removes the item from its owner's gallery only.
func (s *Store) DeleteStudyItem(userID, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	if u == nil {
		return false
	}
	for i, item := range u.StudyGallery {
		if item.ID == itemID {
			u.StudyGallery = append(u.StudyGallery[:i:i], u.StudyGallery[i+1:]...)
			return true
		}
	}
	return false
}
