package models

import "time"

type StudyItemType string

const (
	StudyNote  StudyItemType = "note"
	StudyVoice StudyItemType = "voice"
	StudyImage StudyItemType = "image"
)

// StudyItem is a learner artifact kept in the user's study gallery. Content
// holds free text, an audio reference or an image reference depending on Type.
type StudyItem struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Type      StudyItemType `json:"type"`
	Content   string        `json:"content"`
	CourseID  string        `json:"courseId,omitempty"`
	ModuleID  string        `json:"moduleId,omitempty"`
	LessonID  string        `json:"lessonId,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type CourseProgress struct {
	CourseID         string  `json:"courseId"`
	LessonsCompleted int     `json:"lessonsCompleted"`
	TotalLessons     int     `json:"totalLessons"`
	CompletionRate   float64 `json:"completionRate"`
}
