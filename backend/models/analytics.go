package models

type CourseAnalytics struct {
	CourseID    string             `json:"courseId"`
	CourseTitle string             `json:"courseTitle"`
	Enrollments int                `json:"enrollments"`
	AvgProgress float64            `json:"avgProgress"`
	Students    []StudentAnalytics `json:"students"`
}

type StudentAnalytics struct {
	UserID           string  `json:"userId"`
	Name             string  `json:"name"`
	LessonsCompleted int     `json:"lessonsCompleted"`
	CompletionRate   float64 `json:"completionRate"`
	QuizAttempts     int     `json:"quizAttempts"`
	QuizzesPassed    int     `json:"quizzesPassed"`
}
