package models

import "time"

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID               string        `json:"id"`
	Email            string        `json:"email"`
	PasswordHash     string        `json:"-"`
	Name             string        `json:"name"`
	Role             Role          `json:"role"`
	Avatar           string        `json:"avatar,omitempty"`
	EnrolledCourses  []string      `json:"enrolledCourses"`
	CompletedLessons []string      `json:"completedLessons"`
	QuizAttempts     []QuizAttempt `json:"quizAttempts"`
	CompletedQuizzes []string      `json:"completedQuizzes"`
	StudyGallery     []StudyItem   `json:"studyGallery"`
	Badges           []Badge       `json:"badges"`
	Certificates     []Certificate `json:"certificates"`
	CreatedAt        time.Time     `json:"createdAt"`
}

type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	AwardedAt   time.Time `json:"awardedAt"`
}

type Certificate struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	IssuedAt    time.Time `json:"issuedAt"`
}

// Clone returns a deep copy of u with the password hash stripped.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.PasswordHash = ""
	out.EnrolledCourses = append([]string{}, u.EnrolledCourses...)
	out.CompletedLessons = append([]string{}, u.CompletedLessons...)
	out.CompletedQuizzes = append([]string{}, u.CompletedQuizzes...)
	out.QuizAttempts = make([]QuizAttempt, len(u.QuizAttempts))
	for i, a := range u.QuizAttempts {
		out.QuizAttempts[i] = a.clone()
	}
	out.StudyGallery = append([]StudyItem{}, u.StudyGallery...)
	out.Badges = append([]Badge{}, u.Badges...)
	out.Certificates = append([]Certificate{}, u.Certificates...)
	return &out
}

// HasEnrolled reports whether courseID is in the user's enrolments.
func (u *User) HasEnrolled(courseID string) bool {
	return contains(u.EnrolledCourses, courseID)
}

// HasCompletedLesson reports whether lessonID is in the user's completed set.
func (u *User) HasCompletedLesson(lessonID string) bool {
	return contains(u.CompletedLessons, lessonID)
}

// HasCompletedQuiz reports whether quizID was passed at least once.
func (u *User) HasCompletedQuiz(quizID string) bool {
	return contains(u.CompletedQuizzes, quizID)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
