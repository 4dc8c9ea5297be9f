package models

// View models handed to the HTTP layer. They are derived from the storage
// entities by the pure functions below and never stored.

type CourseSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price"`
	IsFree      bool    `json:"isFree"`
	IsLocked    bool    `json:"isLocked"`
	IsFeatured  bool    `json:"isFeatured"`
	Modules     int     `json:"modules"`
	Lessons     int     `json:"lessons"`
}

func SummarizeCourse(c Course) CourseSummary {
	price := c.Price
	if c.IsFree {
		price = 0
	}
	return CourseSummary{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Instructor:  c.Instructor,
		Image:       c.Image,
		Price:       price,
		IsFree:      c.IsFree,
		IsLocked:    c.IsLocked,
		IsFeatured:  c.IsFeatured,
		Modules:     len(c.Modules),
		Lessons:     c.LessonCount(),
	}
}

func SummarizeCourses(courses []Course) []CourseSummary {
	out := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, SummarizeCourse(c))
	}
	return out
}

type UserProfile struct {
	ID               string        `json:"id"`
	Email            string        `json:"email"`
	Name             string        `json:"name"`
	Role             Role          `json:"role"`
	Avatar           string        `json:"avatar,omitempty"`
	EnrolledCourses  []string      `json:"enrolledCourses"`
	CompletedLessons int           `json:"completedLessons"`
	CompletedQuizzes int           `json:"completedQuizzes"`
	StudyItems       int           `json:"studyItems"`
	Badges           []Badge       `json:"badges"`
	Certificates     []Certificate `json:"certificates"`
}

func ProfileOf(u *User) UserProfile {
	return UserProfile{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Role:             u.Role,
		Avatar:           u.Avatar,
		EnrolledCourses:  append([]string{}, u.EnrolledCourses...),
		CompletedLessons: len(u.CompletedLessons),
		CompletedQuizzes: len(u.CompletedQuizzes),
		StudyItems:       len(u.StudyGallery),
		Badges:           append([]Badge{}, u.Badges...),
		Certificates:     append([]Certificate{}, u.Certificates...),
	}
}

// LessonView is a lesson as shown to a learner: the quiz answer key is
// removed so it never leaves the server.
type LessonView struct {
	Lesson
	CourseID  string `json:"courseId"`
	ModuleID  string `json:"moduleId"`
	Completed bool   `json:"completed"`
}

func ViewLesson(courseID, moduleID string, l Lesson, completed bool) LessonView {
	if l.Quiz != nil {
		q := *l.Quiz
		q.Questions = make([]QuizQuestion, len(l.Quiz.Questions))
		for i, question := range l.Quiz.Questions {
			question.CorrectAnswer = Unanswered
			question.Explanation = ""
			q.Questions[i] = question
		}
		l.Quiz = &q
	}
	return LessonView{Lesson: l, CourseID: courseID, ModuleID: moduleID, Completed: completed}
}

type ModuleView struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	IsLocked bool         `json:"isLocked"`
	Lessons  []LessonView `json:"lessons"`
}

// CourseDetail is the course page: the summary plus every module with its
// lessons projected through ViewLesson.
type CourseDetail struct {
	CourseSummary
	InstructorImage string       `json:"instructorImage,omitempty"`
	Modules         []ModuleView `json:"modules"`
}

// DetailCourse builds the course page. completed may be nil for anonymous
// callers.
func DetailCourse(c Course, completed func(lessonID string) bool) CourseDetail {
	out := CourseDetail{
		CourseSummary:   SummarizeCourse(c),
		InstructorImage: c.InstructorImage,
		Modules:         make([]ModuleView, 0, len(c.Modules)),
	}
	for _, m := range c.Modules {
		mv := ModuleView{ID: m.ID, Title: m.Title, IsLocked: m.IsLocked, Lessons: make([]LessonView, 0, len(m.Lessons))}
		for _, l := range m.Lessons {
			done := completed != nil && completed(l.ID)
			mv.Lessons = append(mv.Lessons, ViewLesson(c.ID, m.ID, l, done))
		}
		out.Modules = append(out.Modules, mv)
	}
	return out
}
