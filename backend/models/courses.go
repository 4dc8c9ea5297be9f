package models

type LessonType string

const (
	LessonVideo      LessonType = "video"
	LessonText       LessonType = "text"
	LessonQuiz       LessonType = "quiz"
	LessonAssignment LessonType = "assignment"
)

type Course struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Instructor      string   `json:"instructor"`
	InstructorImage string   `json:"instructorImage,omitempty"`
	Image           string   `json:"image,omitempty"`
	Price           float64  `json:"price"` // ignored when IsFree
	IsFree          bool     `json:"isFree"`
	IsLocked        bool     `json:"isLocked"`
	IsFeatured      bool     `json:"isFeatured"`
	Modules         []Module `json:"modules"`
}

// Module order inside a course defines lesson sequencing.
type Module struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Lessons  []Lesson `json:"lessons"`
	IsLocked bool     `json:"isLocked"`
}

type Lesson struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	Type                  LessonType `json:"type"`
	Content               string     `json:"content,omitempty"`
	VideoURL              string     `json:"videoUrl,omitempty"`
	Duration              string     `json:"duration,omitempty"`
	Quiz                  *Quiz      `json:"quiz,omitempty"`
	IsLocked              bool       `json:"isLocked"`
	RequiresAudioFeedback bool       `json:"requiresAudioFeedback,omitempty"`
}

// LessonSequence flattens the course into its total lesson order: modules in
// declared order, lessons in declared order within each module.
func LessonSequence(c *Course) []Lesson {
	if c == nil {
		return nil
	}
	var out []Lesson
	for _, m := range c.Modules {
		out = append(out, m.Lessons...)
	}
	return out
}

// LessonCount returns the number of lessons across all modules.
func (c *Course) LessonCount() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}

// FindLesson returns the first lesson with the given id and its module.
func (c *Course) FindLesson(lessonID string) (*Module, *Lesson) {
	for mi := range c.Modules {
		m := &c.Modules[mi]
		for li := range m.Lessons {
			if m.Lessons[li].ID == lessonID {
				return m, &m.Lessons[li]
			}
		}
	}
	return nil, nil
}

// Clone returns a deep copy of c, quizzes included.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	out := *c
	out.Modules = make([]Module, len(c.Modules))
	for i, m := range c.Modules {
		out.Modules[i] = m.Clone()
	}
	return &out
}

func (m Module) Clone() Module {
	lessons := make([]Lesson, len(m.Lessons))
	for i, l := range m.Lessons {
		lessons[i] = l.Clone()
	}
	m.Lessons = lessons
	return m
}

func (l Lesson) Clone() Lesson {
	l.Quiz = l.Quiz.Clone()
	return l
}
