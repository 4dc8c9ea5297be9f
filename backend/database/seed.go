package database

import (
	"fmt"

	"biophilic/backend/models"

	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	id, email, password, name string
	role                      models.Role
	enrolled, completed       []string
}

var demoUsers = []seedUser{
	{id: "1", email: "demo@biophilic.edu", password: "password123", name: "Demo Student", role: models.RoleStudent,
		enrolled: []string{"1"}, completed: []string{"l1"}},
	{id: "2", email: "instructor@biophilic.edu", password: "instructor123", name: "Dr. Maya Green", role: models.RoleInstructor},
	{id: "3", email: "admin@biophilic.edu", password: "admin123", name: "Site Admin", role: models.RoleAdmin},
}

func demoCourses() []models.Course {
	return []models.Course{
		{
			ID:              "1",
			Title:           "Biophilic Design Fundamentals",
			Description:     "Learn how contact with nature shapes wellbeing in the spaces we build.",
			Instructor:      "Dr. Maya Green",
			InstructorImage: "/images/instructors/maya-green.jpg",
			Image:           "/images/courses/fundamentals.jpg",
			IsFree:          true,
			IsFeatured:      true,
			Modules: []models.Module{
				{
					ID:    "m1",
					Title: "Introduction to Biophilic Design",
					Lessons: []models.Lesson{
						{ID: "l1", Title: "What is Biophilia?", Type: models.LessonVideo, VideoURL: "https://videos.biophilic.edu/l1.mp4", Duration: "12:30"},
						{ID: "l2", Title: "The 14 Patterns", Type: models.LessonText, Content: "Biophilic patterns fall into three groups: nature in the space, natural analogues and nature of the space."},
						{ID: "l3", Title: "Fundamentals Check", Type: models.LessonQuiz, Quiz: fundamentalsQuiz()},
					},
				},
				{
					ID:    "m2",
					Title: "Nature in the Built Environment",
					Lessons: []models.Lesson{
						{ID: "l4", Title: "Light and Air", Type: models.LessonVideo, VideoURL: "https://videos.biophilic.edu/l4.mp4", Duration: "18:05", RequiresAudioFeedback: true},
						{ID: "l5", Title: "Design a Living Wall", Type: models.LessonAssignment, Content: "Sketch a living wall for a room you use every day and describe its plant palette."},
					},
				},
			},
		},
		{
			ID:              "2",
			Title:           "Advanced Biophilic Architecture",
			Description:     "Structural, acoustic and thermal strategies for nature-integrated buildings.",
			Instructor:      "Dr. Maya Green",
			InstructorImage: "/images/instructors/maya-green.jpg",
			Image:           "/images/courses/advanced.jpg",
			Price:           149,
			IsLocked:        true,
			Modules: []models.Module{
				{
					ID:    "m3",
					Title: "Prospect and Refuge",
					Lessons: []models.Lesson{
						{ID: "l6", Title: "Spatial Hierarchies", Type: models.LessonVideo, VideoURL: "https://videos.biophilic.edu/l6.mp4", Duration: "21:40"},
						{ID: "l7", Title: "Spatial Patterns Quiz", Type: models.LessonQuiz, IsLocked: true, Quiz: &models.Quiz{
							ID:           "q2",
							Title:        "Spatial Patterns",
							PassingScore: 60,
							TimeLimit:    300,
							Questions: []models.QuizQuestion{
								{ID: "q2-1", Question: "Prospect describes...", Options: []string{"An unimpeded view over distance", "A sheltered place", "A water feature"}, CorrectAnswer: 0},
								{ID: "q2-2", Question: "Refuge describes...", Options: []string{"A long view", "A place of withdrawal", "A skylight"}, CorrectAnswer: 1},
								{ID: "q2-3", Question: "Mystery relies on...", Options: []string{"Full disclosure", "Partially obscured views", "Bright colours"}, CorrectAnswer: 1},
							},
						}},
					},
				},
				{
					ID:       "m4",
					Title:    "Materials and Climate",
					IsLocked: true,
					Lessons: []models.Lesson{
						{ID: "l8", Title: "Natural Materials", Type: models.LessonText, IsLocked: true, Content: "Timber, stone and clay carry texture and thermal mass that occupants read as natural."},
					},
				},
			},
		},
		{
			ID:          "3",
			Title:       "Sustainable Interior Landscapes",
			Description: "Plant selection, irrigation and maintenance for indoor green spaces.",
			Instructor:  "Leo Fernández",
			Image:       "/images/courses/interiors.jpg",
			Price:       79,
			IsFeatured:  true,
			Modules: []models.Module{
				{
					ID:    "m5",
					Title: "Planting Indoors",
					Lessons: []models.Lesson{
						{ID: "l9", Title: "Choosing Plants for Low Light", Type: models.LessonText, Content: "Start from the light level, then the watering regime, then the look."},
						{ID: "l10", Title: "Irrigation Basics", Type: models.LessonVideo, VideoURL: "https://videos.biophilic.edu/l10.mp4", Duration: "09:15"},
					},
				},
			},
		},
	}
}

func fundamentalsQuiz() *models.Quiz {
	return &models.Quiz{
		ID:           "q1",
		Title:        "Biophilic Design Fundamentals",
		PassingScore: 70,
		TimeLimit:    600,
		Questions: []models.QuizQuestion{
			{ID: "q1-1", Question: "Who popularised the term biophilia?", Options: []string{"E. O. Wilson", "Le Corbusier", "Frank Gehry", "Jane Jacobs"}, CorrectAnswer: 0},
			{ID: "q1-2", Question: "Which is a 'nature in the space' pattern?", Options: []string{"Refuge", "Visual connection with nature", "Mystery", "Risk"}, CorrectAnswer: 1},
			{ID: "q1-3", Question: "Dynamic and diffuse light mimics...", Options: []string{"Office lighting", "Natural daylight variation", "Neon signage", "Darkness"}, CorrectAnswer: 1},
			{ID: "q1-4", Question: "Biomorphic forms are...", Options: []string{"Live plants", "Water features", "Shapes referencing nature", "Animals"}, CorrectAnswer: 2},
			{ID: "q1-5", Question: "A main measured benefit of biophilic offices is...", Options: []string{"Higher rent", "Reduced stress", "Louder rooms", "Fewer windows"}, CorrectAnswer: 1},
		},
	}
}

func seedDemoData(s *Store) error {
	for _, c := range demoCourses() {
		if err := s.AddCourse(c); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, su := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", su.email, err)
		}
		u := &models.User{
			ID:               su.id,
			Email:            su.email,
			PasswordHash:     string(hash),
			Name:             su.name,
			Role:             su.role,
			EnrolledCourses:  append([]string{}, su.enrolled...),
			CompletedLessons: append([]string{}, su.completed...),
			QuizAttempts:     []models.QuizAttempt{},
			CompletedQuizzes: []string{},
			StudyGallery:     []models.StudyItem{},
			Badges:           []models.Badge{},
			Certificates:     []models.Certificate{},
			CreatedAt:        now,
		}
		s.users = append(s.users, u)
		s.usersByID[u.ID] = u
	}
	s.usersByID["1"].Badges = append(s.usersByID["1"].Badges, models.Badge{
		ID: "b1", Name: "Nature Novice", Description: "Watched the first lesson", AwardedAt: now,
	})

	s.caseStudies = append(s.caseStudies,
		&models.CaseStudy{
			ID: "cs1", Title: "Khoo Teck Puat Hospital", Description: "A hospital in a garden: courtyards, green roofs and a pond that doubles as stormwater storage.",
			Images: []string{"/images/case-studies/ktph-1.jpg", "/images/case-studies/ktph-2.jpg"}, Tags: []string{"healthcare", "landscape"},
			AuthorID: "2", AuthorName: "Dr. Maya Green", Featured: true, Published: true, CreatedAt: now,
		},
		&models.CaseStudy{
			ID: "cs2", Title: "Amazon Spheres", Description: "Three glass domes housing forty thousand plants as an alternative workspace.",
			Images: []string{"/images/case-studies/spheres.jpg"}, Tags: []string{"workplace"},
			AuthorID: "2", AuthorName: "Dr. Maya Green", Published: true, CreatedAt: now,
		},
		&models.CaseStudy{
			ID: "cs3", Title: "My Balcony Jungle", Description: "Turning a north-facing balcony into a shaded fern garden.",
			Images: []string{"/images/case-studies/balcony.jpg"}, Tags: []string{"residential"},
			AuthorID: "1", AuthorName: "Demo Student", CreatedAt: now,
		},
	)

	s.threads = append(s.threads, &models.DiscussionThread{
		ID: "t1", CourseID: "1", StudentID: "1", StudentName: "Demo Student",
		Title: "Does a picture of nature count?", Status: models.ThreadOpen,
		Messages: []models.DiscussionMessage{
			{ID: "t1-1", SenderID: "1", SenderName: "Demo Student", Role: models.MessageFromStudent,
				Content: "Is a photo of a forest enough for a visual connection with nature?", CreatedAt: now},
			{ID: "t1-2", SenderID: "2", SenderName: "Dr. Maya Green", Role: models.MessageFromInstructor,
				Content: "It helps, but living systems seen through a window have a stronger measured effect.", CreatedAt: now},
		},
		CreatedAt: now, LastMessageAt: now,
	})
	return nil
}
