// Package database is the entity store behind the course platform: users,
// courses with their module/lesson graph, quiz attempts, study galleries,
// case studies and discussions, plus a key-value port for the state that has
// to outlive the process (community feed, sessions).
//
// Every operation runs as one critical section on the store mutex. Lookups
// that miss return nil or false; only input validation produces errors.
package database

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"biophilic/backend/models"
	"biophilic/backend/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail  = errors.New("a user with this email already exists")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateID     = errors.New("duplicate id")
)

type Options struct {
	// KV backs the community feed and sessions. Defaults to NewMemoryKV.
	KV         KeyValueStore
	Logger     *utils.Logger
	BcryptCost int
	// Seed loads the demo catalogue and accounts.
	Seed  bool
	Now   func() time.Time
	NewID func() string
}

type lessonRef struct {
	course    *models.Course
	module    int
	lessonIdx int
}

type Store struct {
	mu          sync.RWMutex
	users       []*models.User
	usersByID   map[string]*models.User
	courses     []*models.Course
	coursesByID map[string]*models.Course
	lessons     map[string]lessonRef
	quizzes     map[string]lessonRef
	caseStudies []*models.CaseStudy
	threads     []*models.DiscussionThread

	kv     KeyValueStore
	feedMu sync.Mutex

	log        *utils.Logger
	bcryptCost int
	now        func() time.Time
	newID      func() string
}

func New(opts Options) (*Store, error) {
	s := &Store{
		usersByID:   make(map[string]*models.User),
		coursesByID: make(map[string]*models.Course),
		lessons:     make(map[string]lessonRef),
		quizzes:     make(map[string]lessonRef),
		kv:          opts.KV,
		log:         opts.Logger,
		bcryptCost:  opts.BcryptCost,
		now:         opts.Now,
		newID:       opts.NewID,
	}
	if s.kv == nil {
		s.kv = NewMemoryKV()
	}
	if s.log == nil {
		s.log = utils.NopLogger()
	}
	s.log = s.log.With("component", "store")
	if s.bcryptCost == 0 {
		s.bcryptCost = bcrypt.DefaultCost
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.newID == nil {
		s.newID = NewID
	}

	if opts.Seed {
		if err := seedDemoData(s); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		s.log.Info("demo data seeded", "users", len(s.users), "courses", len(s.courses))
	}
	return s, nil
}

// AddCourse registers a deep copy of c and indexes its lessons and quizzes.
// Course content is not mutated afterwards. When a lesson or quiz id repeats,
// lookups resolve to the first occurrence in catalogue order.
func (s *Store) AddCourse(c models.Course) error {
	if c.ID == "" {
		return fmt.Errorf("course id: %w", ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.coursesByID[c.ID]; ok {
		return fmt.Errorf("course %s: %w", c.ID, ErrDuplicateID)
	}
	course := c.Clone()
	s.courses = append(s.courses, course)
	s.coursesByID[course.ID] = course
	for mi, m := range course.Modules {
		for li, l := range m.Lessons {
			ref := lessonRef{course: course, module: mi, lessonIdx: li}
			if _, ok := s.lessons[l.ID]; !ok {
				s.lessons[l.ID] = ref
			}
			if l.Quiz != nil {
				if _, ok := s.quizzes[l.Quiz.ID]; !ok {
					s.quizzes[l.Quiz.ID] = ref
				}
			}
		}
	}
	s.log.Debug("course added", "course_id", c.ID, "modules", len(c.Modules))
	return nil
}

func (s *Store) userLocked(id string) *models.User {
	return s.usersByID[id]
}

func (r lessonRef) lesson() *models.Lesson {
	return &r.course.Modules[r.module].Lessons[r.lessonIdx]
}
