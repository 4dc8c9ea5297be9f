package database

import (
	"errors"
	"fmt"
	"strings"

	"biophilic/backend/models"

	"golang.org/x/crypto/bcrypt"
)

type NewUser struct {
	Email    string
	Password string
	Name     string
	Role     models.Role
	Avatar   string
}

// Authenticate returns the user whose email matches case-insensitively and
// whose password matches the stored hash, or nil.
func (s *Store) Authenticate(email, password string) *models.User {
	s.mu.RLock()
	u := s.userByEmailLocked(email)
	var id, hash string
	if u != nil {
		id, hash = u.ID, u.PasswordHash
	}
	s.mu.RUnlock()

	if hash == "" {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil
	}
	return s.GetUserByID(id)
}

// CreateUser stores a new account with empty collections. The only error it
// returns for a well-formed request is ErrDuplicateEmail.
func (s *Store) CreateUser(in NewUser) (*models.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrInvalidArgument)
	}
	role := in.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%q: %w", role, ErrInvalidRole)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("password longer than 72 bytes: %w", ErrInvalidArgument)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userByEmailLocked(email) != nil {
		s.log.Info("signup rejected", "reason", "duplicate email")
		return nil, ErrDuplicateEmail
	}

	u := &models.User{
		ID:               s.newID(),
		Email:            email,
		PasswordHash:     string(hash),
		Name:             strings.TrimSpace(in.Name),
		Role:             role,
		Avatar:           in.Avatar,
		EnrolledCourses:  []string{},
		CompletedLessons: []string{},
		QuizAttempts:     []models.QuizAttempt{},
		CompletedQuizzes: []string{},
		StudyGallery:     []models.StudyItem{},
		Badges:           []models.Badge{},
		Certificates:     []models.Certificate{},
		CreatedAt:        s.now(),
	}
	s.users = append(s.users, u)
	s.usersByID[u.ID] = u
	s.log.Debug("user created", "user_id", u.ID, "role", u.Role)
	return u.Clone(), nil
}

func (s *Store) GetUserByID(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userLocked(id).Clone()
}

func (s *Store) userByEmailLocked(email string) *models.User {
	email = strings.TrimSpace(email)
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

// AwardBadge appends a badge to the user. Awarding rules live elsewhere.
func (s *Store) AwardBadge(userID string, b models.Badge) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	if u == nil {
		return "", false
	}
	if b.ID == "" {
		b.ID = s.newID()
	}
	if b.AwardedAt.IsZero() {
		b.AwardedAt = s.now()
	}
	u.Badges = append(u.Badges, b)
	return b.ID, true
}

// IssueCertificate records a course certificate, once per course.
func (s *Store) IssueCertificate(userID, courseID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userLocked(userID)
	c := s.coursesByID[courseID]
	if u == nil || c == nil {
		return "", false
	}
	for _, cert := range u.Certificates {
		if cert.CourseID == courseID {
			return cert.ID, true
		}
	}
	cert := models.Certificate{ID: s.newID(), CourseID: c.ID, CourseTitle: c.Title, IssuedAt: s.now()}
	u.Certificates = append(u.Certificates, cert)
	return cert.ID, true
}
