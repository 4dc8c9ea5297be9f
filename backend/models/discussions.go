package models

import "time"

type ThreadStatus string

const (
	ThreadOpen   ThreadStatus = "open"
	ThreadClosed ThreadStatus = "closed"
)

type MessageRole string

const (
	MessageFromStudent    MessageRole = "student"
	MessageFromInstructor MessageRole = "instructor"
)

// DiscussionThread is a course-scoped question from a student.
type DiscussionThread struct {
	ID            string              `json:"id"`
	CourseID      string              `json:"courseId"`
	StudentID     string              `json:"studentId"`
	StudentName   string              `json:"studentName"`
	Title         string              `json:"title"`
	Status        ThreadStatus        `json:"status"`
	Messages      []DiscussionMessage `json:"messages"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastMessageAt time.Time           `json:"lastMessageAt"`
}

type DiscussionMessage struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"senderId"`
	SenderName string      `json:"senderName"`
	Role       MessageRole `json:"role"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func (t DiscussionThread) Clone() DiscussionThread {
	t.Messages = append([]DiscussionMessage{}, t.Messages...)
	return t
}

// Post and Reply make up the community feed. They live in the key-value
// store, not the entity store, and are keyed only by id.
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	Replies   []Reply   `json:"replies"`
}

type Reply struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
