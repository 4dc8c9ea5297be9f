package models

import "time"

type CaseStudy struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Tags        []string  `json:"tags"`
	AuthorID    string    `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c CaseStudy) Clone() CaseStudy {
	c.Images = append([]string{}, c.Images...)
	c.Tags = append([]string{}, c.Tags...)
	return c
}
