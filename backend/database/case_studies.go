package database

import "biophilic/backend/models"

type CaseStudyInput struct {
	Title       string
	Description string
	Images      []string
	Tags        []string
	AuthorID    string
	AuthorName  string
}

// GetCaseStudies returns every case study, unpublished ones included.
func (s *Store) GetCaseStudies() []models.CaseStudy {
	return s.listCaseStudies(false)
}

func (s *Store) GetPublishedCaseStudies() []models.CaseStudy {
	return s.listCaseStudies(true)
}

func (s *Store) listCaseStudies(publishedOnly bool) []models.CaseStudy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.CaseStudy{}
	for _, cs := range s.caseStudies {
		if publishedOnly && !cs.Published {
			continue
		}
		out = append(out, cs.Clone())
	}
	return out
}

func (s *Store) GetCaseStudyByID(id string) *models.CaseStudy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cs := s.caseStudyLocked(id)
	if cs == nil {
		return nil
	}
	cp := cs.Clone()
	return &cp
}

// AddCaseStudy stores a submission pending review: it is never featured or
// published on creation.
func (s *Store) AddCaseStudy(in CaseStudyInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := &models.CaseStudy{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Images:      append([]string{}, in.Images...),
		Tags:        dedupe(in.Tags),
		AuthorID:    in.AuthorID,
		AuthorName:  in.AuthorName,
		CreatedAt:   s.now(),
	}
	s.caseStudies = append(s.caseStudies, cs)
	s.log.Debug("case study submitted", "case_study_id", cs.ID, "author_id", cs.AuthorID)
	return cs.ID
}

func (s *Store) PublishCaseStudy(id string, publish bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.caseStudyLocked(id)
	if cs == nil {
		return false
	}
	cs.Published = publish
	return true
}

func (s *Store) FeatureCaseStudy(id string, featured bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.caseStudyLocked(id)
	if cs == nil {
		return false
	}
	cs.Featured = featured
	return true
}

func (s *Store) caseStudyLocked(id string) *models.CaseStudy {
	for _, cs := range s.caseStudies {
		if cs.ID == id {
			return cs
		}
	}
	return nil
}

// dedupe keeps the first occurrence of each non-empty tag.
func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := []string{}
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
