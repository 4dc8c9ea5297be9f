package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCaseStudyIsUnpublished(t *testing.T) {
	s := newTestStore(t, false)

	id := s.AddCaseStudy(CaseStudyInput{
		Title:      "Rooftop Meadow",
		Tags:       []string{"roof", "", "roof", "meadow"},
		AuthorID:   "u1",
		AuthorName: "Ana",
	})

	cs := s.GetCaseStudyByID(id)
	require.NotNil(t, cs)
	assert.False(t, cs.Published)
	assert.False(t, cs.Featured)
	assert.Equal(t, []string{"roof", "meadow"}, cs.Tags)
	assert.Len(t, s.GetCaseStudies(), 1)
	assert.Empty(t, s.GetPublishedCaseStudies())

	require.True(t, s.PublishCaseStudy(id, true))
	published := s.GetPublishedCaseStudies()
	require.Len(t, published, 1)
	assert.Equal(t, id, published[0].ID)

	require.True(t, s.PublishCaseStudy(id, false))
	assert.Empty(t, s.GetPublishedCaseStudies())

	assert.False(t, s.PublishCaseStudy("missing", true))
	assert.Nil(t, s.GetCaseStudyByID("missing"))
}

func TestFeatureCaseStudy(t *testing.T) {
	s := newTestStore(t, true)

	assert.True(t, s.FeatureCaseStudy("cs2", true))
	assert.True(t, s.GetCaseStudyByID("cs2").Featured)
	assert.False(t, s.FeatureCaseStudy("missing", true))

	cs := s.GetCaseStudyByID("cs1")
	cs.Tags[0] = "tampered"
	assert.Equal(t, "healthcare", s.GetCaseStudyByID("cs1").Tags[0])
}
