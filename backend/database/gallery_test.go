package database

import (
	"testing"

	"biophilic/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyGallery(t *testing.T) {
	s := newTestStore(t, true)
	u := newStudent(t, s, "new@x.com")

	noteID, ok := s.AddStudyNote(u.ID, StudyItemInput{Title: "Light", Content: "Morning light in the atrium", LessonID: "l4"})
	require.True(t, ok)
	voiceID, ok := s.AddStudyNote(u.ID, StudyItemInput{Title: "Reflection", Type: models.StudyVoice, Content: "audio/r1.webm"})
	require.True(t, ok)

	items := s.GetStudyGallery(u.ID)
	require.Len(t, items, 2)
	assert.Equal(t, noteID, items[0].ID)
	assert.Equal(t, models.StudyNote, items[0].Type)
	assert.Equal(t, models.StudyVoice, items[1].Type)
	assert.False(t, items[0].CreatedAt.IsZero())

	assert.False(t, s.DeleteStudyItem(u.ID, "missing"))
	assert.Len(t, s.GetStudyGallery(u.ID), 2)

	assert.True(t, s.DeleteStudyItem(u.ID, noteID))
	items = s.GetStudyGallery(u.ID)
	require.Len(t, items, 1)
	assert.Equal(t, voiceID, items[0].ID)

	_, ok = s.AddStudyNote("missing", StudyItemInput{Title: "x"})
	assert.False(t, ok)
}

func TestDeleteStudyItemOnlyTouchesOwner(t *testing.T) {
	s := newTestStore(t, false)
	a := newStudent(t, s, "a@x.com")
	b := newStudent(t, s, "b@x.com")

	id, ok := s.AddStudyNote(a.ID, StudyItemInput{Title: "mine"})
	require.True(t, ok)

	assert.False(t, s.DeleteStudyItem(b.ID, id))
	assert.Len(t, s.GetStudyGallery(a.ID), 1)
}
