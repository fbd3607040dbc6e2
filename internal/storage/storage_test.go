package storage

import (
	"testing"
	"time"

	"LawHub_LegalAssistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetUser(t *testing.T) {
	s := openTestStore(t)

	profile := models.UserProfile{Name: "Amira", Age: 31, Gender: "female"}
	id, err := s.CreateUser("amira", "hash", profile)
	require.NoError(t, err)
	assert.Positive(t, id)

	u, err := s.GetUserByUsername("amira")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.Equal(t, profile, u.Profile)

	_, err = s.CreateUser("amira", "other", models.UserProfile{})
	assert.ErrorIs(t, err, ErrUsernameExists)

	_, err = s.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSaveAndListSolutions(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	uid, err := s.CreateUser("sam", "hash", models.UserProfile{})
	require.NoError(t, err)
	otherID, err := s.CreateUser("kim", "hash", models.UserProfile{})
	require.NoError(t, err)

	sol := models.Solution{
		Title:    "Immediate Actions for Arrest Situation",
		Steps:    []string{"Remain calm"},
		Urgency:  models.UrgencyHigh,
		Contacts: []string{"Police: 999"},
	}
	first, err := s.SaveSolution(uid, "arrested", []string{"Court", "Yes", "No"}, sol)
	require.NoError(t, err)
	assert.Equal(t, base, first.CreatedAt)

	s.now = func() time.Time { return base.Add(time.Hour) }
	second, err := s.SaveSolution(uid, "fine", []string{"Traffic violation"}, sol)
	require.NoError(t, err)

	list, err := s.ListSolutions(uid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first, list[1])

	list, err = s.ListSolutions(otherID)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestTrainingExamples(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.TrainingStats()
	require.NoError(t, err)
	assert.Equal(t, models.TrainingStats{Categories: []string{}, Countries: []string{}}, stats)

	_, err = s.AddTrainingExample(models.TrainingExample{Question: "  ", Answer: "a"})
	assert.ErrorIs(t, err, ErrIncompleteExample)

	ex, err := s.AddTrainingExample(models.TrainingExample{Question: "q1", Answer: "a1"})
	require.NoError(t, err)
	assert.Equal(t, "General", ex.Country)
	assert.Equal(t, "General", ex.Category)
	assert.Positive(t, ex.ID)

	_, err = s.AddTrainingExample(models.TrainingExample{Question: "q2", Answer: "a2", Country: "India", Category: "Criminal"})
	require.NoError(t, err)
	_, err = s.AddTrainingExample(models.TrainingExample{Question: "q3", Answer: "a3", Country: "India", Category: "Family"})
	require.NoError(t, err)

	stats, err = s.TrainingStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalExamples)
	assert.Equal(t, 2, stats.CountrySpecific)
	assert.Equal(t, []string{"Criminal", "Family", "General"}, stats.Categories)
	assert.Equal(t, []string{"General", "India"}, stats.Countries)
}
