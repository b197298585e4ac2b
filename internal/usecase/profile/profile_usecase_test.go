package profile

import (
	"context"
	"testing"

	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	profile.ID = "profile-" + profile.UserID
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	if profile, ok := r.profiles[userID]; ok {
		copied := *profile
		return &copied, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *domain.Profile) error {
	if _, ok := r.profiles[profile.UserID]; !ok {
		return domain.ErrProfileNotFound
	}
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeProfileRepo) Search(_ context.Context, _ repository.SearchFilters, _ string, _ int) ([]*domain.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) GetRecommendations(_ context.Context, _ string, _ int) ([]*domain.Profile, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, _ *domain.User) error    { return nil }
func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ string) error { return nil }

type fakeAssistant struct {
	personalityCalls int
	suggestions      []string
}

func (a *fakeAssistant) AnalyzePersonality(_ context.Context, _ *domain.Profile) *domain.PersonalityAnalysis {
	a.personalityCalls++
	return &domain.PersonalityAnalysis{
		Traits:  domain.ScoreMap{"openness": 70},
		Summary: "curious",
	}
}

func (a *fakeAssistant) GenerateProfileSuggestions(_ context.Context, _ *domain.Profile) []string {
	return a.suggestions
}

func newTestUseCase() (*ProfileUseCase, *fakeProfileRepo, *fakeAssistant) {
	profileRepo := newFakeProfileRepo()
	userRepo := &fakeUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Email: "priya@example.com"},
	}}
	assistant := &fakeAssistant{suggestions: []string{"Add a bio"}}
	return NewProfileUseCase(profileRepo, userRepo, assistant, zap.NewNop()), profileRepo, assistant
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func createRequest() *CreateProfileRequest {
	return &CreateProfileRequest{
		Age:       28,
		Gender:    "female",
		Religion:  strPtr("Hindu"),
		Location:  strPtr("Mumbai"),
		Bio:       strPtr("Hello"),
		Photos:    []string{"photo.jpg"},
		Interests: []string{"travel"},
		Values:    []string{"family"},
	}
}

func TestCreate(t *testing.T) {
	uc, repo, assistant := newTestUseCase()

	profile, err := uc.Create(context.Background(), "user-1", createRequest())

	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	assert.True(t, profile.IsActive)
	assert.Equal(t, domain.VerificationPending, profile.VerificationStatus)

	// 8 of the 10 completeness fields are set (education and occupation are not).
	assert.Equal(t, 80, profile.ProfileCompleteness)

	// Personality analysis runs once and its traits are persisted.
	assert.Equal(t, 1, assistant.personalityCalls)
	assert.Equal(t, 70, repo.profiles["user-1"].PersonalityTraits["openness"])
}

func TestCreateDuplicate(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "user-1", createRequest())
	assert.ErrorIs(t, err, domain.ErrProfileAlreadyExists)
}

func TestCreateIgnoresClientCompleteness(t *testing.T) {
	uc, _, _ := newTestUseCase()

	profile, err := uc.Create(context.Background(), "user-1", &CreateProfileRequest{
		Age:    25,
		Gender: "male",
	})

	require.NoError(t, err)
	assert.Equal(t, 20, profile.ProfileCompleteness)
}

func TestUpdateMergesAndRecomputes(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), "user-1", &UpdateProfileRequest{
		Education:  strPtr("Masters"),
		Occupation: strPtr("Engineer"),
		Height:     intPtr(165),
	})

	require.NoError(t, err)
	assert.Equal(t, 100, updated.ProfileCompleteness)

	// Untouched fields survive the partial update.
	require.NotNil(t, updated.Religion)
	assert.Equal(t, "Hindu", *updated.Religion)
	assert.Equal(t, 28, updated.Age)
}

func TestUpdateCanDeactivate(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	active := false
	updated, err := uc.Update(context.Background(), "user-1", &UpdateProfileRequest{IsActive: &active})

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.False(t, repo.profiles["user-1"].IsActive)
}

func TestUpdateWithoutProfile(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Update(context.Background(), "user-1", &UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestGetWithUser(t *testing.T) {
	uc, _, _ := newTestUseCase()

	// Before profile creation the profile field is simply nil.
	result, err := uc.GetWithUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", result.Email)
	assert.Nil(t, result.Profile)

	_, err = uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	result, err = uc.GetWithUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "user-1", result.Profile.UserID)
}

func TestGetWithUserUnknown(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.GetWithUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSuggestions(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	suggestions, err := uc.Suggestions(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Add a bio"}, suggestions)
}

func TestSuggestionsWithoutProfile(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Suggestions(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
