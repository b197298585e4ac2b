package interest

import (
	"context"
	"fmt"
	"testing"

	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInterestRepo struct {
	interests map[string]*domain.Interest
	nextID    int
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{interests: make(map[string]*domain.Interest)}
}

func (r *fakeInterestRepo) Create(_ context.Context, interest *domain.Interest) error {
	r.nextID++
	interest.ID = fmt.Sprintf("interest-%d", r.nextID)
	copied := *interest
	r.interests[interest.ID] = &copied
	return nil
}

func (r *fakeInterestRepo) GetByID(_ context.Context, id string) (*domain.Interest, error) {
	if interest, ok := r.interests[id]; ok {
		copied := *interest
		return &copied, nil
	}
	return nil, domain.ErrInterestNotFound
}

func (r *fakeInterestRepo) GetByUsers(_ context.Context, fromUserID, toUserID string) (*domain.Interest, error) {
	var latest *domain.Interest
	for _, interest := range r.interests {
		if interest.FromUserID == fromUserID && interest.ToUserID == toUserID {
			latest = interest
		}
	}
	if latest == nil {
		return nil, domain.ErrInterestNotFound
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeInterestRepo) GetSent(_ context.Context, userID string) ([]*domain.Interest, error) {
	var out []*domain.Interest
	for _, interest := range r.interests {
		if interest.FromUserID == userID {
			out = append(out, interest)
		}
	}
	return out, nil
}

func (r *fakeInterestRepo) GetReceived(_ context.Context, userID string) ([]*domain.Interest, error) {
	var out []*domain.Interest
	for _, interest := range r.interests {
		if interest.ToUserID == userID {
			out = append(out, interest)
		}
	}
	return out, nil
}

func (r *fakeInterestRepo) UpdateStatus(_ context.Context, id, status string) error {
	interest, ok := r.interests[id]
	if !ok {
		return domain.ErrInterestNotFound
	}
	interest.Status = status
	return nil
}

type fakeUserRepo struct {
	ids map[string]bool
}

func (r *fakeUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if r.ids[id] {
		return &domain.User{ID: id}, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, _ *domain.User) error    { return nil }
func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ string) error { return nil }

type fakeMatchRepo struct {
	promoted [][2]string
}

func (r *fakeMatchRepo) Upsert(_ context.Context, _ *domain.Match) error { return nil }

func (r *fakeMatchRepo) GetByID(_ context.Context, _ string) (*domain.Match, error) {
	return nil, domain.ErrMatchNotFound
}

func (r *fakeMatchRepo) GetUserMatches(_ context.Context, _ string, _ int) ([]*domain.MatchWithProfile, error) {
	return nil, nil
}

func (r *fakeMatchRepo) UpdateStatus(_ context.Context, _, _ string) error { return nil }

func (r *fakeMatchRepo) PromoteMutual(_ context.Context, userID, otherUserID string) error {
	r.promoted = append(r.promoted, [2]string{userID, otherUserID})
	return nil
}

func newTestUseCase() (*InterestUseCase, *fakeInterestRepo, *fakeMatchRepo) {
	interestRepo := newFakeInterestRepo()
	matchRepo := &fakeMatchRepo{}
	userRepo := &fakeUserRepo{ids: map[string]bool{"alice": true, "bob": true}}
	return NewInterestUseCase(interestRepo, userRepo, matchRepo, zap.NewNop()), interestRepo, matchRepo
}

func TestExpress(t *testing.T) {
	uc, _, _ := newTestUseCase()

	interest, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})

	require.NoError(t, err)
	assert.Equal(t, "alice", interest.FromUserID)
	assert.Equal(t, "bob", interest.ToUserID)
	assert.Equal(t, domain.InterestStatusPending, interest.Status)
}

func TestExpressSelf(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "alice"})
	assert.ErrorIs(t, err, domain.ErrCannotInterestSelf)
}

func TestExpressUnknownTarget(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestExpressDuplicatePending(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})
	require.NoError(t, err)

	_, err = uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})
	assert.ErrorIs(t, err, domain.ErrInterestAlreadyExists)
}

func TestExpressAgainAfterDecline(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	first, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(context.Background(), first.ID, domain.InterestStatusDeclined))

	_, err = uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})
	require.NoError(t, err)

	sent, err := uc.List(context.Background(), "alice", "sent")
	require.NoError(t, err)
	assert.Len(t, sent, 1)

	received, err := uc.List(context.Background(), "bob", "received")
	require.NoError(t, err)
	assert.Len(t, received, 1)

	_, err = uc.List(context.Background(), "alice", "everything")
	assert.ErrorIs(t, err, ErrInvalidListType)
}

func TestResolveAccept(t *testing.T) {
	uc, repo, matchRepo := newTestUseCase()

	interest, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})
	require.NoError(t, err)

	resolved, err := uc.Resolve(context.Background(), "bob", interest.ID, domain.InterestStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, domain.InterestStatusAccepted, resolved.Status)
	assert.Equal(t, domain.InterestStatusAccepted, repo.interests[interest.ID].Status)
	assert.Equal(t, [][2]string{{"alice", "bob"}}, matchRepo.promoted)
}

func TestResolveDecline(t *testing.T) {
	uc, _, matchRepo := newTestUseCase()

	interest, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})
	require.NoError(t, err)

	resolved, err := uc.Resolve(context.Background(), "bob", interest.ID, domain.InterestStatusDeclined)

	require.NoError(t, err)
	assert.Equal(t, domain.InterestStatusDeclined, resolved.Status)
	assert.Empty(t, matchRepo.promoted)
}

func TestResolveOnlyReceiver(t *testing.T) {
	uc, _, _ := newTestUseCase()

	interest, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})
	require.NoError(t, err)

	// The sender cannot resolve their own interest.
	_, err = uc.Resolve(context.Background(), "alice", interest.ID, domain.InterestStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrInterestNotFound)
}

func TestResolveInvalidStatus(t *testing.T) {
	uc, _, _ := newTestUseCase()

	interest, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})
	require.NoError(t, err)

	_, err = uc.Resolve(context.Background(), "bob", interest.ID, "pending")
	assert.ErrorIs(t, err, domain.ErrInvalidInterestTransition)
}

func TestResolveTwice(t *testing.T) {
	uc, _, _ := newTestUseCase()

	interest, err := uc.Express(context.Background(), "alice", &ExpressRequest{ToUserID: "bob"})
	require.NoError(t, err)

	_, err = uc.Resolve(context.Background(), "bob", interest.ID, domain.InterestStatusAccepted)
	require.NoError(t, err)

	_, err = uc.Resolve(context.Background(), "bob", interest.ID, domain.InterestStatusDeclined)
	assert.ErrorIs(t, err, domain.ErrInvalidInterestTransition)
}
