package impl

import (
	"context"
	"errors"
	"testing"

	"stylebank/internal/domain/entity"
	domainerrors "stylebank/internal/domain/errors"
	"stylebank/internal/domain/repository"
	"stylebank/internal/domain/service"
	"stylebank/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingUserRepository fails FindByID for one user ID, simulating a storage
// backend outage on that lookup.
type failingUserRepository struct {
	repository.UserRepository
	failID  uuid.UUID
	failErr error
}

func (r *failingUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if id == r.failID {
		return nil, r.failErr
	}

	return r.UserRepository.FindByID(ctx, id)
}

func sampleOutfitInput(creatorID uuid.UUID) usecase.CreateOutfitInput {
	return usecase.CreateOutfitInput{
		CreatorUserID: creatorID,
		Title:         "Spring office look",
		Description:   "Blazer, shirt and denim",
		ImageURL:      "https://img.example/outfit.jpg",
		Products: []usecase.ProductInput{
			{Name: "Beige blazer", Brand: "MANGO", Price: 89000, ExternalLink: "https://shop.example/blazer"},
			{Name: "White shirt", Brand: "UNIQLO", Price: 29900},
			{Name: "Denim jeans", Brand: "Levi's", Price: 129000, ExternalLink: "https://shop.example/denim"},
		},
	}
}

func TestOutfitService_CreateOutfit(t *testing.T) {
	env := newTestEnv(t)
	srv := env.outfitService()
	ctx := context.Background()
	creator := createUser(t, env, "jae", entity.RoleCreator, entity.TierFree)

	card, err := srv.CreateOutfit(ctx, sampleOutfitInput(creator.ID))

	require.NoError(t, err)
	assert.Len(t, card.Products, 3)
	// Commission strategy: (89000+29900+129000) * 0.10 = 24790.
	assert.Equal(t, 24790, card.EstimatedRevenue)
	assert.Zero(t, card.Likes)
	assert.Empty(t, card.LikedBy)
}

func TestOutfitService_CreateOutfit_Rejections(t *testing.T) {
	env := newTestEnv(t)
	srv := env.outfitService()
	ctx := context.Background()

	viewer := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)
	_, err := srv.CreateOutfit(ctx, sampleOutfitInput(viewer.ID))
	assert.ErrorIs(t, err, domainerrors.ErrNotCreator)

	creator := createUser(t, env, "jae", entity.RoleCreator, entity.TierFree)
	input := sampleOutfitInput(creator.ID)
	input.Products[1].Price = 0
	_, err = srv.CreateOutfit(ctx, input)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	input = sampleOutfitInput(creator.ID)
	input.Title = ""
	_, err = srv.CreateOutfit(ctx, input)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOutfitService_ToggleLike(t *testing.T) {
	env := newTestEnv(t)
	srv := env.outfitService()
	ctx := context.Background()
	creator := createUser(t, env, "jae", entity.RoleCreator, entity.TierFree)
	fan := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)

	card, err := srv.CreateOutfit(ctx, sampleOutfitInput(creator.ID))
	require.NoError(t, err)

	out, err := srv.ToggleLike(ctx, fan.ID, card.ID)
	require.NoError(t, err)
	assert.True(t, out.Liked)
	assert.Equal(t, 1, out.Likes)

	liked, err := env.users.FindByID(ctx, creator.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, liked.TotalPoints)

	// Second toggle undoes the like and the point transfer.
	out, err = srv.ToggleLike(ctx, fan.ID, card.ID)
	require.NoError(t, err)
	assert.False(t, out.Liked)
	assert.Zero(t, out.Likes)

	unliked, err := env.users.FindByID(ctx, creator.ID)
	require.NoError(t, err)
	assert.Zero(t, unliked.TotalPoints)

	stored, err := env.outfits.FindByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.LikedBy)

	events := env.publisher.published()
	require.Len(t, events, 2)
	assert.Equal(t, service.EventKindOutfitLiked, events[0].Kind)
	assert.True(t, events[0].Liked)
	assert.Equal(t, 10, events[0].PointsDelta)
	assert.False(t, events[1].Liked)
	assert.Equal(t, -10, events[1].PointsDelta)
}

func TestOutfitService_ToggleLike_CreatorLookupFailure(t *testing.T) {
	env := newTestEnv(t)
	srv := env.outfitService()
	ctx := context.Background()
	creator := createUser(t, env, "jae", entity.RoleCreator, entity.TierFree)
	fan := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)

	card, err := srv.CreateOutfit(ctx, sampleOutfitInput(creator.ID))
	require.NoError(t, err)

	// A backend failure on the creator lookup must surface to the caller,
	// never silently skip the point transfer.
	srv.userRepo = &failingUserRepository{
		UserRepository: env.users,
		failID:         creator.ID,
		failErr:        errors.New("backend unavailable"),
	}

	_, err = srv.ToggleLike(ctx, fan.ID, card.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend unavailable")

	// The creator's balance was never touched.
	stored, err := env.users.FindByID(ctx, creator.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.TotalPoints)
}

func TestOutfitService_ToggleLike_MissingCreatorTolerated(t *testing.T) {
	env := newTestEnv(t)
	srv := env.outfitService()
	ctx := context.Background()
	creator := createUser(t, env, "jae", entity.RoleCreator, entity.TierFree)
	fan := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)

	card, err := srv.CreateOutfit(ctx, sampleOutfitInput(creator.ID))
	require.NoError(t, err)

	// A deleted creator account is tolerable: the like still lands, only
	// the point transfer is skipped.
	srv.userRepo = &failingUserRepository{
		UserRepository: env.users,
		failID:         creator.ID,
		failErr:        repository.ErrUserNotFound,
	}

	out, err := srv.ToggleLike(ctx, fan.ID, card.ID)
	require.NoError(t, err)
	assert.True(t, out.Liked)
	assert.Equal(t, 1, out.Likes)
}

func TestOutfitService_Comments(t *testing.T) {
	env := newTestEnv(t)
	srv := env.outfitService()
	ctx := context.Background()
	creator := createUser(t, env, "jae", entity.RoleCreator, entity.TierFree)
	fan := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)

	card, err := srv.CreateOutfit(ctx, sampleOutfitInput(creator.ID))
	require.NoError(t, err)

	comment, err := srv.AddComment(ctx, usecase.AddCommentInput{
		OutfitCardID: card.ID,
		AuthorUserID: fan.ID,
		Content:      "Love the blazer",
	})
	require.NoError(t, err)
	assert.Equal(t, "mina", comment.AuthorUsername)

	// Only the author may delete.
	err = srv.DeleteComment(ctx, creator.ID, card.ID, comment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, srv.DeleteComment(ctx, fan.ID, card.ID, comment.ID))

	err = srv.DeleteComment(ctx, fan.ID, card.ID, comment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

func TestOutfitService_DeleteOutfit(t *testing.T) {
	env := newTestEnv(t)
	srv := env.outfitService()
	ctx := context.Background()
	creator := createUser(t, env, "jae", entity.RoleCreator, entity.TierFree)
	other := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)

	card, err := srv.CreateOutfit(ctx, sampleOutfitInput(creator.ID))
	require.NoError(t, err)

	err = srv.DeleteOutfit(ctx, other.ID, card.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotCreator)

	require.NoError(t, srv.DeleteOutfit(ctx, creator.ID, card.ID))

	_, err = srv.GetOutfit(ctx, card.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOutfitNotFound)
}

func TestOutfitService_ShareQR(t *testing.T) {
	env := newTestEnv(t)
	srv := env.outfitService()
	ctx := context.Background()
	creator := createUser(t, env, "jae", entity.RoleCreator, entity.TierFree)

	card, err := srv.CreateOutfit(ctx, sampleOutfitInput(creator.ID))
	require.NoError(t, err)

	png, err := srv.ShareQR(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}
