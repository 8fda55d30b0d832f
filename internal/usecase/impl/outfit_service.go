package impl

import (
	"context"
	"log/slog"
	"time"

	"stylebank/config"
	deliverycontext "stylebank/internal/delivery/context"
	"stylebank/internal/domain/entity"
	domainerrors "stylebank/internal/domain/errors"
	"stylebank/internal/domain/repository"
	"stylebank/internal/domain/service"
	"stylebank/internal/domain/valuation"
	"stylebank/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// outfitService implements the OutfitUsecase interface.
type outfitService struct {
	userRepo      repository.UserRepository
	outfitRepo    repository.OutfitCardRepository
	qrService     service.QRCodeService
	publisher     service.EventPublisher
	strategy      valuation.RevenueStrategy
	pointsPerLike int
	logger        *slog.Logger
	now           func() time.Time
}

// OutfitServiceParams holds dependencies for OutfitService, injected by Fx.
type OutfitServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	OutfitRepo repository.OutfitCardRepository
	QRService  service.QRCodeService
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOutfitService is the constructor for outfitService.
func NewOutfitService(params OutfitServiceParams) usecase.OutfitUsecase {
	strategy := valuation.RevenueCommission
	if params.Config != nil && params.Config.Revenue != nil {
		if s := valuation.RevenueStrategy(params.Config.Revenue.Strategy); s.IsValid() {
			strategy = s
		}
	}

	pointsPerLike := valuation.PointsPerLike
	if params.Config != nil && params.Config.Points != nil && params.Config.Points.PerLike > 0 {
		pointsPerLike = params.Config.Points.PerLike
	}

	return &outfitService{
		userRepo:      params.UserRepo,
		outfitRepo:    params.OutfitRepo,
		qrService:     params.QRService,
		publisher:     params.Publisher,
		strategy:      strategy,
		pointsPerLike: pointsPerLike,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *outfitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOutfit publishes a new outfit card. Only creator accounts may publish.
func (srv *outfitService) CreateOutfit(ctx context.Context, input usecase.CreateOutfitInput) (*entity.OutfitCard, error) {
	creator, err := srv.findUser(ctx, input.CreatorUserID)
	if err != nil {
		return nil, err
	}
	if creator.Role != entity.RoleCreator && creator.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrNotCreator
	}

	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	products := make([]entity.Product, 0, len(input.Products))
	for _, p := range input.Products {
		if p.Price <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("product price must be positive")
		}
		products = append(products, entity.Product{
			ID:           uuid.New(),
			Name:         p.Name,
			Brand:        p.Brand,
			Price:        p.Price,
			ImageURL:     p.ImageURL,
			ExternalLink: p.ExternalLink,
		})
	}

	card := &entity.OutfitCard{
		CreatorUserID: input.CreatorUserID,
		Title:         input.Title,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		SourceURL:     input.SourceURL,
		Products:      products,
	}
	card.EstimatedRevenue = valuation.OutfitRevenue(card, srv.strategy)

	if err := srv.outfitRepo.Create(ctx, card); err != nil {
		return nil, errors.Wrap(err, "failed to create outfit card")
	}

	srv.log(ctx).Info("Outfit card published",
		slog.Any("outfitID", card.ID),
		slog.Any("creatorID", card.CreatorUserID),
	)

	return card, nil
}

// GetOutfit returns a card with its revenue estimate recomputed under the
// configured strategy.
func (srv *outfitService) GetOutfit(ctx context.Context, outfitID uuid.UUID) (*usecase.OutfitOutput, error) {
	card, err := srv.findOutfit(ctx, outfitID)
	if err != nil {
		return nil, err
	}

	return &usecase.OutfitOutput{
		Card:             *card,
		EstimatedRevenue: valuation.OutfitRevenue(card, srv.strategy),
	}, nil
}

// ListOutfits returns every card with recomputed revenue estimates.
func (srv *outfitService) ListOutfits(ctx context.Context) ([]usecase.OutfitOutput, error) {
	cards, err := srv.outfitRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list outfit cards")
	}

	outputs := make([]usecase.OutfitOutput, 0, len(cards))
	for i := range cards {
		outputs = append(outputs, usecase.OutfitOutput{
			Card:             cards[i],
			EstimatedRevenue: valuation.OutfitRevenue(&cards[i], srv.strategy),
		})
	}

	return outputs, nil
}

// DeleteOutfit removes the creator's own card.
func (srv *outfitService) DeleteOutfit(ctx context.Context, userID, outfitID uuid.UUID) error {
	card, err := srv.findOutfit(ctx, outfitID)
	if err != nil {
		return err
	}
	if card.CreatorUserID != userID {
		return domainerrors.ErrNotCreator
	}

	if err := srv.outfitRepo.Delete(ctx, outfitID); err != nil {
		return errors.Wrap(err, "failed to delete outfit card")
	}

	srv.log(ctx).Info("Outfit card deleted", slog.Any("outfitID", outfitID))

	return nil
}

// ToggleLike flips the like state for (card, user) and transfers points to or
// from the card's creator accordingly.
func (srv *outfitService) ToggleLike(ctx context.Context, userID, outfitID uuid.UUID) (*usecase.ToggleLikeOutput, error) {
	if _, err := srv.findUser(ctx, userID); err != nil {
		return nil, err
	}

	card, err := srv.findOutfit(ctx, outfitID)
	if err != nil {
		return nil, err
	}

	liked := card.ToggleLike(userID)
	card.EstimatedRevenue = valuation.OutfitRevenue(card, srv.strategy)
	if err := srv.outfitRepo.Update(ctx, card); err != nil {
		return nil, errors.Wrap(err, "failed to update outfit card")
	}

	delta := srv.pointsPerLike
	if !liked {
		delta = -srv.pointsPerLike
	}

	// The like is only half the operation: the creator's balance must move
	// with it. A missing creator account is tolerable, any other lookup
	// failure is not.
	creator, err := srv.findUser(ctx, card.CreatorUserID)
	switch {
	case err == nil:
		creator.AddPoints(delta)
		if err := srv.userRepo.Update(ctx, creator); err != nil {
			return nil, errors.Wrap(err, "failed to adjust creator points")
		}
	case errors.Is(err, domainerrors.ErrUserNotFound):
		srv.log(ctx).Warn("Creator account missing, skipping point transfer",
			slog.Any("creatorID", card.CreatorUserID),
		)
	default:
		return nil, err
	}

	srv.publish(ctx, &service.ActivityEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Kind:        service.EventKindOutfitLiked,
		ActorUserID: userID.String(),
		SubjectID:   card.ID.String(),
		OwnerUserID: card.CreatorUserID.String(),
		PointsDelta: delta,
		Liked:       liked,
		OccurredAt:  srv.now().UTC().Format(time.RFC3339),
	})

	srv.log(ctx).Debug("Like toggled",
		slog.Any("outfitID", card.ID),
		slog.Bool("liked", liked),
		slog.Int("likes", card.Likes),
	)

	return &usecase.ToggleLikeOutput{Liked: liked, Likes: card.Likes}, nil
}

// AddComment appends a comment with the author's username snapshotted.
func (srv *outfitService) AddComment(ctx context.Context, input usecase.AddCommentInput) (*entity.Comment, error) {
	if input.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment content is required")
	}

	author, err := srv.findUser(ctx, input.AuthorUserID)
	if err != nil {
		return nil, err
	}

	card, err := srv.findOutfit(ctx, input.OutfitCardID)
	if err != nil {
		return nil, err
	}

	comment := entity.Comment{
		ID:             uuid.New(),
		OutfitCardID:   card.ID,
		AuthorUserID:   author.ID,
		AuthorUsername: author.Username,
		Content:        input.Content,
		CreatedAt:      srv.now(),
	}
	card.Comments = append(card.Comments, comment)
	card.EstimatedRevenue = valuation.OutfitRevenue(card, srv.strategy)

	if err := srv.outfitRepo.Update(ctx, card); err != nil {
		return nil, errors.Wrap(err, "failed to update outfit card")
	}

	return &comment, nil
}

// DeleteComment removes the author's own comment from a card.
func (srv *outfitService) DeleteComment(ctx context.Context, userID, outfitID, commentID uuid.UUID) error {
	card, err := srv.findOutfit(ctx, outfitID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range card.Comments {
		if card.Comments[i].ID == commentID {
			idx = i

			break
		}
	}
	if idx < 0 {
		return domainerrors.ErrCommentNotFound
	}
	if card.Comments[idx].AuthorUserID != userID {
		return domainerrors.ErrForbidden
	}

	card.Comments = append(card.Comments[:idx], card.Comments[idx+1:]...)
	card.EstimatedRevenue = valuation.OutfitRevenue(card, srv.strategy)

	if err := srv.outfitRepo.Update(ctx, card); err != nil {
		return errors.Wrap(err, "failed to update outfit card")
	}

	return nil
}

// ShareQR renders a QR code PNG resolving back to the outfit card.
func (srv *outfitService) ShareQR(ctx context.Context, outfitID uuid.UUID) ([]byte, error) {
	if _, err := srv.findOutfit(ctx, outfitID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOutfitQR(outfitID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate outfit QR code")
	}

	return png, nil
}

func (srv *outfitService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *outfitService) findOutfit(ctx context.Context, outfitID uuid.UUID) (*entity.OutfitCard, error) {
	card, err := srv.outfitRepo.FindByID(ctx, outfitID)
	if err != nil {
		if errors.Is(err, repository.ErrOutfitNotFound) {
			return nil, domainerrors.ErrOutfitNotFound
		}

		return nil, errors.Wrap(err, "failed to find outfit card")
	}

	return card, nil
}

func (srv *outfitService) publish(ctx context.Context, event *service.ActivityEvent) {
	if err := srv.publisher.PublishActivityEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish activity event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}
