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

// closetService implements the ClosetUsecase interface.
type closetService struct {
	userRepo      repository.UserRepository
	itemRepo      repository.ClosetItemRepository
	wearRepo      repository.WearRecordRepository
	connector     service.InstagramConnector
	publisher     service.EventPublisher
	pointsPerWear int
	logger        *slog.Logger
	now           func() time.Time
}

// ClosetServiceParams holds dependencies for ClosetService, injected by Fx.
type ClosetServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	ItemRepo  repository.ClosetItemRepository
	WearRepo  repository.WearRecordRepository
	Connector service.InstagramConnector
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewClosetService is the constructor for closetService.
func NewClosetService(params ClosetServiceParams) usecase.ClosetUsecase {
	pointsPerWear := valuation.PointsPerWear
	if params.Config != nil && params.Config.Points != nil && params.Config.Points.PerWear > 0 {
		pointsPerWear = params.Config.Points.PerWear
	}

	return &closetService{
		userRepo:      params.UserRepo,
		itemRepo:      params.ItemRepo,
		wearRepo:      params.WearRepo,
		connector:     params.Connector,
		publisher:     params.Publisher,
		pointsPerWear: pointsPerWear,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *closetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem registers a closet item by hand, enforcing the plan item limit.
func (srv *closetService) AddItem(ctx context.Context, input usecase.AddItemInput) (*entity.ClosetItem, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.PurchasePrice <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("purchase price must be positive")
	}

	owner, err := srv.findUser(ctx, input.OwnerUserID)
	if err != nil {
		return nil, err
	}

	if err := srv.checkItemLimit(ctx, owner); err != nil {
		return nil, err
	}

	purchaseDate := input.PurchaseDate
	if purchaseDate.IsZero() {
		purchaseDate = srv.now()
	}

	item := &entity.ClosetItem{
		OwnerUserID:   input.OwnerUserID,
		Name:          input.Name,
		Brand:         input.Brand,
		PurchasePrice: input.PurchasePrice,
		PurchaseDate:  purchaseDate,
		ImageURL:      input.ImageURL,
		Source:        entity.ItemSourceManual,
	}
	item.UtilizationRate = valuation.UtilizationRate(item.PurchaseDate, item.WearCount, srv.now())

	if err := srv.itemRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create closet item")
	}

	srv.log(ctx).Info("Closet item added",
		slog.Any("itemID", item.ID),
		slog.Any("ownerID", item.OwnerUserID),
	)

	return item, nil
}

// GetCloset returns the owner's items with derived values computed at read time.
func (srv *closetService) GetCloset(ctx context.Context, ownerID uuid.UUID) ([]usecase.ClosetItemOutput, error) {
	items, err := srv.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list closet items")
	}

	now := srv.now()
	outputs := make([]usecase.ClosetItemOutput, 0, len(items))
	for _, item := range items {
		outputs = append(outputs, usecase.ClosetItemOutput{
			Item:            item,
			UtilizationRate: valuation.UtilizationRate(item.PurchaseDate, item.WearCount, now),
			ResalePrice:     valuation.ResalePrice(item.PurchasePrice, item.PurchaseDate, item.WearCount, now),
		})
	}

	return outputs, nil
}

// LogWear records a wear event: appends an immutable record, bumps the item's
// wear count, refreshes its utilization and credits the owner.
func (srv *closetService) LogWear(ctx context.Context, userID, itemID uuid.UUID) (*usecase.LogWearOutput, error) {
	item, err := srv.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	record := &entity.WearRecord{
		ClosetItemID: item.ID,
		OwnerUserID:  userID,
		WornAt:       now,
		PointsEarned: srv.pointsPerWear,
	}
	if err := srv.wearRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create wear record")
	}

	item.WearCount++
	item.UtilizationRate = valuation.UtilizationRate(item.PurchaseDate, item.WearCount, now)
	if err := srv.itemRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update closet item")
	}

	owner, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	owner.AddPoints(srv.pointsPerWear)
	if err := srv.userRepo.Update(ctx, owner); err != nil {
		return nil, errors.Wrap(err, "failed to credit wear points")
	}

	srv.publish(ctx, &service.ActivityEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Kind:        service.EventKindWearLogged,
		ActorUserID: userID.String(),
		SubjectID:   item.ID.String(),
		OwnerUserID: userID.String(),
		PointsDelta: srv.pointsPerWear,
		OccurredAt:  now.UTC().Format(time.RFC3339),
	})

	srv.log(ctx).Info("Wear logged",
		slog.Any("itemID", item.ID),
		slog.Int("wearCount", item.WearCount),
		slog.Int("utilization", item.UtilizationRate),
	)

	return &usecase.LogWearOutput{
		Record:      record,
		Item:        item,
		TotalPoints: owner.TotalPoints,
	}, nil
}

// ToggleVisibility flips whether the item shows in the community closet.
func (srv *closetService) ToggleVisibility(ctx context.Context, userID, itemID uuid.UUID) (*entity.ClosetItem, error) {
	item, err := srv.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Public = !item.Public
	if err := srv.itemRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update closet item")
	}

	return item, nil
}

// DeleteItem removes the owner's item. Wear records are kept as history.
func (srv *closetService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if _, err := srv.findOwnedItem(ctx, userID, itemID); err != nil {
		return err
	}

	if err := srv.itemRepo.Delete(ctx, itemID); err != nil {
		return errors.Wrap(err, "failed to delete closet item")
	}

	srv.log(ctx).Info("Closet item deleted", slog.Any("itemID", itemID))

	return nil
}

// ConnectInstagram links the user's Instagram account.
func (srv *closetService) ConnectInstagram(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.findUser(ctx, userID); err != nil {
		return err
	}

	return srv.connector.Connect(ctx, userID)
}

// DisconnectInstagram removes the link.
func (srv *closetService) DisconnectInstagram(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.findUser(ctx, userID); err != nil {
		return err
	}

	return srv.connector.Disconnect(ctx, userID)
}

// ImportFromInstagram auto-registers closet items from the user's recent
// posts. Already-imported posts are skipped, so repeated runs are idempotent.
func (srv *closetService) ImportFromInstagram(ctx context.Context, userID uuid.UUID) (*usecase.ImportOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !entity.PlanFor(user.Subscription).Limits.InstagramSync {
		return nil, domainerrors.ErrFeatureNotAvailable.WithDetails("instagram sync requires the pro plan")
	}

	if !srv.connector.IsConnected(ctx, userID) {
		return nil, domainerrors.ErrInstagramNotConnected
	}

	posts, err := srv.connector.FetchMedia(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch instagram media")
	}

	existing, err := srv.itemRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list closet items")
	}
	imported := make(map[string]bool, len(existing))
	for _, item := range existing {
		if item.SourcePostID != "" {
			imported[item.SourcePostID] = true
		}
	}

	output := &usecase.ImportOutput{Imported: []entity.ClosetItem{}}
	now := srv.now()
	for _, post := range posts {
		if imported[post.ID] {
			output.Skipped++

			continue
		}

		extracted := srv.connector.ExtractItem(post)
		item := &entity.ClosetItem{
			OwnerUserID:   userID,
			Name:          extracted.Name,
			Brand:         extracted.Brand,
			PurchasePrice: extracted.EstimatedPrice,
			PurchaseDate:  post.Timestamp,
			ImageURL:      post.ImageURL,
			Source:        entity.ItemSourceInstagram,
			SourcePostID:  post.ID,
		}
		item.UtilizationRate = valuation.UtilizationRate(item.PurchaseDate, 0, now)

		if err := srv.itemRepo.Create(ctx, item); err != nil {
			return nil, errors.Wrap(err, "failed to create imported item")
		}
		output.Imported = append(output.Imported, *item)
	}

	srv.log(ctx).Info("Instagram import completed",
		slog.Any("userID", userID),
		slog.Int("imported", len(output.Imported)),
		slog.Int("skipped", output.Skipped),
	)

	return output, nil
}

func (srv *closetService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *closetService) findOwnedItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.ClosetItem, error) {
	item, err := srv.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find closet item")
	}
	if item.OwnerUserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return item, nil
}

func (srv *closetService) checkItemLimit(ctx context.Context, owner *entity.User) error {
	limits := entity.PlanFor(owner.Subscription).Limits
	if limits.MaxItems == 0 {
		return nil
	}

	items, err := srv.itemRepo.ListByOwner(ctx, owner.ID)
	if err != nil {
		return errors.Wrap(err, "failed to count closet items")
	}
	if !limits.AllowsMoreItems(len(items)) {
		return domainerrors.ErrItemLimitReached
	}

	return nil
}

// publish sends an activity event. Publishing is best-effort: a broker
// failure must not roll back the state change that already happened.
func (srv *closetService) publish(ctx context.Context, event *service.ActivityEvent) {
	if err := srv.publisher.PublishActivityEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish activity event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}
