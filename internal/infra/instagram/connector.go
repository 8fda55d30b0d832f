// Package instagram provides a stub InstagramConnector returning fixed mock
// media. A production deployment would implement the same interface on top of
// the Instagram Basic Display API.
package instagram

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"stylebank/internal/domain/service"
	"stylebank/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const connectionKeyPrefix = "instagram_connection_"

// ErrNotConnected is returned by FetchMedia when the user has no linked account.
var ErrNotConnected = errors.New("instagram not connected")

// connection is the stored per-user link record.
type connection struct {
	IsConnected bool      `json:"isConnected"`
	Username    string    `json:"username"`
	UserID      string    `json:"userId"`
	AccessToken string    `json:"accessToken"`
	ConnectedAt time.Time `json:"connectedAt"`
}

type stubConnector struct {
	store  storage.Store
	logger *slog.Logger
}

// ConnectorParams holds dependencies for the connector, injected by Fx.
type ConnectorParams struct {
	fx.In

	Store  storage.Store
	Logger *slog.Logger
}

// NewStubConnector creates the mock-backed connector. Connection state is
// persisted through the storage layer so it survives restarts with the
// bucket provider.
func NewStubConnector(params ConnectorParams) service.InstagramConnector {
	return &stubConnector{
		store:  params.Store,
		logger: params.Logger,
	}
}

// Connect links the user's account. A real implementation would run the OAuth
// flow here; the stub records a mock token.
func (c *stubConnector) Connect(ctx context.Context, userID uuid.UUID) error {
	conn := connection{
		IsConnected: true,
		Username:    "fashion_lover_" + userID.String()[:6],
		UserID:      userID.String(),
		AccessToken: "mock_access_token_" + uuid.NewString(),
		ConnectedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(conn)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.store.Write(ctx, connectionKeyPrefix+userID.String(), data); err != nil {
		return errors.Wrap(err, "persist instagram connection")
	}

	c.logger.Info("Instagram account connected",
		slog.String("user_id", userID.String()),
		slog.String("username", conn.Username),
	)

	return nil
}

// Disconnect removes the link. Removing an absent link is a no-op.
func (c *stubConnector) Disconnect(ctx context.Context, userID uuid.UUID) error {
	empty, err := json.Marshal(connection{IsConnected: false, UserID: userID.String()})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.store.Write(ctx, connectionKeyPrefix+userID.String(), empty); err != nil {
		return errors.Wrap(err, "remove instagram connection")
	}

	c.logger.Info("Instagram account disconnected", slog.String("user_id", userID.String()))

	return nil
}

// IsConnected reports whether the user has a linked account.
func (c *stubConnector) IsConnected(ctx context.Context, userID uuid.UUID) bool {
	conn, ok := c.loadConnection(ctx, userID)

	return ok && conn.IsConnected
}

// FetchMedia returns the user's recent posts. Timestamps are relative to now
// so the feed always looks fresh.
func (c *stubConnector) FetchMedia(ctx context.Context, userID uuid.UUID) ([]service.InstagramPost, error) {
	if !c.IsConnected(ctx, userID) {
		return nil, ErrNotConnected
	}

	return mockPosts(time.Now().UTC()), nil
}

// ExtractItem guesses a closet item from a post caption by keyword matching.
// Branch order matters: a leather jacket caption mentioning both keywords
// resolves to the jacket branch.
func (c *stubConnector) ExtractItem(post service.InstagramPost) service.ExtractedItem {
	caption := strings.ToLower(post.Caption)

	item := service.ExtractedItem{
		Name:           "인스타그램 아이템",
		Brand:          "Unknown",
		EstimatedPrice: 50000,
	}

	switch {
	case strings.Contains(caption, "블레이저") || strings.Contains(caption, "재킷"):
		item.Name = "재킷"
		if strings.Contains(caption, "베이지") {
			item.Name = "베이지 블레이저"
		}
		item.EstimatedPrice = 89000
	case strings.Contains(caption, "셔츠"):
		item.Name = "화이트 셔츠"
		item.Brand = "UNIQLO"
		item.EstimatedPrice = 29900
	case strings.Contains(caption, "데님") || strings.Contains(caption, "진"):
		item.Name = "블루 데님 진"
		item.Brand = "Levi's"
		item.EstimatedPrice = 129000
	case strings.Contains(caption, "니트") || strings.Contains(caption, "스웨터"):
		item.Name = "니트 스웨터"
		item.Brand = "H&M"
		item.EstimatedPrice = 49900
	case strings.Contains(caption, "트렌치") || strings.Contains(caption, "코트"):
		item.Name = "트렌치 코트"
		item.Brand = "MANGO"
		item.EstimatedPrice = 189000
	case strings.Contains(caption, "가죽") || strings.Contains(caption, "레더"):
		item.Name = "레더 재킷"
		item.Brand = "ZARA"
		item.EstimatedPrice = 159000
	}

	// Brand hashtags win over the branch default.
	for _, tag := range []string{"#zara", "#uniqlo", "#hm", "#mango", "#cos", "#levis"} {
		if strings.Contains(caption, tag) {
			item.Brand = strings.ToUpper(strings.TrimPrefix(tag, "#"))

			break
		}
	}

	return item
}

func (c *stubConnector) loadConnection(ctx context.Context, userID uuid.UUID) (connection, bool) {
	data, found, err := c.store.Read(ctx, connectionKeyPrefix+userID.String())
	if err != nil || !found {
		return connection{}, false
	}

	var conn connection
	if err := json.Unmarshal(data, &conn); err != nil {
		c.logger.Warn("malformed instagram connection record, treating as disconnected",
			slog.String("user_id", userID.String()),
		)

		return connection{}, false
	}

	return conn, true
}

func mockPosts(now time.Time) []service.InstagramPost {
	return []service.InstagramPost{
		{
			ID:        "ig_post_1",
			ImageURL:  "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=600",
			Caption:   "오늘의 OOTD 💕 베이지 블레이저로 시크하게 #데일리룩 #패션",
			Permalink: "https://instagram.com/p/mock1",
			MediaType: "IMAGE",
			Timestamp: now.AddDate(0, 0, -2),
		},
		{
			ID:        "ig_post_2",
			ImageURL:  "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=600",
			Caption:   "새로 산 가죽 재킷 👗 완전 마음에 들어요! #쇼핑 #레더재킷",
			Permalink: "https://instagram.com/p/mock2",
			MediaType: "IMAGE",
			Timestamp: now.AddDate(0, 0, -5),
		},
		{
			ID:        "ig_post_3",
			ImageURL:  "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=600",
			Caption:   "트렌치코트 시즌이 돌아왔어요 🍂 #가을패션 #트렌치코트",
			Permalink: "https://instagram.com/p/mock3",
			MediaType: "IMAGE",
			Timestamp: now.AddDate(0, 0, -7),
		},
		{
			ID:        "ig_post_4",
			ImageURL:  "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=600",
			Caption:   "화이트 셔츠는 언제나 옳다 ✨ #베이직아이템 #화이트셔츠",
			Permalink: "https://instagram.com/p/mock4",
			MediaType: "IMAGE",
			Timestamp: now.AddDate(0, 0, -10),
		},
		{
			ID:        "ig_post_5",
			ImageURL:  "https://images.unsplash.com/photo-1542272604-787c3835535d?w=600",
			Caption:   "데님 진은 역시 클래식 👖 #데님 #진스타그램",
			Permalink: "https://instagram.com/p/mock5",
			MediaType: "IMAGE",
			Timestamp: now.AddDate(0, 0, -14),
		},
		{
			ID:        "ig_post_6",
			ImageURL:  "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=600",
			Caption:   "니트 스웨터로 따뜻하게 🧶 #니트 #겨울패션",
			Permalink: "https://instagram.com/p/mock6",
			MediaType: "IMAGE",
			Timestamp: now.AddDate(0, 0, -18),
		},
	}
}
