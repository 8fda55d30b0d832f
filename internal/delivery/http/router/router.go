// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stylebank/internal/delivery/http/middleware"
	"stylebank/internal/delivery/http/router/handler"
	"stylebank/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	ClosetHandler       *handler.ClosetHandler
	OutfitHandler       *handler.OutfitHandler
	OrderHandler        *handler.OrderHandler
	MarketHandler       *handler.MarketHandler
	StatsHandler        *handler.StatsHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	account        *handler.AccountHandler
	closet         *handler.ClosetHandler
	outfit         *handler.OutfitHandler
	order          *handler.OrderHandler
	market         *handler.MarketHandler
	stats          *handler.StatsHandler
	subscription   *handler.SubscriptionHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		account:        params.AccountHandler,
		closet:         params.ClosetHandler,
		outfit:         params.OutfitHandler,
		order:          params.OrderHandler,
		market:         params.MarketHandler,
		stats:          params.StatsHandler,
		subscription:   params.SubscriptionHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.account.SignUp)
		authGroup.POST("/signin", r.account.SignIn)
	}

	// Profile routes for the authenticated user
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.account.GetProfile)
		meGroup.PUT("", r.account.UpdateProfile)
		meGroup.PUT("/subscription", r.subscription.ChangeTier)
	}

	// Closet routes, all scoped to the authenticated owner
	closetGroup := e.Group("/closet")
	closetGroup.Use(r.authMiddleware.Authenticate)
	{
		closetGroup.GET("", r.closet.GetCloset)
		closetGroup.POST("/items", r.closet.AddItem)
		closetGroup.POST("/items/:id/wear", r.closet.LogWear)
		closetGroup.POST("/items/:id/visibility", r.closet.ToggleVisibility)
		closetGroup.DELETE("/items/:id", r.closet.DeleteItem)

		closetGroup.POST("/instagram/connect", r.closet.ConnectInstagram)
		closetGroup.DELETE("/instagram/connect", r.closet.DisconnectInstagram)
		closetGroup.POST("/instagram/import", r.closet.ImportFromInstagram)
	}

	// Outfit card routes; the feed and QR share are public
	outfitGroup := e.Group("/outfits")
	{
		outfitGroup.GET("", r.outfit.ListOutfits)
		outfitGroup.GET("/:id", r.outfit.GetOutfit)
		outfitGroup.GET("/:id/qr", r.outfit.ShareQR)
	}
	outfitAuthed := e.Group("/outfits")
	outfitAuthed.Use(r.authMiddleware.Authenticate)
	{
		outfitAuthed.POST("", r.outfit.CreateOutfit)
		outfitAuthed.DELETE("/:id", r.outfit.DeleteOutfit)
		outfitAuthed.POST("/:id/like", r.outfit.ToggleLike)
		outfitAuthed.POST("/:id/comments", r.outfit.AddComment)
		outfitAuthed.DELETE("/:id/comments/:commentId", r.outfit.DeleteComment)
	}

	// Order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.order.Checkout)
		orderGroup.GET("", r.order.ListOrders)
		orderGroup.GET("/:id", r.order.GetOrder)
		orderGroup.POST("/:id/cancel", r.order.CancelOrder)
	}

	// Fulfillment transitions require the seller role
	fulfillmentGroup := e.Group("/orders")
	fulfillmentGroup.Use(r.authMiddleware.Authenticate)
	fulfillmentGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleSeller)))
	{
		fulfillmentGroup.POST("/:id/advance", r.order.AdvanceOrder)
	}

	// Marketplace routes
	marketGroup := e.Group("/market")
	{
		marketGroup.GET("/sellers", r.market.ListSellers)
		marketGroup.GET("/sellers/compare", r.market.CompareSellers)
	}
	marketAuthed := e.Group("/market")
	marketAuthed.Use(r.authMiddleware.Authenticate)
	{
		marketAuthed.GET("/creators", r.market.ListCreators)
		marketAuthed.POST("/creators/:id/follow", r.market.FollowCreator)
		marketAuthed.DELETE("/creators/:id/follow", r.market.UnfollowCreator)
	}

	// Subscription plans are public
	planGroup := e.Group("/plans")
	{
		planGroup.GET("", r.subscription.ListPlans)
		planGroup.GET("/:tier", r.subscription.GetPlan)
	}

	// Dashboard
	statsGroup := e.Group("/stats")
	statsGroup.Use(r.authMiddleware.Authenticate)
	{
		statsGroup.GET("/dashboard", r.stats.GetDashboard)
	}
}
