// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mydrip/internal/delivery/http/middleware"
	"mydrip/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler     *handler.AccountHandler
	WardrobeHandler    *handler.WardrobeHandler
	OutfitHandler      *handler.OutfitHandler
	MeasurementHandler *handler.MeasurementHandler
	CatalogHandler     *handler.CatalogHandler
	LocaleHandler      *handler.LocaleHandler
	ProfileHandler     *handler.ProfileHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AccountHandler.Register)
		authGroup.POST("/login", r.params.AccountHandler.Login)
		authGroup.POST("/refresh", r.params.AccountHandler.RefreshToken)
		authGroup.POST("/logout", r.params.AccountHandler.Logout)
	}

	// Everything below requires a valid access token.
	authenticated := e.Group("", r.params.AuthMiddleware.Authenticate)

	accountGroup := authenticated.Group("/account")
	{
		accountGroup.GET("/me", r.params.AccountHandler.Me)
		accountGroup.POST("/upgrade", r.params.AccountHandler.Upgrade)
		accountGroup.GET("/quota", r.params.AccountHandler.Quota)
	}

	wardrobeGroup := authenticated.Group("/wardrobe")
	{
		wardrobeGroup.GET("/items", r.params.WardrobeHandler.ListItems)
		wardrobeGroup.POST("/items", r.params.WardrobeHandler.AddItem)
		wardrobeGroup.POST("/items/from-catalog", r.params.WardrobeHandler.AddFromCatalog)
		wardrobeGroup.DELETE("/items/:id", r.params.WardrobeHandler.RemoveItem)
	}

	outfitGroup := authenticated.Group("/outfits")
	{
		outfitGroup.GET("", r.params.OutfitHandler.ListOutfits)
		outfitGroup.POST("", r.params.OutfitHandler.CreateOutfit)
		outfitGroup.GET("/random", r.params.OutfitHandler.RandomOutfit)
		outfitGroup.GET("/:id/qr", r.params.OutfitHandler.ShareQR)
		outfitGroup.DELETE("/:id", r.params.OutfitHandler.RemoveOutfit)
	}

	measurementGroup := authenticated.Group("/measurements")
	{
		measurementGroup.GET("", r.params.MeasurementHandler.Get)
		measurementGroup.PUT("", r.params.MeasurementHandler.Update)
		measurementGroup.POST("/preset", r.params.MeasurementHandler.ApplyPreset)
		measurementGroup.GET("/figure", r.params.MeasurementHandler.Figure)
	}

	authenticated.GET("/catalog/search", r.params.CatalogHandler.Search)

	localeGroup := authenticated.Group("/locale")
	{
		localeGroup.GET("/languages", r.params.LocaleHandler.Languages)
		localeGroup.GET("/detect", r.params.LocaleHandler.Detect)
		localeGroup.PUT("", r.params.LocaleHandler.SetLanguage)
		localeGroup.GET("/translations/:lang", r.params.LocaleHandler.Translations)
	}

	profileGroup := authenticated.Group("/profile")
	{
		profileGroup.GET("/stats", r.params.ProfileHandler.Stats)
		profileGroup.GET("/export", r.params.ProfileHandler.Export)
		profileGroup.POST("/import", r.params.ProfileHandler.Import)
		profileGroup.DELETE("", r.params.ProfileHandler.ClearAll)
	}
}
