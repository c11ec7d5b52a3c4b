// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// uploadEnvelope leaves room for the multipart boundaries and headers around the image itself.
const uploadEnvelope = 64 << 10

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CartHandler    *handler.CartHandler
	ProductHandler *handler.ProductHandler
	ImageHandler   *handler.ImageHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	cartHandler    *handler.CartHandler
	productHandler *handler.ProductHandler
	imageHandler   *handler.ImageHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		cartHandler:    params.CartHandler,
		productHandler: params.ProductHandler,
		imageHandler:   params.ImageHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/signup", r.userHandler.Signup)
	e.POST("/login", r.userHandler.Login)

	// Cart routes require a session token. Keep the gate per route, a root group would also gate unmatched paths.
	authenticate := r.authMiddleware.Authenticate
	e.POST("/addtocart", r.cartHandler.AddToCart, authenticate)
	e.POST("/removefromcart", r.cartHandler.RemoveFromCart, authenticate)
	e.POST("/getcart", r.cartHandler.GetCart, authenticate)

	// Catalog routes
	e.POST("/addproducts", r.productHandler.AddProduct)
	e.POST("/removeproduct", r.productHandler.RemoveProduct)
	e.GET("/allproducts", r.productHandler.AllProducts)
	e.GET("/newcollection", r.productHandler.NewCollection)
	e.GET("/popularinwomen", r.productHandler.PopularInWomen)
	e.GET(LegacyPopularInWomenPath, r.productHandler.PopularInWomen)
	e.GET("/product/:id/qrcode", r.productHandler.ProductQRCode)

	// Image routes
	e.POST(UploadPath, r.imageHandler.Upload, echomiddleware.BodyLimit(r.uploadBodyLimit()))
	e.GET("/images/:name", r.imageHandler.Serve)
}

// LegacyPopularInWomenPath is the misspelled path older storefront clients still request.
const LegacyPopularInWomenPath = "/populerinwomen"

// UploadPath is exempt from the global body limit and carries its own.
const UploadPath = "/upload"

func (r *router) uploadBodyLimit() string {
	maxSize := int64(0)
	if r.config != nil && r.config.Images != nil {
		maxSize = r.config.Images.MaxUploadSize
	}
	if maxSize <= 0 {
		maxSize = 5 << 20
	}

	return strconv.FormatInt(maxSize+uploadEnvelope, 10) + "B"
}
