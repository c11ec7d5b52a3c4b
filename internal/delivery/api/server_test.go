package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

// newTestServer assembles the full HTTP stack on the in-memory store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.SecretKey.Token = "secret_ecom"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	cfg.Cart = &config.CartConfig{SeedSize: 2}
	cfg.Images = &config.ImagesConfig{PublicBaseURL: "http://localhost:4000", MaxUploadSize: 1 << 10}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)
	store := memory.New()

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{Lc: lc, Ctx: context.Background(), Config: cfg, Logger: logger})
	require.NoError(t, err)
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     store.Users(),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       logger,
	})
	cartUC := impl.NewCartService(impl.CartServiceParams{
		UserRepo: store.Users(),
		CartRepo: store.Carts(),
		Config:   cfg,
		Logger:   logger,
	})
	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{
		ProductRepo: store.Products(),
		QRService:   qrcode.NewQRCodeService(cfg.Images.PublicBaseURL, 128, "M"),
		Publisher:   publisher,
		Logger:      logger,
	})
	imageUC := impl.NewImageService(impl.ImageServiceParams{
		Storage: storage.NewBucketStorage(bucket),
		Config:  cfg,
		Logger:  logger,
	})

	return newEcho(ServerParams{
		Lc:     lc,
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(userUC, logger),
			CartHandler:    handler.NewCartHandler(cartUC),
			ProductHandler: handler.NewProductHandler(catalogUC),
			ImageHandler:   handler.NewImageHandler(imageUC),
			AuthMiddleware: middleware.NewAuthMiddleware(tokenService, logger),
			Config:         cfg,
		},
	})
}

func call(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(middleware.HeaderAuthToken, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_AccountAndCartFlow(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodPost, "/signup", "", `{"name":"Ann","email":"ann@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	var signup struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	require.True(t, signup.Success)

	rec = call(e, http.MethodPost, "/signup", "", `{"name":"Ann","email":"ann@example.com","password":"other"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"errors":"Existing user found with same email id","code":"EMAIL_TAKEN"}`, rec.Body.String())

	rec = call(e, http.MethodPost, "/login", "", `{"email":"ann@example.com","password":"bad"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Wrong Password","code":"WRONG_PASSWORD"}`, rec.Body.String())

	rec = call(e, http.MethodPost, "/addtocart", "", `{"itemID":"7"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"errors":"Please authenticate using a valid token"}`, rec.Body.String())

	rec = call(e, http.MethodPost, "/addtocart", "not.a.token", `{"itemID":"7"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	for _, step := range []struct{ path, body string }{
		{"/addtocart", `{"itemID":"7"}`},
		{"/addtocart", `{"itemID":7}`},
		{"/removefromcart", `{"itemID":"7"}`},
		{"/removefromcart", `{"itemID":"9"}`},
	} {
		rec = call(e, http.MethodPost, step.path, signup.Token, step.body)
		require.Equal(t, http.StatusOK, rec.Code, step.path)
	}

	rec = call(e, http.MethodPost, "/getcart", signup.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"0":0,"1":0,"7":1}`, rec.Body.String())
}

func TestServer_CatalogAndImages(t *testing.T) {
	e := newTestServer(t)

	for _, body := range []string{
		`{"name":"First","category":"men","new_price":10,"old_price":20}`,
		`{"name":"Blouse","category":"women","new_price":50,"old_price":80}`,
	} {
		rec := call(e, http.MethodPost, "/addproducts", "", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := call(e, http.MethodGet, "/newcollection", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []handler.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].ID)
	assert.True(t, products[0].Available)

	rec = call(e, http.MethodGet, "/product/2/qrcode", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, rec.Body.Bytes()[:4])

	rec = call(e, http.MethodPost, "/removeproduct", "", `{"id":2,"name":"Blouse"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(e, http.MethodGet, "/product/2/qrcode", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("product", "blouse.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG image"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var upload struct {
		Success  int    `json:"success"`
		ImageURL string `json:"image_url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upload))
	assert.Equal(t, 1, upload.Success)
	require.True(t, strings.HasPrefix(upload.ImageURL, "http://localhost:4000/images/product_"))

	rec = call(e, http.MethodGet, strings.TrimPrefix(upload.ImageURL, "http://localhost:4000"), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "\x89PNG image", rec.Body.String())
}

func TestServer_UnknownRoute(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unknown path",
			method:     http.MethodGet,
			path:       "/nope",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"errors":"Not Found","code":"HTTP_ERROR"}`,
		},
		{
			name:       "unknown path with post",
			method:     http.MethodPost,
			path:       "/cart/nope",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"errors":"Not Found","code":"HTTP_ERROR"}`,
		},
		{
			name:       "cart route with wrong method",
			method:     http.MethodGet,
			path:       "/addtocart",
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"success":false,"errors":"Method Not Allowed","code":"HTTP_ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(e, tt.method, tt.path, "", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestServer_PopularInWomenLegacyPath(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodPost, "/addproducts", "",
		`{"name":"Blouse","category":"women","new_price":50,"old_price":80}`)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, path := range []string{"/popularinwomen", router.LegacyPopularInWomenPath} {
		rec = call(e, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, rec.Code, path)

		var products []handler.ProductResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(t, products, 1, path)
		assert.Equal(t, "Blouse", products[0].Name)
	}
}

func TestServer_SignupPasswordTooLong(t *testing.T) {
	e := newTestServer(t)

	body := `{"name":"Ann","email":"ann@example.com","password":"` + strings.Repeat("p", 80) + `"}`
	rec := call(e, http.MethodPost, "/signup", "", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"success":false,"errors":"Password must be at most 72 bytes","code":"PASSWORD_TOO_LONG"}`,
		rec.Body.String())

	rec = call(e, http.MethodPost, "/signup", "", `{"name":"Ann","email":"ann@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
