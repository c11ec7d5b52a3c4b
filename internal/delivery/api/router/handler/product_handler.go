package handler

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddProductRequest is the body of POST /addproducts.
type AddProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Image    string  `json:"image"`
	Category string  `json:"category" validate:"required"`
	NewPrice float64 `json:"new_price" validate:"gte=0"`
	OldPrice float64 `json:"old_price" validate:"gte=0"`
}

// RemoveProductRequest is the body of POST /removeproduct.
type RemoveProductRequest struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Name string `json:"name"`
}

// ProductResponse is the wire form of a catalog entry.
type ProductResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	NewPrice  float64   `json:"new_price"`
	OldPrice  float64   `json:"old_price"`
	Date      time.Time `json:"date"`
	Available bool      `json:"available"`
}

func toProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ID:        p.CatalogID,
			Name:      p.Name,
			Image:     p.Image,
			Category:  p.Category,
			NewPrice:  p.NewPrice,
			OldPrice:  p.OldPrice,
			Date:      p.CreatedAt,
			Available: p.Available,
		})
	}

	return out
}

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	uc usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// AddProduct creates a catalog entry with the next catalog id.
func (h *ProductHandler) AddProduct(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.AddProduct(c.Request().Context(), &usecase.AddProductInput{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		NewPrice: req.NewPrice,
		OldPrice: req.OldPrice,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NameResponse{Success: true, Name: product.Name})
}

// RemoveProduct deletes a catalog entry by id.
func (h *ProductHandler) RemoveProduct(c echo.Context) error {
	var req RemoveProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.RemoveProduct(c.Request().Context(), req.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NameResponse{Success: true, Name: product.Name})
}

// AllProducts lists the whole catalog.
func (h *ProductHandler) AllProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

// NewCollection lists the newest products.
func (h *ProductHandler) NewCollection(c echo.Context) error {
	products, err := h.uc.NewCollection(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

// PopularInWomen lists the first products of the women category.
func (h *ProductHandler) PopularInWomen(c echo.Context) error {
	products, err := h.uc.PopularInWomen(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

// ProductQRCode renders a PNG QR code linking to the product page.
func (h *ProductHandler) ProductQRCode(c echo.Context) error {
	catalogID, err := strconv.Atoi(c.Param("id"))
	if err != nil || catalogID <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid product id")
	}

	png, err := h.uc.ProductQRCode(c.Request().Context(), catalogID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
