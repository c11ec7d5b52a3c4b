package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartItemRequest is the body of the cart mutation endpoints. itemID may be a JSON string or number.
type CartItemRequest struct {
	ItemID entity.ItemID `json:"itemID"`
}

// CartHandler serves the authenticated cart endpoints.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// AddToCart increments one item.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, itemID, err := h.bindItem(c)
	if err != nil {
		return err
	}

	if _, err := h.uc.AddItem(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Text(c, http.StatusOK, "Added")
}

// RemoveFromCart decrements one item.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, itemID, err := h.bindItem(c)
	if err != nil {
		return err
	}

	if _, err := h.uc.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Text(c, http.StatusOK, "Removed")
}

// GetCart returns the item quantities of the caller.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) bindItem(c echo.Context) (uuid.UUID, entity.ItemID, error) {
	userID, err := requireUserID(c)
	if err != nil {
		return uuid.Nil, "", err
	}

	var req CartItemRequest
	if err := c.Bind(&req); err != nil {
		return uuid.Nil, "", errors.Wrap(domainerrors.ErrValidationFailed, "invalid cart input")
	}

	return userID, req.ItemID, nil
}

// requireUserID reads the identity set by the auth middleware.
func requireUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrMissingToken)
	}

	return userID, nil
}
