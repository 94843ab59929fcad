package order

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/DessysGit/ecommerce-project/internal/user"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/orders/create", h.createOrder)
	app.Get("/api/orders", h.getOrders)
	app.Get("/api/orders/:id", h.getOrder)
}

type createOrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	// Phone is accepted for parity with the checkout form but not stored.
	Phone string             `json:"phone"`
	Items []orderLinePayload `json:"items"`
}

type orderLinePayload struct {
	Product struct {
		ID    int         `json:"id"`
		Price json.Number `json:"price"`
		Name  string      `json:"name"`
	} `json:"product"`
	Quantity int `json:"quantity"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lines := make([]Line, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.Quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "quantity must be positive"})
		}
		price, err := decimal.NewFromString(item.Product.Price.String())
		if err != nil || price.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid price"})
		}
		lines = append(lines, Line{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     price,
			Quantity:  item.Quantity,
		})
	}

	o, err := h.service.PlaceOrder(userID, payload.ShippingAddress, lines)
	if err != nil {
		var stockErr *InsufficientStockError
		switch {
		case errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cart is empty"})
		case errors.As(err, &stockErr):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": stockErr.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"order": fiber.Map{
			"id":           o.ID,
			"total_amount": o.TotalAmount,
			"status":       o.Status,
			"created_at":   o.CreatedAt,
			"items":        len(o.Items),
		},
	})
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	o, err := h.service.GetByID(userID, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(o)
}
