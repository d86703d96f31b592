package http

import (
	"errors"
	"net/http"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the order lifecycle over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	removeOrderHandler      commands.RemoveOrderCommandHandler
	advanceItemHandler      commands.AdvanceItemCommandHandler
	revertItemHandler       commands.RevertItemCommandHandler
	cancelItemHandler       commands.CancelItemCommandHandler
	createCustomItemHandler commands.CreateCustomItemCommandHandler
	removeCustomItemHandler commands.RemoveCustomItemCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getKitchenQueueHandler queries.GetKitchenQueueQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	advanceItemHandler commands.AdvanceItemCommandHandler,
	revertItemHandler commands.RevertItemCommandHandler,
	cancelItemHandler commands.CancelItemCommandHandler,
	createCustomItemHandler commands.CreateCustomItemCommandHandler,
	removeCustomItemHandler commands.RemoveCustomItemCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getKitchenQueueHandler queries.GetKitchenQueueQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		removeOrderHandler:      removeOrderHandler,
		advanceItemHandler:      advanceItemHandler,
		revertItemHandler:       revertItemHandler,
		cancelItemHandler:       cancelItemHandler,
		createCustomItemHandler: createCustomItemHandler,
		removeCustomItemHandler: removeCustomItemHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getKitchenQueueHandler:  getKitchenQueueHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.DELETE("/orders/:id", s.RemoveOrder)
	api.GET("/orders/active", s.GetActiveOrders)

	api.POST("/items/:kind/:id/advance", s.AdvanceItem)
	api.POST("/items/:kind/:id/revert", s.RevertItem)
	api.POST("/items/:kind/:id/cancel", s.CancelItem)

	api.POST("/custom-items", s.CreateCustomItem)
	api.DELETE("/custom-items/:id", s.RemoveCustomItem)

	api.GET("/kitchen/queue", s.GetKitchenQueue)
}

// CreateOrder handles POST /api/v1/orders - opens a new guest order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	guestID, err := kernel.UUIDFromString(req.GuestID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid guest id: " + err.Error(),
		})
	}

	lines := make([]commands.LineItemInput, 0, len(req.LineItems))
	for _, line := range req.LineItems {
		menuItemID, err := kernel.UUIDFromString(line.MenuItemID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid menu item id: " + err.Error(),
			})
		}

		lines = append(lines, commands.LineItemInput{
			MenuItemID:     menuItemID,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			Notes:          line.Notes,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.TableNumber, guestID, req.TotalPriceCents, lines, req.Remarks,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// RemoveOrder handles DELETE /api/v1/orders/:id - removes an order with its items.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to remove order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceItem handles POST /api/v1/items/:kind/:id/advance - moves an item
// one step forward in its lifecycle.
func (s *Server) AdvanceItem(ctx echo.Context) error {
	kind, itemID, ok := s.itemParams(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewAdvanceItemCommand(kind, itemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.advanceItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to advance item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevertItem handles POST /api/v1/items/:kind/:id/revert - moves an item
// one step backward in its lifecycle.
func (s *Server) RevertItem(ctx echo.Context) error {
	kind, itemID, ok := s.itemParams(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewRevertItemCommand(kind, itemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.revertItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to revert item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelItem handles POST /api/v1/items/:kind/:id/cancel - cancels an item
// from any non-terminal status.
func (s *Server) CancelItem(ctx echo.Context) error {
	kind, itemID, ok := s.itemParams(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCancelItemCommand(kind, itemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.cancelItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to cancel item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomItem handles POST /api/v1/custom-items - registers a
// staff-entered item outside any order.
func (s *Server) CreateCustomItem(ctx echo.Context) error {
	var req NewCustomItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	stallID, err := kernel.UUIDFromString(req.StallID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stall id: " + err.Error(),
		})
	}

	tableID, err := kernel.UUIDFromString(req.TableID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid table id: " + err.Error(),
		})
	}

	var guestID *kernel.UUID
	if req.GuestID != "" {
		parsed, err := kernel.UUIDFromString(req.GuestID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid guest id: " + err.Error(),
			})
		}
		guestID = &parsed
	}

	customItemID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomItemCommand(
		customItemID, stallID, tableID, guestID,
		req.Name, req.Quantity, req.PriceCents, req.Remarks,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid custom item data: " + err.Error(),
		})
	}

	if handleErr := s.createCustomItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to create custom item")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: customItemID.String()})
}

// RemoveCustomItem handles DELETE /api/v1/custom-items/:id.
func (s *Server) RemoveCustomItem(ctx echo.Context) error {
	customItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid custom item id: " + err.Error(),
		})
	}

	cmd, err := commands.NewRemoveCustomItemCommand(customItemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid custom item id: " + err.Error(),
		})
	}

	if handleErr := s.removeCustomItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to remove custom item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active - lists pending orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrder, len(orders))
	for i, ord := range orders {
		response[i] = ActiveOrder{
			ID:              ord.ID.String(),
			TableNumber:     ord.TableNumber,
			Status:          ord.Status,
			TotalPriceCents: ord.TotalPriceCents,
			ItemCount:       ord.ItemCount,
			CreatedAt:       ord.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetKitchenQueue handles GET /api/v1/kitchen/queue - lists items awaiting
// preparation across both item kinds.
func (s *Server) GetKitchenQueue(ctx echo.Context) error {
	query := queries.NewGetKitchenQueueQuery()

	entries, err := s.getKitchenQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve kitchen queue",
		})
	}

	response := make([]KitchenQueueEntry, len(entries))
	for i, entry := range entries {
		var orderID string
		if entry.OrderID != nil {
			orderID = entry.OrderID.String()
		}

		response[i] = KitchenQueueEntry{
			Kind:     entry.Kind,
			ItemID:   entry.ItemID.String(),
			OrderID:  orderID,
			Name:     entry.Name,
			Quantity: entry.Quantity,
			Status:   entry.Status,
			Notes:    entry.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// itemParams parses the :kind and :id path parameters. On failure it writes
// the 400 response itself and reports ok=false.
func (s *Server) itemParams(ctx echo.Context) (commands.ItemKind, kernel.UUID, bool) {
	kind, err := commands.ItemKindFromString(ctx.Param("kind"))
	if err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item kind: " + ctx.Param("kind"),
		})
		return commands.KindUnknown, kernel.UUID{}, false
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item id: " + err.Error(),
		})
		return commands.KindUnknown, kernel.UUID{}, false
	}

	return kind, itemID, true
}

// commandError maps handler failures to HTTP status codes: missing objects
// to 404, rejected state transitions and other domain validation failures
// to 422, anything else to 500.
func (s *Server) commandError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: message + ": " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}
