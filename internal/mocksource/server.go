package mocksource

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"customer-pipeline/internal/dto"
	"customer-pipeline/internal/middleware"

	"github.com/labstack/echo/v4"
)

const (
	ServiceName = "mock-server"

	defaultLimit = 10
	maxLimit     = 100
)

// NotFoundResponse mirrors the upstream's lookup miss body
type NotFoundResponse struct {
	Error      string `json:"error"`
	CustomerID string `json:"customer_id"`
}

// Handler serves a Snapshot over the upstream customer API
type Handler struct {
	snapshot *Snapshot
}

// NewHandler creates a handler over an immutable snapshot
func NewHandler(snapshot *Snapshot) *Handler {
	return &Handler{snapshot: snapshot}
}

// NewServer builds the echo instance for the mock source
func NewServer(snapshot *Snapshot, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))

	NewHandler(snapshot).Register(e.Group("/api"))
	return e
}

// Register mounts the mock source routes
func (h *Handler) Register(g *echo.Group) {
	g.GET("/health", h.Health)
	g.GET("/customers", h.ListCustomers)
	g.GET("/customers/:id", h.GetCustomer)
}

// Health reports the dataset size
func (h *Handler) Health(c echo.Context) error {
	total := h.snapshot.Len()
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:         "healthy",
		Service:        ServiceName,
		TotalCustomers: &total,
	})
}

// ListCustomers serves a page of raw records. Out-of-range paging is clamped rather than rejected.
func (h *Handler) ListCustomers(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", defaultLimit)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total := h.snapshot.Len()
	return c.JSON(http.StatusOK, dto.SourcePage{
		Data:       h.snapshot.Page(page, limit),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	})
}

// GetCustomer serves one raw record by id
func (h *Handler) GetCustomer(c echo.Context) error {
	customerID := c.Param("id")

	customer, err := h.snapshot.Get(customerID)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, NotFoundResponse{
				Error:      "Customer not found",
				CustomerID: customerID,
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]dto.RawCustomer{"data": customer})
}

// queryInt reads an integer query parameter; absent or unparseable values yield the default
func queryInt(c echo.Context, name string, def int) int {
	value := c.QueryParam(name)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}
