// Package httpapi serves the JSON shift intake used by external tools and the load test.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/config"
	"coffeeShopManagement/internal/scheduling"
	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

const principalKey = "principal"

// Handler bundles what the HTTP routes need.
type Handler struct {
	Scheduler   *scheduling.Scheduler
	DefaultRate decimal.Decimal
	Secret      string
	RequireAuth bool
}

// AddShiftRequest is the /add_shift body. HourlyRate may be a number or a
// numeric string; when absent the configured default applies.
type AddShiftRequest struct {
	EmployeeID int64            `json:"employee_id"`
	Date       string           `json:"date"`
	StartTime  string           `json:"start_time"`
	EndTime    string           `json:"end_time"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
}

// AddShiftResponse is returned with 201.
type AddShiftResponse struct {
	Message string        `json:"message"`
	Shift   *models.Shift `json:"shift"`
}

// NewRouter builds the gin engine with logging, recovery and the routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	shifts := r.Group("/")
	if h.RequireAuth {
		shifts.Use(AuthMiddleware(h.Secret, h.Scheduler.Employees))
	}
	shifts.POST("/add_shift", h.AddShift)
	return r
}

// AuthMiddleware validates the Bearer JWT and stores the principal on the context.
// The employee row is re-read so deactivated or renamed accounts lose access.
func AuthMiddleware(secret string, employees repository.EmployeeRepositoryI) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := auth.ParseBearer(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		e, err := employees.GetByID(c.Request.Context(), p.EmployeeID)
		if err != nil {
			log.Printf("auth lookup: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not verify token"})
			return
		}
		if e == nil || e.Login != p.Login {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "employee no longer exists"})
			return
		}
		if e.Status == models.EmployeeStatusInactive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "employee is inactive"})
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// AddShift records a shift for an employee.
func (h *Handler) AddShift(c *gin.Context) {
	raw, err := c.GetRawData()
	var fields map[string]json.RawMessage
	if err != nil || json.Unmarshal(raw, &fields) != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No JSON received"})
		return
	}
	var req AddShiftRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid field types"})
		return
	}
	if req.EmployeeID <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "employee_id is required"})
		return
	}
	rate := h.DefaultRate
	if req.HourlyRate != nil {
		rate = *req.HourlyRate
	}

	sh, err := h.Scheduler.Schedule(c.Request.Context(), scheduling.Request{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Start:      req.StartTime,
		End:        req.EndTime,
		HourlyRate: rate,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, AddShiftResponse{Message: "Shift added", Shift: sh})
	case scheduling.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrShiftExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("add_shift: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add shift"})
	}
}

// Start serves the router on cfg.HTTP.Address and returns a shutdown function.
func Start(cfg *config.Config, sched *scheduling.Scheduler) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}
	h := &Handler{
		Scheduler:   sched,
		DefaultRate: cfg.Shifts.DefaultHourlyRate,
		Secret:      cfg.Auth.JWTSecret,
		RequireAuth: cfg.HTTP.RequireAuth,
	}
	lis, err := net.Listen("tcp", cfg.HTTP.Address)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http serve: %v", err)
		}
	}()
	return srv.Shutdown, nil
}
