// Package server exposes the optimizer over an HTTP API for the surrounding
// planning system: data collection happens upstream, presentation downstream,
// and this API carries plain request/plan structures between them.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iwvelando/travel-optimizer/internal/config"
	"github.com/iwvelando/travel-optimizer/internal/optimizer"
	"github.com/iwvelando/travel-optimizer/internal/travel"
	"github.com/iwvelando/travel-optimizer/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger  *zap.Logger
	opt     *optimizer.Optimizer
	version string
}

type feasibilityRequest struct {
	TotalBudget  float64 `json:"total_budget"`
	Destination  string  `json:"destination"`
	DurationDays int     `json:"duration_days"`
	GroupSize    int     `json:"group_size"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// NewRouter constructs the gin engine that serves the optimizer API.
func NewRouter(logger *zap.Logger, conf *config.Configuration, opt *optimizer.Optimizer, version string) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &handler{logger: logger, opt: opt, version: version}

	r := gin.New()
	r.Use(gin.Recovery())

	allowedOrigins := conf.Server.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", h.handleHealth)
		api.POST("/optimize", h.handleOptimize)
		api.POST("/alternatives", h.handleAlternatives)
		api.POST("/feasibility", h.handleFeasibility)
	}

	return r
}

func (h *handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

func (h *handler) handleOptimize(c *gin.Context) {
	requestID := uuid.New().String()

	var req travel.Request
	if !h.bindRequest(c, requestID, &req) {
		return
	}

	plan, err := h.opt.Optimize(req)
	if err != nil {
		h.respondOptimizeError(c, requestID, err)
		return
	}

	h.logger.Info("optimize request served",
		zap.String("op", "server.handleOptimize"),
		zap.String("requestID", requestID),
		zap.Float64("valueScore", plan.ValueScore),
	)

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID,
		"plan":       plan,
	})
}

func (h *handler) handleAlternatives(c *gin.Context) {
	requestID := uuid.New().String()

	var req travel.Request
	if !h.bindRequest(c, requestID, &req) {
		return
	}

	alternatives, err := h.opt.GenerateAlternatives(req)
	if err != nil {
		h.respondOptimizeError(c, requestID, err)
		return
	}

	h.logger.Info("alternatives request served",
		zap.String("op", "server.handleAlternatives"),
		zap.String("requestID", requestID),
		zap.Int("count", len(alternatives)),
	)

	c.JSON(http.StatusOK, gin.H{
		"request_id":   requestID,
		"alternatives": alternatives,
	})
}

func (h *handler) handleFeasibility(c *gin.Context) {
	requestID := uuid.New().String()

	var req feasibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{RequestID: requestID, Error: "invalid request body: " + err.Error()})
		return
	}
	if req.TotalBudget < 0 {
		c.JSON(http.StatusBadRequest, errorResponse{RequestID: requestID, Error: "total budget must be non-negative"})
		return
	}

	report := h.opt.AnalyzeFeasibility(req.TotalBudget, req.Destination, req.DurationDays, req.GroupSize)

	h.logger.Info("feasibility request served",
		zap.String("op", "server.handleFeasibility"),
		zap.String("requestID", requestID),
		zap.Bool("feasible", report.Feasible),
	)

	c.JSON(http.StatusOK, gin.H{
		"request_id":  requestID,
		"feasibility": report,
	})
}

func (h *handler) bindRequest(c *gin.Context, requestID string, req *travel.Request) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{RequestID: requestID, Error: "invalid request body: " + err.Error()})
		return false
	}
	if err := validation.ValidateRequest(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{RequestID: requestID, Error: err.Error()})
		return false
	}
	return true
}

func (h *handler) respondOptimizeError(c *gin.Context, requestID string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, config.ErrUnknownComfortLevel) {
		status = http.StatusBadRequest
	}

	h.logger.Error("optimization failed",
		zap.String("op", "server.respondOptimizeError"),
		zap.String("requestID", requestID),
		zap.Error(err),
	)

	c.JSON(status, errorResponse{RequestID: requestID, Error: err.Error()})
}
