package handlers

import (
	"log"
	"net/http"
	"time"

	response "cuidandote_presupuestos/internal/adapter/http/dto/response"
	"cuidandote_presupuestos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and storage reachability.
type HealthHandler struct {
	repo    interfaces.IQuoteRepository
	version string
}

func NewHealthHandler(repo interfaces.IQuoteRepository, version string) *HealthHandler {
	return &HealthHandler{repo: repo, version: version}
}

// Health answers liveness plus storage reachability. Status is liveness
// only and stays "ok" while the process serves requests; the database field
// carries the storage state ("connected" or "error") so monitors can alert
// on degraded storage without restarting a healthy process.
func (h *HealthHandler) Health(c *gin.Context) {
	db := "connected"
	if h.repo == nil {
		db = "error"
	} else if err := h.repo.Ping(c.Request.Context()); err != nil {
		log.Printf("[health][handler] database ping failed err=%v", err)
		db = "error"
	}

	c.JSON(http.StatusOK, response.HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Database:  db,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
