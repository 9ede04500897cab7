package handler

import (
	"net/http"

	"cajacentral/internal/infra"
	"cajacentral/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db     *gorm.DB
	rdb    *redis.Client
	smtpCB *infra.CircuitBreaker
}

func NewHealthHandler(db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb, smtpCB: smtpCB}
}

// Check godoc
// @Summary Estado del servicio, sus dependencias y el rezago de trabajos
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := gin.H{"status": "ok", "database": "ok", "redis": "ok"}
	code := http.StatusOK

	if h.db != nil {
		if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status["database"] = "down"
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	if h.rdb != nil {
		if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
			status["redis"] = "down"
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			// Trabajos apartados tras agotar reintentos: un rezago que crece
			// significa reportes que nunca llegaron.
			rezago := gin.H{}
			for _, cola := range []string{worker.QueueReporte, worker.QueueEmail} {
				if n, err := worker.LongitudDLQ(c.Request.Context(), h.rdb, cola); err == nil {
					rezago[cola] = n
				}
			}
			status["dlq"] = rezago
		}
	}
	if h.smtpCB != nil {
		status["smtp_circuito"] = h.smtpCB.Estado().String()
	}
	c.JSON(code, status)
}
