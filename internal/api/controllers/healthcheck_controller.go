package controllers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthcheckController struct {
	db *gorm.DB
}

func NewHealthcheckController(db *gorm.DB) *HealthcheckController {
	return &HealthcheckController{
		db: db,
	}
}

// Check godoc
// @Summary Verifica a saúde da aplicação
// @Tags Health Check
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /healthcheck/ [get]
func (hc *HealthcheckController) Check(c *gin.Context) {
	bancoDeDados := hc.checarBancoDeDados(c)

	status := bancoDeDados["status"]
	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"checks": gin.H{
			"banco_de_dados": bancoDeDados,
		},
	})
}

func (hc *HealthcheckController) checarBancoDeDados(c *gin.Context) gin.H {
	start := time.Now()
	err := hc.db.WithContext(c.Request.Context()).Exec("SELECT 1").Error
	latency := math.Round(float64(time.Since(start).Microseconds())/10) / 100

	if err != nil {
		return gin.H{
			"status":     "error",
			"detail":     err.Error(),
			"latency_ms": latency,
		}
	}
	return gin.H{
		"status":     "ok",
		"latency_ms": latency,
	}
}
