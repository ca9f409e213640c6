package rest

import (
	"net/http"

	"card-fraud-system/internal/models"

	"github.com/gin-gonic/gin"
)

// ListAlerts возвращает оповещения
// @Summary Получить оповещения
// @Description Без параметров возвращает все оповещения, новые первыми. Можно отфильтровать по карте или по уровню.
// @Tags alerts
// @Produce json
// @Param card_id query string false "ID карты"
// @Param level query string false "Уровень: WARNING или CRITICAL"
// @Success 200 {object} map[string]interface{} "Оповещения"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /alerts [get]
func (h *Handlers) ListAlerts(c *gin.Context) {
	var (
		alerts []*models.FraudAlert
		err    error
	)
	if level := c.Query("level"); level != "" {
		alerts, err = h.alerts.ListAlertsByLevel(c.Request.Context(), models.AlertLevel(level))
	} else {
		alerts, err = h.alerts.ListAlerts(c.Request.Context(), c.Query("card_id"))
	}
	if err != nil {
		respondError(c, err, "Failed to get alerts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// ListCardAlerts возвращает оповещения карты
// @Summary Получить оповещения карты
// @Tags alerts
// @Produce json
// @Param id path string true "ID карты"
// @Success 200 {object} map[string]interface{} "Оповещения карты"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id}/alerts [get]
func (h *Handlers) ListCardAlerts(c *gin.Context) {
	alerts, err := h.alerts.ListAlerts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get alerts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// ListCriticalAlerts возвращает CRITICAL-оповещения
// @Summary Получить критические оповещения
// @Tags alerts
// @Produce json
// @Success 200 {object} map[string]interface{} "Оповещения"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /alerts/critical [get]
func (h *Handlers) ListCriticalAlerts(c *gin.Context) {
	alerts, err := h.alerts.ListCriticalAlerts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get alerts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// AlertStats возвращает количество оповещений по уровням
// @Summary Статистика оповещений
// @Tags alerts
// @Produce json
// @Success 200 {object} map[string]int64 "Количество по уровням"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /alerts/stats [get]
func (h *Handlers) AlertStats(c *gin.Context) {
	stats, err := h.alerts.AlertStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get alert stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DeleteAlert удаляет оповещение
// @Summary Удалить оповещение
// @Description Ручная очистка. Конвейер правил оповещения не удаляет.
// @Tags alerts
// @Produce json
// @Param id path string true "ID оповещения"
// @Success 200 {object} map[string]interface{} "Оповещение удалено"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /alerts/{id} [delete]
func (h *Handlers) DeleteAlert(c *gin.Context) {
	alertID := c.Param("id")
	if err := h.alerts.DeleteAlert(c.Request.Context(), alertID); err != nil {
		respondError(c, err, "Failed to delete alert")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert deleted", "alert_id": alertID})
}
