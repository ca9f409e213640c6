package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultSummaryDays = 7

// TopCards возвращает самые используемые карты
// @Summary Топ-5 карт по числу операций
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Карты"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/top-cards [get]
func (h *Handlers) TopCards(c *gin.Context) {
	cards, err := h.reports.TopCards(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

// MonthlyTotals возвращает суммы по типам операций за месяц
// @Summary Суммы по типам операций за месяц
// @Tags reports
// @Produce json
// @Param year query int true "Год"
// @Param month query int true "Месяц (1-12)"
// @Success 200 {object} map[string]interface{} "Суммы по типам"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/monthly [get]
func (h *Handlers) MonthlyTotals(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be integers"})
		return
	}

	totals, err := h.reports.MonthlyTotals(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "totals": totals})
}

// StatusDistribution возвращает распределение карт по статусам
// @Summary Распределение карт по статусам
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Статусы"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/status-distribution [get]
func (h *Handlers) StatusDistribution(c *gin.Context) {
	statuses, err := h.reports.StatusDistribution(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

// DailySummary возвращает сводку операций по дням
// @Summary Сводка операций по дням
// @Tags reports
// @Produce json
// @Param days query int false "Количество дней, включая сегодня" default(7)
// @Success 200 {object} map[string]interface{} "Сводка"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/daily [get]
func (h *Handlers) DailySummary(c *gin.Context) {
	days := defaultSummaryDays
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		days = parsed
	}

	summary, err := h.reports.DailySummary(c.Request.Context(), days)
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "summary": summary})
}

// TopLocations возвращает самые активные места
// @Summary Топ-10 мест по числу операций
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Места"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/top-locations [get]
func (h *Handlers) TopLocations(c *gin.Context) {
	locations, err := h.reports.TopLocations(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// AverageByCardType возвращает среднюю сумму операции по типу карты
// @Summary Средняя сумма операции по типу карты
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Средние суммы"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/average-by-card-type [get]
func (h *Handlers) AverageByCardType(c *gin.Context) {
	averages, err := h.reports.AverageByCardType(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"averages": averages})
}
