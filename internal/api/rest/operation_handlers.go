package rest

import (
	"log"
	"net/http"

	"card-fraud-system/internal/models"

	"github.com/gin-gonic/gin"
)

// RecordOperation проводит операцию по карте
// @Summary Провести операцию по карте
// @Description Проверяет статус и лимит карты, записывает операцию в журнал и запускает правила детекции (синхронно или через Kafka). Ответ содержит созданные оповещения и итоговый статус карты.
// @Tags operations
// @Accept json
// @Produce json
// @Param id path string true "ID карты"
// @Param operation body models.RecordOperationRequest true "Операция"
// @Success 201 {object} models.RecordOperationResponse "Операция записана"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 403 {object} map[string]string "Карта не активна"
// @Failure 404 {object} map[string]string "Карта не найдена"
// @Failure 422 {object} map[string]string "Превышен лимит"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Failure 503 {object} map[string]interface{} "Операция записана, но не поставлена в очередь детекции"
// @Router /cards/{id}/operations [post]
func (h *Handlers) RecordOperation(c *gin.Context) {
	var req models.RecordOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.CardID = c.Param("id")

	resp, err := h.operations.RecordOperation(c.Request.Context(), &req)
	if err != nil {
		if resp == nil {
			respondError(c, err, "Failed to record operation")
			return
		}
		// Операция уже в журнале, поэтому ответ отдается вместе с ошибкой
		code := statusFor(err)
		message := err.Error()
		if code == http.StatusInternalServerError {
			log.Printf("Detection failed for operation %s: %v", resp.Operation.ID, err)
			message = "Operation recorded but detection failed"
		}
		c.JSON(code, gin.H{"error": message, "result": resp})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListCardOperations возвращает историю операций карты
// @Summary Получить операции карты
// @Tags operations
// @Produce json
// @Param id path string true "ID карты"
// @Success 200 {object} map[string]interface{} "Операции, новые первыми"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id}/operations [get]
func (h *Handlers) ListCardOperations(c *gin.Context) {
	ops, err := h.operations.ListOperationsByCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get operations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"operations": ops})
}

// RecentOperations возвращает операции карты за последние 30 дней
// @Summary Получить недавние операции карты
// @Tags operations
// @Produce json
// @Param id path string true "ID карты"
// @Success 200 {object} map[string]interface{} "Операции за 30 дней"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id}/operations/recent [get]
func (h *Handlers) RecentOperations(c *gin.Context) {
	ops, err := h.operations.RecentOperations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get operations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"operations": ops})
}

// TotalAmount возвращает сумму операций карты за период
// @Summary Сумма операций карты за период
// @Tags operations
// @Produce json
// @Param id path string true "ID карты"
// @Param from query string true "Начало периода (RFC3339)"
// @Param to query string true "Конец периода (RFC3339)"
// @Success 200 {object} map[string]interface{} "Сумма"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id}/operations/total [get]
func (h *Handlers) TotalAmount(c *gin.Context) {
	from, err := optionalTime(c, "from")
	if err != nil || from == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be an RFC3339 timestamp"})
		return
	}
	to, err := optionalTime(c, "to")
	if err != nil || to == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be an RFC3339 timestamp"})
		return
	}

	cardID := c.Param("id")
	total, err := h.operations.TotalAmount(c.Request.Context(), cardID, *from, *to)
	if err != nil {
		respondError(c, err, "Failed to calculate total")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"card_id": cardID,
		"from":    from,
		"to":      to,
		"total":   total,
	})
}

// FindOperations ищет операции по фильтру
// @Summary Найти операции
// @Description Все параметры необязательны. Границы суммы и дат включаются.
// @Tags operations
// @Produce json
// @Param card_id query string false "ID карты"
// @Param type query string false "Тип операции"
// @Param location query string false "Место"
// @Param min_amount query string false "Минимальная сумма"
// @Param max_amount query string false "Максимальная сумма"
// @Param from query string false "Начало периода (RFC3339)"
// @Param to query string false "Конец периода (RFC3339)"
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Success 200 {object} map[string]interface{} "Найденные операции"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /operations [get]
func (h *Handlers) FindOperations(c *gin.Context) {
	filter := models.OperationFilter{
		CardID:   c.Query("card_id"),
		Type:     models.OperationType(c.Query("type")),
		Location: c.Query("location"),
		Limit:    parseLimit(c),
	}

	var err error
	if filter.MinAmount, err = optionalDecimal(c, "min_amount"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_amount must be a decimal number"})
		return
	}
	if filter.MaxAmount, err = optionalDecimal(c, "max_amount"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_amount must be a decimal number"})
		return
	}
	if filter.From, err = optionalTime(c, "from"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be an RFC3339 timestamp"})
		return
	}
	if filter.To, err = optionalTime(c, "to"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be an RFC3339 timestamp"})
		return
	}

	ops, err := h.operations.FindOperations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to find operations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"operations": ops})
}

// GetOperation возвращает операцию по id
// @Summary Получить операцию
// @Tags operations
// @Produce json
// @Param id path string true "ID операции"
// @Success 200 {object} models.CardOperation
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /operations/{id} [get]
func (h *Handlers) GetOperation(c *gin.Context) {
	op, err := h.operations.GetOperation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get operation")
		return
	}
	c.JSON(http.StatusOK, op)
}

// GenerateRandomOperation генерирует случайную операцию
// @Summary Сгенерировать случайную операцию
// @Description Генерирует запрос на операцию для ручного тестирования. Операция не записывается.
// @Tags operations
// @Produce json
// @Param card_id query string false "ID карты для подстановки в запрос"
// @Success 200 {object} models.RecordOperationRequest "Сгенерированная операция"
// @Router /operations/generate [get]
func (h *Handlers) GenerateRandomOperation(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.GenerateOperation(c.Query("card_id")))
}
