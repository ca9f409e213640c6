package rest

import (
	"context"
	"log"
	"net/http"

	"card-fraud-system/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// IssueCard выпускает карту
// @Summary Выпустить карту
// @Description Выпускает карту клиенту. DEBIT требует daily_limit, CREDIT - monthly_limit (interest_rate по умолчанию 0), PREPAID - initial_balance. Полный номер карты возвращается только в этом ответе.
// @Tags cards
// @Accept json
// @Produce json
// @Param card body models.IssueCardRequest true "Параметры карты"
// @Success 201 {object} models.CardResponse "Карта выпущена"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Клиент не найден"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards [post]
func (h *Handlers) IssueCard(c *gin.Context) {
	var req models.IssueCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.cards.IssueCard(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to issue card")
		return
	}

	c.JSON(http.StatusCreated, models.NewCardResponse(card, true))
}

// GetCard возвращает карту по id
// @Summary Получить карту
// @Tags cards
// @Produce json
// @Param id path string true "ID карты"
// @Success 200 {object} models.CardResponse
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id} [get]
func (h *Handlers) GetCard(c *gin.Context) {
	card, err := h.cards.GetCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get card")
		return
	}
	c.JSON(http.StatusOK, models.NewCardResponse(card, false))
}

// GetCardStatus возвращает статус карты (из кэша Redis, если он доступен)
// @Summary Получить статус карты
// @Tags cards
// @Produce json
// @Param id path string true "ID карты"
// @Success 200 {object} map[string]string "Статус карты"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id}/status [get]
func (h *Handlers) GetCardStatus(c *gin.Context) {
	cardID := c.Param("id")
	status, err := h.cards.GetCardStatus(c.Request.Context(), cardID)
	if err != nil {
		respondError(c, err, "Failed to get card status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"card_id": cardID, "status": status})
}

// ActivateCard активирует карту
// @Summary Активировать карту
// @Description Переводит карту в ACTIVE. Повторная активация активной карты возвращает 409.
// @Tags cards
// @Produce json
// @Param id path string true "ID карты"
// @Success 200 {object} models.CardResponse
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Карта уже активна"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id}/activate [post]
func (h *Handlers) ActivateCard(c *gin.Context) {
	h.changeStatus(c, h.cards.ActivateCard)
}

// SuspendCard приостанавливает карту
// @Summary Приостановить карту
// @Tags cards
// @Produce json
// @Param id path string true "ID карты"
// @Success 200 {object} models.CardResponse
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id}/suspend [post]
func (h *Handlers) SuspendCard(c *gin.Context) {
	h.changeStatus(c, h.cards.SuspendCard)
}

// BlockCard блокирует карту
// @Summary Заблокировать карту
// @Tags cards
// @Produce json
// @Param id path string true "ID карты"
// @Success 200 {object} models.CardResponse
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id}/block [post]
func (h *Handlers) BlockCard(c *gin.Context) {
	h.changeStatus(c, h.cards.BlockCard)
}

func (h *Handlers) changeStatus(c *gin.Context, change func(context.Context, string) (*models.Card, error)) {
	card, err := change(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to change card status")
		return
	}
	c.JSON(http.StatusOK, models.NewCardResponse(card, false))
}

// VerifyLimit проверяет, укладывается ли сумма в лимит карты
// @Summary Проверить лимит карты
// @Description Сравнивает сумму с дневным лимитом (DEBIT), месячным лимитом (CREDIT) или балансом (PREPAID). Статус карты не учитывается.
// @Tags cards
// @Produce json
// @Param id path string true "ID карты"
// @Param amount query string true "Сумма операции"
// @Success 200 {object} map[string]interface{} "Результат проверки"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cards/{id}/verify-limit [get]
func (h *Handlers) VerifyLimit(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}

	cardID := c.Param("id")
	allowed, err := h.cards.VerifyLimit(c.Request.Context(), cardID, amount)
	if err != nil {
		respondError(c, err, "Failed to verify limit")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"card_id": cardID,
		"amount":  amount,
		"allowed": allowed,
	})
}

// DetectFraud запускает конвейер правил по карте вручную
// @Summary Запустить детекцию по карте
// @Description Прогоняет правила по всей истории карты под блокировкой карты. Повторный запуск создает повторные оповещения.
// @Tags detection
// @Produce json
// @Param id path string true "ID карты"
// @Success 200 {object} models.DetectionResult "Результат детекции"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]interface{} "Ошибка хранилища, result содержит уже примененные находки"
// @Router /cards/{id}/detect [post]
func (h *Handlers) DetectFraud(c *gin.Context) {
	cardID := c.Param("id")

	result, err := h.fraud.DetectFraud(c.Request.Context(), cardID)
	if err != nil {
		if result != nil {
			log.Printf("Detection for card %s stopped after %d alerts: %v", cardID, len(result.Alerts), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Detection stopped by storage error", "result": result})
			return
		}
		respondError(c, err, "Failed to run detection")
		return
	}

	c.JSON(http.StatusOK, result)
}
