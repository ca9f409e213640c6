package rest

import (
	"net/http"

	"card-fraud-system/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateCustomer создает клиента
// @Summary Создать клиента
// @Description Создает владельца карт. Email должен быть уникальным.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body models.CreateCustomerRequest true "Данные клиента"
// @Success 201 {object} models.Customer "Клиент создан"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Клиент с таким email уже существует"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers [post]
func (h *Handlers) CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customers.CreateCustomer(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// ListCustomers возвращает клиентов или ищет клиента по email
// @Summary Получить список клиентов
// @Description Возвращает всех клиентов. С параметром email возвращает одного клиента.
// @Tags customers
// @Produce json
// @Param email query string false "Email клиента"
// @Success 200 {object} map[string]interface{} "Список клиентов"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers [get]
func (h *Handlers) ListCustomers(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		customer, err := h.customers.FindCustomerByEmail(c.Request.Context(), email)
		if err != nil {
			respondError(c, err, "Failed to find customer")
			return
		}
		c.JSON(http.StatusOK, customer)
		return
	}

	customers, err := h.customers.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get customers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// GetCustomer возвращает клиента по id
// @Summary Получить клиента
// @Tags customers
// @Produce json
// @Param id path string true "ID клиента"
// @Success 200 {object} models.Customer
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers/{id} [get]
func (h *Handlers) GetCustomer(c *gin.Context) {
	customer, err := h.customers.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// ListCustomerCards возвращает карты клиента
// @Summary Получить карты клиента
// @Tags customers
// @Produce json
// @Param id path string true "ID клиента"
// @Success 200 {object} map[string]interface{} "Карты клиента (номера маскированы)"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers/{id}/cards [get]
func (h *Handlers) ListCustomerCards(c *gin.Context) {
	cards, err := h.cards.ListCardsByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get cards")
		return
	}

	resp := make([]*models.CardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, models.NewCardResponse(card, false))
	}
	c.JSON(http.StatusOK, gin.H{"cards": resp})
}
