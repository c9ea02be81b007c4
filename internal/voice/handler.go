package voice

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Bot connectivity check
// --------------------------------------------------
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --------------------------------------------------
// Restaurant + menu lookup by called number
// --------------------------------------------------
func (h *Handler) RestaurantByNumber(c *gin.Context) {
	info, err := h.service.LookupRestaurant(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondVoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

type parseRequest struct {
	RestaurantNumber string `json:"restaurant_number" binding:"required"`
	Utterance        string `json:"utterance" binding:"required"`
}

// --------------------------------------------------
// Parse free text (READ ONLY, no order created)
// --------------------------------------------------
func (h *Handler) ParseOrder(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_number and utterance are required"})
		return
	}

	result, err := h.service.Parse(c.Request.Context(), req.RestaurantNumber, req.Utterance)
	if err != nil {
		respondVoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// Create order (free text or structured basket)
// --------------------------------------------------
func (h *Handler) CreateOrder(c *gin.Context) {
	var req VoiceOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.RestaurantNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_number is required"})
		return
	}
	if req.Utterance == "" && len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "utterance or items is required"})
		return
	}

	o, err := h.service.ParseAndCreate(c.Request.Context(), req)
	if err != nil {
		respondVoiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func respondVoiceError(c *gin.Context, err error) {
	var unknown *UnknownItemError
	switch {
	case errors.Is(err, ErrRestaurantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
	case errors.Is(err, ErrEmptyMenu), errors.Is(err, ErrNoItemsRecognized):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &unknown):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": unknown.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
