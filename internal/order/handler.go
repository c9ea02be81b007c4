package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.ListOrders(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) Accept(c *gin.Context) {
	h.setStatus(c, StatusAccepted)
}

func (h *Handler) Reject(c *gin.Context) {
	h.setStatus(c, StatusRejected)
}

func (h *Handler) setStatus(c *gin.Context, status string) {
	orderID, err := strconv.Atoi(c.Param("orderID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	restaurantID := c.Param("id")
	userID := c.GetString("userID")

	if status == StatusAccepted {
		err = h.service.AcceptOrder(c.Request.Context(), restaurantID, userID, orderID)
	} else {
		err = h.service.RejectOrder(c.Request.Context(), restaurantID, userID, orderID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order " + status})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
