package restaurant

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name             string `json:"name"`
	ContactFirstName string `json:"contact_first_name"`
	ContactLastName  string `json:"contact_last_name"`
	Address          string `json:"address"`
	Email            string `json:"email"`
	CallNumber       string `json:"call_number"`
}

// --------------------------------------------------
// Create restaurant profile
// --------------------------------------------------
func (h *Handler) CreateRestaurant(c *gin.Context) {
	userID := c.GetString("userID")

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rest, err := h.service.CreateRestaurant(
		c.Request.Context(),
		userID,
		req.Name,
		req.ContactFirstName,
		req.ContactLastName,
		req.Address,
		req.Email,
		req.CallNumber,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rest)
}

// --------------------------------------------------
// List my restaurants
// --------------------------------------------------
func (h *Handler) ListMyRestaurants(c *gin.Context) {
	userID := c.GetString("userID")

	restaurants, err := h.service.ListMyRestaurants(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// --------------------------------------------------
// Update profile (incl. call number)
// --------------------------------------------------
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	userID := c.GetString("userID")
	restaurantID := c.Param("id")

	var upd Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rest, err := h.service.UpdateRestaurant(c.Request.Context(), restaurantID, userID, upd)
	if err != nil {
		if err == ErrNotOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rest)
}
