package scan

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/llm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type parseRequest struct {
	ImageData string `json:"imageData"`
}

// fallbackResponse is the safe payload returned when extraction cannot
// be completed. Callers always get a ParsedReceipt-shaped body.
type fallbackResponse struct {
	llm.ParsedReceipt
	Error string `json:"error"`
}

// --------------------------------------------------
// PARSE RECEIPT IMAGE
// --------------------------------------------------
// Every failure path returns 500 with the fallback payload; callers
// never see a raw fault or a non-JSON body.
func (h *Handler) ParseReceipt(c *gin.Context) {
	var req parseRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageData is required"})
		return
	}

	parsed, err := h.service.ParseReceipt(c.Request.Context(), req.ImageData)
	if err != nil {
		log.Printf("receipt parsing failed: %v", err)
		c.JSON(http.StatusInternalServerError, fallbackResponse{
			ParsedReceipt: llm.FallbackReceipt(),
			Error:         "Failed to parse receipt",
		})
		return
	}

	c.JSON(http.StatusOK, parsed)
}

// --------------------------------------------------
// SAVE PARSED RECEIPT
// --------------------------------------------------
func (h *Handler) SaveReceipt(c *gin.Context) {
	var req struct {
		UserID  *uuid.UUID        `json:"user_id"`
		Receipt llm.ParsedReceipt `json:"receipt"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	receipt, err := h.service.SaveReceipt(c.Request.Context(), req.UserID, req.Receipt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// --------------------------------------------------
// READ SCANS
// --------------------------------------------------
func (h *Handler) GetReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	receipt, err := h.service.GetReceipt(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrScanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, receipt)
}

func (h *Handler) ListReceipts(c *gin.Context) {
	var userID *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		userID = &id
	}

	scans, err := h.service.ListReceipts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scans": scans})
}
