package handlers

import (
	"net/http"
	"strconv"

	"encyclo-cms/helper"
	"encyclo-cms/models"
	"encyclo-cms/services"

	"github.com/gin-gonic/gin"
)

type PersonHandler struct {
	personService services.PersonService
	Helper        *helper.HTTPHelper
}

func NewPersonHandler(personService services.PersonService) *PersonHandler {
	return &PersonHandler{personService: personService, Helper: &helper.HTTPHelper{}}
}

func (h *PersonHandler) CreateSuggestion(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestion, err := h.personService.CreateSuggestion(req, userID.(uint))
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, suggestion)
}

func (h *PersonHandler) GetSuggestions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	suggestions, err := h.personService.GetSuggestions(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (h *PersonHandler) GetSuggestion(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid suggestion ID"})
		return
	}

	suggestion, err := h.personService.GetSuggestion(uint(id), userID.(uint))
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

func (h *PersonHandler) GetPendingSuggestions(c *gin.Context) {
	suggestions, err := h.personService.GetPendingSuggestions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (h *PersonHandler) ReviewSuggestion(c *gin.Context) {
	moderatorID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid suggestion ID"})
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.personService.ReviewSuggestion(uint(id), moderatorID.(uint), req)
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PersonHandler) PreviewSlug(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid suggestion ID"})
		return
	}

	var req models.SlugPreviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preview, err := h.personService.PreviewSlug(uint(id), req)
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

func (h *PersonHandler) PublishSuggestion(c *gin.Context) {
	adminID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid suggestion ID"})
		return
	}

	var req models.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.personService.Publish(uint(id), adminID.(uint), req)
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
