package handlers

import (
	"net/http"
	"strconv"

	"encyclo-cms/helper"
	"encyclo-cms/models"
	"encyclo-cms/services"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	reviewService services.ReviewService
	Helper        *helper.HTTPHelper
}

func NewSubmissionHandler(reviewService services.ReviewService) *SubmissionHandler {
	return &SubmissionHandler{reviewService: reviewService, Helper: &helper.HTTPHelper{}}
}

func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.reviewService.CreateSubmission(req, userID.(uint))
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

func (h *SubmissionHandler) SubmitSubmission(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	if err := h.reviewService.SubmitSubmission(uint(id), userID.(uint)); err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission sent for review"})
}

func (h *SubmissionHandler) GetSubmissions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var params models.SubmissionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	submissions, total, err := h.reviewService.GetSubmissions(params, userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       total,
		"page":        params.Page,
		"limit":       params.Limit,
	})
}

func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	submission, err := h.reviewService.GetSubmission(uint(id), userID.(uint))
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

func (h *SubmissionHandler) GetPendingSubmissions(c *gin.Context) {
	submissions, err := h.reviewService.GetPendingSubmissions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

func (h *SubmissionHandler) ReviewSubmission(c *gin.Context) {
	moderatorID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reviewService.Review(uint(id), moderatorID.(uint), req)
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
