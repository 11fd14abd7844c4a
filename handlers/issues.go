package handlers

import (
	"net/http"

	"cityconnect/models"
	"cityconnect/utils"

	"github.com/gin-gonic/gin"
)

// ReportIssue stores a "Report an Issue" submission.
func (h *ParkHandler) ReportIssue(c *gin.Context) {
	var req models.IssueReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	report, err := h.Service.ReportIssue(c.Request.Context(), req)
	if err != nil {
		h.parkError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Your issue has been submitted. Thank you for helping improve our parks!",
		"issue":   report,
	})
}

func (h *ParkHandler) ListIssues(c *gin.Context) {
	reports, err := h.Service.ListIssues(c.Request.Context())
	if err != nil {
		h.parkError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"issues": reports, "issueTypes": models.IssueTypes})
}
