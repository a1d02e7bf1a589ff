package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"weekly-check/internal/logger"
	"weekly-check/internal/model"
	"weekly-check/internal/service"
)

type SubmissionHandler struct {
	weeks       *service.WeekService
	submissions *service.SubmissionService
	now         func() time.Time
}

func NewSubmissionHandler(weeks *service.WeekService, submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{weeks: weeks, submissions: submissions, now: time.Now}
}

// POST /api/submissions
// The member comes from the token, never from the body. Duplicates come back
// as 409 so the form can tell the user the week is already reported.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if msg := h.validate(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	week, ok, err := h.activeWeek(c, req.Week)
	if err != nil {
		logger.Error("submit.weeks_failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "week table unavailable"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week is not open for submission"})
		return
	}

	user := model.User{
		Username: c.GetString("username"),
		Name:     c.GetString("member_name"),
	}

	rec, err := h.submissions.Submit(c.Request.Context(), user, week, req)
	switch {
	case errors.Is(err, model.ErrDuplicateSubmission):
		c.JSON(http.StatusConflict, gin.H{"error": "already submitted for this week"})
		return
	case errors.Is(err, model.ErrStoreUnavailable):
		logger.Error("submit.store_failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "sheet store unavailable"})
		return
	case err != nil:
		logger.Error("submit.failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, model.SubmitResponse{Record: rec})
}

func (h *SubmissionHandler) validate(req *model.SubmitRequest) string {
	if !req.Outcome.Valid() {
		return "outcome must be Negative or Positive"
	}
	for _, d := range req.Days {
		if !model.ValidDay(d) {
			return "invalid day token: " + d
		}
	}
	testDate, err := time.Parse(model.DateLayout, req.TestDate)
	if err != nil {
		return "test_date must be YYYY-MM-DD"
	}
	if testDate.After(h.now()) {
		return "test_date cannot be in the future"
	}
	return ""
}

func (h *SubmissionHandler) activeWeek(c *gin.Context, number int) (model.Week, bool, error) {
	active, err := h.weeks.Active(c.Request.Context())
	if err != nil {
		return model.Week{}, false, err
	}
	for _, w := range active {
		if w.Number == number {
			return w, true, nil
		}
	}
	return model.Week{}, false, nil
}
