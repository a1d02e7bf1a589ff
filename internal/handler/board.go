package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"weekly-check/internal/logger"
	"weekly-check/internal/model"
	"weekly-check/internal/service"
)

// BoardHandler serves the read side of the dashboard: active weeks for the
// form selector, stored records, and the attendance chart.
type BoardHandler struct {
	weeks   *service.WeekService
	records *service.RecordService
	chart   *service.ChartService
}

func NewBoardHandler(weeks *service.WeekService, records *service.RecordService, chart *service.ChartService) *BoardHandler {
	return &BoardHandler{weeks: weeks, records: records, chart: chart}
}

// GET /api/weeks
func (h *BoardHandler) Weeks(c *gin.Context) {
	weeks, err := h.weeks.Active(c.Request.Context())
	if err != nil {
		logger.Error("weeks.load_failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "week table unavailable"})
		return
	}
	c.JSON(http.StatusOK, weeks)
}

// GET /api/records
func (h *BoardHandler) Records(c *gin.Context) {
	records, err := h.records.Load(c.Request.Context())
	if err != nil {
		logger.Error("records.load_failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "record store unavailable"})
		return
	}
	if records == nil {
		records = []model.Record{}
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/chart?year=2022&week=10
func (h *BoardHandler) Chart(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	week, err := strconv.Atoi(c.Query("week"))
	if err != nil || week < 1 || week > 53 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week"})
		return
	}

	points, err := h.chart.Chart(c.Request.Context(), year, week)
	if err != nil {
		logger.Error("chart.load_failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "record store unavailable"})
		return
	}
	if points == nil {
		points = []model.ChartPoint{}
	}
	c.JSON(http.StatusOK, points)
}
