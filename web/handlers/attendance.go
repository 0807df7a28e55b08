package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syduc993/hr-management-system-sub000/core"
	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/web/common"
)

func (ep *Endpoint) ListAttendanceLogs(c *gin.Context) {
	filters := core.AttendanceFilters{
		EmployeeID: c.Query("employeeId"),
		Position:   c.Query("position"),
		Date:       c.Query("date"),
	}
	if filters.Date != "" {
		if _, err := ep.tn.ParseDate(filters.Date); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("date must be YYYY-MM-DD"))
			return
		}
	}

	logs := ep.attendance.GetAttendanceLogs(c.Request.Context(), filters)
	c.JSON(http.StatusOK, common.NewSearchResponse(logs, int64(len(logs))))
}

type AttendanceEventDTO struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=checkin checkout"`
	Position   string `json:"position"`
	Timestamp  string `json:"timestamp"`
	Notes      string `json:"notes"`
}

func (ep *Endpoint) AddAttendanceEvent(c *gin.Context) {
	var dto AttendanceEventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	ev := model.AttendanceEvent{
		EmployeeID: dto.EmployeeID,
		Type:       model.EventType(dto.Type),
		Position:   dto.Position,
		Timestamp:  ep.tn.ToCivilTime(dto.Timestamp),
		Notes:      dto.Notes,
	}

	created, err := ep.attendance.AddEvent(c.Request.Context(), ev)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(created))
}

func (ep *Endpoint) GetEmployeeHours(c *gin.Context) {
	hours := ep.attendance.GetEmployeeHours(c.Request.Context())

	if employeeID := c.Query("employeeId"); employeeID != "" {
		days, ok := hours[employeeID]
		if !ok {
			days = []model.DailyHoursResult{}
		}
		c.JSON(http.StatusOK, common.NewSuccessResponse(days))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(hours))
}
