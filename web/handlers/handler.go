package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syduc993/hr-management-system-sub000/core"
	"github.com/syduc993/hr-management-system-sub000/timekit"
	"github.com/syduc993/hr-management-system-sub000/web/common"
)

type Endpoint struct {
	attendance  *core.AttendanceService
	workHistory *core.WorkHistoryService
	recruitment *core.RecruitmentService
	tn          *timekit.Normalizer
}

func Register(r *gin.RouterGroup, attendance *core.AttendanceService, workHistory *core.WorkHistoryService, recruitment *core.RecruitmentService, tn *timekit.Normalizer) {
	ep := &Endpoint{
		attendance:  attendance,
		workHistory: workHistory,
		recruitment: recruitment,
		tn:          tn,
	}

	r.GET("/attendance/logs", ep.ListAttendanceLogs)
	r.POST("/attendance/logs", ep.AddAttendanceEvent)
	r.GET("/attendance/hours", ep.GetEmployeeHours)

	r.GET("/work-history", ep.ListWorkHistory)
	r.POST("/work-history", ep.AddWorkHistory)
	r.PUT("/work-history/:id", ep.UpdateWorkHistory)
	r.DELETE("/work-history/:id", ep.DeleteWorkHistory)
	r.GET("/work-history/exists", ep.CheckWorkHistoryExists)

	r.GET("/recruitment/hours-summary", ep.GetHoursSummary)
	r.GET("/recruitment/hours-summary/export", ep.ExportHoursSummary)
}

// respondError translates a service error into the matching HTTP status.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsCode(err, core.CodeValidation):
		status = http.StatusBadRequest
	case core.IsCode(err, core.CodeNotFound):
		status = http.StatusNotFound
	case core.IsCode(err, core.CodeConflict):
		status = http.StatusConflict
	case core.IsCode(err, core.CodeStore):
		status = http.StatusBadGateway
	}
	c.JSON(status, common.NewErrorResponse(err.Error()))
}
