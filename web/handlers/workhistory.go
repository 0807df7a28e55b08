package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syduc993/hr-management-system-sub000/core"
	"github.com/syduc993/hr-management-system-sub000/web/common"
)

func (ep *Endpoint) ListWorkHistory(c *gin.Context) {
	employeeID := c.Query("employeeId")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("employeeId query parameter is required"))
		return
	}

	entries, err := ep.workHistory.GetByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSearchResponse(entries, int64(len(entries))))
}

func (ep *Endpoint) AddWorkHistory(c *gin.Context) {
	var input core.WorkHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	entry, err := ep.workHistory.Add(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(entry))
}

func (ep *Endpoint) UpdateWorkHistory(c *gin.Context) {
	id := c.Param("id")

	var input core.WorkHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	entry, err := ep.workHistory.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(entry))
}

func (ep *Endpoint) DeleteWorkHistory(c *gin.Context) {
	if err := ep.workHistory.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

func (ep *Endpoint) CheckWorkHistoryExists(c *gin.Context) {
	employeeID := c.Query("employeeId")
	requestNo := c.Query("requestNo")
	if employeeID == "" || requestNo == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("employeeId and requestNo query parameters are required"))
		return
	}

	exists, err := ep.workHistory.CheckExists(c.Request.Context(), employeeID, requestNo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"exists": exists}))
}
