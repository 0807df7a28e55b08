package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syduc993/hr-management-system-sub000/export"
	"github.com/syduc993/hr-management-system-sub000/web/common"
)

func (ep *Endpoint) GetHoursSummary(c *gin.Context) {
	summaries := ep.recruitment.Summarize(c.Request.Context())
	c.JSON(http.StatusOK, common.NewSearchResponse(summaries, int64(len(summaries))))
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (ep *Endpoint) ExportHoursSummary(c *gin.Context) {
	summaries := ep.recruitment.Summarize(c.Request.Context())

	var buf bytes.Buffer
	if err := export.WriteHoursSummary(ep.tn, summaries, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("tong-hop-gio-cong-%s.xlsx", ep.tn.DateString(ep.tn.Now()))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
