package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"greenwood.com/sis/web/common"
)

// ExportStudents streams the roster workbook, restricted to ?class= when
// present.
func (ep *Endpoint) ExportStudents(c *gin.Context) {
	path, err := ep.Reports.StudentsRoster(c.Query("class"))
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

func (ep *Endpoint) StudentResultsReport(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	path, err := ep.Reports.StudentResults(id)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

func (ep *Endpoint) EmployeeHoursReport(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("start and end query params are required"))
		return
	}
	path, err := ep.Reports.WorkingHoursReport(id, start, end)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
