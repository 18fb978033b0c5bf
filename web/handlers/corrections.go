package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"greenwood.com/sis/web/common"
)

func (ep *Endpoint) SubmitCorrection(c *gin.Context) {
	var req SubmitCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	id, err := ep.Engine.SubmitCorrectionRequest(req.EmployeeID, req.EmployeeName,
		req.OriginalDate, req.OriginalStatus, req.Reason, req.Patch)
	if err != nil {
		ep.fail(c, err)
		return
	}
	ep.Log.WithFields(map[string]interface{}{
		"request_id":  id,
		"employee_id": req.EmployeeID,
	}).Info("correction request submitted")
	c.JSON(http.StatusCreated, common.NewSuccessResponse(gin.H{"id": id}))
}

// ListCorrections returns every request, or one employee's requests when
// ?employee_id= is present.
func (ep *Endpoint) ListCorrections(c *gin.Context) {
	employeeID := 0
	if raw := c.Query("employee_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid employee_id"))
			return
		}
		employeeID = parsed
	}

	requests, err := ep.Engine.CorrectionRequests(employeeID)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(requests, len(requests)))
}

func (ep *Endpoint) ProcessCorrection(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ProcessCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if err := ep.Engine.ProcessCorrectionRequest(id, req.Decision, req.ProcessedBy, req.Notes); err != nil {
		ep.fail(c, err)
		return
	}
	ep.Log.WithFields(map[string]interface{}{
		"request_id": id,
		"decision":   req.Decision,
	}).Info("correction request processed")
	c.JSON(http.StatusOK, common.NewMessageResponse("request %d %s", id, req.Decision))
}
