// Package handlers wires the school database operations onto gin routes.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"greenwood.com/sis/attendance"
	"greenwood.com/sis/core"
	"greenwood.com/sis/directory"
	"greenwood.com/sis/report"
	"greenwood.com/sis/web/common"
)

type Endpoint struct {
	DB        *core.Manager
	Engine    *attendance.Engine
	Directory *directory.Directory
	Reports   *report.Generator
	Log       *logrus.Logger
}

func NewEndpoint(db *core.Manager, engine *attendance.Engine, d *directory.Directory,
	reports *report.Generator, log *logrus.Logger) *Endpoint {
	return &Endpoint{
		DB:        db,
		Engine:    engine,
		Directory: d,
		Reports:   reports,
		Log:       log,
	}
}

// idParam parses the named numeric path parameter; a false return means the
// handler has already written the 400 response.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid "+name))
		return 0, false
	}
	return id, true
}

// fail logs the failure and writes the mapped error response.
func (ep *Endpoint) fail(c *gin.Context, err error) {
	status := common.StatusFromError(err)
	if status == http.StatusInternalServerError {
		ep.Log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(status, common.NewErrorResponse(err.Error()))
}
