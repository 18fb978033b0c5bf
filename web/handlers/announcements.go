package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"greenwood.com/sis/web/common"
)

// ListAnnouncements returns announcements visible to the caller when
// ?employee_id= and ?department= are present, otherwise the newest
// announcements (optionally capped by ?limit=).
func (ep *Endpoint) ListAnnouncements(c *gin.Context) {
	if raw := c.Query("employee_id"); raw != "" {
		employeeID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid employee_id"))
			return
		}
		anns, err := ep.Directory.AnnouncementsForEmployee(employeeID, c.Query("department"))
		if err != nil {
			ep.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, common.NewSearchResponse(anns, len(anns)))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid limit"))
			return
		}
		limit = parsed
	}
	anns, err := ep.Directory.Announcements(limit)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(anns, len(anns)))
}

func (ep *Endpoint) CreateAnnouncement(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	id, err := ep.Directory.AddAnnouncement(req.Title, req.Content, req.Author,
		req.AuthorID, req.Priority, req.VisibleTo)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(gin.H{"id": id}))
}

func (ep *Endpoint) MarkAnnouncementRead(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.MarkAnnouncementRead(id, req.EmployeeID); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("announcement %d marked read", id))
}

func (ep *Endpoint) DeleteAnnouncement(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ep.Directory.DeleteAnnouncement(id); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("announcement %d deleted", id))
}

func (ep *Endpoint) ListEvents(c *gin.Context) {
	events, err := ep.Directory.Events()
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(events, len(events)))
}

func (ep *Endpoint) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.AddEvent(req.Title, req.Date, req.Description); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewMessageResponse("event added"))
}
