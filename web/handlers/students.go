package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"greenwood.com/sis/directory"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
	"greenwood.com/sis/web/common"
)

func (ep *Endpoint) ListClasses(c *gin.Context) {
	classes, err := ep.Directory.Classes()
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(classes))
}

// ListStudents returns the roster, restricted to ?class= when present.
func (ep *Endpoint) ListStudents(c *gin.Context) {
	var (
		students []model.Student
		err      error
	)
	if class := c.Query("class"); class != "" {
		students, err = ep.Directory.StudentsByClass(class)
	} else {
		students, err = ep.Directory.Students()
	}
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(students, len(students)))
}

func (ep *Endpoint) GetStudent(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	student, err := ep.Directory.Student(id)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(student))
}

func (ep *Endpoint) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	id, err := ep.Directory.AddStudent(directory.NewStudent{
		Name:             req.Name,
		Class:            req.Class,
		ParentContact:    req.ParentContact,
		ParentEmail:      req.ParentEmail,
		DOB:              req.DOB,
		Address:          req.Address,
		HealthStatus:     req.HealthStatus,
		Allergies:        req.Allergies,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(gin.H{"id": id}))
}

func (ep *Endpoint) UpdateStudent(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var update model.StudentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.UpdateStudent(id, update); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("student %d updated", id))
}

func (ep *Endpoint) DeleteStudent(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ep.Directory.RemoveStudent(id); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("student %d removed", id))
}

// SearchStudents matches ?q= against student names. An empty query returns
// an empty list rather than the whole roster.
func (ep *Endpoint) SearchStudents(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, common.NewSearchResponse([]model.Student{}, 0))
		return
	}
	students, err := ep.Directory.SearchStudents(q)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(students, len(students)))
}

// ImportStudents replaces the roster from an uploaded CSV file. The client
// sends the file in the "file" multipart field.
func (ep *Endpoint) ImportStudents(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("CSV file is required in field 'file'"))
		return
	}

	src, err := file.Open()
	if err != nil {
		ep.fail(c, err)
		return
	}
	defer src.Close()

	rows, err := utils.ParseCSV(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid CSV: "+err.Error()))
		return
	}

	count, err := ep.Directory.ImportStudentsCSV(rows)
	if err != nil {
		ep.fail(c, err)
		return
	}
	ep.Log.WithField("students", count).Info("roster imported")
	c.JSON(http.StatusOK, common.NewMessageResponse("%d students imported", count))
}

func (ep *Endpoint) UpdateStudentResults(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.UpdateStudentResults(id, req.Term, req.Subject, req.Score); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("results updated"))
}

func (ep *Endpoint) GetStudentResults(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	results, err := ep.Directory.StudentResults(id)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(results))
}

func (ep *Endpoint) StudentAcademicSummary(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	summary, err := ep.Directory.AcademicSummary(id)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"summary": summary}))
}
