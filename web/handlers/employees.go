package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
	"greenwood.com/sis/web/common"
)

// employeeView strips the password hash from responses.
type employeeView struct {
	ID             int                 `json:"id"`
	Name           string              `json:"name"`
	Department     string              `json:"department"`
	AssignedGrades []string            `json:"assigned_grades"`
	Role           string              `json:"role"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address"`
	WorkingHours   *model.WorkingHours `json:"working_hours,omitempty"`
}

func toEmployeeView(e model.Employee) employeeView {
	return employeeView{
		ID:             e.ID,
		Name:           e.Name,
		Department:     e.Department,
		AssignedGrades: e.AssignedGrades,
		Role:           e.Role,
		Email:          e.Email,
		Phone:          e.Phone,
		Address:        e.Address,
		WorkingHours:   e.WorkingHours,
	}
}

func (ep *Endpoint) ListEmployees(c *gin.Context) {
	var (
		employees []model.Employee
		err       error
	)
	if dept := c.Query("department"); dept != "" {
		employees, err = ep.Directory.EmployeesByDepartment(dept)
	} else {
		employees, err = ep.Directory.Employees()
	}
	if err != nil {
		ep.fail(c, err)
		return
	}

	views := utils.Map(employees, toEmployeeView)
	c.JSON(http.StatusOK, common.NewSearchResponse(views, len(views)))
}

func (ep *Endpoint) ListDepartments(c *gin.Context) {
	departments, err := ep.Directory.Departments()
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(departments))
}

// EmployeeContext is the trimmed employee view the frontend loads at login.
func (ep *Endpoint) EmployeeContext(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	emp, err := ep.Directory.Employee(id)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"id":              emp.ID,
		"name":            emp.Name,
		"department":      emp.Department,
		"assigned_grades": emp.AssignedGrades,
	}))
}

func (ep *Endpoint) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	id, err := ep.Directory.AddEmployee(req.Name, req.Department)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(gin.H{"id": id}))
}

func (ep *Endpoint) UpdateEmployee(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var update model.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.UpdateEmployee(id, update); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("employee %d updated", id))
}

func (ep *Endpoint) DeleteEmployee(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ep.Directory.RemoveEmployee(id); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("employee %d removed", id))
}

func (ep *Endpoint) AssignGrade(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.AssignGrade(id, req.Grade); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("grade %s assigned", req.Grade))
}

func (ep *Endpoint) RemoveGrade(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.RemoveGrade(id, req.Grade); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("grade %s removed", req.Grade))
}

func (ep *Endpoint) SetEmployeeHours(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req EmployeeHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.SetEmployeeWorkingHours(id, req.Daily, req.Weekly); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("working hours updated"))
}

func (ep *Endpoint) SetStandardHours(c *gin.Context) {
	var req StandardHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.SetStandardWorkingHours(req.Daily, req.Weekly, req.OvertimeRate); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse(
		"standard hours set to %.1f/day, %.1f/week", req.Daily, req.Weekly))
}
