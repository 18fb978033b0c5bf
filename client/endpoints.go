package client

import (
	"encoding/json"
	"fmt"
	"strconv"

	"greenwood.com/sis/attendance"
	"greenwood.com/sis/model"
)

type searchEnvelope[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

type dataEnvelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type StudentEndpoint struct {
	transport *Transport
}

func (e *StudentEndpoint) List(class string) ([]model.Student, error) {
	query := map[string]string{}
	if class != "" {
		query["class"] = class
	}
	resp, err := e.transport.Get("/api/students", query)
	if err != nil {
		return nil, err
	}
	var out searchEnvelope[model.Student]
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (e *StudentEndpoint) Get(id int) (model.Student, error) {
	resp, err := e.transport.Get(fmt.Sprintf("/api/students/%d", id), nil)
	if err != nil {
		return model.Student{}, err
	}
	var out dataEnvelope[model.Student]
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return model.Student{}, err
	}
	return out.Data, nil
}

func (e *StudentEndpoint) Search(q string) ([]model.Student, error) {
	resp, err := e.transport.Get("/api/search/students", map[string]string{"q": q})
	if err != nil {
		return nil, err
	}
	var out searchEnvelope[model.Student]
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type AttendanceEndpoint struct {
	transport *Transport
}

func (e *AttendanceEndpoint) CheckIn(employeeID int) error {
	_, err := e.transport.Post("/api/checkin", map[string]int{"employee_id": employeeID}, nil)
	return err
}

func (e *AttendanceEndpoint) CheckOut(employeeID int) error {
	_, err := e.transport.Post("/api/checkout", map[string]int{"employee_id": employeeID}, nil)
	return err
}

func (e *AttendanceEndpoint) ByDate(date string) ([]model.AttendanceRecord, error) {
	resp, err := e.transport.Get("/api/attendance", map[string]string{"date": date})
	if err != nil {
		return nil, err
	}
	var out searchEnvelope[model.AttendanceRecord]
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (e *AttendanceEndpoint) Overtime(employeeID int, start, end string) (attendance.OvertimeSummary, error) {
	resp, err := e.transport.Get(fmt.Sprintf("/api/employee/%d/overtime", employeeID),
		map[string]string{"start": start, "end": end})
	if err != nil {
		return attendance.OvertimeSummary{}, err
	}
	var out dataEnvelope[attendance.OvertimeSummary]
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return attendance.OvertimeSummary{}, err
	}
	return out.Data, nil
}

type CorrectionEndpoint struct {
	transport *Transport
}

type CorrectionSubmission struct {
	EmployeeID     int                   `json:"employee_id"`
	EmployeeName   string                `json:"employee_name"`
	OriginalDate   string                `json:"original_date"`
	OriginalStatus string                `json:"original_status,omitempty"`
	Reason         string                `json:"reason"`
	Patch          model.CorrectionPatch `json:"requested_changes"`
}

func (e *CorrectionEndpoint) Submit(sub CorrectionSubmission) (int, error) {
	resp, err := e.transport.Post("/api/corrections", sub, nil)
	if err != nil {
		return 0, err
	}
	var out dataEnvelope[struct {
		ID int `json:"id"`
	}]
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return 0, err
	}
	return out.Data.ID, nil
}

func (e *CorrectionEndpoint) List(employeeID int) ([]model.CorrectionRequest, error) {
	query := map[string]string{}
	if employeeID != 0 {
		query["employee_id"] = strconv.Itoa(employeeID)
	}
	resp, err := e.transport.Get("/api/corrections", query)
	if err != nil {
		return nil, err
	}
	var out searchEnvelope[model.CorrectionRequest]
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Process requires the client's admin password.
func (e *CorrectionEndpoint) Process(requestID int, decision, processedBy, notes string) error {
	_, err := e.transport.Post(fmt.Sprintf("/api/admin/corrections/%d/process", requestID),
		map[string]string{
			"decision":     decision,
			"processed_by": processedBy,
			"notes":        notes,
		}, nil)
	return err
}
