package attendance

import (
	"fmt"

	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

// SubmitCorrectionRequest files a Pending request to amend a historical
// attendance record. The employee name is denormalized onto the request so
// approvers see it without another lookup.
func (e *Engine) SubmitCorrectionRequest(employeeID int, employeeName, originalDate, originalStatus, reason string, patch model.CorrectionPatch) (int, error) {
	if err := validatePatch(patch); err != nil {
		return 0, err
	}
	if _, err := utils.ParseDate(originalDate); err != nil {
		return 0, fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}

	var newID int
	err := e.db.Corrections.Transact(func(doc *model.CorrectionRequestsDocument) error {
		for i := range doc.Requests {
			if doc.Requests[i].ID >= newID {
				newID = doc.Requests[i].ID
			}
		}
		newID++

		doc.Requests = append(doc.Requests, model.CorrectionRequest{
			ID:                  newID,
			EmployeeID:          employeeID,
			EmployeeName:        employeeName,
			OriginalDate:        originalDate,
			OriginalStatus:      originalStatus,
			RequestedCorrection: patch,
			Reason:              reason,
			Status:              model.RequestPending,
			SubmittedDate:       utils.NowISO(),
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}

// CorrectionRequests lists requests, newest first by submission order kept
// in the store. employeeID 0 means all employees.
func (e *Engine) CorrectionRequests(employeeID int) ([]model.CorrectionRequest, error) {
	doc, err := e.db.Corrections.Load()
	if err != nil {
		return nil, err
	}
	if employeeID == 0 {
		return doc.Requests, nil
	}
	return utils.Filter(doc.Requests, func(r model.CorrectionRequest) bool {
		return r.EmployeeID == employeeID
	}), nil
}

// ProcessCorrectionRequest transitions a Pending request to Approved or
// Rejected. A terminal request cannot be reprocessed. Approval applies the
// requested patch to the matching attendance record; if that record no
// longer exists the whole operation fails and the request stays Pending.
func (e *Engine) ProcessCorrectionRequest(requestID int, decision, processedBy, notes string) error {
	if decision != model.RequestApproved && decision != model.RequestRejected {
		return fmt.Errorf("%w: decision must be %q or %q",
			core.ErrInvalidInput, model.RequestApproved, model.RequestRejected)
	}

	return e.db.Corrections.Transact(func(doc *model.CorrectionRequestsDocument) error {
		for i := range doc.Requests {
			req := &doc.Requests[i]
			if req.ID != requestID {
				continue
			}
			if req.Terminal() {
				return fmt.Errorf("%w: request %d is already %s",
					core.ErrInvalidState, requestID, req.Status)
			}

			if decision == model.RequestApproved {
				if err := e.applyCorrection(req); err != nil {
					return err
				}
			}

			req.Status = decision
			req.ProcessedBy = utils.Ptr(processedBy)
			req.ProcessedDate = utils.Ptr(utils.NowISO())
			req.Notes = notes
			return nil
		}
		return fmt.Errorf("%w: correction request %d", core.ErrNotFound, requestID)
	})
}

// applyCorrection patches the first attendance record matching the request's
// employee and original date. Store order decides when duplicates exist.
func (e *Engine) applyCorrection(req *model.CorrectionRequest) error {
	return e.db.Attendance.Transact(func(doc *model.AttendanceDocument) error {
		for i := range doc.Attendance {
			rec := &doc.Attendance[i]
			if rec.EmployeeID != req.EmployeeID || rec.Date != req.OriginalDate {
				continue
			}
			patch := req.RequestedCorrection
			if patch.Status != nil {
				rec.Status = *patch.Status
			}
			if patch.CheckIn != nil {
				rec.CheckIn = utils.Ptr(*patch.CheckIn)
			}
			if patch.CheckOut != nil {
				rec.CheckOut = utils.Ptr(*patch.CheckOut)
			}
			rec.CorrectionApplied = true
			rec.CorrectionDate = utils.NowISO()
			return nil
		}
		return fmt.Errorf("%w: no attendance record for employee %d on %s",
			core.ErrNotFound, req.EmployeeID, req.OriginalDate)
	})
}

func validatePatch(patch model.CorrectionPatch) error {
	if patch.Empty() {
		return fmt.Errorf("%w: correction patch has no fields", core.ErrInvalidInput)
	}
	if patch.Status != nil && !model.ValidStatus(*patch.Status) {
		return fmt.Errorf("%w: unknown status %q", core.ErrInvalidInput, *patch.Status)
	}
	if patch.CheckIn != nil {
		if _, err := utils.ParseClock(*patch.CheckIn); err != nil {
			return fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
		}
	}
	if patch.CheckOut != nil {
		if _, err := utils.ParseClock(*patch.CheckOut); err != nil {
			return fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
		}
	}
	return nil
}
