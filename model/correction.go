package model

// Correction request states. Pending is the only non-terminal state.
const (
	RequestPending  = "Pending"
	RequestApproved = "Approved"
	RequestRejected = "Rejected"
)

// CorrectionRequestsDocument is the full contents of correction_requests.json.
type CorrectionRequestsDocument struct {
	Requests []CorrectionRequest `json:"requests"`
}

type CorrectionRequest struct {
	ID                  int             `json:"id"`
	EmployeeID          int             `json:"employee_id"`
	EmployeeName        string          `json:"employee_name"`
	OriginalDate        string          `json:"original_date"`
	OriginalStatus      string          `json:"original_status"`
	RequestedCorrection CorrectionPatch `json:"requested_correction"`
	Reason              string          `json:"reason"`
	Status              string          `json:"status"`
	SubmittedDate       string          `json:"submitted_date"`
	ProcessedBy         *string         `json:"processed_by"`
	ProcessedDate       *string         `json:"processed_date"`
	Notes               string          `json:"notes"`
}

func (r *CorrectionRequest) Terminal() bool {
	return r.Status == RequestApproved || r.Status == RequestRejected
}

// CorrectionPatch is the typed subset of attendance fields an employee may
// ask to amend. Nil fields are left untouched on approval.
type CorrectionPatch struct {
	Status   *string `json:"status,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
}

func (p CorrectionPatch) Empty() bool {
	return p.Status == nil && p.CheckIn == nil && p.CheckOut == nil
}
