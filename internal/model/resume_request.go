package model

// RequestStatus tracks how far a resume request got through notification dispatch.
type RequestStatus string

const (
	// StatusPending is set when the request is first stored, before any email is sent.
	StatusPending RequestStatus = "pending"
	// StatusSent means both notification emails were delivered to the transport.
	StatusSent RequestStatus = "sent"
	// StatusFailed means at least one of the two notification emails failed.
	StatusFailed RequestStatus = "failed"
)

// ResumeRequest represents one inbound request for the owner's resume.
type ResumeRequest struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Timestamp string        `json:"timestamp"` // RFC 3339, UTC
	Status    RequestStatus `json:"status"`
	IPAddress string        `json:"ipAddress,omitempty"`
}

// ResumeRequestsData is the on-disk shape of the request log.
type ResumeRequestsData struct {
	Requests []*ResumeRequest `json:"requests"`
}

// RequestStats summarizes the stored resume requests.
type RequestStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Today   int `json:"today"`
}
