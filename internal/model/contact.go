package model

// ContactMessage represents a message submitted via the contact form.
// It is validated, used to build the notification email pair, then discarded;
// contact messages are not persisted.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactSubjects is the fixed set of subjects the contact form accepts.
var ContactSubjects = []string{
	"Project Inquiry",
	"Job Opportunity",
	"Collaboration",
	"General",
}

// IsValidContactSubject reports whether s is one of the accepted subjects.
func IsValidContactSubject(s string) bool {
	for _, subject := range ContactSubjects {
		if s == subject {
			return true
		}
	}
	return false
}
