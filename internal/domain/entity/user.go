// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an identity and profile record in the remote directory.
// It is read-only from this system's perspective: the server creates and
// mutates users, this client only fetches them. JSON tags follow the remote
// wire contract exactly ("DOB" is capitalised on the wire).
type User struct {
	UserID        string  `json:"user_id"`        // Stable unique identifier, the sole join key to transactions.
	Username      string  `json:"username"`       // Display name, the field the list screen filters on.
	PhoneNumber   string  `json:"phone_number"`   // Contact phone number as formatted by the server.
	Email         string  `json:"email"`          // Contact email.
	DOB           string  `json:"DOB"`            // Date of birth, server-formatted string.
	Height        string  `json:"height"`         // Unit-less string as provided by the server.
	Weight        string  `json:"weight"`         // Unit-less string as provided by the server.
	Gender        string  `json:"gender"`         // Free-form string.
	BloodGroup    string  `json:"blood_group"`    // Free-form string.
	CreditBalance float64 `json:"credit_balance"` // Current balance in the loyalty/credit system.
}
