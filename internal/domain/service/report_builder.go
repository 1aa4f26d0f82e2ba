// Package service defines the interfaces for domain services implemented by
// the infra layer.
package service

import (
	"creditdesk/internal/domain/entity"
)

// ReportBuilder turns users and their ledgers into an encoded spreadsheet
// document. Implementations are pure: no storage writes, no sharing.
type ReportBuilder interface {
	// BuildReport emits one row per (user, transaction) pair in user order,
	// or one placeholder row per user with an empty or missing ledger, and
	// returns the workbook as a base64-encoded byte string suitable for a
	// file write or attach. Ledgers are keyed by user id; keys that match
	// no user are ignored.
	BuildReport(users []entity.User, ledgers map[string][]entity.Transaction) (string, error)
}
