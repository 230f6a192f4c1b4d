// Package audit provides audit logging for security-relevant operations.
//
// Events cover sign-in attempts, registrations, permission checks, group
// and membership changes, and content changes. They are written to stdout
// in RFC5424 syslog format and optionally persisted to a database when
// AUDIT_DATABASE_URL is set.
//
// # Usage
//
//	audit.Log(audit.AuthenticateEvent{
//	    AccountID: account.ID,
//	    Method:    "email",
//	    ClientIP:  ip,
//	    Success:   true,
//	})
package audit
