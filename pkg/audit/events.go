package audit

import "fmt"

// AuthenticateEvent represents a sign-in attempt
type AuthenticateEvent struct {
	AccountID    string
	Method       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return "authn"
}

func (e AuthenticateEvent) Message() string {
	subject := e.AccountID
	if subject == "" {
		subject = "unknown account"
	}
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated via %s", subject, e.Method)
	}
	msg := fmt.Sprintf("%s failed to authenticate via %s", subject, e.Method)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"method": e.Method,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.AccountID != "" {
		sd[SDIDAuth]["account"] = e.AccountID
	}
	if e.Success {
		sd[SDIDAuth]["result"] = "success"
	} else {
		sd[SDIDAuth]["result"] = "failure"
	}
	return sd
}

// RegistrationEvent represents a sign-up or activation
type RegistrationEvent struct {
	AccountID    string
	ClientIP     string
	Operation    string // "register" or "activate"
	Success      bool
	ErrorMessage string
}

func (e RegistrationEvent) MessageID() string {
	return "register"
}

func (e RegistrationEvent) Message() string {
	subject := e.AccountID
	if subject == "" {
		subject = "unknown account"
	}
	if e.Success {
		return fmt.Sprintf("%s completed %s", subject, e.Operation)
	}
	msg := fmt.Sprintf("%s failed %s", subject, e.Operation)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RegistrationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RegistrationEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RegistrationEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
	if e.AccountID != "" {
		sd[SDIDAuth] = map[string]string{"account": e.AccountID}
	}
	return sd
}

// PermissionEvent represents a group permission check
type PermissionEvent struct {
	AccountID string
	GroupID   string
	Required  string
	ClientIP  string
	Allowed   bool
}

func (e PermissionEvent) MessageID() string {
	return "check"
}

func (e PermissionEvent) Message() string {
	if e.Allowed {
		return fmt.Sprintf("%s checked %s on group %s: allowed", e.AccountID, e.Required, e.GroupID)
	}
	return fmt.Sprintf("%s checked %s on group %s: denied", e.AccountID, e.Required, e.GroupID)
}

func (e PermissionEvent) Severity() Severity {
	return SeverityInfo
}

func (e PermissionEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PermissionEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Allowed {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"account": e.AccountID,
		},
		SDIDSubject: {
			"group":  e.GroupID,
			"rights": e.Required,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "check",
			"result":    result,
		},
	}
}

// GroupEvent represents a group lifecycle or membership change
type GroupEvent struct {
	AccountID    string
	GroupID      string
	Operation    string // "create", "update", "delete", "add-member", "update-member", "remove-member"
	MemberID     string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e GroupEvent) MessageID() string {
	return "group"
}

func (e GroupEvent) Message() string {
	target := "group " + e.GroupID
	if e.MemberID != "" {
		target = fmt.Sprintf("member %s of group %s", e.MemberID, e.GroupID)
	}
	if e.Success {
		return fmt.Sprintf("%s performed %s on %s", e.AccountID, e.Operation, target)
	}
	msg := fmt.Sprintf("%s failed %s on %s", e.AccountID, e.Operation, target)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e GroupEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e GroupEvent) Facility() int {
	return FacilityAuthPriv
}

func (e GroupEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"account": e.AccountID,
		},
		SDIDSubject: {
			"group": e.GroupID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
	if e.MemberID != "" {
		sd[SDIDSubject]["member"] = e.MemberID
	}
	return sd
}

// ContentEvent represents a change to articles, pages or comments
type ContentEvent struct {
	AccountID    string
	Kind         string // "article", "page", "comment"
	ContentID    string
	Operation    string // "create", "update", "delete", "publish", "approve"
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e ContentEvent) MessageID() string {
	return "content"
}

func (e ContentEvent) Message() string {
	subject := e.AccountID
	if subject == "" {
		subject = "anonymous"
	}
	if e.Success {
		return fmt.Sprintf("%s performed %s on %s %s", subject, e.Operation, e.Kind, e.ContentID)
	}
	msg := fmt.Sprintf("%s failed %s on %s %s", subject, e.Operation, e.Kind, e.ContentID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ContentEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ContentEvent) Facility() int {
	return FacilityAuth
}

func (e ContentEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDSubject: {
			"kind": e.Kind,
			"id":   e.ContentID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
	if e.AccountID != "" {
		sd[SDIDAuth] = map[string]string{"account": e.AccountID}
	}
	return sd
}
