package domain

// SessionClaims is the stateless identity assertion projected from a
// StaffIdentity at successful authentication. Every field is embedded in
// the session token, so claims can go stale until re-authentication; that
// staleness is tolerated, not corrected.
type SessionClaims struct {
	StaffID      string    `json:"id"`
	Name         string    `json:"name"`
	EmpID        string    `json:"emp_id"`
	Email        string    `json:"email"`
	Role         StaffRole `json:"role"`
	DepartmentID string    `json:"department"`
}

// ClaimsFromStaff projects session claims from an identity record.
func ClaimsFromStaff(staff *StaffIdentity) SessionClaims {
	return SessionClaims{
		StaffID:      staff.ID,
		Name:         staff.Name,
		EmpID:        staff.EmpID,
		Email:        staff.Email,
		Role:         staff.Role,
		DepartmentID: staff.DepartmentID,
	}
}
