package constant

// Verification request statuses.
const (
	VerificationStatusPending  = "pending"
	VerificationStatusApproved = "approved"
	VerificationStatusRejected = "rejected"
	VerificationStatusNone     = "none"
)

// Review actions accepted by the verification PUT endpoint.
const (
	VerificationActionApprove = "approve"
	VerificationActionReject  = "reject"
)

// VerificationLevelVerified is assigned to users on approval.
const VerificationLevelVerified = "verified"
