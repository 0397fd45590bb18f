package models

// Denial reasons reported by the access gate.
const (
	ReasonUnauthenticated  = "unauthenticated"
	ReasonInsufficientRole = "insufficient_role"
	ReasonNotOwner         = "not_owner"
	ReasonNotFound         = "not_found"
)

// Target describes the addressed resource instance. Found is false when the
// lookup came back empty; OwnerID is the owner of the instance or of its
// subject (baby.parentId, ncdPatient.userId).
type Target struct {
	Found   bool
	OwnerID string
}

type Decision struct {
	Allowed  bool
	Reason   string
	Scope    string
	Role     string
	Resource string
	Action   string
}

func TargetOf(found bool, ownerID string) *Target {
	return &Target{Found: found, OwnerID: ownerID}
}
