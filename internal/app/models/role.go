package models

// Permission is one row of the access policy table.
type Permission struct {
	Role     string
	Resource string
	Action   string
	Scope    string
}
