package models

// Ownable is implemented by every resource whose mutations are gated on the
// identity that created it. Ownership is the only authorization axis: exact
// equality of the owner id and the acting user's id, no roles, no delegation.
type Ownable interface {
	Owner() uint
}
