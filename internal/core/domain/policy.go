package domain

// CanActOn is the single role policy shared by book and user mutations:
// an actor may act on a resource iff they are an admin or they own it.
func CanActOn(actor *User, ownerID string) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == ownerID
}
