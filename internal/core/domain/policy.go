package domain

// Actor is the authenticated identity issuing a request. The zero value is
// an anonymous caller. Actors are resolved from the user-id request header,
// so the policy below is only as trustworthy as the transport.
type Actor struct {
	ID      string
	Name    string
	Profile string
}

// Authenticated reports whether the actor carries a resolved identity.
func (a Actor) Authenticated() bool {
	return a.ID != ""
}

// IsAdministrator reports whether the actor holds the Administrator profile.
// Administrators bypass every ownership check.
func (a Actor) IsAdministrator() bool {
	return a.Profile == ProfileAdministrator
}

// Owns reports whether the actor created the record with the given createdBy
// reference. A record with no creator is owned by nobody: ownership requires
// an exact match of non-empty identifiers.
func (a Actor) Owns(createdBy string) bool {
	return createdBy != "" && a.ID == createdBy
}

// CanMutateOwned decides update/delete permission on Client and Product
// records: administrators always, otherwise only the creator. Reads are not
// gated at all, so a denial here never hides a record's existence.
func (a Actor) CanMutateOwned(createdBy string) bool {
	return a.IsAdministrator() || a.Owns(createdBy)
}

// CanManageUsers decides authenticated user creation and user deletion.
// An administrator deleting their own account is allowed; the source system
// never guarded against it.
func (a Actor) CanManageUsers() bool {
	return a.IsAdministrator()
}

// CanUpdateUser decides user updates: administrators may edit anyone,
// everyone may edit themselves. Profile changes on self-edit are handled by
// the service, which keeps the stored profile for non-administrators.
func (a Actor) CanUpdateUser(target *User) bool {
	return a.IsAdministrator() || (a.Authenticated() && a.ID == target.ID)
}
