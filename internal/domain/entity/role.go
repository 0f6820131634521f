package entity

// Role represents a marketplace role carried in the access token.
type Role string

const (
	// RoleDriver is a carrier offering trips.
	RoleDriver Role = "driver"
	// RoleShipper is a cargo owner publishing freights.
	RoleShipper Role = "shipper"
)

// IsValid checks if the role is a known marketplace role.
func (r Role) IsValid() bool {
	return r == RoleDriver || r == RoleShipper
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Roles is a collection of roles.
type Roles []Role

// Contains checks if the collection contains the given role.
func (rs Roles) Contains(role Role) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}

	return false
}

// Strings converts the collection to a string slice.
func (rs Roles) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}

	return out
}

// RolesFromStrings parses a string slice into roles, dropping unknown values.
func RolesFromStrings(values []string) Roles {
	roles := make(Roles, 0, len(values))
	for _, v := range values {
		if role := Role(v); role.IsValid() {
			roles = append(roles, role)
		}
	}

	return roles
}
