// Package invcommon provides shared types and context plumbing for the
// inventory service: caller identity, roles, and credential sealing.
package invcommon

// ServerVersion is the release version of the inventory server.
const ServerVersion = "0.3.0"

// ApiVersion is the version of the REST API surface.
const ApiVersion = "0.3.0"

// Role classifies a caller for the two-tier authorization split: any
// authenticated caller may read, only admins may write.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleOperator
}

// CanWrite reports whether the role may perform mutating operations.
func (r Role) CanWrite() bool {
	return r == RoleAdmin
}
