package auth

// Roles understood by the dashboard. There are exactly two.
const (
	RoleAdmin     = "admin"
	RoleFranchise = "franchise"
)

// Identity is the authenticated principal attached to a request.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}
