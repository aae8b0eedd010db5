package identity

// DefaultPlan is the plan slug assumed for accounts without an explicit
// subscription.
const DefaultPlan = "starter"

// Identity is the canonical, normalized representation of a signed-in
// user. Optional string fields use the empty string for "absent".
type Identity struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Avatar          string `json:"avatar,omitempty"`
	EmailVerifiedAt string `json:"email_verified_at,omitempty"`
	CurrentPlan     string `json:"current_plan,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

// IsVerified reports whether the account's email address has been
// verified; presence of the verification timestamp implies verified.
func (i Identity) IsVerified() bool {
	return i.EmailVerifiedAt != ""
}

// Plan returns the account's plan slug, falling back to DefaultPlan when
// no subscription is recorded.
func (i Identity) Plan() string {
	if i.CurrentPlan == "" {
		return DefaultPlan
	}
	return i.CurrentPlan
}

// FullName joins the first and last name, tolerating either being empty.
func (i Identity) FullName() string {
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	default:
		return i.FirstName + " " + i.LastName
	}
}
