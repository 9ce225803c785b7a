package domain

type User struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// Session pairs the opaque bearer token with the identity it was issued for.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
