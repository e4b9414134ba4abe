package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Identity is the caller's identity as resolved from a verified access
// token. It is the only user shape the HTTP layer hands to services for
// audit stamping.
type Identity struct {
	ID    bson.ObjectID `json:"_id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  Role          `json:"role"`
}

func (i Identity) Stamp() Stamp {
	return Stamp{ID: i.ID, Email: i.Email}
}

// AuthResult is the response body of login and refresh. The rotated refresh
// token travels separately, in an HttpOnly cookie.
type AuthResult struct {
	AccessToken string   `json:"access_token"`
	User        Identity `json:"user"`
}
