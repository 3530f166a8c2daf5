// Package page maps page identity tokens to dashboards.
package page

import "strings"

// Page identities. The login page doubles as the index.
const (
	Login     = "login"
	Student   = "student"
	Mentor    = "mentor"
	Floorwing = "floorwing"
	Admin     = "admin"
)

// Roles lists the identities selectable on the login form, in display order.
var Roles = []string{Student, Mentor, Floorwing, Admin}

// Resolve maps a page token (as taken from the last URL path segment) to a page identity.
// A trailing ".html" is ignored so legacy links such as "mentor.html" keep working.
// PRE: none
// POST: Returns the identity and true, or "" and false for unknown tokens
func Resolve(token string) (string, bool) {
	token = strings.TrimSuffix(strings.TrimSpace(token), ".html")
	switch token {
	case "", "index", Login:
		return Login, true
	case Student, Mentor, Floorwing, Admin:
		return token, true
	}
	return "", false
}

// IsRole reports whether value is a role offered on the login form.
func IsRole(value string) bool {
	for _, r := range Roles {
		if r == value {
			return true
		}
	}
	return false
}
