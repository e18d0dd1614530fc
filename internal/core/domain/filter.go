package domain

import "strings"

// FilterUsers returns the order-preserving subsequence of users whose email,
// first name, last name, role, or office name contains query, compared
// case-insensitively. An empty query matches every record and returns the
// input slice unchanged. The function is pure; it never mutates users.
func FilterUsers(users []UserRecord, query string) []UserRecord {
	if query == "" {
		return users
	}

	q := strings.ToLower(query)
	out := make([]UserRecord, 0, len(users))
	for _, u := range users {
		if u.matches(q) {
			out = append(out, u)
		}
	}
	return out
}

// matches reports whether any searchable field contains the already-lowercased
// query. Phone numbers are intentionally not searched.
func (u UserRecord) matches(q string) bool {
	for _, field := range []string{u.Email, u.FirstName, u.LastName, string(u.Role), u.OfficeName} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
