package identity

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// candidatePaths lists where backends are known to nest the user object,
// in resolution order. The root object itself is the final fallback.
var candidatePaths = []string{"data.user", "data", "user"}

// Normalize converts a raw "current user" response body into a canonical
// Identity. It accepts the whole response payload: the user object may be
// nested at data.user, data, user, or be the root object itself.
//
// The payload is rejected with ErrInvalidPayload when no candidate object
// can be located or when the id cannot be resolved to a non-negative
// integer. All other fields degrade to empty values instead of rejecting.
func Normalize(raw []byte) (Identity, error) {
	if !gjson.ValidBytes(raw) {
		return Identity{}, ErrInvalidPayload
	}

	user, ok := locateUser(gjson.ParseBytes(raw))
	if !ok {
		return Identity{}, ErrInvalidPayload
	}

	id, ok := resolveID(user)
	if !ok {
		return Identity{}, ErrInvalidPayload
	}

	first, last := resolveName(user)

	return Identity{
		ID:              id,
		Username:        resolveUsername(user, id),
		FirstName:       first,
		LastName:        last,
		Email:           stringField(user, "email"),
		Avatar:          firstNonEmpty(user, "avatar", "avatar_url", "profile_photo_url"),
		EmailVerifiedAt: stringField(user, "email_verified_at"),
		CurrentPlan:     stringField(user, "current_plan"),
		CreatedAt:       stringField(user, "created_at"),
		UpdatedAt:       stringField(user, "updated_at"),
	}, nil
}

// locateUser returns the first candidate that is itself a JSON object.
func locateUser(root gjson.Result) (gjson.Result, bool) {
	for _, path := range candidatePaths {
		if c := root.Get(path); c.IsObject() {
			return c, true
		}
	}
	if root.IsObject() {
		return root, true
	}
	return gjson.Result{}, false
}

// resolveID coerces the user id to a non-negative integer: a native
// number, a digits-only string, or the alternate user_id field.
func resolveID(user gjson.Result) (int64, bool) {
	if id, ok := wholeNumber(user.Get("id")); ok {
		return id, true
	}
	if v := user.Get("id"); v.Type == gjson.String {
		if id, ok := digitsToInt(v.Str); ok {
			return id, true
		}
	}
	if id, ok := wholeNumber(user.Get("user_id")); ok {
		return id, true
	}
	return 0, false
}

// resolveUsername walks the fallback chain: username, the provider login
// convention, the first token of a display name, and finally a username
// synthesized from the id. The result is always non-empty.
func resolveUsername(user gjson.Result, id int64) string {
	if v := stringField(user, "username"); v != "" {
		return v
	}
	if v := stringField(user, "login"); v != "" {
		return v
	}
	if fields := strings.Fields(stringField(user, "name")); len(fields) > 0 {
		return fields[0]
	}
	return "user" + strconv.FormatInt(id, 10)
}

// resolveName prefers explicit first_name/last_name fields, used
// independently; otherwise splits a display name on whitespace.
func resolveName(user gjson.Result) (first, last string) {
	firstRes := user.Get("first_name")
	lastRes := user.Get("last_name")
	if firstRes.Type == gjson.String || lastRes.Type == gjson.String {
		return stringField(user, "first_name"), stringField(user, "last_name")
	}

	fields := strings.Fields(stringField(user, "name"))
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// stringField returns the field's value when it is a JSON string, else "".
func stringField(user gjson.Result, name string) string {
	if v := user.Get(name); v.Type == gjson.String {
		return v.Str
	}
	return ""
}

// firstNonEmpty returns the first listed field holding a non-empty string.
func firstNonEmpty(user gjson.Result, names ...string) string {
	for _, name := range names {
		if v := stringField(user, name); v != "" {
			return v
		}
	}
	return ""
}

// wholeNumber accepts a JSON number that is a non-negative integer.
func wholeNumber(v gjson.Result) (int64, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	n := v.Num
	if n < 0 || n != float64(int64(n)) {
		return 0, false
	}
	return int64(n), true
}

// digitsToInt parses a non-empty digits-only string as an integer.
func digitsToInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
