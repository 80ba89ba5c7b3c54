package models

import "encoding/json"

// User is the profile returned by the login endpoint. Only the fields the
// console displays are decoded; Raw keeps the full payload so it survives a
// round trip through the local store unchanged.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*u = User(p)
	u.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	type plain User
	return json.Marshal(plain(u))
}

// Session is the authenticated identity: bearer token, profile and the
// tenant selected for survey generation.
type Session struct {
	Token    string
	User     User
	TenantID string
}
