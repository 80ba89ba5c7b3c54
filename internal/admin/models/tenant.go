package models

// Tenant is an organization the user may act on.
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DisplayName falls back to a shortened id for unnamed tenants.
func (t Tenant) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	id := t.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return "Tenant " + id
}
