package domain

import "encoding/json"

// Ref is a reference to another backend document. Depending on the
// endpoint the backend serializes it either as a bare object id string or
// as the populated document, so unmarshalling accepts both shapes.
type Ref struct {
	ID          string `json:"_id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	StartupName string `json:"startupName,omitempty"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	type populated Ref
	var p populated
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// MarshalJSON always emits the bare id, which is the shape the backend
// expects on writes.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// Display returns the best human-readable label available.
func (r Ref) Display() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.StartupName != "":
		return r.StartupName
	case r.Email != "":
		return r.Email
	}
	return r.ID
}
