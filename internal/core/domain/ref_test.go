package domain

import (
	"encoding/json"
	"testing"
)

func TestRef_UnmarshalBareID(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`"66f1a2b3c4d5e6f7a8b9c0d1"`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID != "66f1a2b3c4d5e6f7a8b9c0d1" || r.Name != "" {
		t.Fatalf("unexpected ref: %+v", r)
	}
}

func TestRef_UnmarshalPopulated(t *testing.T) {
	var r Ref
	raw := `{"_id":"abc123","name":"Maya","email":"maya@example.com","startupName":"GreenVolt"}`
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID != "abc123" || r.Name != "Maya" || r.StartupName != "GreenVolt" {
		t.Fatalf("unexpected ref: %+v", r)
	}
}

func TestRef_MarshalEmitsBareID(t *testing.T) {
	out, err := json.Marshal(Ref{ID: "abc123", Name: "Maya"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"abc123"` {
		t.Fatalf("expected bare id, got %s", out)
	}
}

func TestRef_Display(t *testing.T) {
	cases := []struct {
		ref  Ref
		want string
	}{
		{Ref{ID: "x", Name: "Maya"}, "Maya"},
		{Ref{ID: "x", StartupName: "GreenVolt"}, "GreenVolt"},
		{Ref{ID: "x", Email: "m@example.com"}, "m@example.com"},
		{Ref{ID: "x"}, "x"},
	}
	for _, tc := range cases {
		if got := tc.ref.Display(); got != tc.want {
			t.Fatalf("Display(%+v) = %q, want %q", tc.ref, got, tc.want)
		}
	}
}

func TestNewBackendError_JoinsFields(t *testing.T) {
	err := NewBackendError(400, "ignored when fields present", []string{"a", "b", "c"})
	if err.Message != "a. b. c" {
		t.Fatalf("joined message mismatch: %q", err.Message)
	}

	err = NewBackendError(500, "boom", nil)
	if err.Error() != "boom" {
		t.Fatalf("single message mismatch: %q", err.Error())
	}
}
