package typeid

import (
	"strings"
	"testing"
)

func TestNewInstanceID(t *testing.T) {
	a, b := NewInstanceID(), NewInstanceID()
	if a == b {
		t.Fatalf("ids collide: %s", a)
	}
	if !strings.HasPrefix(a, PrefixInstance+"_") {
		t.Errorf("id %q lacks prefix", a)
	}
	if err := Validate(a, PrefixInstance); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"garbage", "not-an-id"},
		{"wrong prefix", New("sketch")},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.id, PrefixInstance); err == nil {
				t.Errorf("Validate(%q) accepted", tt.id)
			}
		})
	}
}
