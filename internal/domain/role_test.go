package domain

import "testing"

func TestRoleAllows(t *testing.T) {
	tests := []struct {
		actor    Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleEditor, true},
		{RoleEditor, RoleEditor, true},
		{RoleEditor, RoleAdmin, false},
		{Role(""), RoleEditor, false},
		{Role(""), RoleAdmin, false},
		{Role("VIEWER"), RoleEditor, false},
		{RoleAdmin, Role(""), false},
	}
	for _, tt := range tests {
		if got := tt.actor.Allows(tt.required); got != tt.want {
			t.Errorf("%q.Allows(%q) = %v, want %v", tt.actor, tt.required, got, tt.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleEditor.Valid() {
		t.Error("known roles reported invalid")
	}
	if Role("user").Valid() {
		t.Error("unknown role reported valid")
	}
}
