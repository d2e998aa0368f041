package domain

import "testing"

func TestCanActOn_Owner(t *testing.T) {
	actor := &User{ID: "u1", Role: RoleUser}
	if !CanActOn(actor, "u1") {
		t.Fatalf("owner should be allowed to act on own resource")
	}
}

func TestCanActOn_Admin(t *testing.T) {
	actor := &User{ID: "a1", Role: RoleAdmin}
	if !CanActOn(actor, "u1") {
		t.Fatalf("admin should be allowed to act on any resource")
	}
}

func TestCanActOn_OtherUser(t *testing.T) {
	actor := &User{ID: "u2", Role: RoleUser}
	if CanActOn(actor, "u1") {
		t.Fatalf("non-owner non-admin should be denied")
	}
}

func TestCanActOn_NilActor(t *testing.T) {
	if CanActOn(nil, "u1") {
		t.Fatalf("nil actor should be denied")
	}
}
