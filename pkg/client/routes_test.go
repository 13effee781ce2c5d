package client

import (
	"testing"

	"github.com/horizonhospital/hospital-system/internal/core/domain"
)

func TestLandingRoute(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{domain.RoleAdmin, "/admin-dashboard"},
		{domain.RoleStaff, "/department-dashboard"},
		{domain.RolePatient, "/patient-dashboard"},
		{"admin", "/admin-dashboard"},
		{"DepartmentMember", "/department-dashboard"},
		{"doctor", "/department-dashboard"},
		{"", "/login"},
		{"SUPERUSER", "/login"},
	}
	for _, tc := range cases {
		if got := LandingRoute(tc.role); got != tc.want {
			t.Errorf("LandingRoute(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestVisibleLinks_Patient(t *testing.T) {
	links := VisibleLinks(domain.RolePatient)
	if len(links) != 2 {
		t.Fatalf("expected 2 links for patient, got %d: %v", len(links), links)
	}
	if links[0].Path != "/patient-dashboard" {
		t.Fatalf("first link should be the patient dashboard, got %q", links[0].Path)
	}
	if links[1].Path != "/appointments" {
		t.Fatalf("second link should be appointments, got %q", links[1].Path)
	}
}

func TestVisibleLinks_AdminSeesAdminOnlyEntries(t *testing.T) {
	paths := make(map[string]bool)
	for _, l := range VisibleLinks(domain.RoleAdmin) {
		paths[l.Path] = true
	}
	for _, want := range []string{"/payments", "/users", "/reports", "/patients"} {
		if !paths[want] {
			t.Errorf("admin should see %s", want)
		}
	}
}

func TestVisibleLinks_UnknownRoleSeesNothing(t *testing.T) {
	if links := VisibleLinks("intruder"); len(links) != 0 {
		t.Fatalf("unknown role should see no links, got %v", links)
	}
}
