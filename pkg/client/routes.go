package client

import "github.com/horizonhospital/hospital-system/internal/core/domain"

// Link is a navigation entry shown to a signed-in user.
type Link struct {
	Label string
	Path  string
}

// navTable is the single source of truth for role-dependent navigation.
// Order matters; it is the rendering order.
var navTable = []struct {
	link  Link
	roles []string
}{
	{Link{"Dashboard", "/admin-dashboard"}, []string{domain.RoleAdmin}},
	{Link{"Dashboard", "/department-dashboard"}, []string{domain.RoleStaff}},
	{Link{"Dashboard", "/patient-dashboard"}, []string{domain.RolePatient}},
	{Link{"Patients", "/patients"}, []string{domain.RoleAdmin, domain.RoleStaff}},
	{Link{"Appointments", "/appointments"}, []string{domain.RoleAdmin, domain.RoleStaff, domain.RolePatient}},
	{Link{"Doctors", "/doctor-profiles"}, []string{domain.RoleAdmin, domain.RoleStaff}},
	{Link{"Medical Records", "/medical-records"}, []string{domain.RoleAdmin, domain.RoleStaff}},
	{Link{"Departments", "/departments"}, []string{domain.RoleAdmin, domain.RoleStaff}},
	{Link{"Payments", "/payments"}, []string{domain.RoleAdmin}},
	{Link{"Users", "/users"}, []string{domain.RoleAdmin}},
	{Link{"Reports", "/reports"}, []string{domain.RoleAdmin, domain.RoleStaff}},
}

// LandingRoute returns the post-login destination for a role. Unknown or
// absent roles land on the login page; the function is total.
func LandingRoute(role string) string {
	switch domain.NormalizeRole(role) {
	case domain.RoleAdmin:
		return "/admin-dashboard"
	case domain.RoleStaff:
		return "/department-dashboard"
	case domain.RolePatient:
		return "/patient-dashboard"
	default:
		return "/login"
	}
}

// VisibleLinks returns the navigation entries a role may see, in render
// order. This shapes UX only; the server still gates every request.
func VisibleLinks(role string) []Link {
	canonical := domain.NormalizeRole(role)
	var out []Link
	for _, entry := range navTable {
		for _, r := range entry.roles {
			if r == canonical {
				out = append(out, entry.link)
				break
			}
		}
	}
	return out
}
