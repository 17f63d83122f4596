package model

// Roles.
const (
	RoleAdmin            = "admin"
	RoleBaseCommander    = "base_commander"
	RoleLogisticsOfficer = "logistics_officer"
)

// Sections, in navigation order.
const (
	SectionDashboard   = "dashboard"
	SectionPurchases   = "purchases"
	SectionTransfers   = "transfers"
	SectionAssignments = "assignments"
)

// Sections is the fixed ordered list of navigable sections.
var Sections = []string{SectionDashboard, SectionPurchases, SectionTransfers, SectionAssignments}

// Identity is the current user's profile. Permitted sections are derived from
// the role table below and are never user-editable.
type Identity struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	HomeBase string   `json:"homeBase"`
	Sections []string `json:"permittedSections"`
}

// profiles is the fixed role → display profile table.
var profiles = map[string]Identity{
	RoleAdmin: {
		Name:     "Admin Alpha",
		Role:     RoleAdmin,
		HomeBase: "All Bases",
		Sections: []string{SectionDashboard, SectionPurchases, SectionTransfers, SectionAssignments},
	},
	RoleBaseCommander: {
		Name:     "Commander Bravo",
		Role:     RoleBaseCommander,
		HomeBase: "Bravo Base",
		Sections: []string{SectionDashboard, SectionAssignments},
	},
	RoleLogisticsOfficer: {
		Name:     "Logistics Charlie",
		Role:     RoleLogisticsOfficer,
		HomeBase: "Charlie Base",
		Sections: []string{SectionDashboard, SectionPurchases, SectionTransfers},
	},
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	_, ok := profiles[role]
	return ok
}

// IdentityFor returns the fixed identity profile for a role.
// The second return value is false for unknown roles.
func IdentityFor(role string) (Identity, bool) {
	id, ok := profiles[role]
	return id, ok
}

// Allows reports whether the identity may view the given section.
func (id Identity) Allows(section string) bool {
	for _, s := range id.Sections {
		if s == section {
			return true
		}
	}
	return false
}

// ResolveSection returns active if the identity may view it, otherwise the
// dashboard. Used when switching roles so a non-permitted section never stays
// active.
func (id Identity) ResolveSection(active string) string {
	if id.Allows(active) {
		return active
	}
	return SectionDashboard
}

// BaseLocked reports whether the identity is pinned to its home base.
// A base commander cannot select any other base, in filters or in forms.
func (id Identity) BaseLocked() bool {
	return id.Role == RoleBaseCommander
}
