// Package visibility computes role-based UI visibility from a static table:
// each view lists the roles allowed to see it, and a role's menu is the
// intersection of that table with the role. No dynamic dispatch.
package visibility

import "github.com/ensigotrace/ensigotrace-backend/pkg/enums"

// View is a navigable dashboard surface.
type View struct {
	ID    string       `json:"id"`
	Route string       `json:"route"`
	Label string       `json:"label"`
	Roles []enums.Role `json:"-"`
}

var views = []View{
	{ID: "collections", Route: "/dashboard", Label: "My Collections", Roles: []enums.Role{enums.RoleCollector}},

	{ID: "admin-dashboard", Route: "/admin", Label: "Dashboard", Roles: []enums.Role{enums.RoleAdmin}},
	{ID: "admin-batches", Route: "/admin/batches", Label: "Seed Batches", Roles: []enums.Role{enums.RoleAdmin}},
	{ID: "admin-nurseries", Route: "/admin/nurseries", Label: "Nurseries", Roles: []enums.Role{enums.RoleAdmin}},
	{ID: "admin-projects", Route: "/admin/projects", Label: "Projects", Roles: []enums.Role{enums.RoleAdmin}},
	{ID: "admin-provenance", Route: "/admin/provenance", Label: "Provenance", Roles: []enums.Role{enums.RoleAdmin}},
	{ID: "admin-analytics", Route: "/admin/analytics", Label: "Analytics", Roles: []enums.Role{enums.RoleAdmin}},

	{ID: "nursery-dashboard", Route: "/nursery", Label: "Dashboard", Roles: []enums.Role{enums.RoleNursery}},
	{ID: "nursery-inventory", Route: "/nursery/inventory", Label: "Inventory", Roles: []enums.Role{enums.RoleNursery}},
	{ID: "nursery-germination", Route: "/nursery/germination", Label: "Germination", Roles: []enums.Role{enums.RoleNursery}},
	{ID: "nursery-sales", Route: "/nursery/sales", Label: "Sales", Roles: []enums.Role{enums.RoleNursery}},

	{ID: "partner-dashboard", Route: "/partner", Label: "Dashboard", Roles: []enums.Role{enums.RolePartner}},
	{ID: "partner-browse", Route: "/partner/browse", Label: "Browse Seeds", Roles: []enums.Role{enums.RolePartner}},
	{ID: "partner-projects", Route: "/partner/projects", Label: "My Projects", Roles: []enums.Role{enums.RolePartner}},

	{ID: "profile", Route: "/dashboard/profile", Label: "Profile", Roles: []enums.Role{enums.RoleCollector, enums.RoleNursery, enums.RolePartner, enums.RoleAdmin}},
	{ID: "settings", Route: "/dashboard/settings", Label: "Settings", Roles: []enums.Role{enums.RoleCollector, enums.RoleNursery, enums.RolePartner, enums.RoleAdmin}},
}

// viewIDsByRole is the role → view-id set the menu intersects against.
var viewIDsByRole = buildIndex()

func buildIndex() map[enums.Role]map[string]struct{} {
	index := make(map[enums.Role]map[string]struct{})
	for _, v := range views {
		for _, role := range v.Roles {
			if index[role] == nil {
				index[role] = make(map[string]struct{})
			}
			index[role][v.ID] = struct{}{}
		}
	}
	return index
}

// MenuFor returns the views visible to the role, in table order. Unknown
// roles see nothing.
func MenuFor(role enums.Role) []View {
	allowed := viewIDsByRole[role]
	if len(allowed) == 0 {
		return []View{}
	}
	menu := make([]View, 0, len(allowed))
	for _, v := range views {
		if _, ok := allowed[v.ID]; ok {
			menu = append(menu, v)
		}
	}
	return menu
}

// CanSee reports whether the role may see the given view id.
func CanSee(role enums.Role, viewID string) bool {
	_, ok := viewIDsByRole[role][viewID]
	return ok
}
