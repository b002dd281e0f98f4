// Package navigation decides which views a role may reach. It is one
// pure function from role to a capability set, evaluated per render,
// instead of role checks scattered through handlers.
package navigation

type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type View string

// Storefront views, open to every authenticated role.
const (
	ViewHome     View = "home"
	ViewProducts View = "products"
	ViewCart     View = "cart"
	ViewProfile  View = "profile"
)

// Dashboard and its tabs.
const (
	ViewDashboard     View = "dashboard"
	ViewOverview      View = "overview"
	ViewEmployeeHome  View = "employee"
	ViewOrders        View = "orders"
	ViewPOS           View = "pos"
	ViewInventory     View = "inventory"
	ViewUsers         View = "users"
	ViewEmployeeAdmin View = "employee-management"
)

var storefrontViews = []View{ViewHome, ViewProducts, ViewCart, ViewProfile}

// ViewsFor returns the full set of views the role may reach, in display
// order. Unknown roles get the customer set.
func ViewsFor(role Role) []View {
	views := append([]View{}, storefrontViews...)

	switch role {
	case RoleAdmin:
		views = append(views,
			ViewDashboard,
			ViewOverview,
			ViewOrders,
			ViewPOS,
			ViewInventory,
			ViewUsers,
			ViewEmployeeAdmin,
		)
	case RoleEmployee:
		// Employees see their own dashboard tab, never the
		// admin-only ones.
		views = append(views,
			ViewDashboard,
			ViewEmployeeHome,
			ViewOrders,
			ViewPOS,
			ViewInventory,
		)
	}
	return views
}

// CanAccess reports whether the role may reach the view.
func CanAccess(role Role, view View) bool {
	for _, v := range ViewsFor(role) {
		if v == view {
			return true
		}
	}
	return false
}

// DefaultView is where the role lands after login: admins on the
// overview tab, employees on their dashboard, everyone else on home.
func DefaultView(role Role) View {
	switch role {
	case RoleAdmin:
		return ViewOverview
	case RoleEmployee:
		return ViewEmployeeHome
	default:
		return ViewHome
	}
}
