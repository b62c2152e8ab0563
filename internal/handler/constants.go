package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteEvents is the public event listing route.
	RouteEvents = "/events"
	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteSignup is the signup route.
	RouteSignup = "/signup"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteAdmin is the admin event manager route.
	RouteAdmin = "/admin"
)

// Admin event sub-routes, registered under RouteAdmin.
const (
	// RouteAdminEvents is the event upsert POST route.
	RouteAdminEvents = "/events"
	// RouteAdminEventEdit is the edit form route.
	RouteAdminEventEdit = "/events/{id}/edit"
	// RouteAdminEventDelete is the delete POST route.
	RouteAdminEventDelete = "/events/{id}/delete"
)
