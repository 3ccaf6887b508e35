// Package router defines the navigation surface of the client and the
// guard that gates it on authentication state.
package router

// Route is one navigation destination.
type Route struct {
	Name string
	Path string

	// RedirectTo names a route this one unconditionally forwards to.
	RedirectTo string

	// RequiresAuth marks destinations reachable only when logged in;
	// RequiresGuest marks login/register-style destinations reachable only
	// when logged out. At most one of the two is set.
	RequiresAuth  bool
	RequiresGuest bool
}

// Route names.
const (
	Home            = "home"
	Login           = "login"
	Register        = "register"
	Dashboard       = "dashboard"
	Training        = "training"
	TrainingDetail  = "training-detail"
	Nutrition       = "nutrition"
	NutritionDetail = "nutrition-detail"
	CheckIns        = "checkins"
	Profile         = "profile"
)

var routes = []Route{
	{Name: Home, Path: "/", RedirectTo: Dashboard},
	{Name: Login, Path: "/login", RequiresGuest: true},
	{Name: Register, Path: "/register", RequiresGuest: true},
	{Name: Dashboard, Path: "/dashboard", RequiresAuth: true},
	{Name: Training, Path: "/training", RequiresAuth: true},
	{Name: TrainingDetail, Path: "/training/:id", RequiresAuth: true},
	{Name: Nutrition, Path: "/nutrition", RequiresAuth: true},
	{Name: NutritionDetail, Path: "/nutrition/:id", RequiresAuth: true},
	{Name: CheckIns, Path: "/checkins", RequiresAuth: true},
	{Name: Profile, Path: "/profile", RequiresAuth: true},
}

// Routes returns the full route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Resolve looks a route up by name.
func Resolve(name string) (Route, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Allowed    bool
	RedirectTo string // target route name when not allowed
}

// Guard evaluates a navigation to the given destination. Unauthenticated
// access to a protected route redirects to login; authenticated access to a
// guest route redirects to the dashboard. Everything else is allowed,
// except unconditional redirects (home -> dashboard), which always forward.
func Guard(to Route, authenticated bool) Decision {
	if to.RequiresAuth && !authenticated {
		return Decision{RedirectTo: Login}
	}
	if to.RequiresGuest && authenticated {
		return Decision{RedirectTo: Dashboard}
	}
	if to.RedirectTo != "" {
		return Decision{RedirectTo: to.RedirectTo}
	}
	return Decision{Allowed: true}
}
