// Command ft is a CLI client for the FitTrack service.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/fittrack/fittrack-cli/internal/api"
	"github.com/fittrack/fittrack-cli/internal/auth"
	"github.com/fittrack/fittrack-cli/internal/config"
	"github.com/fittrack/fittrack-cli/internal/errs"
	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/router"
	"github.com/fittrack/fittrack-cli/internal/store"
	"github.com/fittrack/fittrack-cli/internal/transport"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `ft CLI
Usage:
  ft [-server URL] [-timeout DUR] [-debug] <cmd> [args]

Commands:
  version
  register  -u <username> -p <password> -email <email>
  login     -u <username> -p <password>          (saves tokens)
  logout                                          (erases tokens)
  refresh                                         (rotate access token)
  whoami                                          (profile + token info)
  profile   [-data JSON|@file|-]                  (show or update)

  checkin   list|get|add|edit|rm
  session   list|get|add|edit|rm|exercises|add-exercise
  tplan     list|get|add|edit|rm|exercises|add-exercise
  meal      list|get|add|edit|rm|foods|add-food
  nplan     list|get|add|edit|rm|meals|add-meal

  list accepts -query "a=b&c=d"; get/edit/rm take -id; add/edit take
  -data with inline JSON, @file, or '-' for stdin.
`)
	os.Exit(2)
}

// app bundles the wired stores; one instance per process.
type app struct {
	session *auth.Store
	api     *api.API

	checkins *store.Store[model.CheckIn]
	sessions *store.Store[model.TrainingSession]
	tplans   *store.Store[model.TrainingPlan]
	meals    *store.Store[model.Meal]
	nplans   *store.Store[model.NutritionPlan]
}

// main wires config, transport, session and stores, then dispatches.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	// global flags override the environment
	server := flag.String("server", cfg.ServerURL, "API base URL")
	timeout := flag.Duration("timeout", cfg.Timeout, "request timeout")
	configDir := flag.String("config-dir", cfg.ConfigDir, "token storage dir")
	debug := flag.Bool("debug", cfg.Debug, "development logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)

	logger, _ := zap.NewProduction()
	if *debug {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	creds := auth.NewFileStore(*configDir)

	// session and transport reference each other (the transport reads the
	// session's access token); break the ordering with a late-bound provider.
	var session *auth.Store
	client, err := transport.New(*server, *timeout, transport.ProviderFunc(func() string {
		if session == nil {
			return ""
		}
		return session.AccessToken()
	}), logger)
	if err != nil {
		fail(err)
	}
	a := api.New(client)
	session = auth.New(a.Auth, creds)

	app := &app{
		session:  session,
		api:      a,
		checkins: store.New(a.CheckIns, func(c model.CheckIn) int64 { return c.ID }),
		sessions: store.New(a.TrainingSessions, func(s model.TrainingSession) int64 { return s.ID }),
		tplans:   store.New(a.TrainingPlans, func(p model.TrainingPlan) int64 { return p.ID }),
		meals:    store.New(a.Meals, func(m model.Meal) int64 { return m.ID }),
		nplans:   store.New(a.NutritionPlans, func(p model.NutritionPlan) int64 { return p.ID }),
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout+5*time.Second)
	defer cancel()

	if err := guardCommand(cmd, session.IsAuthenticated()); err != nil {
		fail(err)
	}
	if err := app.run(ctx, cmd, flag.Args()[1:]); err != nil {
		fail(err)
	}
}

// commandRoutes maps subcommands to the navigation destinations they open.
var commandRoutes = map[string]string{
	"login":    router.Login,
	"register": router.Register,
	"checkin":  router.CheckIns,
	"session":  router.Training,
	"tplan":    router.Training,
	"meal":     router.Nutrition,
	"nplan":    router.Nutrition,
	"whoami":   router.Profile,
	"profile":  router.Profile,
	"refresh":  router.Profile,
}

// guardCommand applies the navigation guard before dispatch.
func guardCommand(cmd string, authenticated bool) error {
	name, ok := commandRoutes[cmd]
	if !ok {
		return nil // version, logout, unknown: no destination to guard
	}
	route, ok := router.Resolve(name)
	if !ok {
		return nil
	}
	d := router.Guard(route, authenticated)
	switch {
	case d.Allowed:
		return nil
	case d.RedirectTo == router.Login:
		return fmt.Errorf("%w (run 'ft login')", errs.ErrNotAuthenticated)
	case d.RedirectTo == router.Dashboard:
		return fmt.Errorf("already logged in (run 'ft logout' first)")
	default:
		return nil
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {

	case "version":
		fmt.Printf("ft %s (%s)\n", version, buildDate)
		return nil

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		u := fs.String("u", "", "username")
		p := fs.String("p", "", "password")
		email := fs.String("email", "", "email")
		_ = fs.Parse(args)
		if *u == "" || *p == "" || *email == "" {
			return fmt.Errorf("need -u, -p and -email")
		}
		if err := a.session.Register(ctx, model.Registration{
			Username: *u,
			Email:    *email,
			Password: *p,
		}); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		u := fs.String("u", "", "username")
		p := fs.String("p", "", "password")
		_ = fs.Parse(args)
		if *u == "" || *p == "" {
			return fmt.Errorf("need -u and -p")
		}
		if _, err := a.session.Login(ctx, model.Credentials{Username: *u, Password: *p}); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil

	case "logout":
		a.session.Logout()
		fmt.Println("ok")
		return nil

	case "refresh":
		if err := a.session.Refresh(ctx); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil

	case "whoami":
		user, err := a.session.FetchProfile(ctx)
		if err != nil {
			return err
		}
		printJSON(user)
		if exp, ok := tokenExpiry(a.session.AccessToken()); ok {
			fmt.Printf("token expires %s\n", exp.UTC().Format(time.RFC3339))
		}
		return nil

	case "profile":
		fs := flag.NewFlagSet("profile", flag.ExitOnError)
		data := fs.String("data", "", "JSON patch (inline, @file, or '-')")
		_ = fs.Parse(args)
		if *data == "" {
			user, err := a.session.FetchProfile(ctx)
			if err != nil {
				return err
			}
			printJSON(user)
			return nil
		}
		payload, err := readPayload(*data)
		if err != nil {
			return err
		}
		user, err := a.session.UpdateProfile(ctx, payload)
		if err != nil {
			return err
		}
		printJSON(user)
		return nil

	case "checkin":
		g := resourceGroup[model.CheckIn, struct{}]{use: "checkin", store: a.checkins}
		return g.run(ctx, args)

	case "session":
		g := resourceGroup[model.TrainingSession, model.Exercise]{
			use:       "session",
			store:     a.sessions,
			child:     a.api.SessionExercises,
			childList: "exercises",
			childAdd:  "add-exercise",
		}
		return g.run(ctx, args)

	case "tplan":
		g := resourceGroup[model.TrainingPlan, model.Exercise]{
			use:       "tplan",
			store:     a.tplans,
			child:     a.api.TrainingPlanExercises,
			childList: "exercises",
			childAdd:  "add-exercise",
		}
		return g.run(ctx, args)

	case "meal":
		g := resourceGroup[model.Meal, model.Food]{
			use:       "meal",
			store:     a.meals,
			child:     a.api.MealFoods,
			childList: "foods",
			childAdd:  "add-food",
		}
		return g.run(ctx, args)

	case "nplan":
		g := resourceGroup[model.NutritionPlan, model.Meal]{
			use:       "nplan",
			store:     a.nplans,
			child:     a.api.NutritionPlanMeals,
			childList: "meals",
			childAdd:  "add-meal",
		}
		return g.run(ctx, args)

	default:
		usage()
		return nil
	}
}

// ---- helpers ----

// tokenExpiry reads the exp claim without validating the token; display only.
func tokenExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	_, _ = jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return nil, nil },
		jwt.WithoutClaimsValidation(),
	)
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
