package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/fittrack/fittrack-cli/internal/api"
	"github.com/fittrack/fittrack-cli/internal/store"
)

// resourceGroup runs the list/get/add/edit/rm verbs of one resource store,
// plus the nested child verbs where the resource has a sub-collection.
type resourceGroup[T, C any] struct {
	use   string
	store *store.Store[T]

	child     *api.Subresource[C] // nil when the resource has no children
	childList string              // e.g. "exercises"
	childAdd  string              // e.g. "add-exercise"
}

func (g *resourceGroup[T, C]) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ft %s <verb> [args]", g.use)
	}
	verb, rest := args[0], args[1:]

	switch verb {

	case "list":
		fs := flag.NewFlagSet(g.use+" list", flag.ExitOnError)
		query := fs.String("query", "", "query string, e.g. \"date=2026-01-01&search=x\"")
		_ = fs.Parse(rest)
		vals, err := url.ParseQuery(*query)
		if err != nil {
			return fmt.Errorf("bad -query: %w", err)
		}
		page, err := g.store.List(ctx, vals)
		if err != nil {
			return err
		}
		printJSON(page.Results)
		if page.Count > len(page.Results) {
			fmt.Fprintf(os.Stderr, "showing %d of %d\n", len(page.Results), page.Count)
		}
		return nil

	case "get":
		id, err := idArg(g.use+" get", rest)
		if err != nil {
			return err
		}
		rec, err := g.store.Get(ctx, id)
		if err != nil {
			return err
		}
		printJSON(rec)
		return nil

	case "add":
		fs := flag.NewFlagSet(g.use+" add", flag.ExitOnError)
		data := fs.String("data", "", "JSON payload (inline, @file, or '-')")
		_ = fs.Parse(rest)
		payload, err := readPayload(*data)
		if err != nil {
			return err
		}
		rec, err := g.store.Create(ctx, payload)
		if err != nil {
			return err
		}
		printJSON(rec)
		return nil

	case "edit":
		fs := flag.NewFlagSet(g.use+" edit", flag.ExitOnError)
		id := fs.Int64("id", 0, "record id")
		data := fs.String("data", "", "JSON patch (inline, @file, or '-')")
		_ = fs.Parse(rest)
		if *id <= 0 {
			return fmt.Errorf("need -id")
		}
		payload, err := readPayload(*data)
		if err != nil {
			return err
		}
		rec, err := g.store.Update(ctx, *id, payload)
		if err != nil {
			return err
		}
		printJSON(rec)
		return nil

	case "rm":
		id, err := idArg(g.use+" rm", rest)
		if err != nil {
			return err
		}
		if err := g.store.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	}

	if g.child != nil {
		switch verb {
		case g.childList:
			id, err := idArg(g.use+" "+g.childList, rest)
			if err != nil {
				return err
			}
			items, err := g.child.List(ctx, id)
			if err != nil {
				return err
			}
			printJSON(items)
			return nil

		case g.childAdd:
			fs := flag.NewFlagSet(g.use+" "+g.childAdd, flag.ExitOnError)
			id := fs.Int64("id", 0, "parent record id")
			data := fs.String("data", "", "JSON payload (inline, @file, or '-')")
			_ = fs.Parse(rest)
			if *id <= 0 {
				return fmt.Errorf("need -id")
			}
			payload, err := readPayload(*data)
			if err != nil {
				return err
			}
			rec, err := g.child.Add(ctx, *id, payload)
			if err != nil {
				return err
			}
			printJSON(rec)
			return nil
		}
	}

	return fmt.Errorf("unknown verb %q for %s", verb, g.use)
}

// idArg parses the single -id flag used by get/rm/child-list verbs.
func idArg(use string, args []string) (int64, error) {
	fs := flag.NewFlagSet(use, flag.ExitOnError)
	id := fs.Int64("id", 0, "record id")
	_ = fs.Parse(args)
	if *id <= 0 {
		return 0, fmt.Errorf("need -id")
	}
	return *id, nil
}

// readPayload loads a JSON body from an inline string, @file, or stdin.
func readPayload(arg string) (json.RawMessage, error) {
	if arg == "" {
		return nil, fmt.Errorf("need -data")
	}
	var b []byte
	var err error
	switch {
	case arg == "-":
		b, err = io.ReadAll(os.Stdin)
	case strings.HasPrefix(arg, "@"):
		b, err = os.ReadFile(arg[1:])
	default:
		b = []byte(arg)
	}
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("-data is not valid JSON")
	}
	return json.RawMessage(b), nil
}
