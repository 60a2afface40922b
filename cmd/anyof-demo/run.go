package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"github.com/samee/any-of/anyof"
	"github.com/samee/any-of/anyof/observe"
	anyofsql "github.com/samee/any-of/anyof/sql"
	"github.com/samee/any-of/internal/greeter"
)

// showGreeting copies g without knowing its concrete type.
func showGreeting(w io.Writer, g *anyof.AnyOf[greeter.Greeter]) {
	g2 := g.Clone()
	fmt.Fprintln(w, g2.Get().ShowMsg())
}

func (d *demo) runGreet(w io.Writer, payload int) error {
	g := bind(d, greeter.HelloGreeter{Val: payload})
	showGreeting(w, g)

	if hg := anyof.Cast[greeter.HelloGreeter](g); hg != nil {
		fmt.Fprintln(w, "Downcast successful!")
	}
	return nil
}

func (d *demo) runScenario(w io.Writer, payload int) error {
	want := func(step, got, want string) error {
		if got != want {
			return &stepError{step: step, got: got, want: want}
		}
		fmt.Fprintf(w, "%-10s %s\n", step+":", got)
		return nil
	}
	hello := func(n int) string { return greeter.HelloGreeter{Val: n}.ShowMsg() }

	var g anyof.AnyOf[greeter.Greeter]
	g.Observe(observe.Logger(d.log))
	g.Observe(d.counter.Hooks())
	anyof.Set(&g, greeter.HelloGreeter{Val: payload})

	if err := want("type", g.Type().String(), anyof.TypeOf[greeter.HelloGreeter]().String()); err != nil {
		return err
	}
	if err := want("bound", g.Get().ShowMsg(), hello(payload)); err != nil {
		return err
	}

	g2 := g.Clone()
	hg := anyof.Cast[greeter.HelloGreeter](g2)
	if hg == nil {
		return &stepError{step: "cast", got: g2.Type().String(), want: "greeter.HelloGreeter"}
	}
	hg.SetX(payload + 1)
	if err := want("original", g.Get().ShowMsg(), hello(payload)); err != nil {
		return err
	}
	if err := want("copy", g2.Get().ShowMsg(), hello(payload+1)); err != nil {
		return err
	}

	g3 := g.Move()
	if err := want("source", fmt.Sprint(g.HasValue()), "false"); err != nil {
		return err
	}
	if err := want("moved", g3.Get().ShowMsg(), hello(payload)); err != nil {
		return err
	}

	d.log.WithFields(log.Fields{
		"binds":  d.counter.Binds(),
		"clones": d.counter.Clones(),
		"moves":  d.counter.Moves(),
	}).Info("scenario complete")
	return nil
}

func (d *demo) runLoad(ctx context.Context, w io.Writer, dbPath string, seed bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer db.Close()

	if seed {
		if err := seedGreeters(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", dbPath, err)
		}
		d.log.Infof("Seeded greeters table in %q.", dbPath)
	}

	greeters, err := anyofsql.Query(ctx, db, "SELECT kind, payload FROM greeters ORDER BY id",
		anyofsql.ByKind(d.decoders()))
	if err != nil {
		return fmt.Errorf("load greeters: %w", err)
	}

	for _, g := range greeters {
		fmt.Fprintf(w, "%-22s %s\n", g.Type(), g.Get().ShowMsg())
	}
	fmt.Fprintf(w, "loaded %d greeters (%d bound)\n", len(greeters), d.counter.Binds())
	return nil
}

// decoders maps the kind column to a concrete greeter type.
func (d *demo) decoders() map[string]anyofsql.Decoder[greeter.Greeter] {
	payloadInt := func(cols []any) (int, error) {
		if len(cols) == 0 {
			return 0, fmt.Errorf("missing payload column")
		}
		n, err := anyofsql.Int64(cols[0])
		return int(n), err
	}
	return map[string]anyofsql.Decoder[greeter.Greeter]{
		"hello": func(cols []any) (*anyof.AnyOf[greeter.Greeter], error) {
			n, err := payloadInt(cols)
			if err != nil {
				return nil, err
			}
			return bind(d, greeter.HelloGreeter{Val: n}), nil
		},
		"loud": func(cols []any) (*anyof.AnyOf[greeter.Greeter], error) {
			n, err := payloadInt(cols)
			if err != nil {
				return nil, err
			}
			return bind(d, greeter.LoudGreeter{HelloGreeter: greeter.HelloGreeter{Val: n}}), nil
		},
		"list": func(cols []any) (*anyof.AnyOf[greeter.Greeter], error) {
			if len(cols) == 0 {
				return nil, fmt.Errorf("missing payload column")
			}
			return bind(d, greeter.ListGreeter{Names: strings.Split(anyofsql.String(cols[0]), ",")}), nil
		},
	}
}

func seedGreeters(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS greeters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL
		)`,
		`INSERT INTO greeters (kind, payload) VALUES ('hello', '5'), ('loud', '6'), ('list', 'ann,bob')`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
