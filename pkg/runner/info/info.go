package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/store"
)

// Info prints where configuration and pages come from.
type Info struct {
	Config store.Config
	App    *app.Service
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintf(out, "%s found on env, using %s\n", store.ConfigPathEnv, override)
	} else {
		_, _ = fmt.Fprintf(out, "%s env var not set\n", store.ConfigPathEnv)
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := n.Config.File(); f != "" {
		_, _ = fmt.Fprintln(out, "Config.file: ", f)
	} else {
		_, _ = fmt.Fprintln(out, "Config.file:  none, using defaults")
	}
	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.page: ", n.Config.Page())
	_, _ = fmt.Fprintln(out, "Config.log_level: ", n.Config.LogLevel())

	if n.App == nil {
		return app.ErrNoStore
	}
	keys, err := n.App.Pages(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Pages:\n")
	for _, k := range keys {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
	}
	if len(keys) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no pages")
	}
	return nil
}
