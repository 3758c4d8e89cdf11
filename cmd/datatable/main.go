package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/datatable"
	"github.com/3-lines-studio/datatable/example"
	"github.com/3-lines-studio/datatable/internal/adapters/cli"
	"github.com/3-lines-studio/datatable/internal/adapters/env"
	"github.com/3-lines-studio/datatable/internal/adapters/fs"
	"github.com/3-lines-studio/datatable/internal/adapters/term"
	"github.com/3-lines-studio/datatable/internal/config"
	"github.com/3-lines-studio/datatable/internal/dataset"
	"github.com/3-lines-studio/datatable/internal/site"
	"github.com/3-lines-studio/datatable/internal/tui"
)

type flags struct {
	configPath string
	dataPath   string
	verbose    bool
}

func main() {
	output := cli.NewOutput()
	if err := newRootCmd(output).Execute(); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}

func newRootCmd(output *cli.Output) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "datatable",
		Short:         "Render the demo users table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", env.ConfigPath(), "TOML config file")
	rootCmd.PersistentFlags().StringVarP(&f.dataPath, "data", "d", "", "YAML file with users (defaults to the built-in sample)")
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log render timing")

	rootCmd.AddCommand(
		newServeCmd(f, output),
		newPrintCmd(f),
		newExportCmd(f, output),
		newViewCmd(f),
	)

	return rootCmd
}

type demo struct {
	cfg   config.Config
	users []example.User
	opts  []datatable.Option
}

func loadDemo(f *flags) (*demo, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	dataPath := f.dataPath
	if dataPath == "" {
		dataPath = cfg.Data
	}

	users := example.Users
	if dataPath != "" {
		users, err = dataset.Load[example.User](fs.NewOSFileSystem(), dataPath)
		if err != nil {
			return nil, err
		}
	}

	opts := []datatable.Option{datatable.WithLogger(slog.Default())}
	if cfg.Placeholder != "" {
		opts = append(opts, datatable.WithPlaceholder(cfg.Placeholder))
	}

	return &demo{cfg: cfg, users: users, opts: opts}, nil
}

func (d *demo) app() *site.App {
	return site.New(
		example.Routes(d.users, d.cfg.Title, d.opts...),
		site.WithDev(d.cfg.Dev),
		site.WithLogger(slog.Default()),
	)
}

func (d *demo) table() (*datatable.Table, error) {
	return datatable.Render(d.users, example.UserColumns, d.opts...)
}

func newServeCmd(f *flags, output *cli.Output) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the users page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDemo(f)
			if err != nil {
				return err
			}
			if addr != "" {
				d.cfg.Addr = addr
			}

			r := chi.NewRouter()
			r.Use(middleware.Logger)
			r.Use(middleware.Recoverer)
			r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"status":"ok"}`))
			})

			server := &http.Server{
				Addr:              d.cfg.Addr,
				Handler:           d.app().Wrap(r),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.ListenAndServe()
			}()

			output.PrintSuccess("Serving on http://localhost%s", d.cfg.Addr)

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config or PORT)")
	return cmd
}

func newPrintCmd(f *flags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Write the users table to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDemo(f)
			if err != nil {
				return err
			}
			t, err := d.table()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				_, err = fmt.Fprintln(out, term.Render(t, term.Width()))
				return err
			case "html":
				return t.WriteHTML(out)
			default:
				return fmt.Errorf("invalid format %q (must be \"text\" or \"html\")", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or html")
	return cmd
}

func newExportCmd(f *flags, output *cli.Output) *cobra.Command {
	return &cobra.Command{
		Use:   "export [dir]",
		Short: "Write the users page as static HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDemo(f)
			if err != nil {
				return err
			}

			dir := d.cfg.ExportDir
			if len(args) == 1 {
				dir = args[0]
			}

			output.PrintHeader("Datatable Export")

			pages, err := d.app().Export(cmd.Context(), fs.NewOSFileSystem(), dir)
			for _, page := range pages {
				output.PrintSuccess("%s", page.Path)
				output.PrintFile(page.File)
			}
			if err != nil {
				return err
			}
			if len(pages) == 0 {
				output.PrintWarning("No pages to export")
			}
			return nil
		},
	}
}

func newViewCmd(f *flags) *cobra.Command {
	var height int

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the users table in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDemo(f)
			if err != nil {
				return err
			}
			t, err := d.table()
			if err != nil {
				return err
			}
			return tui.Run(t, height)
		},
	}

	cmd.Flags().IntVar(&height, "height", 10, "visible rows")
	return cmd
}
