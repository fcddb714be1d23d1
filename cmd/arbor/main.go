package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justyntemme/arbor/internal/app"
	"github.com/justyntemme/arbor/internal/config"
	"github.com/justyntemme/arbor/internal/debug"
)

var version = "dev"

// runFunc starts the browser. Replaced in tests.
type runFunc func(cfg config.Config, opts app.Options)

func newRootCmd(run runFunc) *cobra.Command {
	var (
		debugFlag   bool
		resume      bool
		cfgFile     string
		dbPath      string
		rootName    string
		breadcrumbs string
		depth       int
	)

	cmd := &cobra.Command{
		Use:   "arbor [seed-dir]",
		Short: "Browse an in-memory folder tree",
		Long: "Arbor shows a tree of folders held in memory. Create folders, open them and\n" +
			"jump back through the breadcrumb trail. Pass a directory to start with a copy\n" +
			"of its layout.",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			manageConsole(debugFlag)
			if debugFlag {
				debug.EnableAll()
			}

			mgr := config.NewManager()
			path := cfgFile
			if path == "" {
				path = config.ConfigPath()
			}
			if err := mgr.LoadFrom(path); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := mgr.ParseError(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s is invalid, using defaults: %v\n", mgr.Path(), err)
			}

			if cmd.Flags().Changed("breadcrumbs") && breadcrumbs != "id" && breadcrumbs != "name" {
				return fmt.Errorf("invalid --breadcrumbs %q: want id or name", breadcrumbs)
			}

			flags := cmd.Flags()
			mgr.Override(func(c *config.Config) {
				if len(args) == 1 {
					c.Tree.SeedPath = args[0]
				}
				if flags.Changed("root-name") {
					c.Tree.RootName = rootName
				}
				if flags.Changed("breadcrumbs") {
					c.Tree.BreadcrumbMode = breadcrumbs
				}
				if flags.Changed("depth") {
					c.Tree.SeedDepth = depth
				}
			})

			run(mgr.Get(), app.Options{DBPath: dbPath, Resume: resume})
			return nil
		},
	}

	cmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable verbose debug logging (debug builds)")
	cmd.Flags().BoolVar(&resume, "resume", false, "Seed from the last seeded directory when none is given")
	cmd.Flags().StringVar(&dbPath, "db", "", "Settings database (default is ~/.config/arbor/arbor.db)")
	cmd.Flags().StringVar(&rootName, "root-name", "", "Name shown for the root folder")
	cmd.Flags().StringVar(&breadcrumbs, "breadcrumbs", "id", "Breadcrumb resolution: id or name")
	cmd.Flags().IntVar(&depth, "depth", 0, "Directory levels to copy from seed-dir")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/arbor/config.json)")

	cmd.AddCommand(newConfigCmd(&cfgFile))
	return cmd
}

func main() {
	if err := newRootCmd(app.Main).Execute(); err != nil {
		os.Exit(1)
	}
}
