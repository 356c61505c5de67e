// Package commands implements the CLI commands for visit.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/visit/internal/adapters/detector"
	"go.trai.ch/visit/internal/app"
	"go.trai.ch/visit/internal/build"
	"go.trai.ch/visit/internal/core/domain"
)

// Application represents the application logic interface.
type Application interface {
	List(ctx context.Context, target string, opts app.ListOptions) (domain.FileList, error)
	MetaData(ctx context.Context, target string, state int) (app.FileInfo, error)
	Query(ctx context.Context, opts app.QueryOptions) (domain.QueryResult, error)
	Transform(path string) (app.TransformResult, error)
	Cull(viewPath, extentsPath string) ([]int, error)
	RunSession(ctx context.Context, opts app.SessionOptions) error
	Serve(ctx context.Context, opts app.ServeOptions) error
}

// LogOutput is the part of the logger the root flags control.
type LogOutput interface {
	SetJSON(enable bool)
	SetLevel(level domain.LogLevel)
}

// CLI represents the command line interface for visit.
type CLI struct {
	app     Application
	log     LogOutput
	rootCmd *cobra.Command
	// jsonResults prints command results as JSON instead of text.
	jsonResults bool
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Application, log LogOutput) *CLI {
	rootCmd := &cobra.Command{
		Use:           "visit",
		Short:         "Manage visualization engines and browse their data",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("output", "o", "auto", "Output mode: auto, pretty, or json")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show debug messages")

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRun = c.configureOutput

	rootCmd.AddCommand(c.newLsCmd())
	rootCmd.AddCommand(c.newMetaDataCmd())
	rootCmd.AddCommand(c.newQueryCmd())
	rootCmd.AddCommand(c.newViewCmd())
	rootCmd.AddCommand(c.newSessionCmd())
	rootCmd.AddCommand(c.newEngineCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureOutput(cmd *cobra.Command, _ []string) {
	flag, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")

	c.jsonResults = flag == "json"
	if c.log == nil {
		return
	}
	c.log.SetJSON(detector.ResolveMode(detector.Detect(), flag) == detector.ModeJSON)
	if verbose {
		c.log.SetLevel(domain.LogLevelDebug)
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
