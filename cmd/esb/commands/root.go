// Package commands implements the CLI commands for the elm-symfony-bridge.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/esb/internal/adapters/logger"
	"go.trai.ch/esb/internal/build"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports"
	"go.trai.ch/esb/internal/engine/pipeline"
	"go.trai.ch/esb/internal/ui/output"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes the environment variables that mirror the flags.
const EnvPrefix = "ESB"

// Flag names. The matching environment variable is the upper-cased name with
// dashes replaced by underscores, e.g. ESB_PROJECT_ROOT.
const (
	flagProjectRoot    = "project-root"
	flagElmRoot        = "elm-root"
	flagOutputFolder   = "output-folder"
	flagElmVersion     = "elm-version"
	flagURLPrefix      = "url-prefix"
	flagLang           = "lang"
	flagDev            = "dev"
	flagRouting        = "routing"
	flagTranslations   = "translations"
	flagConsoleCommand = "console-command"
	flagWorkerCommand  = "worker-command"
	flagLogFormat      = "log-format"
	flagVerbose        = "verbose"
)

const (
	logFormatAuto   = "auto"
	logFormatPretty = "pretty"
	logFormatJSON   = "json"
)

// Application is the part of the app the commands drive.
type Application interface {
	Load(ctx context.Context, overrides domain.OptionSet) error
	Options() domain.Options
	OnBeforeBuild(ctx context.Context) (*pipeline.Report, error)
	Watch(ctx context.Context) error
	Close(ctx context.Context) error
}

// LogSettings is implemented by loggers whose output can be tuned from flags.
type LogSettings interface {
	SetFormat(format logger.Format)
	SetVerbose(verbose bool)
}

// CLI represents the command line interface for esb.
type CLI struct {
	app     Application
	logger  ports.Logger
	config  *viper.Viper
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "esb",
		Short:         "Generate Elm routing and translation modules from a Symfony project",
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

	flags := rootCmd.PersistentFlags()
	flags.String(flagProjectRoot, ".", "Symfony project root")
	flags.String(flagElmRoot, "", "Folder receiving the generated Elm modules")
	flags.String(flagOutputFolder, "", "Folder for intermediate files such as dumped translations")
	flags.String(flagElmVersion, "", "Elm version to generate code for (0.18 or 0.19)")
	flags.String(flagURLPrefix, "", "URL prefix of the generated routes in dev mode")
	flags.String(flagLang, "", "Locale of the translation catalogs")
	flags.Bool(flagDev, true, "Query the Symfony console in the dev environment")
	flags.Bool(flagRouting, true, "Generate the routing module")
	flags.Bool(flagTranslations, true, "Generate the translation modules")
	flags.String(flagConsoleCommand, "", "Command running the Symfony console")
	flags.String(flagWorkerCommand, "", "Command starting the code generation worker")
	flags.String(flagLogFormat, logFormatAuto, "Log format: auto, pretty or json")
	flags.BoolP(flagVerbose, "v", false, "Show debug output")

	config := viper.New()
	config.SetEnvPrefix(EnvPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	c := &CLI{
		app:     a,
		logger:  log,
		config:  config,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if err := c.config.BindPFlags(flags); err != nil {
			return zerr.Wrap(err, "failed to bind flags")
		}
		return c.configureLogger()
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

func (c *CLI) configureLogger() error {
	settings, ok := c.logger.(LogSettings)
	if !ok {
		return nil
	}

	settings.SetVerbose(c.config.GetBool(flagVerbose))

	switch format := c.config.GetString(flagLogFormat); format {
	case logFormatPretty:
		settings.SetFormat(logger.FormatPretty)
	case logFormatJSON:
		settings.SetFormat(logger.FormatJSON)
	case logFormatAuto, "":
		if output.IsTerminal(os.Stderr) {
			settings.SetFormat(logger.FormatPretty)
		} else {
			settings.SetFormat(logger.FormatJSON)
		}
	default:
		return zerr.With(zerr.New("unknown log format"), "format", format)
	}

	return nil
}

// overrides builds the top precedence layer. Only flags given on the command
// line or through the environment are provided.
func (c *CLI) overrides() (domain.OptionSet, error) {
	root, err := filepath.Abs(c.config.GetString(flagProjectRoot))
	if err != nil {
		return domain.OptionSet{}, zerr.Wrap(err, "failed to resolve project root")
	}

	set := domain.OptionSet{ProjectRoot: domain.Ptr(root)}

	texts := map[string]**string{
		flagElmRoot:        &set.ElmRoot,
		flagOutputFolder:   &set.OutputFolder,
		flagElmVersion:     &set.ElmVersion,
		flagURLPrefix:      &set.URLPrefix,
		flagLang:           &set.Lang,
		flagConsoleCommand: &set.ConsoleCommand,
		flagWorkerCommand:  &set.WorkerCommand,
	}
	for key, field := range texts {
		if c.config.IsSet(key) {
			*field = domain.Ptr(c.config.GetString(key))
		}
	}

	bools := map[string]**bool{
		flagDev:          &set.Dev,
		flagRouting:      &set.EnableRouting,
		flagTranslations: &set.EnableTranslations,
	}
	for key, field := range bools {
		if c.config.IsSet(key) {
			*field = domain.Ptr(c.config.GetBool(key))
		}
	}

	return set, nil
}

// load resolves the options with watch reporting whether the bridge keeps running.
func (c *CLI) load(ctx context.Context, watch bool) error {
	set, err := c.overrides()
	if err != nil {
		return err
	}
	set.Watch = domain.Ptr(watch)

	return c.app.Load(ctx, set)
}
