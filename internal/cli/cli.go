package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vk/nestdi/internal/app"
)

// EnvPrefix prefixes every environment variable the CLI reads, so that
// --log-level can also be set as NESTDI_LOG_LEVEL.
const EnvPrefix = "NESTDI"

var version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly (help, version or no
// command), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var (
		parsed  *app.Config
		cfgFile string
	)

	root := &cobra.Command{
		Use:   "nestdi",
		Short: "Hierarchical dependency lookup over a live node tree",
		Long: `nestdi builds a node tree from a scene file, mounts DI contexts on it and
answers lookup and collection queries the way a running application would.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	pf := root.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "YAML file with default flag values")
	pf.String("log-level", "warn", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	pf.String("log-format", "text", "Log output format: 'text' or 'json'.")

	build := func(command app.Command) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags(), cfgFile); err != nil {
				return err
			}
			cfg, err := app.NewConfig(app.Config{
				Command:    command,
				ScenePaths: args,
				LogLevel:   strings.ToLower(v.GetString("log-level")),
				LogFormat:  strings.ToLower(v.GetString("log-format")),
				Watch:      v.GetBool("watch"),
				Debounce:   v.GetDuration("debounce"),
			})
			if err != nil {
				return err
			}
			parsed = cfg
			return nil
		}
	}

	runCmd := &cobra.Command{
		Use:   "run SCENE...",
		Short: "Build the scene and print one line per query",
		Args:  cobra.MinimumNArgs(1),
		RunE:  build(app.CommandRun),
	}
	inspectCmd := &cobra.Command{
		Use:   "inspect SCENE...",
		Short: "Build the scene and print every context with its tables",
		Args:  cobra.MinimumNArgs(1),
		RunE:  build(app.CommandInspect),
	}
	for _, cmd := range []*cobra.Command{runCmd, inspectCmd} {
		cmd.Flags().BoolP("watch", "w", false, "Re-run whenever a scene file changes.")
		cmd.Flags().Duration("debounce", app.DefaultDebounce, "Quiet period before a changed scene is reloaded.")
	}
	root.AddCommand(runCmd, inspectCmd)

	if err := root.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if parsed == nil {
		return nil, true, nil
	}
	return parsed, false, nil
}

// bindFlags layers flags over environment variables over the config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, cfgFile string) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", cfgFile, err)
	}
	return nil
}
