package appcenterdevices

import (
	"fmt"

	"github.com/arthur-debert/appcenter-devices/internal/version"
	"github.com/arthur-debert/appcenter-devices/pkg/appcenter"
	"github.com/arthur-debert/appcenter-devices/pkg/commands/fetchdevices"
	"github.com/arthur-debert/appcenter-devices/pkg/commands/genconfig"
	"github.com/arthur-debert/appcenter-devices/pkg/config"
	"github.com/arthur-debert/appcenter-devices/pkg/filesystem"
	"github.com/arthur-debert/appcenter-devices/pkg/logging"
	"github.com/arthur-debert/appcenter-devices/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	noColor    bool
	configFile string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "appcenter-devices",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity, opts.noColor)
			ui.ConfigureColor(cmd.OutOrStdout(), opts.noColor)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newFetchCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// fetchFlagKeys maps fetch flags to their configuration keys
var fetchFlagKeys = map[string]string{
	"api-token":    "appcenter.api_token",
	"owner-name":   "appcenter.owner_name",
	"app-name":     "appcenter.app_name",
	"api-url":      "appcenter.api_url",
	"timeout":      "appcenter.timeout",
	"destinations": "devices.destinations",
	"devices-file": "devices.devices_file",
	"output-dir":   "devices.output_dir",
	"platform":     "devices.platform",
}

// flagOverrides collects the flags the user actually set, so unset flags
// never shadow the config file or the environment
func flagOverrides(flags *pflag.FlagSet) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := fetchFlagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})
	return overrides
}

func newFetchCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fetch",
		Short:   MsgFetchShort,
		Long:    MsgFetchLong,
		Example: MsgFetchExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: opts.configFile,
				Overrides:  flagOverrides(cmd.Flags()),
			})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			client, err := appcenter.NewClient(appcenter.Config{
				BaseURL:  cfg.AppCenter.APIURL,
				APIToken: cfg.AppCenter.APIToken,
				Timeout:  cfg.AppCenter.Timeout,
			})
			if err != nil {
				return fmt.Errorf(MsgErrNewClient, err)
			}

			out := cmd.OutOrStdout()
			result, err := fetchdevices.FetchDevices(cmd.Context(), fetchdevices.FetchDevicesOptions{
				Request:  cfg.FetchRequest(),
				API:      client,
				FS:       filesystem.NewOS(),
				Notifier: ui.NewTerminalNotifier(out),
			})
			if err != nil {
				return err
			}

			return ui.RenderSummary(out, result)
		},
	}

	cmd.Flags().String("api-token", "", MsgFlagAPIToken)
	cmd.Flags().String("owner-name", "", MsgFlagOwnerName)
	cmd.Flags().String("app-name", "", MsgFlagAppName)
	cmd.Flags().String("destinations", "", MsgFlagDestinations)
	cmd.Flags().String("devices-file", "", MsgFlagDevicesFile)
	cmd.Flags().String("output-dir", "", MsgFlagOutputDir)
	cmd.Flags().String("platform", "", MsgFlagPlatform)
	cmd.Flags().String("api-url", "", MsgFlagAPIURL)
	cmd.Flags().Duration("timeout", 0, MsgFlagTimeout)

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var (
		write bool
		path  string
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Write: write || path != "",
				Path:  path,
				FS:    filesystem.NewOS(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !write && path == "" {
				_, err := fmt.Fprint(out, result.ConfigContent)
				return err
			}

			notifier := ui.NewTerminalNotifier(out)
			if len(result.FilesWritten) == 0 {
				notifier.Info(MsgConfigExists)
				return nil
			}
			for _, f := range result.FilesWritten {
				notifier.Success(fmt.Sprintf(MsgConfigWritten, f))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVar(&path, "path", "", MsgFlagPath)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
