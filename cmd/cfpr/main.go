package main

import (
	"errors"
	"fmt"
	"os"

	"cfpr-go/internal/app"
	"cfpr-go/internal/config"
	"cfpr-go/internal/recorder"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// User-facing messages. Scripts match on these, so they must not change.
const (
	msgPassword        = "Password:"
	msgNoRecord        = "No record for this file!"
	msgFileUnavailable = "Cannot get the information of the file!"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	verbose    bool
}

// resolveConfigPath returns --config if given, else the default location.
func (o *globalOptions) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	path, err := app.DefaultConfigPath()
	if err != nil {
		return "", fmt.Errorf("getting defaults: %w", err)
	}
	return path, nil
}

// loadConfig reads the config for a record operation. Without --config or
// $CFPR_CONFIG_PATH and with no home directory there is no config file to
// read, so the built-in defaults apply.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	path, err := o.resolveConfigPath()
	if errors.Is(err, app.ErrNoHomeDir) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// newApp reads the config and creates a RecorderApp wired to cmd's streams.
// The caller must defer app.Close().
func (o *globalOptions) newApp(cmd *cobra.Command, operation string) (*app.RecorderApp, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.NewRecorderApp(cfg, app.Options{
		Operation: operation,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Err:       cmd.ErrOrStderr(),
		Verbose:   o.verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:          "cfpr",
		Short:        "Remember passwords of compressed files by their content",
		Version:      version,
		SilenceUsage: true,
		// Anything that is not a known subcommand is a silent no-op.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/cfpr.toml)")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "mirror log records to stderr")

	rootCmd.AddCommand(newQueryCmd(opts))
	rootCmd.AddCommand(newSaveCmd(opts))
	rootCmd.AddCommand(newLogCmd(opts))
	rootCmd.AddCommand(newBackupCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// fileFlag returns the --file value and whether it was given at all.
func fileFlag(cmd *cobra.Command) (string, bool) {
	if !cmd.Flags().Changed("file") {
		return "", false
	}
	file, _ := cmd.Flags().GetString("file")
	return file, true
}

func newQueryCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Show the password recorded for a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, ok := fileFlag(cmd)
			if !ok {
				return nil
			}

			a, err := opts.newApp(cmd, "Query")
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			record, err := a.Query(file)
			if errors.Is(err, recorder.ErrFileUnavailable) {
				fmt.Fprintln(out, msgFileUnavailable)
				return nil
			}
			if err != nil {
				return err
			}

			if record == nil {
				fmt.Fprintln(out, msgNoRecord)
				return nil
			}
			fmt.Fprintln(out, msgPassword)
			fmt.Fprintln(out, record.Password)
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "compressed file to look up")
	return cmd
}

func newSaveCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Record a password for a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, ok := fileFlag(cmd)
			if !ok {
				return nil
			}

			a, err := opts.newApp(cmd, "Save")
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Save(file); err != nil {
				if errors.Is(err, recorder.ErrFileUnavailable) {
					fmt.Fprintln(cmd.OutOrStdout(), msgFileUnavailable)
					return nil
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "compressed file to record")
	return cmd
}

func newLogCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "List every record stored for a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, ok := fileFlag(cmd)
			if !ok {
				return nil
			}

			a, err := opts.newApp(cmd, "History")
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			records, err := a.History(file)
			if errors.Is(err, recorder.ErrFileUnavailable) {
				fmt.Fprintln(out, msgFileUnavailable)
				return nil
			}
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Fprintln(out, msgNoRecord)
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(out, "#%d  %s  %s  %s\n",
					r.ID,
					r.TimeCreated.Local().Format("2006-01-02 15:04:05"),
					r.Digest[:12],
					r.Size,
				)
			}
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "compressed file to list")
	return cmd
}

func newBackupCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backup DEST",
		Short: "Copy the record store to DEST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, "Backup")
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Backup(args[0]); err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Backed up store to %s\n", args[0])
			return nil
		},
	}
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := app.GetDefaults()
			if err != nil {
				return fmt.Errorf("failed to get defaults: %w", err)
			}
			path, err := opts.resolveConfigPath()
			if err != nil {
				return err
			}

			cfg := config.NewConfig(defaults["base_dir"])
			if err := config.Init(path, cfg); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration initialized at %s\n", path)
			fmt.Fprintf(out, "Log Dir: %s\n", cfg.LogDir)
			return nil
		},
	}

	configListCmd := &cobra.Command{
		Use:   "list",
		Short: "View configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.resolveConfigPath()
			if err != nil {
				return err
			}

			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			logDir := cfg.LogDir
			if logDir == "" {
				logDir = "(disabled)"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration from %s:\n\n", path)
			fmt.Fprintf(out, "Database:   %s %s\n", cfg.Database.Type, cfg.Database.Path)
			fmt.Fprintf(out, "Encryption: %s\n", cfg.Encryption.Type)
			fmt.Fprintf(out, "Log Dir:    %s\n", logDir)
			return nil
		},
	}

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	return configCmd
}
