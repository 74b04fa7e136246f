package main

import (
	"fmt"
	"strings"

	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/logging"
	"github.com/spf13/cobra"
)

type app struct {
	configPath   string
	skipInvalid  bool
	allowOverrun bool
	maxDepth     int
	cfg          config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bitsctl",
		Short:         "Decode and evaluate BITS hex packets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a TOML config file")
	flags.BoolVar(&a.allowOverrun, "allow-overrun", false, "accept bit-length groups whose children run past the declared length")
	flags.IntVar(&a.maxDepth, "max-depth", 0, "packet nesting limit")

	versionsCmd := &cobra.Command{
		Use:   "versions [file]",
		Short: "Sum packet versions across one hex packet per line",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runVersions,
	}
	versionsCmd.Flags().BoolVar(&a.skipInvalid, "skip-invalid", false, "log and skip lines that fail to decode")

	evalCmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate the packet expression in the whole input",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runEval,
	}

	treeCmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the decoded packet tree",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runTree,
	}

	rootCmd.AddCommand(versionsCmd, evalCmd, treeCmd, newConfigCmd(a))
	return rootCmd
}

func newConfigCmd(a *app) *cobra.Command {
	var output string
	var force bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bitsctl config files",
	}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteTemplate(output, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote config template to %s\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVar(&output, "output", "bitsctl.toml", "output path for the config template")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if strings.TrimSpace(path) == "" {
				return fmt.Errorf("no config path given")
			}
			if _, err := config.Load(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "validated config at %s\n", path)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, validateCmd)
	return configCmd
}

// loadConfig resolves the config file, then lets explicitly set flags win.
func (a *app) loadConfig(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" && cmd.Parent() != nil && cmd.Parent().Name() != "config" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("allow-overrun") {
		a.cfg.AllowOverrun = a.allowOverrun
	}
	if flags.Changed("max-depth") {
		a.cfg.MaxDepth = a.maxDepth
	}
	if flags.Changed("skip-invalid") {
		a.cfg.SkipInvalid = a.skipInvalid
	}
	if err := config.Validate(a.cfg); err != nil {
		return err
	}
	if a.cfg.LogLevel != "" {
		logging.SetLevel(a.cfg.LogLevel)
	}
	return nil
}
