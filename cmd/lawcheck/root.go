package main

import (
	"fmt"
	"strings"

	"github.com/KasperOmsK/monadfn/internal/config"
	"github.com/KasperOmsK/monadfn/internal/flogging"
	"github.com/KasperOmsK/monadfn/internal/suite"
	"github.com/KasperOmsK/monadfn/laws"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.3.0"

var logger = flogging.MustGetLogger("lawcheck")

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	// logModules holds regexp=level overrides applied after log.level.
	logModules []string
	v          *viper.Viper
	cfg        config.Config
	// lookup resolves suite names, all suites when none are given.
	lookup func(bound int, names ...string) ([]laws.Suite, error)
}

func newRootCmd() *cobra.Command {
	return newApp(suite.Lookup).rootCmd()
}

func newApp(lookup func(bound int, names ...string) ([]laws.Suite, error)) *app {
	return &app{v: config.New(), lookup: lookup}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lawcheck",
		Short:         "Check the algebraic laws of the monadfn instances",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", config.DefaultFile, "config file path")
	root.PersistentFlags().String("log-level", strings.ToLower(flogging.DefaultLevel()),
		"logging level or module spec, e.g. laws=debug:info")
	_ = a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	root.PersistentFlags().StringArrayVar(&a.logModules, "log-module", nil,
		"regexp=level override for every matching logger, repeatable")

	root.AddCommand(newRunCmd(a), newListCmd(a))
	return root
}

func (a *app) init() error {
	c, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = c
	flogging.InitFromSpec(c.Log.Level)
	for _, override := range a.logModules {
		i := strings.LastIndex(override, "=")
		if i <= 0 {
			return fmt.Errorf("log module %q: want regexp=level", override)
		}
		if _, err := flogging.SetModuleLevel(override[:i], override[i+1:]); err != nil {
			return fmt.Errorf("log module %q: %w", override, err)
		}
	}
	logger.Debugf("lawcheck %s, config %+v", version, c)
	return nil
}
