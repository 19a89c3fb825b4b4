// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package cmd implements the h2p-vectors commands.
package cmd

import (
	"flag"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "h2p-vectors",
	Short: "Generate and check hash-to-point test vectors",
	Long: `h2p-vectors generates known-answer test vectors for the CryptoNote
hash-to-point mapping, and checks existing vector files against this
implementation.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Keep glog from complaining about logging before flag.Parse,
		// the actual parsing is done by cobra.
		_ = flag.CommandLine.Parse(nil)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	defer glog.Flush()

	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// glog registers its flags with the standard library, cobra picks
	// them up from pflag.CommandLine.
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML, TOML or JSON)")
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	viper.SetEnvPrefix("h2p")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			glog.Exitf("Failed reading config file %v: %v", viper.ConfigFileUsed(), err)
		}
		glog.Infof("Using config file: %v", viper.ConfigFileUsed())
	}
}

func bindFlags(c *cobra.Command) {
	if err := viper.BindPFlags(c.Flags()); err != nil {
		glog.Exitf("viper.BindPFlags(): %v", err)
	}
}
