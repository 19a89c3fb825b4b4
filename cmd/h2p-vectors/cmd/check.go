// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/yawning/cryptonote-voi/internal/testvectors"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a test vector file",
	Long: `Check recomputes every vector in the file given by --in (or stdin
if it is "-"), and fails on the first mismatch.`,
	PreRun: func(c *cobra.Command, _ []string) {
		bindFlags(c)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck(viper.GetString("in"), os.Stdin)
	},
}

func runCheck(in string, stdin io.Reader) error {
	var (
		f   *testvectors.File
		err error
	)
	if in == "-" {
		f, err = testvectors.Read(stdin)
	} else {
		f, err = testvectors.ReadFile(in)
	}
	if err != nil {
		return err
	}

	if err = f.Check(); err != nil {
		return err
	}
	glog.Infof("%d vectors OK (%s)", len(f.Vectors), f.Description)

	return nil
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("in", "i", "-", "Input path")
}
