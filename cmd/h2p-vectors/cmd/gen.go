// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/yawning/cryptonote-voi/internal/testvectors"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a test vector file",
	Long: `Generate writes the all-zero vector followed by --count vectors,
whose inputs are cn_fast_hash(seed || uint64_le(i)).  The output goes to
--out, or stdout if it is "-".`,
	PreRun: func(c *cobra.Command, _ []string) {
		bindFlags(c)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGen(
			viper.GetString("seed"),
			viper.GetInt("count"),
			viper.GetString("out"),
		)
	},
}

func runGen(seed string, count int, out string) error {
	if count < 0 {
		return errors.Errorf("invalid count: %d", count)
	}

	f := testvectors.Generate("CryptoNote hash_to_point (ge_fromfe_frombytes_vartime + ge_tobytes)", []byte(seed), count)
	if err := f.Check(); err != nil {
		// Generated with the checked mapping, so this is a bug.
		return errors.Wrap(err, "self-check of generated vectors")
	}

	if out == "-" {
		return testvectors.Write(os.Stdout, f)
	}
	if err := testvectors.WriteFile(out, f); err != nil {
		return err
	}
	glog.Infof("Wrote %d vectors to %v", len(f.Vectors), out)

	return nil
}

func init() {
	RootCmd.AddCommand(genCmd)

	genCmd.Flags().String("seed", "cryptonote-voi", "Seed for deriving the vector inputs")
	genCmd.Flags().Int("count", 256, "Number of pseudo-random vectors")
	genCmd.Flags().StringP("out", "o", "-", "Output path")
}
