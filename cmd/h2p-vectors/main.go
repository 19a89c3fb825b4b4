// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// The h2p-vectors binary generates and checks hash-to-point known-answer
// test vectors.
package main

import "gitlab.com/yawning/cryptonote-voi/cmd/h2p-vectors/cmd"

func main() {
	cmd.Execute()
}
