// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/unionsimple/union-service/cmd"

func main() {
	cmd.Execute()
}
