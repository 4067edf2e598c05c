// SPDX-License-Identifier: MPL-2.0

package main

import cmd "yotta-cli/cmd/yotta"

func main() {
	cmd.Execute()
}
