// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/jhochwald/PSCommandShortener/cmd/psshort"

func main() {
	cmd.Execute()
}
