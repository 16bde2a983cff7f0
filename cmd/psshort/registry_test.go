// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func runRegistryCommand(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()

	cmd := newRegistryCommand()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), err
}

func TestRegistryList(t *testing.T) {
	resetConfig(t)

	stdout, err := runRegistryCommand(t, "list")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	for _, want := range []string{"Get-ChildItem", "Where-Object", "-Hidden", "commands"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRegistryList_SingleCommand(t *testing.T) {
	resetConfig(t)

	stdout, err := runRegistryCommand(t, "list", "Get-Process")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Get-Process") {
		t.Errorf("output missing Get-Process: %q", stdout)
	}
	if strings.Contains(stdout, "Get-ChildItem") {
		t.Errorf("output should only contain the requested command: %q", stdout)
	}
}

func TestRegistryList_ByAlias(t *testing.T) {
	resetConfig(t)

	stdout, err := runRegistryCommand(t, "list", "gci")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Get-ChildItem") {
		t.Errorf("alias lookup should print the canonical entry: %q", stdout)
	}
}

func TestRegistryList_UnknownName(t *testing.T) {
	resetConfig(t)

	_, err := runRegistryCommand(t, "list", "No-Such-Command")
	if err == nil {
		t.Fatal("Execute() expected error for unknown command")
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
}
