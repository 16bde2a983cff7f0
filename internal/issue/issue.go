// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

type Id int

const (
	ScriptParseFailedId Id = iota + 1
	StatementAlignmentId
	RegistryLoadFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	// render is a seam for tests; glamour.Render hits the terminal profile.
	render = glamour.Render

	scriptParseFailedIssue = &Issue{
		id: ScriptParseFailedId,
		mdMsg: `
# The script could not be parsed!

The input is not structurally valid script text, so no statements could be
extracted and nothing was rewritten.

## Common issues:
- Unterminated quotes or braces
- A trailing pipe with no following command
- Stray statement terminators (` + "`;;`" + ` outside a switch-style block)

## Things you can try:
- Check the error message above for the offending line and column
- Shorten the script piece by piece to isolate the broken statement`,
	}

	statementAlignmentIssue = &Issue{
		id: StatementAlignmentId,
		mdMsg: `
# Statement counts do not line up!

Splitting the script on newlines, pipes and semicolons found a different
number of statements than the structural parse did. Rewriting would touch the
wrong statements, so the whole run was abandoned instead.

## Common causes:
- A delimiter character inside a quoted string (` + "`\"a;b\"`" + `)
- Nested command substitution (` + "`$(...)`" + `) inside a statement
- Flow-control keywords that group several statements into one

## Things you can try:
- Split the offending construct onto its own line and shorten the rest
- Remove the nested invocation and shorten it separately`,
	}

	registryLoadFailedIssue = &Issue{
		id: RegistryLoadFailedId,
		mdMsg: `
# Failed to load the registry file!

Your command registry file could not be read or decoded.

## Things you can try:
- Verify the path exists and is readable
- Registry files must end in ` + "`.cue`" + ` or ` + "`.toml`" + `
- Validate the file against the expected shape:
~~~cue
commands: [
	{
		name: "Get-Widget"
		aliases: ["gw"]
		parameters: [
			{name: "Path"},
			{name: "Force", aliases: ["f"]},
		]
	},
]
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file exists but could not be read or parsed. Defaults are
used for this run.

## Things you can try:
- Show the resolved configuration path:
~~~
$ psshort config path
~~~
- Check the TOML syntax of the file
- Move the file aside to fall back to defaults`,
	}

	issues = map[Id]*Issue{
		scriptParseFailedIssue.Id():  scriptParseFailedIssue,
		statementAlignmentIssue.Id(): statementAlignmentIssue,
		registryLoadFailedIssue.Id(): registryLoadFailedIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
