// SPDX-License-Identifier: MPL-2.0

package registry

// builtinDefinitions is the baked-in PowerShell-style catalog. Alias spellings
// and parameter aliases follow the stock Windows PowerShell profile; only the
// commands a shortener plausibly meets in interactive scripts are listed.
// Declaration order matters: it is the tie-break order for ambiguous matches.
var builtinDefinitions = []Definition{
	{
		Name:    "Get-ChildItem",
		Aliases: []string{"gci", "dir", "ls"},
		Parameters: []ParameterDefinition{
			{Name: "Path"},
			{Name: "LiteralPath", Aliases: []string{"PSPath", "LP"}},
			{Name: "Filter"},
			{Name: "Include"},
			{Name: "Exclude"},
			{Name: "Recurse", Aliases: []string{"s"}},
			{Name: "Depth"},
			{Name: "Force"},
			{Name: "Hidden", Aliases: []string{"ah", "h"}},
			{Name: "Directory", Aliases: []string{"ad"}},
			{Name: "File", Aliases: []string{"af"}},
			{Name: "ReadOnly", Aliases: []string{"ar"}},
			{Name: "System", Aliases: []string{"as"}},
		},
	},
	{
		Name:    "Get-Process",
		Aliases: []string{"gps", "ps"},
		Parameters: []ParameterDefinition{
			{Name: "Name", Aliases: []string{"ProcessName"}},
			{Name: "Id", Aliases: []string{"PID"}},
			{Name: "Module", Aliases: []string{"m"}},
			{Name: "FileVersionInfo", Aliases: []string{"FV", "FVI"}},
			{Name: "IncludeUserName"},
		},
	},
	{
		Name:    "Where-Object",
		Aliases: []string{"?", "where"},
		Parameters: []ParameterDefinition{
			{Name: "FilterScript"},
			{Name: "Property"},
			{Name: "Value"},
			{Name: "InputObject"},
		},
	},
	{
		Name:    "ForEach-Object",
		Aliases: []string{"%", "foreach"},
		Parameters: []ParameterDefinition{
			{Name: "Process"},
			{Name: "Begin"},
			{Name: "End"},
			{Name: "MemberName"},
			{Name: "ArgumentList", Aliases: []string{"Args"}},
			{Name: "InputObject"},
		},
	},
	{
		Name:    "Select-Object",
		Aliases: []string{"select"},
		Parameters: []ParameterDefinition{
			{Name: "Property"},
			{Name: "ExpandProperty"},
			{Name: "First"},
			{Name: "Last"},
			{Name: "Skip"},
			{Name: "SkipLast"},
			{Name: "Unique"},
			{Name: "Index"},
		},
	},
	{
		Name:    "Sort-Object",
		Aliases: []string{"sort"},
		Parameters: []ParameterDefinition{
			{Name: "Property"},
			{Name: "Descending"},
			{Name: "Unique"},
			{Name: "Culture"},
			{Name: "CaseSensitive"},
		},
	},
	{
		Name:    "Group-Object",
		Aliases: []string{"group"},
		Parameters: []ParameterDefinition{
			{Name: "Property"},
			{Name: "NoElement"},
			{Name: "AsHashTable", Aliases: []string{"AHT"}},
			{Name: "AsString"},
		},
	},
	{
		Name:    "Measure-Object",
		Aliases: []string{"measure"},
		Parameters: []ParameterDefinition{
			{Name: "Property"},
			{Name: "Sum"},
			{Name: "Average"},
			{Name: "Maximum"},
			{Name: "Minimum"},
			{Name: "Line"},
			{Name: "Word"},
			{Name: "Character"},
		},
	},
	{
		Name:    "Compare-Object",
		Aliases: []string{"compare", "diff"},
		Parameters: []ParameterDefinition{
			{Name: "ReferenceObject"},
			{Name: "DifferenceObject"},
			{Name: "Property"},
			{Name: "IncludeEqual"},
			{Name: "ExcludeDifferent"},
		},
	},
	{
		Name:    "Get-Content",
		Aliases: []string{"gc", "cat", "type"},
		Parameters: []ParameterDefinition{
			{Name: "Path"},
			{Name: "LiteralPath", Aliases: []string{"PSPath", "LP"}},
			{Name: "TotalCount", Aliases: []string{"First", "Head"}},
			{Name: "Tail", Aliases: []string{"Last"}},
			{Name: "Raw"},
			{Name: "Wait"},
			{Name: "Encoding"},
			{Name: "Delimiter"},
		},
	},
	{
		Name:    "Set-Content",
		Aliases: []string{"sc"},
		Parameters: []ParameterDefinition{
			{Name: "Path"},
			{Name: "LiteralPath", Aliases: []string{"PSPath", "LP"}},
			{Name: "Value"},
			{Name: "Encoding"},
			{Name: "Force"},
			{Name: "NoNewline"},
		},
	},
	{
		Name:    "Get-Item",
		Aliases: []string{"gi"},
		Parameters: []ParameterDefinition{
			{Name: "Path"},
			{Name: "LiteralPath", Aliases: []string{"PSPath", "LP"}},
			{Name: "Filter"},
			{Name: "Force"},
			{Name: "Stream"},
		},
	},
	{
		Name:    "Copy-Item",
		Aliases: []string{"cpi", "cp", "copy"},
		Parameters: []ParameterDefinition{
			{Name: "Path"},
			{Name: "LiteralPath", Aliases: []string{"PSPath", "LP"}},
			{Name: "Destination"},
			{Name: "Recurse"},
			{Name: "Container"},
			{Name: "Force"},
			{Name: "Filter"},
			{Name: "PassThru"},
		},
	},
	{
		Name:    "Move-Item",
		Aliases: []string{"mi", "mv", "move"},
		Parameters: []ParameterDefinition{
			{Name: "Path"},
			{Name: "LiteralPath", Aliases: []string{"PSPath", "LP"}},
			{Name: "Destination"},
			{Name: "Force"},
			{Name: "Filter"},
			{Name: "PassThru"},
		},
	},
	{
		Name:    "Remove-Item",
		Aliases: []string{"ri", "rm", "rmdir", "del", "erase", "rd"},
		Parameters: []ParameterDefinition{
			{Name: "Path"},
			{Name: "LiteralPath", Aliases: []string{"PSPath", "LP"}},
			{Name: "Recurse"},
			{Name: "Force"},
			{Name: "Filter"},
			{Name: "Include"},
			{Name: "Exclude"},
		},
	},
	{
		Name:    "New-Item",
		Aliases: []string{"ni"},
		Parameters: []ParameterDefinition{
			{Name: "Path"},
			{Name: "Name"},
			{Name: "ItemType", Aliases: []string{"Type"}},
			{Name: "Value", Aliases: []string{"Target"}},
			{Name: "Force"},
		},
	},
	{
		Name: "Test-Path",
		Parameters: []ParameterDefinition{
			{Name: "Path"},
			{Name: "LiteralPath", Aliases: []string{"PSPath", "LP"}},
			{Name: "PathType", Aliases: []string{"Type"}},
			{Name: "IsValid"},
			{Name: "NewerThan"},
			{Name: "OlderThan"},
		},
	},
	{
		Name:    "Set-Location",
		Aliases: []string{"sl", "cd", "chdir"},
		Parameters: []ParameterDefinition{
			{Name: "Path"},
			{Name: "LiteralPath", Aliases: []string{"PSPath", "LP"}},
			{Name: "PassThru"},
			{Name: "StackName"},
		},
	},
	{
		Name:    "Get-Location",
		Aliases: []string{"gl", "pwd"},
		Parameters: []ParameterDefinition{
			{Name: "PSProvider"},
			{Name: "PSDrive"},
			{Name: "Stack"},
			{Name: "StackName"},
		},
	},
	{
		Name:    "Select-String",
		Aliases: []string{"sls"},
		Parameters: []ParameterDefinition{
			{Name: "Pattern"},
			{Name: "Path"},
			{Name: "LiteralPath", Aliases: []string{"PSPath", "LP"}},
			{Name: "SimpleMatch"},
			{Name: "CaseSensitive"},
			{Name: "AllMatches"},
			{Name: "Context"},
			{Name: "Quiet"},
		},
	},
	{
		// No registered alias and no Get- prefix: passes through untouched.
		Name: "Invoke-WebRequest",
		Parameters: []ParameterDefinition{
			{Name: "Uri"},
			{Name: "Method"},
			{Name: "Headers"},
			{Name: "Body"},
			{Name: "OutFile"},
			{Name: "UseBasicParsing"},
			{Name: "TimeoutSec"},
		},
	},
	{
		Name:    "Invoke-Expression",
		Aliases: []string{"iex"},
		Parameters: []ParameterDefinition{
			{Name: "Command"},
		},
	},
	{
		Name:    "Invoke-Command",
		Aliases: []string{"icm"},
		Parameters: []ParameterDefinition{
			{Name: "ScriptBlock", Aliases: []string{"Command"}},
			{Name: "ComputerName", Aliases: []string{"Cn"}},
			{Name: "Session"},
			{Name: "ArgumentList", Aliases: []string{"Args"}},
			{Name: "ThrottleLimit"},
		},
	},
	{
		Name:    "Write-Output",
		Aliases: []string{"write", "echo"},
		Parameters: []ParameterDefinition{
			{Name: "InputObject"},
			{Name: "NoEnumerate"},
		},
	},
	{
		Name: "Out-File",
		Parameters: []ParameterDefinition{
			{Name: "FilePath"},
			{Name: "Append"},
			{Name: "Encoding"},
			{Name: "NoClobber"},
			{Name: "NoNewline"},
			{Name: "Width"},
		},
	},
	{
		Name:    "Tee-Object",
		Aliases: []string{"tee"},
		Parameters: []ParameterDefinition{
			{Name: "FilePath"},
			{Name: "Variable"},
			{Name: "Append"},
			{Name: "InputObject"},
		},
	},
	{
		Name:    "Format-Table",
		Aliases: []string{"ft"},
		Parameters: []ParameterDefinition{
			{Name: "Property"},
			{Name: "AutoSize"},
			{Name: "HideTableHeaders"},
			{Name: "Wrap"},
			{Name: "GroupBy"},
		},
	},
	{
		Name:    "Format-List",
		Aliases: []string{"fl"},
		Parameters: []ParameterDefinition{
			{Name: "Property"},
			{Name: "GroupBy"},
			{Name: "Force"},
		},
	},
	{
		Name:    "Start-Process",
		Aliases: []string{"saps", "start"},
		Parameters: []ParameterDefinition{
			{Name: "FilePath"},
			{Name: "ArgumentList", Aliases: []string{"Args"}},
			{Name: "WorkingDirectory"},
			{Name: "Wait"},
			{Name: "NoNewWindow"},
			{Name: "PassThru"},
			{Name: "Verb"},
		},
	},
	{
		Name:    "Stop-Process",
		Aliases: []string{"spps", "kill"},
		Parameters: []ParameterDefinition{
			{Name: "Name", Aliases: []string{"ProcessName"}},
			{Name: "Id"},
			{Name: "Force"},
			{Name: "PassThru"},
		},
	},
	{
		Name:    "Get-Service",
		Aliases: []string{"gsv"},
		Parameters: []ParameterDefinition{
			{Name: "Name", Aliases: []string{"ServiceName"}},
			{Name: "DisplayName"},
			{Name: "DependentServices", Aliases: []string{"DS"}},
			{Name: "RequiredServices", Aliases: []string{"SDO"}},
		},
	},
	{
		Name:    "Get-Command",
		Aliases: []string{"gcm"},
		Parameters: []ParameterDefinition{
			{Name: "Name"},
			{Name: "Module", Aliases: []string{"PSSnapin"}},
			{Name: "CommandType", Aliases: []string{"Type"}},
			{Name: "Syntax"},
		},
	},
	{
		Name:    "Get-Member",
		Aliases: []string{"gm"},
		Parameters: []ParameterDefinition{
			{Name: "Name"},
			{Name: "MemberType", Aliases: []string{"Type"}},
			{Name: "InputObject"},
			{Name: "Static"},
			{Name: "Force"},
		},
	},
	{
		Name:    "Get-Alias",
		Aliases: []string{"gal"},
		Parameters: []ParameterDefinition{
			{Name: "Name"},
			{Name: "Definition"},
			{Name: "Exclude"},
			{Name: "Scope"},
		},
	},
	{
		Name:    "Get-History",
		Aliases: []string{"ghy", "h", "history"},
		Parameters: []ParameterDefinition{
			{Name: "Id"},
			{Name: "Count"},
		},
	},
	{
		Name:    "Get-Variable",
		Aliases: []string{"gv"},
		Parameters: []ParameterDefinition{
			{Name: "Name"},
			{Name: "ValueOnly"},
			{Name: "Scope"},
			{Name: "Include"},
			{Name: "Exclude"},
		},
	},
	{
		Name:    "Set-Variable",
		Aliases: []string{"sv", "set"},
		Parameters: []ParameterDefinition{
			{Name: "Name"},
			{Name: "Value"},
			{Name: "Scope"},
			{Name: "Force"},
			{Name: "PassThru"},
		},
	},
	{
		// No registered alias: shortening falls back to the implied
		// get-verb shorthand ("Get-Date" -> "Date").
		Name: "Get-Date",
		Parameters: []ParameterDefinition{
			{Name: "Date"},
			{Name: "Format"},
			{Name: "UFormat"},
			{Name: "DisplayHint"},
			{Name: "Year"},
			{Name: "Month"},
			{Name: "Day"},
		},
	},
	{
		Name:    "Clear-Host",
		Aliases: []string{"clear", "cls"},
	},
	{
		Name:    "Get-Help",
		Aliases: []string{"man", "help"},
		Parameters: []ParameterDefinition{
			{Name: "Name"},
			{Name: "Category"},
			{Name: "Full"},
			{Name: "Detailed"},
			{Name: "Examples"},
			{Name: "Online"},
			{Name: "Parameter"},
		},
	},
}

// Builtin returns a registry holding the baked-in catalog. The catalog is
// validated at build time by tests, so construction cannot fail here.
func Builtin() *Static {
	s, err := NewStatic(builtinDefinitions)
	if err != nil {
		panic(err)
	}
	return s
}
