package config

// defaultPackages is the curated list reported on when no config is given.
var defaultPackages = []string{
	"Adobe.Acrobat.Reader.64-bit",
	"Google.Chrome",
	"Mozilla.Firefox",
	"Microsoft.Edge",
	"7zip.7zip",
	"Notepad++.Notepad++",
	"VideoLAN.VLC",
	"Git.Git",
	"Microsoft.VisualStudioCode",
	"Microsoft.PowerShell",
	"Microsoft.WindowsTerminal",
	"Zoom.Zoom",
	"Python.Python.3.12",
	"OpenJS.NodeJS.LTS",
	"PuTTY.PuTTY",
	"WinSCP.WinSCP",
}

// DefaultPackages returns a copy of the built-in identifier list.
func DefaultPackages() []string {
	return append([]string(nil), defaultPackages...)
}
