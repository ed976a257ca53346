package tui

import "github.com/vim-fall/fall.vim/terminal"

// Theme defines semantic colors for TUI components
type Theme struct {
	Bg       terminal.RGB
	Fg       terminal.RGB
	FocusBg  terminal.RGB
	CursorBg terminal.RGB

	Selected   terminal.RGB
	Unselected terminal.RGB
	Error      terminal.RGB
	Warning    terminal.RGB

	Border   terminal.RGB
	HeaderBg terminal.RGB
	HeaderFg terminal.RGB
	HintFg   terminal.RGB

	// Tree/syntax
	DirFg    terminal.RGB
	FileFg   terminal.RGB
	SymbolFg terminal.RGB
}

// DefaultTheme provides reasonable defaults, drawn from terminal's named
// TrueColor palette (terminal.Obsidian, terminal.SteelBlue, …) rather than
// inline RGB literals, so a host overriding one field can pick another
// named entry from the same palette instead of guessing byte triples. The
// palette is intentionally larger than what DefaultTheme itself uses —
// spec §6 treats Theme as an opaque style input the host authors, and the
// unused names remain available to it.
var DefaultTheme = Theme{
	Bg:         terminal.Obsidian,
	Fg:         terminal.LightGray,
	FocusBg:    terminal.DarkSlate,
	CursorBg:   terminal.SteelBlue,
	Selected:   terminal.MediumGreen,
	Unselected: terminal.Gray,
	Error:      terminal.Coral,
	Warning:    terminal.PaleGold,
	Border:     terminal.SlateGray,
	HeaderBg:   terminal.NavyBlue,
	HeaderFg:   terminal.White,
	HintFg:     terminal.CoolSilver,
	DirFg:      terminal.CeruleanBlue,
	FileFg:     terminal.LightGray,
	SymbolFg:   terminal.ElectricViolet,
}