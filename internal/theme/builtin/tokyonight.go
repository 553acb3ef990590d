package builtin

// Tokyo Night (moon) palette
// https://github.com/folke/tokyonight.nvim
var tokyonight = struct {
	Bg       string
	BgVisual string
	Fg       string
	Comment  string
	Blue     string
	Cyan     string
	Purple   string
	Orange   string
	Yellow   string
	Green    string
	Teal     string
	Red      string
}{
	Bg:       "#222436",
	BgVisual: "#2d3f76",
	Fg:       "#c8d3f5",
	Comment:  "#636da6",
	Blue:     "#82aaff",
	Cyan:     "#86e1fc",
	Purple:   "#c099ff",
	Orange:   "#ff966c",
	Yellow:   "#ffc777",
	Green:    "#c3e88d",
	Teal:     "#4fd6be",
	Red:      "#ff757f",
}

func init() {
	register("tokyonight", palette{
		Title:      "Tokyo Night",
		Background: tokyonight.Bg,
		Foreground: tokyonight.Fg,
		Caret:      tokyonight.Fg,
		Selection:  tokyonight.BgVisual,
		Invisibles: tokyonight.Comment,
		Comment:    tokyonight.Comment,
		Keyword:    tokyonight.Purple,
		Storage:    tokyonight.Purple,
		String:     tokyonight.Green,
		Number:     tokyonight.Orange,
		Constant:   tokyonight.Orange,
		Function:   tokyonight.Blue,
		Type:       tokyonight.Teal,
		Parameter:  tokyonight.Yellow,
		Tag:        tokyonight.Red,
		Invalid:    tokyonight.Red,
	})
}
