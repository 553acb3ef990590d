package builtin

// Gruvbox dark palette
// https://github.com/morhetz/gruvbox
var gruvbox = struct {
	Bg0    string
	Bg1    string
	Bg2    string
	Fg1    string
	Gray   string
	Red    string
	Green  string
	Yellow string
	Blue   string
	Purple string
	Aqua   string
	Orange string
}{
	Bg0:    "#282828",
	Bg1:    "#3c3836",
	Bg2:    "#504945",
	Fg1:    "#ebdbb2",
	Gray:   "#928374",
	Red:    "#fb4934",
	Green:  "#b8bb26",
	Yellow: "#fabd2f",
	Blue:   "#83a598",
	Purple: "#d3869b",
	Aqua:   "#8ec07c",
	Orange: "#fe8019",
}

func init() {
	register("gruvbox", palette{
		Title:      "Gruvbox",
		Background: gruvbox.Bg0,
		Foreground: gruvbox.Fg1,
		Caret:      gruvbox.Fg1,
		Selection:  gruvbox.Bg2,
		Comment:    gruvbox.Gray,
		Keyword:    gruvbox.Red,
		Storage:    gruvbox.Orange,
		String:     gruvbox.Green,
		Number:     gruvbox.Purple,
		Constant:   gruvbox.Purple,
		Function:   gruvbox.Yellow,
		Type:       gruvbox.Aqua,
		Parameter:  gruvbox.Blue,
		Tag:        gruvbox.Blue,
		Invalid:    gruvbox.Red,
		Gutter: map[string]string{
			"background": gruvbox.Bg1,
			"icons":      gruvbox.Yellow,
		},
	})
}
