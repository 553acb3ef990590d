package builtin

// Dracula color palette
// https://draculatheme.com/contribute
var dracula = struct {
	Background  string
	CurrentLine string
	Foreground  string
	Comment     string
	Cyan        string
	Green       string
	Orange      string
	Pink        string
	Purple      string
	Red         string
	Yellow      string
}{
	Background:  "#282a36",
	CurrentLine: "#44475a",
	Foreground:  "#f8f8f2",
	Comment:     "#6272a4",
	Cyan:        "#8be9fd",
	Green:       "#50fa7b",
	Orange:      "#ffb86c",
	Pink:        "#ff79c6",
	Purple:      "#bd93f9",
	Red:         "#ff5555",
	Yellow:      "#f1fa8c",
}

func init() {
	register("dracula", palette{
		Title:      "Dracula",
		Background: dracula.Background,
		Foreground: dracula.Foreground,
		Caret:      dracula.Foreground,
		Selection:  dracula.CurrentLine,
		Invisibles: "#3b3a32",
		Comment:    dracula.Comment,
		Keyword:    dracula.Pink,
		Storage:    dracula.Pink,
		String:     dracula.Yellow,
		Number:     dracula.Purple,
		Constant:   dracula.Purple,
		Function:   dracula.Green,
		Type:       dracula.Cyan,
		Parameter:  dracula.Orange,
		Tag:        dracula.Pink,
		Invalid:    dracula.Red,
		Gutter: map[string]string{
			"background": dracula.Background,
			"divider":    dracula.CurrentLine,
			"foreground": dracula.Comment,
		},
	})
}
