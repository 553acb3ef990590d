package builtin

// Monokai Pro palette
var monokai = struct {
	Background string
	Dimmed     string
	Foreground string
	Comment    string
	Red        string
	Orange     string
	Yellow     string
	Green      string
	Blue       string
	Purple     string
}{
	Background: "#2d2a2e",
	Dimmed:     "#5b595c",
	Foreground: "#fcfcfa",
	Comment:    "#727072",
	Red:        "#ff6188",
	Orange:     "#fc9867",
	Yellow:     "#ffd866",
	Green:      "#a9dc76",
	Blue:       "#78dce8",
	Purple:     "#ab9df2",
}

func init() {
	register("monokai", palette{
		Title:      "Monokai Pro",
		Background: monokai.Background,
		Foreground: monokai.Foreground,
		Caret:      monokai.Foreground,
		Selection:  monokai.Dimmed,
		Invisibles: monokai.Dimmed,
		Comment:    monokai.Comment,
		Keyword:    monokai.Red,
		Storage:    monokai.Red,
		String:     monokai.Yellow,
		Number:     monokai.Purple,
		Constant:   monokai.Purple,
		Function:   monokai.Green,
		Type:       monokai.Blue,
		Parameter:  monokai.Orange,
		Tag:        monokai.Red,
		Invalid:    monokai.Red,
	})
}
