package builtin

// Solarized color palette
// https://ethanschoonover.com/solarized/
var solarized = struct {
	Base03  string
	Base02  string
	Base01  string
	Base00  string
	Base0   string
	Base1   string
	Base2   string
	Base3   string
	Yellow  string
	Orange  string
	Red     string
	Magenta string
	Violet  string
	Blue    string
	Cyan    string
	Green   string
}{
	Base03:  "#002b36",
	Base02:  "#073642",
	Base01:  "#586e75",
	Base00:  "#657b83",
	Base0:   "#839496",
	Base1:   "#93a1a1",
	Base2:   "#eee8d5",
	Base3:   "#fdf6e3",
	Yellow:  "#b58900",
	Orange:  "#cb4b16",
	Red:     "#dc322f",
	Magenta: "#d33682",
	Violet:  "#6c71c4",
	Blue:    "#268bd2",
	Cyan:    "#2aa198",
	Green:   "#859900",
}

// solarizedAccents are shared by the dark and light variants.
func solarizedAccents(p palette) palette {
	p.Keyword = solarized.Green
	p.Storage = solarized.Yellow
	p.String = solarized.Cyan
	p.Number = solarized.Magenta
	p.Constant = solarized.Violet
	p.Function = solarized.Blue
	p.Type = solarized.Yellow
	p.Parameter = solarized.Orange
	p.Tag = solarized.Blue
	p.Invalid = solarized.Red
	return p
}

func init() {
	register("solarized-dark", solarizedAccents(palette{
		Title:      "Solarized (dark)",
		Background: solarized.Base03,
		Foreground: solarized.Base0,
		Caret:      solarized.Base1,
		Selection:  solarized.Base02,
		Invisibles: solarized.Base01,
		Comment:    solarized.Base01,
	}))
	register("solarized-light", solarizedAccents(palette{
		Title:      "Solarized (light)",
		Background: solarized.Base3,
		Foreground: solarized.Base00,
		Caret:      solarized.Base01,
		Selection:  solarized.Base2,
		Invisibles: solarized.Base1,
		Comment:    solarized.Base1,
	}))
}
