package builtin

// Nord color palette
// https://www.nordtheme.com/docs/colors-and-palettes
var nord = struct {
	Nord0  string // Polar Night
	Nord1  string
	Nord2  string
	Nord3  string
	Nord4  string // Snow Storm
	Nord5  string
	Nord6  string
	Nord7  string // Frost
	Nord8  string
	Nord9  string
	Nord10 string
	Nord11 string // Aurora
	Nord12 string
	Nord13 string
	Nord14 string
	Nord15 string
}{
	Nord0:  "#2E3440",
	Nord1:  "#3B4252",
	Nord2:  "#434C5E",
	Nord3:  "#4C566A",
	Nord4:  "#D8DEE9",
	Nord5:  "#E5E9F0",
	Nord6:  "#ECEFF4",
	Nord7:  "#8FBCBB",
	Nord8:  "#88C0D0",
	Nord9:  "#81A1C1",
	Nord10: "#5E81AC",
	Nord11: "#BF616A",
	Nord12: "#D08770",
	Nord13: "#EBCB8B",
	Nord14: "#A3BE8C",
	Nord15: "#B48EAD",
}

func init() {
	register("nord", palette{
		Title:      "Nord",
		Background: nord.Nord0,
		Foreground: nord.Nord4,
		Caret:      nord.Nord4,
		Selection:  nord.Nord2,
		Invisibles: nord.Nord3,
		Comment:    "#616E88",
		Keyword:    nord.Nord9,
		Storage:    nord.Nord9,
		String:     nord.Nord14,
		Number:     nord.Nord15,
		Constant:   nord.Nord9,
		Function:   nord.Nord8,
		Type:       nord.Nord7,
		Parameter:  nord.Nord4,
		Tag:        nord.Nord9,
		Invalid:    nord.Nord11,
		Gutter: map[string]string{
			"background":          nord.Nord0,
			"foreground":          nord.Nord3,
			"selectionForeground": nord.Nord4,
			"selectionBackground": nord.Nord1,
		},
	})
}
