// Package style holds the fixed set of artistic styles offered by the UI.
// The Key is folded into the generation prompt; the Label is what the
// dropdown shows.
package style

// Style is one selectable artistic transformation theme.
type Style struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var styles = []Style{
	{Key: "cartoon/animated", Label: "Cartoon / animated"},
	{Key: "watercolor painting", Label: "Watercolor painting"},
	{Key: "oil painting", Label: "Oil painting"},
	{Key: "digital art", Label: "Digital illustration"},
	{Key: "3D rendered", Label: "3D rendered"},
	{Key: "pixel art", Label: "Pixel art"},
	{Key: "anime/manga", Label: "Anime / manga"},
	{Key: "realistic photograph", Label: "Realistic photograph"},
	{Key: "pencil sketch (refined)", Label: "Pencil sketch (refined)"},
	{Key: "storybook illustration", Label: "Storybook illustration"},
	{Key: "pop art", Label: "Pop art"},
	{Key: "cubism", Label: "Cubism"},
	{Key: "fairy tale Little Mole (Zdenek Miler)", Label: "Little Mole fairy tale (Zdenek Miler)"},
	{Key: "Josef Lada like", Label: "Josef Lada"},
	{Key: "Alfond Mucha like", Label: "Alfons Mucha"},
}

// List returns all styles in display order.
func List() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// Default returns the style preselected in the UI.
func Default() Style {
	return styles[0]
}

// Valid reports whether key is one of the offered styles.
func Valid(key string) bool {
	for _, s := range styles {
		if s.Key == key {
			return true
		}
	}
	return false
}
