package domain

// Item is one entry of the fixed carousel list.
type Item struct {
	Name     string `json:"name"`
	ImageRef string `json:"image_ref"`
	Link     string `json:"link"`
}

var robots = [...]Item{
	{
		Name:     "ASIMO",
		ImageRef: "https://upload.wikimedia.org/wikipedia/commons/6/6e/ASIMO.jpg",
		Link:     "https://en.wikipedia.org/wiki/ASIMO",
	},
	{
		Name:     "Atlas",
		ImageRef: "https://upload.wikimedia.org/wikipedia/commons/2/2e/Atlas_front_view.jpg",
		Link:     "https://en.wikipedia.org/wiki/Atlas_(robot)",
	},
	{
		Name:     "Spot",
		ImageRef: "https://upload.wikimedia.org/wikipedia/commons/5/5e/Spot_Mini.jpg",
		Link:     "https://en.wikipedia.org/wiki/Spot_(robot)",
	},
}

// Robots returns a copy of the carousel items.
func Robots() []Item {
	out := make([]Item, len(robots))
	copy(out, robots[:])
	return out
}
