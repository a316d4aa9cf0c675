package domain

const (
	// SpeciesClownfish renders one week of activity.
	SpeciesClownfish = "clownfish"
	// SpeciesFerris is the ambassador that watches over the aquarium.
	SpeciesFerris = "ferris"
)

// Fish is a single visual record in the aquarium.
type Fish struct {
	Fish    string  `json:"fish"`
	Size    float32 `json:"size"`
	Speed   float32 `json:"speed"`
	Bubbles float32 `json:"bubbles"`
}

// AmbassadorFish is appended to the school when the ambassador is enabled.
func AmbassadorFish() Fish {
	return Fish{Fish: SpeciesFerris, Size: 1, Speed: 1, Bubbles: 0}
}

// FishLegend describes one species.
type FishLegend struct {
	Fish        string `json:"fish"`
	Description string `json:"description"`
}

// Legend explains the visualization to the viewer.
type Legend struct {
	Description string       `json:"description"`
	FishLegends []FishLegend `json:"fish_legends"`
}

// School is the success payload consumed by the front-end.
type School struct {
	Legend *Legend `json:"legend"`
	School []Fish  `json:"school"`
}

// ErrorResponse is the only body emitted on failure.
type ErrorResponse struct {
	Message string `json:"message"`
}
