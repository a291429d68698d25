package response_models

type StoryCard struct {
	Title       string       `json:"title"`
	HeaderImage string       `json:"header_image,omitempty"`
	Tracks      []StoryTrack `json:"tracks"`
}

type StoryTrack struct {
	Language string `json:"language"`
	Label    string `json:"label"`
	URL      string `json:"url"`
}
