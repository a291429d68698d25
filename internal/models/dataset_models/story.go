package dataset_models

// AudioStory is one row of the story dataset.
type AudioStory struct {
	Title          string
	HeaderImageURL *string
	Tracks         []AudioTrack
}

type AudioTrack struct {
	Language string
	URL      string
}

const (
	LanguageJapanese = "ja"
	LanguageEnglish  = "en"
	LanguageChinese  = "zh"
)
