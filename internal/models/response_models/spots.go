package response_models

type SpotSummary struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url,omitempty"`
	Tags     string  `json:"tags"`
	Address  string  `json:"address"`
}

type SpotListPage struct {
	Items      []SpotSummary `json:"items"`
	Query      string        `json:"query,omitempty"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
	HasPrev    bool          `json:"has_prev"`
	HasNext    bool          `json:"has_next"`
}

// DisplayField is an optional attribute; Value holds a placeholder when Available is false.
type DisplayField struct {
	Value     string `json:"value"`
	Available bool   `json:"available"`
}

type SpotDetail struct {
	Name          string       `json:"name"`
	Image         DisplayField `json:"image"`
	Tags          DisplayField `json:"tags"`
	Address       DisplayField `json:"address"`
	Phone         DisplayField `json:"phone"`
	Homepage      DisplayField `json:"homepage"`
	Description   DisplayField `json:"description"`
	Coordinates   string       `json:"coordinates,omitempty"`
	MapEmbedURL   string       `json:"map_embed_url,omitempty"`
	MapNotice     string       `json:"map_notice,omitempty"`
	GalleryImages []string     `json:"gallery_images,omitempty"`
}
