package response_models

import "kankou/internal/models/dataset_models"

type MapView struct {
	Center  dataset_models.Coordinate `json:"center"`
	Zoom    int                       `json:"zoom"`
	Markers []MapMarker               `json:"markers"`
	Skipped int                       `json:"skipped"`
}

type MapMarker struct {
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Tooltip   string  `json:"tooltip"`
	PopupHTML string  `json:"popup_html"`
	DetailURL string  `json:"detail_url"`
}
