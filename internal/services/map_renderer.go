package services

import (
	"html/template"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"kankou/internal/models/dataset_models"
	"kankou/internal/models/response_models"
	"kankou/pkg/metrics"
)

var popupTemplate = template.Must(template.New("popup").Parse(
	`<div style="text-align:center;">` +
		`{{if .Image}}<a href="{{.Link}}" target="_self"><img src="{{.Image}}" width="200" style="border-radius:10px;" /></a>` +
		`<p><b>{{.Name}}</b></p>` +
		`{{else}}<p><a href="{{.Link}}" target="_self"><b>{{.Name}}</b></a></p>{{end}}` +
		`</div>`))

// DetailLink is the map page URL that selects the named spot.
func DetailLink(name string) string {
	return "/map?spot=" + url.QueryEscape(name)
}

// BuildMapView places one marker per spot with usable coordinates. Spots with missing or
// malformed coordinates are logged and left off the map.
func BuildMapView(spots []dataset_models.SpotRecord, center dataset_models.Coordinate, zoom int, log *zap.Logger) response_models.MapView {
	if log == nil {
		log = zap.NewNop()
	}

	view := response_models.MapView{
		Center:  center,
		Zoom:    zoom,
		Markers: make([]response_models.MapMarker, 0, len(spots)),
	}
	for _, s := range spots {
		c, err := s.Coordinate()
		if err != nil {
			view.Skipped++
			metrics.MapMarkersSkippedTotal.Inc()
			log.Warn("spot left off the map",
				zap.String("spot", s.Name),
				zap.String("coordinates", dataset_models.StringPtrValue(s.Coordinates)),
				zap.Error(err))
			continue
		}

		link := DetailLink(s.Name)
		view.Markers = append(view.Markers, response_models.MapMarker{
			Name:      s.Name,
			Lat:       c.Lat,
			Lon:       c.Lon,
			Tooltip:   s.Name,
			PopupHTML: renderPopup(s, link),
			DetailURL: link,
		})
	}
	return view
}

func renderPopup(s dataset_models.SpotRecord, link string) string {
	var b strings.Builder
	data := struct {
		Name, Link, Image string
	}{s.Name, link, dataset_models.StringPtrValue(s.ImageURL)}
	if err := popupTemplate.Execute(&b, data); err != nil {
		return template.HTMLEscapeString(s.Name)
	}
	return b.String()
}
