package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"kankou/internal/models/dataset_models"
	"kankou/internal/models/response_models"
	"kankou/pkg/utils"
)

// Placeholders shown for absent optional fields.
const (
	PlaceholderImage           = "画像はありません"
	PlaceholderTags            = "タグ情報なし"
	PlaceholderAddress         = "住所情報なし"
	PlaceholderPhone           = "なし"
	PlaceholderHomepage        = "ホームページ情報なし"
	PlaceholderDescription     = "詳細情報はありません。"
	NoticeMissingCoordinates   = "緯度経度情報がありません。"
	NoticeMalformedCoordinates = "緯度経度情報が不正です。"
)

const mapEmbedZoom = 15

// RenderDetail presents every attribute of spot. Absent fields get a placeholder, except the
// gallery which is left empty. Coordinates that do not parse produce a notice instead of an
// embedded map.
func RenderDetail(spot dataset_models.SpotRecord, log *zap.Logger) response_models.SpotDetail {
	detail := response_models.SpotDetail{
		Name:          spot.Name,
		Image:         displayField(spot.ImageURL, PlaceholderImage),
		Tags:          displayField(spot.Tags, PlaceholderTags),
		Address:       displayField(nonEmpty(spot.Address), PlaceholderAddress),
		Phone:         displayField(spot.Phone, PlaceholderPhone),
		Homepage:      displayField(spot.HomepageURL, PlaceholderHomepage),
		Description:   displayField(spot.Description, PlaceholderDescription),
		GalleryImages: append([]string(nil), spot.GalleryImages...),
	}

	c, err := spot.Coordinate()
	switch {
	case err == nil:
		detail.Coordinates = c.String()
		detail.MapEmbedURL = MapEmbedURL(c)
	case errors.Is(err, utils.ErrMissingCoordinate):
		detail.MapNotice = NoticeMissingCoordinates
	default:
		detail.MapNotice = NoticeMalformedCoordinates
		if log != nil {
			log.Warn("spot detail without map",
				zap.String("spot", spot.Name),
				zap.String("coordinates", dataset_models.StringPtrValue(spot.Coordinates)),
				zap.Error(err))
		}
	}
	return detail
}

// MapEmbedURL is the Google Maps iframe source centred on c.
func MapEmbedURL(c dataset_models.Coordinate) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s&z=%d&output=embed", c.String(), mapEmbedZoom)
}

func displayField(v *string, placeholder string) response_models.DisplayField {
	if v == nil || *v == "" {
		return response_models.DisplayField{Value: placeholder}
	}
	return response_models.DisplayField{Value: *v, Available: true}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
