package dataset_models

import "kankou/pkg/utils"

// MaxGalleryImages is the number of 追加画像 columns in the spot dataset.
const MaxGalleryImages = 4

// SpotRecord is one row of the spot dataset. Optional columns are nil when the cell is empty
// or the column is missing from the file.
type SpotRecord struct {
	Name          string
	Tags          *string
	Address       string
	ImageURL      *string
	Phone         *string
	HomepageURL   *string
	Coordinates   *string
	Description   *string
	GalleryImages []string
}

// Coordinate parses the raw coordinates cell. It returns utils.ErrMissingCoordinate when the
// cell is absent and utils.ErrMalformedCoordinate when it cannot be parsed.
func (s SpotRecord) Coordinate() (Coordinate, error) {
	if s.Coordinates == nil {
		return Coordinate{}, utils.ErrMissingCoordinate
	}
	return ParseCoordinate(*s.Coordinates)
}

// Clone returns a copy that shares nothing with the dataset snapshot.
func (s SpotRecord) Clone() SpotRecord {
	out := s
	out.Tags = clonePtr(s.Tags)
	out.ImageURL = clonePtr(s.ImageURL)
	out.Phone = clonePtr(s.Phone)
	out.HomepageURL = clonePtr(s.HomepageURL)
	out.Coordinates = clonePtr(s.Coordinates)
	out.Description = clonePtr(s.Description)
	out.GalleryImages = append([]string(nil), s.GalleryImages...)
	return out
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// StringPtr returns a pointer to v.
func StringPtr(v string) *string {
	return &v
}

// StringPtrValue returns the pointed-to value or "".
func StringPtrValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
