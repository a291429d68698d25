package session_models

import "kankou/internal/models/dataset_models"

// ViewerSession is the UI state of one viewer. SelectedSpot is a copy, never a reference into
// the dataset snapshot.
type ViewerSession struct {
	ID           string
	SelectedSpot *dataset_models.SpotRecord
	CurrentPage  int
	Query        string
}

func NewViewerSession(id string) ViewerSession {
	return ViewerSession{ID: id, CurrentPage: 1}
}

func (s *ViewerSession) Select(spot dataset_models.SpotRecord) {
	c := spot.Clone()
	s.SelectedSpot = &c
}

func (s *ViewerSession) ClearSelection() {
	s.SelectedSpot = nil
}

// SetQuery stores a new search query and resets paging when it changed.
func (s *ViewerSession) SetQuery(q string) {
	if q != s.Query {
		s.Query = q
		s.CurrentPage = 1
	}
}
