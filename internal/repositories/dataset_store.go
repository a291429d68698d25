package repositories

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"kankou/internal/infra"
	"kankou/internal/models/dataset_models"
	"kankou/pkg/metrics"
	"kankou/pkg/utils"
)

const (
	DatasetSpots           = "spots"
	DatasetRecommendations = "recommendations"
	DatasetStories         = "stories"
)

// DatasetPaths locates the three source files.
type DatasetPaths struct {
	Spots           string
	Recommendations string
	Stories         string
	Comma           rune
}

// DatasetStatus describes the outcome of loading one dataset.
type DatasetStatus struct {
	Name string
	Path string
	Rows int
	Err  error
}

// DatasetStore is the read-only snapshot of every dataset, read once when it is constructed.
// A dataset that failed to load keeps its error; the others stay usable. Slices handed out
// by the store are shared and must not be modified.
type DatasetStore struct {
	spots      []dataset_models.SpotRecord
	spotIndex  map[string]int
	spotsErr   error
	recs       []dataset_models.RecommendationRow
	recsErr    error
	stories    []dataset_models.AudioStory
	storiesErr error
	statuses   []DatasetStatus
	loadedAt   time.Time
}

func NewDatasetStore(paths DatasetPaths, log *zap.Logger) *DatasetStore {
	s := &DatasetStore{loadedAt: time.Now()}

	s.spots, s.spotsErr = loadDataset(paths.Spots, paths.Comma, DatasetSpots, log, decodeSpots)
	s.spotIndex = indexSpots(s.spots)
	s.recs, s.recsErr = loadDataset(paths.Recommendations, paths.Comma, DatasetRecommendations, log, decodeRecommendations)
	s.stories, s.storiesErr = loadDataset(paths.Stories, paths.Comma, DatasetStories, log, decodeStories)

	s.statuses = []DatasetStatus{
		{Name: DatasetSpots, Path: paths.Spots, Rows: len(s.spots), Err: s.spotsErr},
		{Name: DatasetRecommendations, Path: paths.Recommendations, Rows: len(s.recs), Err: s.recsErr},
		{Name: DatasetStories, Path: paths.Stories, Rows: len(s.stories), Err: s.storiesErr},
	}
	return s
}

func loadDataset[T any](path string, comma rune, name string, log *zap.Logger,
	decode func(*infra.Table, *zap.Logger) ([]T, error)) ([]T, error) {

	rows, err := func() ([]T, error) {
		table, err := infra.ReadTable(path, comma)
		if err != nil {
			return nil, err
		}
		return decode(table, log.With(zap.String("dataset", name)))
	}()
	if err != nil {
		metrics.DatasetLoadErrorsTotal.WithLabelValues(name).Inc()
		log.Error("dataset load failed", zap.String("dataset", name), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", utils.ErrDataLoad, name, err)
	}

	metrics.DatasetRows.WithLabelValues(name).Set(float64(len(rows)))
	log.Info("dataset loaded", zap.String("dataset", name), zap.String("path", path), zap.Int("rows", len(rows)))
	return rows, nil
}

// indexSpots maps each name to its first row.
func indexSpots(spots []dataset_models.SpotRecord) map[string]int {
	idx := make(map[string]int, len(spots))
	for i, s := range spots {
		if _, seen := idx[s.Name]; !seen {
			idx[s.Name] = i
		}
	}
	return idx
}

func (s *DatasetStore) Spots() ([]dataset_models.SpotRecord, error) {
	return s.spots, s.spotsErr
}

func (s *DatasetStore) Recommendations() ([]dataset_models.RecommendationRow, error) {
	return s.recs, s.recsErr
}

func (s *DatasetStore) Stories() ([]dataset_models.AudioStory, error) {
	return s.stories, s.storiesErr
}

func (s *DatasetStore) Statuses() []DatasetStatus {
	return append([]DatasetStatus(nil), s.statuses...)
}

func (s *DatasetStore) LoadedAt() time.Time {
	return s.loadedAt
}

func decodeSpots(t *infra.Table, log *zap.Logger) ([]dataset_models.SpotRecord, error) {
	if err := t.RequireColumns(colSpotName); err != nil {
		return nil, err
	}

	spots := make([]dataset_models.SpotRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		name, ok := t.Cell(row, colSpotName)
		if !ok {
			log.Warn("skipping spot row without a name", zap.Int("row", i+2))
			continue
		}

		address, _ := t.Cell(row, colSpotAddress)
		spot := dataset_models.SpotRecord{
			Name:        name,
			Tags:        optionalCell(t, row, colSpotTags),
			Address:     address,
			ImageURL:    optionalCell(t, row, colSpotImage),
			Phone:       optionalCell(t, row, colSpotPhone),
			HomepageURL: optionalCell(t, row, colSpotHomepage),
			Coordinates: optionalCell(t, row, colSpotCoordinates),
			Description: optionalCell(t, row, colSpotDescription),
		}
		for g := 1; g <= dataset_models.MaxGalleryImages; g++ {
			if img, ok := t.Cell(row, galleryColumn(g)); ok {
				spot.GalleryImages = append(spot.GalleryImages, img)
			}
		}
		spots = append(spots, spot)
	}
	return spots, nil
}

func decodeRecommendations(t *infra.Table, log *zap.Logger) ([]dataset_models.RecommendationRow, error) {
	if err := t.RequireColumns(ColAnswerIntent, ColAnswerStyle, ColAnswerAge, ColAnswerTransport); err != nil {
		return nil, err
	}

	rows := make([]dataset_models.RecommendationRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		var r dataset_models.RecommendationRow
		r.Key.Intent, _ = t.Cell(row, ColAnswerIntent)
		r.Key.Style, _ = t.Cell(row, ColAnswerStyle)
		r.Key.Age, _ = t.Cell(row, ColAnswerAge)
		r.Key.Transport, _ = t.Cell(row, ColAnswerTransport)
		for i := 1; i <= dataset_models.MaxSuggestions; i++ {
			if name, ok := t.Cell(row, suggestionColumn(i)); ok {
				r.SuggestedSpotNames = append(r.SuggestedSpotNames, name)
			}
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func decodeStories(t *infra.Table, log *zap.Logger) ([]dataset_models.AudioStory, error) {
	if err := t.RequireColumns(colStoryTitle); err != nil {
		return nil, err
	}

	stories := make([]dataset_models.AudioStory, 0, len(t.Rows))
	for i, row := range t.Rows {
		title, ok := t.Cell(row, colStoryTitle)
		if !ok {
			log.Warn("skipping story row without a title", zap.Int("row", i+2))
			continue
		}
		story := dataset_models.AudioStory{
			Title:          title,
			HeaderImageURL: optionalCell(t, row, colStoryHeader),
		}
		for _, tc := range storyTrackColumns {
			if url, ok := t.Cell(row, tc.column); ok {
				story.Tracks = append(story.Tracks, dataset_models.AudioTrack{Language: tc.language, URL: url})
			}
		}
		stories = append(stories, story)
	}
	return stories, nil
}

func optionalCell(t *infra.Table, row []string, column string) *string {
	if v, ok := t.Cell(row, column); ok {
		return &v
	}
	return nil
}
