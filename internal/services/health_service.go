package services

import (
	"time"

	"kankou/internal/models/response_models"
	"kankou/internal/repositories"
	"kankou/pkg/utils"
)

// DatasetStatusSource reports how each dataset loaded. *repositories.DatasetStore implements it.
type DatasetStatusSource interface {
	Statuses() []repositories.DatasetStatus
	LoadedAt() time.Time
}

type HealthServiceInterface interface {
	// Health reports per-dataset row counts and errors. Healthy is false when any dataset
	// failed to load.
	Health() (response_models.HealthResponse, bool)
}

type HealthService struct {
	source DatasetStatusSource
}

func NewHealthService(source DatasetStatusSource) HealthServiceInterface {
	return &HealthService{source: source}
}

func (h *HealthService) Health() (response_models.HealthResponse, bool) {
	healthy := true
	statuses := h.source.Statuses()
	resp := response_models.HealthResponse{
		LoadedAt: utils.FormatRFC3339JST(h.source.LoadedAt()),
		Datasets: make([]response_models.DatasetStatus, 0, len(statuses)),
	}
	for _, st := range statuses {
		ds := response_models.DatasetStatus{Name: st.Name, Path: st.Path, Rows: st.Rows}
		if st.Err != nil {
			healthy = false
			ds.Error = st.Err.Error()
		}
		resp.Datasets = append(resp.Datasets, ds)
	}
	return resp, healthy
}
