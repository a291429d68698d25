package response_models

type DatasetStatus struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Rows  int    `json:"rows"`
	Error string `json:"error,omitempty"`
}

type HealthResponse struct {
	LoadedAt string          `json:"loaded_at"`
	Datasets []DatasetStatus `json:"datasets"`
}
