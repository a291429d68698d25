package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kankou/internal/models/request_models"
	"kankou/internal/models/response_models"
	"kankou/pkg/middleware"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func callJSON(t *testing.T, app *testApp, method, target string, body string, into any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if into != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, into))
	}
	return w, env
}

func TestListSpotsAPI(t *testing.T) {
	app := newTestApp(t, defaultFixture())

	var page response_models.SpotListPage
	w, env := callJSON(t, app, http.MethodGet, "/api/spots?page=3", "", &page)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, w.Header().Get(middleware.TraceHeader), env.TraceID)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, "スポット41", page.Items[0].Name)

	_, _ = callJSON(t, app, http.MethodGet, "/api/spots?q="+url.QueryEscape("グルメ")+"&page=abc&pageSize=10", "", &page)
	assert.Equal(t, 22, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.TotalPages)
}

func TestListSpotsAPIRejectsPageSize(t *testing.T) {
	app := newTestApp(t, defaultFixture())

	for _, size := range []string{"0", "101", "ten"} {
		w, env := callJSON(t, app, http.MethodGet, "/api/spots?pageSize="+size, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, size)
		assert.Equal(t, "error", env.Status)
	}
}

func TestGetSpotAPI(t *testing.T) {
	app := newTestApp(t, defaultFixture())

	var detail response_models.SpotDetail
	w, _ := callJSON(t, app, http.MethodGet, "/api/spots/"+url.PathEscape("スポット01"), "", &detail)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "スポット01", detail.Name)
	assert.Equal(t, "https://www.google.com/maps?q=34.1,133.9&z=15&output=embed", detail.MapEmbedURL)
	assert.False(t, detail.Image.Available)
	assert.Equal(t, "画像はありません", detail.Image.Value)

	w, env := callJSON(t, app, http.MethodGet, "/api/spots/"+url.PathEscape("不明"), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.Code)
}

func TestMapAPI(t *testing.T) {
	app := newTestApp(t, defaultFixture())

	var view response_models.MapView
	w, _ := callJSON(t, app, http.MethodGet, "/api/map", "", &view)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, view.Markers, 23)
	assert.Equal(t, 22, view.Skipped)
	assert.Equal(t, 11, view.Zoom)
	assert.Equal(t, "/map?spot="+url.QueryEscape("スポット01"), view.Markers[0].DetailURL)
}

func TestQuizAPI(t *testing.T) {
	app := newTestApp(t, defaultFixture())

	var questions []request_models.QuizQuestion
	w, _ := callJSON(t, app, http.MethodGet, "/api/quiz", "", &questions)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, questions, 4)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "food", questions[0].Options[0].Code)
}

func TestRecommendationAPI(t *testing.T) {
	app := newTestApp(t, defaultFixture())

	var res response_models.RecommendationResult
	w, _ := callJSON(t, app, http.MethodPost, "/api/recommendations",
		`{"answers":{"q1":"food","q2":"一人で静かに","q3":"20s","q4":"car"}}`, &res)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, res.Matched)
	require.Len(t, res.Spots, 1)
	assert.Equal(t, "スポット01", res.Spots[0].Name)
	assert.Equal(t, []string{"存在しない"}, res.Unresolved)

	res = response_models.RecommendationResult{}
	w, env := callJSON(t, app, http.MethodPost, "/api/recommendations",
		`{"answers":{"q1":"nature","q2":"solo","q3":"50s","q4":"train-bus"}}`, &res)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, res.Matched)
	assert.Empty(t, res.Spots)
	assert.Equal(t, "No recommendation for these answers", env.Message)
}

func TestRecommendationAPIRejectsBadInput(t *testing.T) {
	app := newTestApp(t, defaultFixture())

	w, _ := callJSON(t, app, http.MethodPost, "/api/recommendations", `{"answers":{"q1":"food"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = callJSON(t, app, http.MethodPost, "/api/recommendations", `{"answers":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoriesAPI(t *testing.T) {
	app := newTestApp(t, defaultFixture())

	var cards []response_models.StoryCard
	w, _ := callJSON(t, app, http.MethodGet, "/api/stories", "", &cards)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, cards, 1)
	assert.Equal(t, "桃太郎", cards[0].Title)
	require.Len(t, cards[0].Tracks, 2)
	assert.Equal(t, "英語版", cards[0].Tracks[1].Label)
}

func TestDatasetFailureIsIsolated(t *testing.T) {
	app := newTestApp(t, fixture{routes: fixtureRoutes, stories: fixtureStories})

	w, env := callJSON(t, app, http.MethodGet, "/api/spots", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "error", env.Status)

	w, _ = callJSON(t, app, http.MethodGet, "/api/map", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w, _ = callJSON(t, app, http.MethodGet, "/api/stories", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var health response_models.HealthResponse
	w, _ = callJSON(t, app, http.MethodGet, "/healthz", "", &health)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Len(t, health.Datasets, 3)
	assert.NotEmpty(t, health.Datasets[0].Error)
	assert.Empty(t, health.Datasets[2].Error)
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t, defaultFixture())

	var health response_models.HealthResponse
	w, _ := callJSON(t, app, http.MethodGet, "/healthz", "", &health)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, health.LoadedAt)
	assert.Equal(t, 45, health.Datasets[0].Rows)
}

func TestGetSpotAPINameWithSlash(t *testing.T) {
	f := defaultFixture()
	f.spots += "岡山/倉敷周遊,ルート,岡山市北区,,,,\"34.6,133.9\",\n"
	app := newTestApp(t, f)

	var detail response_models.SpotDetail
	w, _ := callJSON(t, app, http.MethodGet, "/api/spots/"+url.PathEscape("岡山/倉敷周遊"), "", &detail)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "岡山/倉敷周遊", detail.Name)

	w, _ = callJSON(t, app, http.MethodGet, "/api/spots/", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSpotsAPITrimsQuery(t *testing.T) {
	app := newTestApp(t, defaultFixture())

	var page response_models.SpotListPage
	w, _ := callJSON(t, app, http.MethodGet, "/api/spots?q="+url.QueryEscape(" グルメ "), "", &page)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 22, page.Total)
}
