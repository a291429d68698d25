package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"kankou/internal/config"
	"kankou/internal/models/dataset_models"
	"kankou/internal/models/session_models"
	"kankou/internal/repositories"
	"kankou/internal/services"
	"kankou/pkg/memcache"
	"kankou/pkg/middleware"
	"kankou/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const fixtureSpotHeader = "観光地名,タグ,住所,画像,電話番号,ホームページ,緯度経度,詳細説明\n"

const fixtureRoutes = "Q1. 今やりたいことは？,Q2. どんな風に観光したいですか？,Q3. あなたの年代は？,Q4. 交通手段は？,Q1による観光地1,Q1による観光地2,Q1による観光地3\n" +
	"美味しい物を食べたい！,一人で静かに,20代,自動車・バイク・原付,スポット01,存在しない,\n"

const fixtureStories = "ヘッダー,タイトル,音声,音声英語,音声中国\n" +
	"https://img.example/h.jpg,桃太郎,https://audio.example/ja.mp3,https://audio.example/en.mp3,\n"

// fixtureSpots builds n spots named スポット01.. with valid coordinates on every odd one.
func fixtureSpots(n int) string {
	var b strings.Builder
	b.WriteString(fixtureSpotHeader)
	for i := 1; i <= n; i++ {
		coords := ""
		tags := "グルメ"
		if i%2 == 1 {
			coords = fmt.Sprintf("\"34.%d,133.9\"", i)
			tags = "自然"
		}
		fmt.Fprintf(&b, "スポット%02d,%s,岡山市%d,,,,%s,\n", i, tags, i, coords)
	}
	return b.String()
}

type fixture struct {
	spots, routes, stories string
	style                  *string
}

type testApp struct {
	router *gin.Engine
	store  *memcache.TTLStore[session_models.ViewerSession]
}

func newTestApp(t *testing.T, f fixture) *testApp {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if content != "" {
			require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		}
		return p
	}

	cfg := config.Config{
		PageSize:   20,
		MapCenter:  dataset_models.Coordinate{Lat: 34.8609, Lon: 133.8118},
		MapZoom:    11,
		SessionTTL: time.Minute,
		StylePath:  filepath.Join(dir, "missing.css"),
	}
	if f.style != nil {
		cfg.StylePath = write("style.css", *f.style)
	}

	log := zap.NewNop()
	dataset := repositories.NewDatasetStore(repositories.DatasetPaths{
		Spots:           write("spots.csv", f.spots),
		Recommendations: write("routes.csv", f.routes),
		Stories:         write("stories.csv", f.stories),
		Comma:           ',',
	}, log)

	spotRepo := repositories.NewSpotRepository(dataset)
	spotService := services.NewSpotService(spotRepo, log)
	mapService := services.NewMapService(spotRepo, cfg.MapCenter, cfg.MapZoom, log)
	recService := services.NewRecommendationService(spotRepo, repositories.NewRecommendationRepository(dataset), log)
	storyService := services.NewStoryService(repositories.NewStoryRepository(dataset))
	styleService := services.NewStyleService(cfg.StylePath, log)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	store := memcache.NewTTLStore[session_models.ViewerSession]()
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.TraceIDMiddleware())

	pages := NewPagesController(spotService, mapService, recService, storyService, styleService, cfg, log)
	html := r.Group("/", middleware.NewSessionManager(store, cfg.SessionTTL).Middleware())
	html.GET("/", pages.Index)
	html.GET("/spots", pages.Spots)
	html.POST("/spots/select", pages.SelectSpot)
	html.POST("/spots/back", pages.Back)
	html.POST("/spots/page", pages.MovePage)
	html.GET("/map", pages.Map)
	html.GET("/proposal", pages.Proposal)
	html.POST("/proposal", pages.SubmitProposal)
	html.GET("/stories", pages.Stories)

	spots := NewSpotsController(spotService, cfg, log)
	maps := NewMapController(mapService, log)
	recs := NewRecommendationController(recService, log)
	stories := NewStoriesController(storyService, log)
	api := r.Group("/api")
	api.GET("/spots", spots.ListSpots)
	api.GET("/spots/*name", spots.GetSpot)
	api.GET("/map", maps.GetMap)
	api.GET("/quiz", recs.GetQuestions)
	api.POST("/recommendations", recs.PostRecommendation)
	api.GET("/stories", stories.ListStories)
	r.GET("/healthz", NewHealthController(services.NewHealthService(dataset)).Healthz)

	return &testApp{router: r, store: store}
}

func defaultFixture() fixture {
	return fixture{spots: fixtureSpots(45), routes: fixtureRoutes, stories: fixtureStories}
}

// browser replays the session cookie between requests like a real client.
type browser struct {
	t      *testing.T
	app    *testApp
	cookie *http.Cookie
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	w := httptest.NewRecorder()
	b.app.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			b.cookie = ck
		}
	}
	return w
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func strPtr(s string) *string { return &s }
