package controllers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"kankou/internal/config"
	"kankou/internal/models/request_models"
	"kankou/internal/models/response_models"
	"kankou/internal/services"
	"kankou/pkg/middleware"
	"kankou/pkg/utils"
)

const (
	sectionSpots    = "spots"
	sectionMap      = "map"
	sectionProposal = "proposal"
	sectionStories  = "stories"

	styleNotice = "スタイルシートを読み込めませんでした。標準の表示で続行します。"
)

var sectionTitles = map[string]string{
	sectionSpots:    "観光地リスト",
	sectionMap:      "観光地マップ",
	sectionProposal: "質問に答えて観光地を検索",
	sectionStories:  "おはなし",
}

// pageView is the data every template receives. Data holds the page specific part.
type pageView struct {
	Title       string
	Section     string
	Style       template.CSS
	StyleNotice string
	Notice      string
	Error       string
	TraceID     string
	GeneratedAt string
	Data        any
}

type spotsPage struct {
	List     response_models.SpotListPage
	Selected *response_models.SpotDetail
}

type mapPage struct {
	View     response_models.MapView
	Selected *response_models.SpotDetail
}

type proposalPage struct {
	Questions []request_models.QuizQuestion
	Answers   map[string]string
	Result    *response_models.RecommendationResult
}

type storiesPage struct {
	Cards []response_models.StoryCard
}

// PagesController serves the HTML pages. Per-viewer state (selection, page, query) comes from
// the session attached by middleware.SessionManager.
type PagesController struct {
	spotService           services.SpotServiceInterface
	mapService            services.MapServiceInterface
	recommendationService services.RecommendationServiceInterface
	storyService          services.StoryServiceInterface
	styleService          services.StyleServiceInterface
	pageSize              int
	log                   *zap.Logger
}

func NewPagesController(
	spotService services.SpotServiceInterface,
	mapService services.MapServiceInterface,
	recommendationService services.RecommendationServiceInterface,
	storyService services.StoryServiceInterface,
	styleService services.StyleServiceInterface,
	cfg config.Config,
	log *zap.Logger,
) *PagesController {
	return &PagesController{
		spotService:           spotService,
		mapService:            mapService,
		recommendationService: recommendationService,
		storyService:          storyService,
		styleService:          styleService,
		pageSize:              cfg.PageSize,
		log:                   log,
	}
}

func (p *PagesController) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/spots")
}

func (p *PagesController) Spots(c *gin.Context) {
	sess := middleware.Session(c)
	if _, ok := c.GetQuery("q"); ok {
		sess.SetQuery(strings.TrimSpace(c.Query("q")))
	}

	list, err := p.spotService.ListSpots(c.Request.Context(), sess.Query, sess.CurrentPage, p.pageSize)
	if err != nil {
		p.renderError(c, sectionSpots, err)
		return
	}
	if sess.CurrentPage > list.TotalPages {
		// The dataset never changes, so this only happens after a stale page in the session.
		sess.CurrentPage = list.TotalPages
		if list, err = p.spotService.ListSpots(c.Request.Context(), sess.Query, sess.CurrentPage, p.pageSize); err != nil {
			p.renderError(c, sectionSpots, err)
			return
		}
	}

	data := spotsPage{List: list}
	if sess.SelectedSpot != nil {
		detail := services.RenderDetail(*sess.SelectedSpot, p.log)
		data.Selected = &detail
	}
	p.render(c, http.StatusOK, "spots.html", sectionSpots, data)
}

func (p *PagesController) SelectSpot(c *gin.Context) {
	var form request_models.SelectSpotForm
	if err := c.ShouldBind(&form); err != nil || form.Name == "" {
		p.renderError(c, sectionSpots, fmt.Errorf("%w: empty selection", utils.ErrSpotNotFound))
		return
	}

	spot, err := p.spotService.GetSpot(c.Request.Context(), form.Name)
	if err != nil {
		p.renderError(c, sectionSpots, err)
		return
	}

	middleware.Session(c).Select(spot)
	c.Redirect(http.StatusSeeOther, "/spots")
}

func (p *PagesController) Back(c *gin.Context) {
	middleware.Session(c).ClearSelection()
	c.Redirect(http.StatusSeeOther, "/spots")
}

func (p *PagesController) MovePage(c *gin.Context) {
	var form request_models.PageMoveForm
	_ = c.ShouldBind(&form)

	sess := middleware.Session(c)
	list, err := p.spotService.ListSpots(c.Request.Context(), sess.Query, 1, p.pageSize)
	if err != nil {
		p.renderError(c, sectionSpots, err)
		return
	}

	nav := services.PageNavigation(services.ClampPage(sess.CurrentPage, list.TotalPages), list.TotalPages)
	switch form.Direction {
	case "prev":
		sess.CurrentPage = nav.Prev()
	case "next":
		sess.CurrentPage = nav.Next()
	default:
		p.render(c, http.StatusBadRequest, "error.html", sectionSpots, nil, withError("ページの移動方向が不正です。"))
		return
	}
	c.Redirect(http.StatusSeeOther, "/spots")
}

func (p *PagesController) Map(c *gin.Context) {
	view, err := p.mapService.RenderMap(c.Request.Context())
	if err != nil {
		p.renderError(c, sectionMap, err)
		return
	}

	data := mapPage{View: view}
	var opts []pageOption
	if name := c.Query("spot"); name != "" {
		spot, err := p.spotService.GetSpot(c.Request.Context(), name)
		switch {
		case errors.Is(err, utils.ErrSpotNotFound):
			opts = append(opts, withNotice(fmt.Sprintf("情報が見つかりませんでした: %s", name)))
		case err != nil:
			p.renderError(c, sectionMap, err)
			return
		default:
			middleware.Session(c).Select(spot)
			detail := services.RenderDetail(spot, p.log)
			data.Selected = &detail
		}
	}
	p.render(c, http.StatusOK, "map.html", sectionMap, data, opts...)
}

func (p *PagesController) Proposal(c *gin.Context) {
	p.render(c, http.StatusOK, "proposal.html", sectionProposal, proposalPage{
		Questions: p.recommendationService.Questions(),
	})
}

func (p *PagesController) SubmitProposal(c *gin.Context) {
	questions := p.recommendationService.Questions()
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		answers[q.ID] = c.PostForm(q.ID)
	}
	data := proposalPage{Questions: questions, Answers: answers}

	result, err := p.recommendationService.Recommend(c.Request.Context(), request_models.QuizRequest{Answers: answers})
	switch {
	case errors.Is(err, utils.ErrInvalidAnswer):
		p.render(c, http.StatusBadRequest, "proposal.html", sectionProposal, data,
			withNotice("すべての質問に回答してください。"))
		return
	case err != nil:
		p.renderError(c, sectionProposal, err)
		return
	}

	data.Result = &result
	p.render(c, http.StatusOK, "proposal.html", sectionProposal, data)
}

func (p *PagesController) Stories(c *gin.Context) {
	cards, err := p.storyService.ListStories(c.Request.Context())
	if err != nil {
		p.renderError(c, sectionStories, err)
		return
	}
	p.render(c, http.StatusOK, "stories.html", sectionStories, storiesPage{Cards: cards})
}

type pageOption func(*pageView)

func withNotice(msg string) pageOption {
	return func(v *pageView) { v.Notice = msg }
}

func withError(msg string) pageOption {
	return func(v *pageView) { v.Error = msg }
}

func (p *PagesController) render(c *gin.Context, status int, name, section string, data any, opts ...pageOption) {
	view := pageView{
		Title:       sectionTitles[section],
		Section:     section,
		TraceID:     c.GetString("trace_id"),
		GeneratedAt: utils.FormatDisplayJST(time.Now()),
		Data:        data,
	}
	if css, err := p.styleService.Stylesheet(); err != nil {
		view.StyleNotice = styleNotice
	} else {
		view.Style = template.CSS(css)
	}
	for _, o := range opts {
		o(&view)
	}
	c.HTML(status, name, view)
}

// renderError shows the failure in place of the section's content. Only the failing page is
// affected; the other sections keep working.
func (p *PagesController) renderError(c *gin.Context, section string, err error) {
	status, _ := utils.ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		p.log.Error("page failed",
			zap.String("section", section),
			zap.String("trace_id", c.GetString("trace_id")),
			zap.Error(err))
	}
	p.render(c, status, "error.html", section, nil, withError(pageErrorMessage(err)))
}

func pageErrorMessage(err error) string {
	switch {
	case errors.Is(err, utils.ErrDataLoad):
		return "データの読み込みに失敗しました。しばらくしてから再度お試しください。"
	case errors.Is(err, utils.ErrSpotNotFound):
		return "指定された観光地が見つかりませんでした。"
	default:
		return "エラーが発生しました。"
	}
}
