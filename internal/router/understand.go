package router

import (
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/DjordjeVuckovic/juris-bench/internal/dictionary"
	"github.com/DjordjeVuckovic/juris-bench/internal/understanding"
	"github.com/labstack/echo/v4"
)

type UnderstandRouter struct {
	e        *echo.Echo
	pipeline *understanding.Pipeline
}

func NewUnderstandRouter(e *echo.Echo, pipeline *understanding.Pipeline) *UnderstandRouter {
	return &UnderstandRouter{
		e:        e,
		pipeline: pipeline,
	}
}

func (r *UnderstandRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.POST("/understand", r.understandHandler)
	v1.GET("/intents", r.intentsHandler)
}

type UnderstandRequest struct {
	Query string `json:"query"`
}

type UnderstandResponse struct {
	Query             string `json:"query"`
	NormalizedQuery   string `json:"normalized_query"`
	DictionaryVersion string `json:"dictionary_version"`
	*understanding.Result
}

type IntentsResponse struct {
	DictionaryVersion string             `json:"dictionary_version"`
	Intents           []dictionary.Entry `json:"intents"`
}

// understandHandler godoc
// @Summary Understand a legal question
// @Description Normalizes the question, detects the first matching intent and returns the enriched query.
// @Tags understanding
// @Accept json
// @Produce json
// @Param request body UnderstandRequest true "Question in French"
// @Success 200 {object} UnderstandResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/understand [post]
func (r *UnderstandRouter) understandHandler(c echo.Context) error {
	var req UnderstandRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Query) == "" {
		return apperr.NewValidation("query is required")
	}

	res, err := r.pipeline.Process(req.Query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, UnderstandResponse{
		Query:             req.Query,
		NormalizedQuery:   understanding.Normalize(req.Query),
		DictionaryVersion: r.pipeline.Dictionary().Version(),
		Result:            res,
	})
}

// intentsHandler godoc
// @Summary List intents
// @Description Lists the dictionary intents in declaration order, which is also the matching priority.
// @Tags understanding
// @Produce json
// @Success 200 {object} IntentsResponse
// @Router /v1/intents [get]
func (r *UnderstandRouter) intentsHandler(c echo.Context) error {
	dict := r.pipeline.Dictionary()
	return c.JSON(http.StatusOK, IntentsResponse{
		DictionaryVersion: dict.Version(),
		Intents:           dict.Entries(),
	})
}
