package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/logging"
	"github.com/katalvlaran/gridsearch/search"
)

// errTooLarge marks grids above the configured cell limit.
var errTooLarge = errors.New("server: grid exceeds the cell limit")

// SearchController serves the search, compare and stream endpoints.
// Every request parses its own grid, so concurrent requests share nothing.
type SearchController struct {
	maxCells  int
	stepDelay time.Duration
	log       *logging.Logger
}

// NewSearchController initializes a SearchController. maxCells bounds the
// accepted grid area; stepDelay paces streamed expansion events.
func NewSearchController(maxCells int, stepDelay time.Duration, lg *logging.Logger) *SearchController {
	if lg == nil {
		lg = logging.Discard()
	}
	return &SearchController{maxCells: maxCells, stepDelay: stepDelay, log: lg}
}

// Register mounts the routes.
func (sc *SearchController) Register(route *gin.RouterGroup) {
	route.GET("/algorithms", sc.algorithms)
	searchGroup := route.Group("/search")
	{
		searchGroup.POST("", sc.search)
		searchGroup.GET("/stream", sc.stream)
	}
	route.POST("/compare", sc.compare)
}

func (sc *SearchController) algorithms(ctx *gin.Context) {
	out := make([]AlgorithmInfo, 0, len(gridsearch.Algorithms()))
	for _, a := range gridsearch.Algorithms() {
		out = append(out, AlgorithmInfo{Name: a.String(), Title: a.Title(), Key: a.Key()})
	}
	ctx.JSON(http.StatusOK, out)
}

func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alg, err := gridsearch.ParseAlgorithm(request.Algorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, start, end, err := sc.load(request.Grid)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	id := uuid.New()
	res, err := gridsearch.Run(alg, g, start, end,
		search.WithContext(ctx.Request.Context()), search.WithoutMarks())
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	sc.summary(id, res)
	ctx.JSON(http.StatusOK, toResponse(id, res))
}

func (sc *SearchController) compare(ctx *gin.Context) {
	var request CompareRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	algs := make([]gridsearch.Algorithm, 0, len(request.Algorithms))
	for _, name := range request.Algorithms {
		a, err := gridsearch.ParseAlgorithm(name)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		algs = append(algs, a)
	}
	g, _, _, err := sc.load(request.Grid)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	runs, err := gridsearch.Compare(ctx.Request.Context(), g, algs, search.WithoutMarks())
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	response := CompareResponse{ID: uuid.New(), Runs: make([]SearchResponse, 0, len(runs))}
	for _, run := range runs {
		sc.summary(response.ID, run.Result)
		response.Runs = append(response.Runs, toResponse(response.ID, run.Result))
	}
	ctx.JSON(http.StatusOK, response)
}

// load enforces the size limit before parsing rows into a fresh grid.
// Blank rows are dropped by the parser, so they do not count.
func (sc *SearchController) load(rows []string) (*grid.Grid, *grid.Cell, *grid.Cell, error) {
	if n := countRows(rows); sc.maxCells > 0 && n*n > sc.maxCells {
		return nil, nil, nil, fmt.Errorf("%w: %d×%d > %d", errTooLarge, n, n, sc.maxCells)
	}
	g, err := grid.Parse(rows)
	if err != nil {
		return nil, nil, nil, err
	}
	start, end, err := g.Endpoints()
	if err != nil {
		return nil, nil, nil, err
	}
	return g, start, end, nil
}

func countRows(rows []string) int {
	n := 0
	for _, r := range rows {
		if strings.TrimSpace(r) != "" {
			n++
		}
	}
	return n
}

func (sc *SearchController) summary(id uuid.UUID, res *search.Result) {
	sc.log.WithField("run", id).Infof("%s: %s, explored %d, path %d, %s",
		res.Algorithm, res.Status, len(res.Explored), res.Len(), res.Elapsed)
}

// statusFor maps domain errors to HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, gridsearch.ErrUnknownAlgorithm),
		errors.Is(err, grid.ErrBadSize),
		errors.Is(err, grid.ErrNonSquare),
		errors.Is(err, grid.ErrBadSymbol),
		errors.Is(err, grid.ErrMultipleStart),
		errors.Is(err, grid.ErrMultipleEnd),
		errors.Is(err, grid.ErrNoStart),
		errors.Is(err, grid.ErrNoEnd),
		errors.Is(err, search.ErrEndpointIsBarrier),
		errors.Is(err, search.ErrSameEndpoints):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
