package server

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// SearchRequest asks for one run. Grid rows use the text format
// ('.' open, '#' barrier, 'S' start, 'E' end).
type SearchRequest struct {
	Algorithm string   `json:"algorithm" binding:"required"`
	Grid      []string `json:"grid" binding:"required"`
}

// CompareRequest asks for several runs on the same layout. An empty
// Algorithms list means all of them.
type CompareRequest struct {
	Algorithms []string `json:"algorithms"`
	Grid       []string `json:"grid" binding:"required"`
}

// AlgorithmInfo describes one available algorithm.
type AlgorithmInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Key   string `json:"key"`
}

// SearchResponse is the outcome of one run.
type SearchResponse struct {
	ID        uuid.UUID       `json:"id"`
	Algorithm string          `json:"algorithm"`
	Status    search.Status   `json:"status"`
	Found     bool            `json:"found"`
	Path      []grid.Position `json:"path"`
	Explored  []grid.Position `json:"explored"`
	Steps     int             `json:"steps"`
	ElapsedMS float64         `json:"elapsed_ms"`
}

// CompareResponse groups the runs of one comparison.
type CompareResponse struct {
	ID   uuid.UUID        `json:"id"`
	Runs []SearchResponse `json:"runs"`
}

// Stream event types.
const (
	EventOpen   = "open"
	EventExpand = "expand"
	EventPath   = "path"
	EventDone   = "done"
	EventError  = "error"
)

// StreamEvent is one WebSocket message. Row and Col are set for cell
// events; Result is set on the final "done" event.
type StreamEvent struct {
	ID     uuid.UUID       `json:"id"`
	Type   string          `json:"type"`
	Row    int             `json:"row"`
	Col    int             `json:"col"`
	Result *SearchResponse `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func toResponse(id uuid.UUID, res *search.Result) SearchResponse {
	path := res.Path
	if path == nil {
		path = []grid.Position{}
	}
	return SearchResponse{
		ID:        id,
		Algorithm: res.Algorithm,
		Status:    res.Status,
		Found:     res.Found(),
		Path:      path,
		Explored:  res.Explored,
		Steps:     res.Steps,
		ElapsedMS: float64(res.Elapsed) / float64(time.Millisecond),
	}
}
