package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridsearch/server"
)

type ServerSuite struct {
	suite.Suite
	handler http.Handler
}

func (s *ServerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	router := server.NewRouter(server.Config{
		BaseURL:     "/api",
		Controllers: []server.Controller{server.NewSearchController(100, 0, nil)},
	})
	s.handler = router.Handler()
}

func (s *ServerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) TestAlgorithms() {
	rec := s.do(http.MethodGet, "/api/v1/algorithms", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var out []server.AlgorithmInfo
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	s.Len(out, 5)
	s.Equal("bfs", out[0].Name)
	s.Equal("a", out[4].Key)
}

func (s *ServerSuite) TestSearch_Found() {
	rec := s.do(http.MethodPost, "/api/v1/search", server.SearchRequest{
		Algorithm: "astar",
		Grid:      []string{"S..", "#.#", "..E"},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var out map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	s.Equal("found", out["status"])
	s.Equal(true, out["found"])
	s.Equal("astar", out["algorithm"])
	s.Len(out["path"], 5)
	s.NotEmpty(out["id"])
	s.Contains(out, "elapsed_ms")

	first := out["path"].([]any)[0].(map[string]any)
	s.Equal(float64(0), first["row"])
	s.Equal(float64(0), first["col"])
}

func (s *ServerSuite) TestSearch_NoPath() {
	rec := s.do(http.MethodPost, "/api/v1/search", server.SearchRequest{
		Algorithm: "bfs",
		Grid:      []string{"S..", "###", "..E"},
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	var out server.SearchResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	s.False(out.Found)
	s.Empty(out.Path)
	s.Len(out.Explored, 3)
}

func (s *ServerSuite) TestSearch_BadRequests() {
	cases := []struct {
		name string
		body any
		code int
	}{
		{"missing grid", map[string]any{"algorithm": "bfs"}, http.StatusBadRequest},
		{"unknown algorithm", server.SearchRequest{Algorithm: "greedy", Grid: []string{"SE", ".."}}, http.StatusBadRequest},
		{"bad symbol", server.SearchRequest{Algorithm: "bfs", Grid: []string{"S?", ".E"}}, http.StatusBadRequest},
		{"not square", server.SearchRequest{Algorithm: "bfs", Grid: []string{"S..", ".E"}}, http.StatusBadRequest},
		{"no end", server.SearchRequest{Algorithm: "bfs", Grid: []string{"S.", ".."}}, http.StatusBadRequest},
		{"too large", server.SearchRequest{Algorithm: "bfs", Grid: strings.Split(strings.Repeat("...........,", 11), ",")[:11]}, http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		rec := s.do(http.MethodPost, "/api/v1/search", tc.body)
		s.Equal(tc.code, rec.Code, tc.name)
		s.Contains(rec.Body.String(), "error", tc.name)
	}
}

func (s *ServerSuite) TestCompare() {
	rec := s.do(http.MethodPost, "/api/v1/compare", server.CompareRequest{
		Grid: []string{"S...", ".##.", "....", "...E"},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var out server.CompareResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	s.Require().Len(out.Runs, 5)
	for _, run := range out.Runs {
		s.True(run.Found, run.Algorithm)
		s.Equal(out.ID, run.ID)
	}
	s.Len(out.Runs[4].Path, 7)

	rec = s.do(http.MethodPost, "/api/v1/compare", server.CompareRequest{
		Algorithms: []string{"u", "nope"},
		Grid:       []string{"SE", ".."},
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func dialStream(t *testing.T, srv *httptest.Server, alg, rows string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/search/stream?algorithm=" +
		url.QueryEscape(alg) + "&grid=" + url.QueryEscape(rows)
	return websocket.DefaultDialer.Dial(u, nil)
}

func TestStream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := server.NewRouter(server.Config{
		BaseURL:     "/api",
		Controllers: []server.Controller{server.NewSearchController(100, 0, nil)},
	})
	srv := httptest.NewServer(router.Handler())
	defer srv.Close()

	conn, _, err := dialStream(t, srv, "bfs", "S..,#.#,..E")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	counts := map[string]int{}
	var done server.StreamEvent
	for {
		var ev server.StreamEvent
		require.NoError(t, conn.ReadJSON(&ev))
		counts[ev.Type]++
		if ev.Type == server.EventDone {
			done = ev
			break
		}
	}
	require.NotNil(t, done.Result)
	assert.True(t, done.Result.Found)
	assert.Len(t, done.Result.Path, 5)
	assert.Equal(t, len(done.Result.Explored), counts[server.EventExpand])
	assert.Equal(t, len(done.Result.Path)-1, counts[server.EventPath])
	assert.Positive(t, counts[server.EventOpen])
	assert.Equal(t, done.ID, done.Result.ID)
}

func TestStream_RejectedBeforeUpgrade(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := server.NewRouter(server.Config{
		BaseURL:     "/api",
		Controllers: []server.Controller{server.NewSearchController(4, 0, nil)},
	})
	srv := httptest.NewServer(router.Handler())
	defer srv.Close()

	_, resp, err := dialStream(t, srv, "bfs", "S..,...,..E")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	_, resp, err = dialStream(t, srv, "zzz", "SE,..")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearch_BlankRowsIgnoredBySizeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := server.NewRouter(server.Config{
		BaseURL:     "/api",
		Controllers: []server.Controller{server.NewSearchController(4, 0, nil)},
	})
	post := func(rows []string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(server.SearchRequest{Algorithm: "bfs", Grid: rows}))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/search", &buf)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.Handler().ServeHTTP(rec, req)
		return rec
	}

	rec := post([]string{"S.", "", ".E", "  ", "", ""})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = post([]string{"S..", "...", "..E"})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
