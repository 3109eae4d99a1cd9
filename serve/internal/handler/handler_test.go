package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
	"github.com/HuXin0817/checkers/pkg/models/message"
	"github.com/HuXin0817/checkers/serve/internal/config"
	"github.com/HuXin0817/checkers/serve/internal/logic"
	"github.com/HuXin0817/checkers/serve/internal/svc"
	"github.com/HuXin0817/checkers/serve/internal/types"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	var c config.Config
	c.Search.Depth = 1
	c.Search.MaxDepth = 3
	c.Cache.Expire = 60
	c.Cache.RecentLength = 10
	c.Cache.PushInterval = time.Hour

	svcCtx := svc.NewServiceContext(c)
	t.Cleanup(svcCtx.Stop)
	return NewRouter(svcCtx)
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) (v T) {
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &v))
	return
}

func createGame(t *testing.T, r http.Handler) types.GameResponse {
	w := do(t, r, http.MethodPost, "/games", `{"ai": "Player2", "first": "Player1"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[types.GameResponse](t, w)
}

func TestGameLifecycle(t *testing.T) {
	r := newTestRouter(t)
	game := createGame(t, r)
	path := "/games/" + string(game.GameUid)

	w := do(t, r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Player1", decode[types.GameResponse](t, w).Turn)

	w = do(t, r, http.MethodGet, path+"/destinations?x=1&y=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	dest := decode[types.DestinationsResponse](t, w)
	assert.ElementsMatch(t, []checkers.Position{checkers.NewPosition(0, 4), checkers.NewPosition(2, 4)}, dest.Destinations)

	w = do(t, r, http.MethodPost, path+"/moves", `{"from": {"x": 1, "y": 3}, "to": {"x": 2, "y": 4}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	played := decode[types.PlayResponse](t, w)
	assert.Equal(t, "Simple", played.Outcome)
	assert.Len(t, played.Game.AIMoves, 1)

	w = do(t, r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateGameWithoutBody(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/games", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Player2", decode[types.GameResponse](t, w).AI)
}

func TestErrorStatuses(t *testing.T) {
	r := newTestRouter(t)
	game := createGame(t, r)
	path := "/games/" + string(game.GameUid)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"malformed uid", http.MethodGet, "/games/nope", "", http.StatusBadRequest},
		{"missing game", http.MethodGet, "/games/" + string(message.NewGameUid()), "", http.StatusNotFound},
		{"missing query", http.MethodGet, path + "/destinations?x=1", "", http.StatusBadRequest},
		{"off board", http.MethodGet, path + "/destinations?x=-1&y=3", "", http.StatusBadRequest},
		{"bad json", http.MethodPost, path + "/moves", `{"from":`, http.StatusBadRequest},
		{"illegal move", http.MethodPost, path + "/moves", `{"from": {"x": 1, "y": 3}, "to": {"x": 1, "y": 4}}`, http.StatusUnprocessableEntity},
		{"unknown turn", http.MethodPost, "/games", `{"ai": "Player9"}`, http.StatusBadRequest},
		{"deep search", http.MethodPost, "/games", `{"depth": 7}`, http.StatusBadRequest},
		{"bad board", http.MethodPost, "/assess", `{"board": [[1, 2]], "turn": "Player1"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[types.ErrorResponse](t, w).Error)
		})
	}
}

func TestAssessEndpoint(t *testing.T) {
	r := newTestRouter(t)

	board, err := sonic.MarshalString(checkers.NewStartBoard().Cells())
	require.NoError(t, err)

	w := do(t, r, http.MethodPost, "/assess", `{"board": `+board+`, "turn": "Player2", "depth": 2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[types.AssessResponse](t, w)
	assert.True(t, resp.Ok)
	assert.Equal(t, checkers.Player2, checkers.NewStartBoard().At(resp.Move.From).Turn())

	w = do(t, r, http.MethodGet, "/assess/recent", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, decode[types.RecentResponse](t, w).Records)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusOf(checkers.ErrGameOver))
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError))
}

func TestResponsesAreJSON(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/games", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, jsonContentType, w.Header().Get("Content-Type"))

	w = do(t, r, http.MethodGet, "/games/nope", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, jsonContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, logic.ErrBadGameUid.Error(), decode[types.ErrorResponse](t, w).Error)
}

func TestSonicBindingValidates(t *testing.T) {
	var req types.DestinationsRequest
	assert.Error(t, sonicBinding{}.BindBody([]byte(`{}`), &req))
	assert.ErrorIs(t, sonicBinding{}.BindBody(nil, &req), errEmptyBody)

	var play types.PlayRequest
	require.NoError(t, sonicBinding{}.BindBody([]byte(`{"from": {"x": 1, "y": 3}, "to": {"x": 2, "y": 4}}`), &play))
	assert.Equal(t, checkers.NewMove(checkers.NewPosition(1, 3), checkers.NewPosition(2, 4)), checkers.NewMove(play.From, play.To))
}
