package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
	"github.com/playgrid/tictactoe-ai-backend/internal/random"
	"github.com/playgrid/tictactoe-ai-backend/internal/repository"
	"github.com/playgrid/tictactoe-ai-backend/internal/service"
	"github.com/playgrid/tictactoe-ai-backend/internal/usecase"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gameService := service.NewGameService(repository.NewGameRepository(client))
	botService := service.NewBotService(random.NewSeeded(7))
	gameManager := usecase.NewGameManager(logger, gameService, botService)

	return New(logger, gameManager).Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string, cookies []*http.Cookie) (*httptest.ResponseRecorder, response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return rec, resp
}

func TestServer_Ping(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_NewGame(t *testing.T) {
	t.Run("starts a game and sets a session cookie", func(t *testing.T) {
		handler := newTestServer(t)

		// When: a new game is requested
		rec, resp := doRequest(t, handler, http.MethodPost, "/api/game/new", `{"difficulty":"hard"}`, nil)

		// Then: the response carries a fresh game and a session cookie
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, resp.Success)
		require.NotNil(t, resp.Game)
		assert.Equal(t, entity.StatusPlaying, resp.Game.Status)
		assert.Equal(t, entity.DifficultyHard, resp.Game.Difficulty)
		assert.Equal(t, "Your turn - click a square to play", resp.Message)

		require.NotEmpty(t, rec.Result().Cookies())
		assert.Equal(t, sessionCookieName, rec.Result().Cookies()[0].Name)
	})

	t.Run("rejects an unknown difficulty", func(t *testing.T) {
		handler := newTestServer(t)

		rec, resp := doRequest(t, handler, http.MethodPost, "/api/game/new", `{"difficulty":"brutal"}`, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "Difficulty must be easy, medium or hard", resp.Message)
	})

	t.Run("rejects a broken body", func(t *testing.T) {
		handler := newTestServer(t)

		rec, resp := doRequest(t, handler, http.MethodPost, "/api/game/new", `{"difficulty":`, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, resp.Success)
	})
}

func TestServer_GameState(t *testing.T) {
	t.Run("404 without an active game", func(t *testing.T) {
		handler := newTestServer(t)

		rec, resp := doRequest(t, handler, http.MethodGet, "/api/game/state", "", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "Please start a new game first", resp.Message)
	})

	t.Run("returns the stored game", func(t *testing.T) {
		handler := newTestServer(t)

		rec, _ := doRequest(t, handler, http.MethodPost, "/api/game/new", `{"difficulty":"easy"}`, nil)
		cookies := rec.Result().Cookies()

		_, resp := doRequest(t, handler, http.MethodGet, "/api/game/state", "", cookies)

		require.True(t, resp.Success)
		require.NotNil(t, resp.Game)
		assert.Equal(t, entity.DifficultyEasy, resp.Game.Difficulty)
	})
}

func TestServer_Move(t *testing.T) {
	t.Run("human move gets a bot reply", func(t *testing.T) {
		handler := newTestServer(t)

		rec, _ := doRequest(t, handler, http.MethodPost, "/api/game/new", `{"difficulty":"hard"}`, nil)
		cookies := rec.Result().Cookies()

		// When: the human opens in the corner
		rec, resp := doRequest(t, handler, http.MethodPost, "/api/game/move", `{"row":0,"col":0}`, cookies)

		// Then: the board holds both the human move and the bot's center reply
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, resp.Success)
		require.NotNil(t, resp.Game)
		assert.Equal(t, entity.PlayerX, resp.Game.Board[0][0])
		assert.Equal(t, entity.PlayerO, resp.Game.Board[1][1])
		assert.Equal(t, "Your turn - click a square to play", resp.Message)
	})

	t.Run("rejects an out-of-range move", func(t *testing.T) {
		handler := newTestServer(t)

		rec, _ := doRequest(t, handler, http.MethodPost, "/api/game/new", "", nil)
		cookies := rec.Result().Cookies()

		rec, resp := doRequest(t, handler, http.MethodPost, "/api/game/move", `{"row":3,"col":0}`, cookies)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "Move is out of range", resp.Message)
	})

	t.Run("rejects a move on an occupied square", func(t *testing.T) {
		handler := newTestServer(t)

		rec, _ := doRequest(t, handler, http.MethodPost, "/api/game/new", `{"difficulty":"hard"}`, nil)
		cookies := rec.Result().Cookies()

		_, resp := doRequest(t, handler, http.MethodPost, "/api/game/move", `{"row":0,"col":0}`, cookies)
		require.True(t, resp.Success)

		// When: the human replays the same square
		rec, resp = doRequest(t, handler, http.MethodPost, "/api/game/move", `{"row":0,"col":0}`, cookies)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "That square is already taken", resp.Message)
	})

	t.Run("requires row and col", func(t *testing.T) {
		handler := newTestServer(t)

		rec, _ := doRequest(t, handler, http.MethodPost, "/api/game/new", "", nil)
		cookies := rec.Result().Cookies()

		rec, resp := doRequest(t, handler, http.MethodPost, "/api/game/move", `{"row":1}`, cookies)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "Both row and col are required", resp.Message)
	})

	t.Run("404 without an active game", func(t *testing.T) {
		handler := newTestServer(t)

		rec, resp := doRequest(t, handler, http.MethodPost, "/api/game/move", `{"row":0,"col":0}`, nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, resp.Success)
	})
}

func TestServer_ResetAndQuit(t *testing.T) {
	handler := newTestServer(t)

	rec, _ := doRequest(t, handler, http.MethodPost, "/api/game/new", `{"difficulty":"hard"}`, nil)
	cookies := rec.Result().Cookies()

	_, resp := doRequest(t, handler, http.MethodPost, "/api/game/move", `{"row":0,"col":0}`, cookies)
	require.True(t, resp.Success)

	// When: the game is reset without a difficulty
	_, resp = doRequest(t, handler, http.MethodPost, "/api/game/reset", "", cookies)

	// Then: the board is fresh and the difficulty carried over
	require.True(t, resp.Success)
	require.NotNil(t, resp.Game)
	assert.Equal(t, entity.Board{}, resp.Game.Board)
	assert.Equal(t, entity.DifficultyHard, resp.Game.Difficulty)

	// When: the game is quit
	rec, resp = doRequest(t, handler, http.MethodPost, "/api/game/quit", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	// Then: the session has no game anymore
	rec, _ = doRequest(t, handler, http.MethodGet, "/api/game/state", "", cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
