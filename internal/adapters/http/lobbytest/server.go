// Package lobbytest runs an in-process lobby server for tests. It serves a
// fixed games payload and answers join requests with canned results, keeping
// a session cookie per client the way the real server does.
package lobbytest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dkeye/Waterdeep/internal/domain"
)

const (
	SessionCookie = "LobbySession"
	GamesPath     = "/games"

	tokenKey        = "ct"
	requestIndexKey = "lobbytest.request"
)

// Request is what the server saw of one incoming call.
type Request struct {
	Method     string
	Path       string
	RequestID  string
	Token      string
	HadSession bool
	Name       string
	Color      string
}

type joinBody struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	games    string
	status   int
	results  map[string]domain.JoinResult
	requests []Request
}

// NewServer starts a server that answers GET /games with gamesPayload.
// The caller must Close it.
func NewServer(gamesPayload string) *Server {
	s := &Server{
		games:   gamesPayload,
		results: make(map[string]domain.JoinResult),
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte("lobbytest-secret"))
	r.Use(sessions.Sessions(SessionCookie, store))
	r.Use(s.clientToken())
	r.Use(s.forcedStatus())

	r.GET(GamesPath, func(c *gin.Context) {
		s.mu.Lock()
		payload := s.games
		s.mu.Unlock()
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(payload))
	})

	r.POST(GamesPath+"/:key", func(c *gin.Context) {
		var body joinBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		rec := &s.requests[c.GetInt(requestIndexKey)]
		rec.Name, rec.Color = body.Name, body.Color
		result, ok := s.results[c.Param("key")]
		s.mu.Unlock()

		if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Color) == "" {
			c.Status(http.StatusBadRequest)
			return
		}
		if !ok {
			result = domain.JoinSuccess
		}
		c.JSON(http.StatusOK, gin.H{"result": result})
	})

	return r
}

// clientToken hands every client a token kept in its session cookie and
// records the request.
func (s *Server) clientToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		token, _ := sess.Get(tokenKey).(string)
		had := token != ""
		if !had {
			token = uuid.NewString()
			sess.Set(tokenKey, token)
			_ = sess.Save()
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			RequestID:  c.GetHeader("X-Request-ID"),
			Token:      token,
			HadSession: had,
		})
		c.Set(requestIndexKey, len(s.requests)-1)
		s.mu.Unlock()
		c.Next()
	}
}

func (s *Server) forcedStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		status := s.status
		s.mu.Unlock()
		if status != 0 {
			c.AbortWithStatus(status)
			return
		}
		c.Next()
	}
}

func (s *Server) SetGames(payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = payload
}

// SetJoinResult makes joins of game key answer with r. Unset keys succeed.
func (s *Server) SetJoinResult(key string, r domain.JoinResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[key] = r
}

// FailWith makes every following request answer with status. Zero restores
// normal handling.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}
