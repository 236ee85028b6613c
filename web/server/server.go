// Package server exposes a small HTTP status endpoint for health checks.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/vigil/bot"
	"github.com/starshine-sys/vigil/common"
)

// Server ...
type Server struct {
	bot *bot.Bot
	mux *chi.Mux
}

// New creates a status server for the given bot.
func New(b *bot.Bot) *Server {
	s := &Server{
		bot: b,
		mux: chi.NewRouter(),
	}

	s.mux.Get("/status", s.status)
	s.mux.Get("/ping", s.ping)

	return s
}

// Serve listens on the given address until the process exits. Run it in a
// goroutine.
func (s *Server) Serve(listen string) {
	common.Log.Infof("Serving status endpoint on %v", listen)
	common.Log.Fatal(http.ListenAndServe(listen, s.mux))
}

type statusResponse struct {
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
	Guilds  int    `json:"guilds"`
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, statusResponse{
		Version: common.Version(),
		Uptime:  bcr.HumanizeDuration(bcr.DurationPrecisionSeconds, time.Since(s.bot.Start)),
		Guilds:  s.bot.GuildCount(),
	})
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "pong")
}
