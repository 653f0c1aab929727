package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/albertisntreal/showdown-survivor/controller"
	"github.com/gorilla/sessions"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

// Config carries the web-only settings out of main.
type Config struct {
	Port           int
	SessionSecret  string
	AdminUser      string
	AdminPassword  string
	VAPIDPublicKey string
}

type Server struct {
	server *http.Server
}

func NewServer(cfg Config, ctrl controller.C) (*Server, error) {
	render := newRender()
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode

	router := getRouter(ctrl, render, store, cfg)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"date":     dateFormatter,
				"kickoff":  kickoffFormatter,
				"money":    moneyFormatter,
				"initials": initialsFormatter,
			},
		},
	})
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format("2006-01-02")
}

func kickoffFormatter(t time.Time) string {
	return t.Format("Mon Jan 2, 3:04 PM MST")
}

func moneyFormatter(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// initialsFormatter turns a display name into a one or two letter avatar
// placeholder.
func initialsFormatter(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(fields[0][:1])
	default:
		return strings.ToUpper(fields[0][:1] + fields[len(fields)-1][:1])
	}
}
