package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SubmitFunc handles one form submission. It must call exactly one API
// operation and return the text for the form's result element.
type SubmitFunc func(values url.Values) Result

type Server struct {
	router   *mux.Router
	log      *slog.Logger
	registry *prometheus.Registry

	mu       sync.RWMutex
	bindings map[string]SubmitFunc

	submissions *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		router:   mux.NewRouter(),
		log:      logger,
		registry: prometheus.NewRegistry(),
		bindings: make(map[string]SubmitFunc),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parking_form_submissions_total",
			Help: "Form submissions grouped by form and outcome.",
		}, []string{"form", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "parking_form_submission_duration_seconds",
			Help:    "Time spent waiting on the parking API per submission.",
			Buckets: prometheus.DefBuckets,
		}, []string{"form"}),
	}
	s.registry.MustRegister(s.submissions, s.latency)

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
	s.router.HandleFunc("/forms/{form}", s.handleSubmit).Methods("POST")
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods("GET")

	return s
}

// Bind registers fn as the submit action of formID. Binding an unknown form
// or binding a form twice panics.
func (s *Server) Bind(formID string, fn SubmitFunc) {
	if _, ok := findForm(formID); !ok {
		panic(fmt.Sprintf("web: unknown form %q", formID))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.bindings[formID]; dup {
		panic(fmt.Sprintf("web: form %q bound twice", formID))
	}
	s.bindings[formID] = fn
}

// Handler returns the router wrapped with access logging and panic recovery.
func (s *Server) Handler() http.Handler {
	return handlers.LoggingHandler(os.Stdout, handlers.RecoveryHandler()(s.router))
}

func (s *Server) binding(formID string) (SubmitFunc, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn, ok := s.bindings[formID]
	return fn, ok
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, nil)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["form"]

	form, ok := findForm(formID)
	if !ok {
		http.Error(w, "Unknown form", http.StatusNotFound)
		return
	}
	fn, ok := s.binding(formID)
	if !ok {
		http.Error(w, "Form not bound", http.StatusNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res := fn(r.PostForm)
	s.latency.WithLabelValues(formID).Observe(time.Since(start).Seconds())

	outcome := "success"
	if !res.Success {
		outcome = "error"
		s.log.Warn("form submission failed", "form", formID, "message", res.Message)
	}
	s.submissions.WithLabelValues(formID, outcome).Inc()

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]interface{}{
			"result":  form.ResultID,
			"message": res.Message,
			"success": res.Success,
		})
		if err != nil {
			s.log.Error("encode submit response", "form", formID, "err", err)
		}
		return
	}

	s.render(w, map[string]Result{form.ResultID: res})
}

func (s *Server) render(w http.ResponseWriter, results map[string]Result) {
	type formView struct {
		Form
		Result *Result
	}

	views := make([]formView, 0, len(Forms))
	for _, f := range Forms {
		v := formView{Form: f}
		if res, ok := results[f.ResultID]; ok {
			v.Result = &res
		}
		views = append(views, v)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, views); err != nil {
		s.log.Error("render page", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("ok")); err != nil {
		s.log.Error("write health response", "err", err)
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Parking management</title>
</head>
<body>
<h1>Parking management</h1>
{{range .}}
<section>
<h2>{{.Title}}</h2>
<form id="{{.ID}}" method="post" action="/forms/{{.ID}}">
{{range .Fields}}<label for="{{.Name}}">{{.Label}}</label>
<input type="text" id="{{.Name}}" name="{{.Name}}">
{{end}}<button type="submit">{{.Submit}}</button>
</form>
<p id="{{.ResultID}}"{{with .Result}} style="font-weight: bold; color: {{if .Success}}#28a745{{else}}#dc3545{{end}}"{{end}}>{{with .Result}}{{.Message}}{{end}}</p>
</section>
{{end}}
</body>
</html>
`))
