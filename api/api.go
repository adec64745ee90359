package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geofun/api/model"
	"github.com/a-bouts/geofun/latlon"
	"github.com/a-bouts/geofun/stats"
	"github.com/a-bouts/geofun/track"
)

var errMissingEnd = errors.New("segment needs either 'to' or 'vector'")

type badRequest struct {
	err error
}

func (e badRequest) Error() string { return e.err.Error() }
func (e badRequest) Unwrap() error { return e.err }

type server struct {
	cpuprofile  bool
	profilePath string
	profiling   sync.Mutex
	stats       *stats.Stats
}

// InitServer builds the geofun router. Counters of st are published on reg.
func InitServer(cpuprofile bool, st *stats.Stats, reg *prometheus.Registry) http.Handler {
	s := &server{
		cpuprofile:  cpuprofile,
		profilePath: ".",
		stats:       st,
	}
	return s.handler(reg)
}

func (s *server) handler(reg *prometheus.Registry) http.Handler {

	router := mux.NewRouter().StrictSlash(true)

	router.HandleFunc("/geo/-/healthz", s.healthz).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/geo/api/v1").Subrouter()
	apiV1.HandleFunc("/models", s.getModels).Methods(http.MethodGet)
	apiV1.HandleFunc("/inverse", s.inverse).Methods(http.MethodPost)
	apiV1.HandleFunc("/direct", s.direct).Methods(http.MethodPost)
	apiV1.HandleFunc("/line", s.line).Methods(http.MethodPost)
	apiV1.HandleFunc("/arc", s.arc).Methods(http.MethodPost)
	apiV1.HandleFunc("/intersection", s.intersection).Methods(http.MethodPost)
	apiV1.HandleFunc("/track", s.track).Methods(http.MethodPost)

	router.Use(handlers.RecoveryHandler(handlers.RecoveryLogger(log.StandardLogger())))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(handlers.LoggingHandler(log.StandardLogger().WriterLevel(log.DebugLevel), router))
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func (s *server) getModels(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(latlon.ModelNames())
}

func requestLogger(action string, r *http.Request) *log.Entry {
	fields := log.Fields{
		"action": action,
	}
	if ip, err := getIp(r); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequest{fmt.Errorf("decode request: %w", err)}
	}
	return nil
}

func (s *server) fail(w http.ResponseWriter, logger *log.Entry, err error) {
	s.stats.Inc(stats.Errors)

	status := http.StatusInternalServerError
	var bad badRequest
	switch {
	case errors.As(err, &bad), errors.Is(err, latlon.ErrUnknownModel), errors.Is(err, track.ErrTooShort):
		status = http.StatusBadRequest
	case errors.Is(err, latlon.ErrNoConvergence):
		status = http.StatusUnprocessableEntity
	}
	logger.Warnf("Failed with %d: %v", status, err)

	type failure struct {
		Error string `json:"error"`
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(failure{Error: err.Error()})
}

func (s *server) reply(w http.ResponseWriter, op string, v interface{}) {
	s.stats.Inc(op)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *server) inverse(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger("inverse", r)

	var req model.Inverse
	if err := decode(r, &req); err != nil {
		s.fail(w, logger, err)
		return
	}
	m, err := latlon.ModelByName(req.Model)
	if err != nil {
		s.fail(w, logger, err)
		return
	}
	v, err := m.Inverse(req.From.Position(), req.To.Position())
	if err != nil {
		s.fail(w, logger, err)
		return
	}

	logger.Debugf("Inverse %s (%f,%f) -> (%f,%f)", m.Name(), req.From.Lat, req.From.Lon, req.To.Lat, req.To.Lon)
	s.reply(w, stats.Inverse, model.FromVector(v))
}

func (s *server) direct(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger("direct", r)

	var req model.Direct
	if err := decode(r, &req); err != nil {
		s.fail(w, logger, err)
		return
	}
	m, err := latlon.ModelByName(req.Model)
	if err != nil {
		s.fail(w, logger, err)
		return
	}
	p, err := m.Direct(req.From.Position(), req.Vector.Vector())
	if err != nil {
		s.fail(w, logger, err)
		return
	}

	s.reply(w, stats.Direct, model.FromPosition(p))
}

func buildLine(seg model.Segment) (latlon.Line, error) {
	switch {
	case seg.To != nil:
		return latlon.NewLine(seg.From.Position(), seg.To.Position()), nil
	case seg.Vector != nil:
		return latlon.LineFromVector(seg.From.Position(), seg.Vector.Vector()), nil
	}
	return latlon.Line{}, badRequest{errMissingEnd}
}

func buildArc(seg model.Segment) (latlon.Arc, error) {
	switch {
	case seg.To != nil:
		return latlon.NewArc(seg.From.Position(), seg.To.Position())
	case seg.Vector != nil:
		return latlon.ArcFromVector(seg.From.Position(), seg.Vector.Vector())
	}
	return latlon.Arc{}, badRequest{errMissingEnd}
}

func (s *server) line(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger("line", r)

	var req model.Segment
	if err := decode(r, &req); err != nil {
		s.fail(w, logger, err)
		return
	}
	l, err := buildLine(req)
	if err != nil {
		s.fail(w, logger, err)
		return
	}

	s.reply(w, stats.Line, model.Line{
		P1:     model.FromPosition(l.P1()),
		V:      model.FromVector(l.V()),
		P2:     model.FromPosition(l.P2()),
		Bounds: model.FromBounds(l.Bounds()),
	})
}

func (s *server) arc(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger("arc", r)

	var req model.Segment
	if err := decode(r, &req); err != nil {
		s.fail(w, logger, err)
		return
	}
	a, err := buildArc(req)
	if err != nil {
		s.fail(w, logger, err)
		return
	}

	s.reply(w, stats.Arc, model.Arc{
		P1:     model.FromPosition(a.P1()),
		V:      model.FromVector(a.V()),
		P2:     model.FromPosition(a.P2()),
		R:      model.FromVector(a.R()),
		Alpha:  latlon.RadToDeg(a.Alpha()),
		Bounds: model.FromBounds(a.Bounds()),
	})
}

func (s *server) intersection(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger("intersection", r)

	var req model.Intersection
	if err := decode(r, &req); err != nil {
		s.fail(w, logger, err)
		return
	}

	var p latlon.Position
	var found bool
	switch strings.ToLower(req.Kind) {
	case "", "line":
		a, err := buildLine(req.A)
		if err != nil {
			s.fail(w, logger, err)
			return
		}
		b, err := buildLine(req.B)
		if err != nil {
			s.fail(w, logger, err)
			return
		}
		p, found = a.Intersection(b)
	case "arc":
		a, err := buildArc(req.A)
		if err != nil {
			s.fail(w, logger, err)
			return
		}
		b, err := buildArc(req.B)
		if err != nil {
			s.fail(w, logger, err)
			return
		}
		p, found = a.Intersection(b)
	case "arc-line":
		a, err := buildArc(req.A)
		if err != nil {
			s.fail(w, logger, err)
			return
		}
		b, err := buildLine(req.B)
		if err != nil {
			s.fail(w, logger, err)
			return
		}
		p, found = a.IntersectionLine(b)
	default:
		s.fail(w, logger, badRequest{fmt.Errorf("unknown kind '%s'", req.Kind)})
		return
	}

	res := model.IntersectionResult{Intersects: found}
	if found {
		ll := model.FromPosition(p)
		res.Position = &ll
	}
	s.reply(w, stats.Intersection, res)
}

func (s *server) track(w http.ResponseWriter, r *http.Request) {
	if s.cpuprofile && s.profiling.TryLock() {
		defer s.profiling.Unlock()
		defer profile.Start(profile.ProfilePath(s.profilePath), profile.NoShutdownHook).Stop()
	}

	logger := requestLogger("track", r)

	var req model.Track
	if err := decode(r, &req); err != nil {
		s.fail(w, logger, err)
		return
	}
	m, err := latlon.ModelByName(req.Model)
	if err != nil {
		s.fail(w, logger, err)
		return
	}

	start := time.Now()

	summary, err := track.Legs(r.Context(), m, req.Track)
	if err != nil {
		s.fail(w, logger, err)
		return
	}

	logger.Infof("Track '%s' with %d legs took %s", req.Track.Name, len(summary.Legs), time.Since(start).String())
	s.reply(w, stats.Track, model.FromSummary(summary))
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
