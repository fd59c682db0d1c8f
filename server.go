package hello

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/NYTimes/gziphandler"
	"github.com/miget/hello/core"
	"github.com/sirupsen/logrus"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

type RuntimeConfig struct {
	Env        string
	Port       int
	ConfigPath string
}

var ListenAndServe = http.ListenAndServe
var Exit = os.Exit

// Server is a fully wired but not yet listening application.
type Server struct {
	Addr        string
	Handler     http.Handler
	Config      core.Config
	Metrics     *core.Metrics
	MetricsAddr string

	env        string
	port       int
	configPath string
	reloader   core.LiveReloaderInterface
}

func BuildServer(cfg RuntimeConfig) (*Server, error) {
	config, err := core.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	s := &Server{
		Addr:       fmt.Sprintf(":%d", cfg.Port),
		Config:     config,
		env:        cfg.Env,
		port:       cfg.Port,
		configPath: cfg.ConfigPath,
	}

	opts := core.InstrumentOptions{DebugHeaders: config.DebugHeaders}
	if config.MetricsPort != 0 {
		s.Metrics = core.NewMetrics()
		s.MetricsAddr = fmt.Sprintf(":%d", config.MetricsPort)
		opts.Metrics = s.Metrics
	}

	pageOpts := core.PageOptions{Minify: config.Minify}
	if cfg.Env == EnvDev {
		s.reloader = core.NewLiveReloader()
		pageOpts.LiveReloadPath = core.LiveReloadPath
	}

	renderer, err := core.NewRenderer(core.CurrentRuntime(), pageOpts)
	if err != nil {
		return nil, err
	}

	logo := &core.LogoHandler{Assets: core.NewAssetSource(config.AssetsDir)}
	greeting := &core.GreetingHandler{
		Renderer:  renderer,
		QueryMode: config.QueryMode,
	}

	mux := http.NewServeMux()
	mux.Handle(core.LogoPath, compress(config, core.Instrument("logo", logo, opts)))
	mux.Handle(core.GreetingPath, compress(config, core.Instrument("greeting", greeting, opts)))
	if s.reloader != nil {
		mux.HandleFunc(core.LiveReloadPath, s.reloader.Handler)
	}

	s.Handler = mux
	return s, nil
}

func compress(config core.Config, h http.Handler) http.Handler {
	if !config.Gzip {
		return h
	}
	return gziphandler.GzipHandler(h)
}

// ListenAndServe blocks serving the application. Dev mode also watches the
// assets directory and the config file and asks open pages to reload on change.
func (s *Server) ListenAndServe() error {
	if s.reloader != nil {
		w, err := core.NewWatcher([]string{s.Config.AssetsDir, s.configPath}, s.onChange)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	if s.Metrics != nil {
		go serveMetrics(s.MetricsAddr, s.Metrics.Handler())
	}

	logrus.Infof("Server running on http://localhost:%d", s.port)
	return ListenAndServe(s.Addr, s.Handler)
}

func (s *Server) onChange(name string) {
	log := logrus.WithField("file", name)
	if s.configPath != "" && filepath.Clean(name) == filepath.Clean(s.configPath) {
		log.Warn("config changed, restart to apply it; reloading pages")
	} else {
		log.Info("asset changed, reloading pages")
	}
	s.reloader.BroadcastReload(name)
}

func serveMetrics(addr string, h http.Handler) {
	logrus.Infof("Serving prometheus metrics on %s/metrics", addr)
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	if err := ListenAndServe(addr, mux); err != nil {
		logrus.WithError(err).Error("failed to serve metrics")
	}
}

var Start = func(cfg RuntimeConfig) {
	s, err := BuildServer(cfg)
	if err != nil {
		logrus.WithError(err).Error("Server failed to start")
		Exit(1)
		return
	}

	core.ConfigureLogging(s.Config, s.env == EnvDev)
	logrus.Infof("Starting hello in %s mode...", s.env)

	if err := s.ListenAndServe(); err != nil {
		logrus.WithError(err).Error("Server failed")
		Exit(1)
	}
}
