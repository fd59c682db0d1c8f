package core

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

const (
	LogoPath     = "/logo.png"
	GreetingPath = "/"
)

// LogoHandler serves the bundled logo. It ignores the request method.
type LogoHandler struct {
	Assets AssetSource
}

func (h *LogoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, err := h.Assets.Asset(LogoAsset)
	if err != nil {
		if IsNotFoundError(err) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logrus.WithError(err).WithField("path", r.URL.Path).Error("failed to load logo")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// GreetingHandler renders the greeting page for every path routed to it.
type GreetingHandler struct {
	Renderer  *Renderer
	QueryMode QueryMode
}

func (h *GreetingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := NameFromQuery(r.URL.RawQuery, h.QueryMode)

	page := h.Renderer.Render(name)

	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Content-Length", strconv.Itoa(len(page)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		logrus.WithError(err).WithField("path", r.URL.Path).Debug("failed to write greeting")
	}
}
