package core

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	HeaderHandler   = "X-Hello-Handler"
	HeaderRequestID = "X-Request-Id"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) code() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

type InstrumentOptions struct {
	DebugHeaders bool
	Metrics      *Metrics
}

// Instrument wraps next with request logging, optional debug headers and
// optional metrics, all labelled with name.
func Instrument(name string, next http.Handler, opts InstrumentOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		if opts.DebugHeaders {
			w.Header().Set(HeaderHandler, name)
			w.Header().Set(HeaderRequestID, requestID)
		}

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		if opts.Metrics != nil {
			opts.Metrics.Observe(name, rec.code(), elapsed)
		}

		logrus.WithFields(logrus.Fields{
			"handler":    name,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.code(),
			"bytes":      rec.bytes,
			"duration":   elapsed.String(),
			"request_id": requestID,
		}).Debug("request served")
	})
}
