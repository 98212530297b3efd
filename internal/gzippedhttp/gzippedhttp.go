// Package gzippedhttp adds transparent gzip support to the HTTP layer:
// request bodies sent with Content-Encoding gzip are decompressed, and
// responses are compressed when the client accepts it.
package gzippedhttp

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		w, _ := gzip.NewWriterLevel(nil, gzip.BestSpeed)
		return w
	},
}

type gzippedReader struct {
	body io.ReadCloser
	zr   *gzip.Reader
}

func newGzippedReader(body io.ReadCloser) (*gzippedReader, error) {
	zr, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}

	return &gzippedReader{body: body, zr: zr}, nil
}

func (r *gzippedReader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *gzippedReader) Close() error {
	if err := r.body.Close(); err != nil {
		return err
	}

	return r.zr.Close()
}

type gzippedResponseWriter struct {
	response    http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
	compressing bool
}

func newGzippedResponseWriter(response http.ResponseWriter) *gzippedResponseWriter {
	zw := gzipWriterPool.Get().(*gzip.Writer)
	zw.Reset(response)

	return &gzippedResponseWriter{response: response, zw: zw}
}

func (w *gzippedResponseWriter) Header() http.Header {
	return w.response.Header()
}

// WriteHeader commits the status code. Error and redirect responses are
// left uncompressed so their bodies stay readable to plain clients.
func (w *gzippedResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		w.response.WriteHeader(statusCode)
		return
	}
	w.wroteHeader = true

	if statusCode < http.StatusMultipleChoices {
		w.response.Header().Set("Content-Encoding", "gzip")
		w.compressing = true
	}
	w.response.WriteHeader(statusCode)
}

func (w *gzippedResponseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !w.compressing {
		return w.response.Write(p)
	}

	return w.zw.Write(p)
}

func (w *gzippedResponseWriter) Close() error {
	defer gzipWriterPool.Put(w.zw)

	if !w.compressing {
		return nil
	}

	return w.zw.Close()
}

// UngzipRequest decompresses gzip-encoded request bodies before the next
// handler reads them.
func UngzipRequest(h http.Handler) http.Handler {
	middleware := func(response http.ResponseWriter, request *http.Request) {
		if strings.Contains(request.Header.Get("Content-Encoding"), "gzip") {
			unzipped, err := newGzippedReader(request.Body)
			if err != nil {
				response.WriteHeader(http.StatusInternalServerError)
				return
			}
			request.Body = unzipped
			defer unzipped.Close()
		}

		h.ServeHTTP(response, request)
	}

	return http.HandlerFunc(middleware)
}

// GzipResponse compresses the response body when the request's
// Accept-Encoding allows gzip.
func GzipResponse(h http.Handler) http.Handler {
	middleware := func(response http.ResponseWriter, request *http.Request) {
		if !strings.Contains(request.Header.Get("Accept-Encoding"), "gzip") {
			h.ServeHTTP(response, request)
			return
		}

		gzipped := newGzippedResponseWriter(response)
		defer gzipped.Close()

		h.ServeHTTP(gzipped, request)
	}

	return http.HandlerFunc(middleware)
}
