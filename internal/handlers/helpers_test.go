package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

// serve routes a single request through a chi router so path params resolve.
func serve(h http.HandlerFunc, method, pattern, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func strPtr(s string) *string { return &s }
