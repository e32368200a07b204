package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/sbilibin2017/gw-currency-display/internal/models"
)

// VisitorGetter returns the visitor id the session middleware attached.
type VisitorGetter func(ctx context.Context) (string, bool)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// clientIP expects RemoteAddr to already reflect proxy headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
