package server

import (
	"net/http"
)

// mcpStreamHandler rejects server-initiated streams, server never sends unsolicited messages
func (s *Server) mcpStreamHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	http.Error(w, "streaming is not supported", http.StatusMethodNotAllowed)
}
