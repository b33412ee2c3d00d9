package httpapi

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/restorun-backoffice/internal/domain"
)

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := s.UC.Analytics.Execute(r.Context(), r.URL.Query().Get("timeframe"))
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func orderFilter(r *http.Request) domain.OrderFilter {
	q := r.URL.Query()
	return domain.OrderFilter{Search: q.Get("search"), Status: q.Get("status")}
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.UC.ListOrders.Execute(r.Context(), orderFilter(r))
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleExportOrders(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.UC.ExportOrders.Execute(r.Context(), orderFilter(r), &buf); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := s.UC.GetOrder.Execute(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in statusRequest
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	sess, _ := sessionFrom(r.Context())
	o, err := s.UC.UpdateStatus.Execute(r.Context(), mux.Vars(r)["id"], in.Status, sess.Username)
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}
