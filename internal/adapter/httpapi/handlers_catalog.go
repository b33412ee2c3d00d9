package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/restorun-backoffice/internal/domain"
	"github.com/example/restorun-backoffice/internal/usecase"
)

func (s *Server) handleListDishes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dishes, err := s.UC.ListDishes.Execute(r.Context(), domain.DishFilter{Search: q.Get("search"), Category: q.Get("category")})
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (s *Server) handleDishCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.UC.DishCategories.Execute(r.Context())
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (s *Server) handleCreateDish(w http.ResponseWriter, r *http.Request) {
	var in usecase.DishInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	d, err := s.UC.CreateDish.Execute(r.Context(), in)
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleUpdateDish(w http.ResponseWriter, r *http.Request) {
	var in usecase.DishInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	d, err := s.UC.UpdateDish.Execute(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleToggleDish(w http.ResponseWriter, r *http.Request) {
	d, err := s.UC.ToggleDish.Execute(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDish(w http.ResponseWriter, r *http.Request) {
	if err := s.UC.DeleteDish.Execute(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListWaiters(w http.ResponseWriter, r *http.Request) {
	waiters, err := s.UC.ListWaiters.Execute(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, waiters)
}

func (s *Server) handleCreateWaiter(w http.ResponseWriter, r *http.Request) {
	var in usecase.WaiterInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	wt, err := s.UC.CreateWaiter.Execute(r.Context(), in)
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, wt)
}

func (s *Server) handleUpdateWaiter(w http.ResponseWriter, r *http.Request) {
	var in usecase.WaiterInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	wt, err := s.UC.UpdateWaiter.Execute(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wt)
}

func (s *Server) handleDeleteWaiter(w http.ResponseWriter, r *http.Request) {
	if err := s.UC.DeleteWaiter.Execute(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, s.Log, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
