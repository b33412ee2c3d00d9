package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/example/restorun-backoffice/internal/domain"
	"github.com/example/restorun-backoffice/internal/usecase"
)

// UseCases — сценарии, которые обслуживает HTTP API.
type UseCases struct {
	Login        usecase.Login
	Logout       usecase.Logout
	Authenticate usecase.Authenticate
	Register     usecase.Register

	Analytics usecase.GetAnalytics

	ListOrders   usecase.ListOrders
	GetOrder     usecase.GetOrder
	ExportOrders usecase.ExportOrdersCSV
	UpdateStatus usecase.UpdateOrderStatus

	ListDishes     usecase.ListDishes
	DishCategories usecase.ListDishCategories
	CreateDish     usecase.CreateDish
	UpdateDish     usecase.UpdateDish
	ToggleDish     usecase.ToggleDishAvailability
	DeleteDish     usecase.DeleteDish

	ListWaiters  usecase.ListWaiters
	CreateWaiter usecase.CreateWaiter
	UpdateWaiter usecase.UpdateWaiter
	DeleteWaiter usecase.DeleteWaiter

	GetSettings    usecase.GetSettings
	UpdateSettings usecase.UpdateSettings

	ListUploads  usecase.ListUploads
	UploadFile   usecase.UploadFile
	DeleteUpload usecase.DeleteUpload
}

type Server struct {
	Router *mux.Router
	UC     UseCases
	Log    *zap.SugaredLogger
}

var (
	anyRole     = []domain.Role{domain.RoleAdmin, domain.RoleAnalyst, domain.RoleWaiter}
	reportRoles = []domain.Role{domain.RoleAdmin, domain.RoleAnalyst}
	statusRoles = []domain.Role{domain.RoleAdmin, domain.RoleWaiter}
	adminOnly   = []domain.Role{domain.RoleAdmin}
)

// NewServer собирает маршруты; staticDir пустой — статика не раздаётся.
func NewServer(uc UseCases, staticDir string, log *zap.SugaredLogger) *Server {
	s := &Server{Router: mux.NewRouter(), UC: uc, Log: log}
	s.Router.Use(s.logRequests)
	s.Router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.Router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.authenticate)
	s.route(authed, "/auth/logout", s.handleLogout, anyRole, http.MethodPost)
	s.route(authed, "/auth/me", s.handleMe, anyRole, http.MethodGet)
	s.route(authed, "/auth/register", s.handleRegister, adminOnly, http.MethodPost)

	s.route(authed, "/analytics", s.handleAnalytics, reportRoles, http.MethodGet)

	s.route(authed, "/orders", s.handleListOrders, anyRole, http.MethodGet)
	s.route(authed, "/orders/export", s.handleExportOrders, reportRoles, http.MethodGet)
	s.route(authed, "/orders/{id}", s.handleGetOrder, anyRole, http.MethodGet)
	s.route(authed, "/orders/{id}/status", s.handleUpdateStatus, statusRoles, http.MethodPatch)

	s.route(authed, "/dishes", s.handleListDishes, anyRole, http.MethodGet)
	s.route(authed, "/dishes", s.handleCreateDish, adminOnly, http.MethodPost)
	s.route(authed, "/dishes/categories", s.handleDishCategories, anyRole, http.MethodGet)
	s.route(authed, "/dishes/{id}", s.handleUpdateDish, adminOnly, http.MethodPut)
	s.route(authed, "/dishes/{id}", s.handleDeleteDish, adminOnly, http.MethodDelete)
	s.route(authed, "/dishes/{id}/toggle", s.handleToggleDish, adminOnly, http.MethodPost)

	s.route(authed, "/waiters", s.handleListWaiters, anyRole, http.MethodGet)
	s.route(authed, "/waiters", s.handleCreateWaiter, adminOnly, http.MethodPost)
	s.route(authed, "/waiters/{id}", s.handleUpdateWaiter, adminOnly, http.MethodPut)
	s.route(authed, "/waiters/{id}", s.handleDeleteWaiter, adminOnly, http.MethodDelete)

	s.route(authed, "/settings", s.handleGetSettings, anyRole, http.MethodGet)
	s.route(authed, "/settings", s.handleUpdateSettings, adminOnly, http.MethodPut)

	s.route(authed, "/uploads", s.handleListUploads, adminOnly, http.MethodGet)
	s.route(authed, "/uploads", s.handleUpload, adminOnly, http.MethodPost)
	s.route(authed, "/uploads/{id}", s.handleDeleteUpload, adminOnly, http.MethodDelete)

	if staticDir != "" {
		s.Router.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	}
	return s
}

func (s *Server) route(r *mux.Router, path string, h http.HandlerFunc, roles []domain.Role, method string) {
	r.Handle(path, requireRoles(roles, h)).Methods(method)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
