package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/security"
	"bengkel-backend/internal/service"
	"bengkel-backend/internal/storage"
)

// Server holds the HTTP handlers' dependencies and builds the route table.
type Server struct {
	auth          service.AuthService
	users         service.UserService
	tools         service.ToolService
	transactions  service.TransactionService
	maintenance   service.MaintenanceService
	notifications service.NotificationService
	worklogs      service.WorkLogService
	chat          service.ChatService
	reports       service.ReportService
	files         storage.FileStorage
	tokens        security.TokenManager
	wsHandler     http.Handler
	uploadsDir    string
	log           *slog.Logger
}

type ServerConfig struct {
	Auth          service.AuthService
	Users         service.UserService
	Tools         service.ToolService
	Transactions  service.TransactionService
	Maintenance   service.MaintenanceService
	Notifications service.NotificationService
	WorkLogs      service.WorkLogService
	Chat          service.ChatService
	Reports       service.ReportService
	Files         storage.FileStorage
	Tokens        security.TokenManager
	WSHandler     http.Handler
	UploadsDir    string
}

func NewServer(cfg ServerConfig) *Server {
	return &Server{
		auth:          cfg.Auth,
		users:         cfg.Users,
		tools:         cfg.Tools,
		transactions:  cfg.Transactions,
		maintenance:   cfg.Maintenance,
		notifications: cfg.Notifications,
		worklogs:      cfg.WorkLogs,
		chat:          cfg.Chat,
		reports:       cfg.Reports,
		files:         cfg.Files,
		tokens:        cfg.Tokens,
		wsHandler:     cfg.WSHandler,
		uploadsDir:    cfg.UploadsDir,
		log:           logger.WithComponent("http"),
	}
}

// Router builds the full route table. Reads on the tool catalog are public;
// everything else sits behind bearer auth, with admin-only routes gated on
// role.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	// Public routes.
	r.HandleFunc("/users/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/users/login/token", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/tools", s.handleListTools).Methods(http.MethodGet)
	r.HandleFunc("/tools/{id:[0-9]+}", s.handleGetTool).Methods(http.MethodGet)

	// Websocket auth happens inside the handler via a token query parameter.
	r.Handle("/chat/ws", s.wsHandler)

	// Uploaded files (payment proofs, tool images, chat attachments).
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadsDir))))

	// Authenticated routes.
	authed := r.NewRoute().Subrouter()
	authed.Use(s.authMiddleware)

	authed.HandleFunc("/users", requireAdmin(s.handleListUsers)).Methods(http.MethodGet)
	authed.HandleFunc("/users/{id:[0-9]+}/approve", requireAdmin(s.handleApproveUser)).Methods(http.MethodPost)

	authed.HandleFunc("/tools", requireAdmin(s.handleCreateTool)).Methods(http.MethodPost)
	authed.HandleFunc("/tools/{id:[0-9]+}", requireAdmin(s.handleUpdateTool)).Methods(http.MethodPut)
	authed.HandleFunc("/tools/{id:[0-9]+}", requireAdmin(s.handleDeleteTool)).Methods(http.MethodDelete)

	authed.HandleFunc("/transactions/borrow", s.handleBorrow).Methods(http.MethodPost)
	authed.HandleFunc("/transactions/me", s.handleMyTransactions).Methods(http.MethodGet)
	authed.HandleFunc("/transactions", requireAdmin(s.handleAllTransactions)).Methods(http.MethodGet)
	authed.HandleFunc("/transactions/{id:[0-9]+}/approve", requireAdmin(s.handleApproveTransaction)).Methods(http.MethodPost)
	authed.HandleFunc("/transactions/{id:[0-9]+}/reject", requireAdmin(s.handleRejectTransaction)).Methods(http.MethodPost)

	authed.HandleFunc("/rentals/request", s.handleRentalRequest).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id:[0-9]+}/pay", s.handleRentalPay).Methods(http.MethodPost)

	authed.HandleFunc("/maintenance/report", s.handleMaintenanceReport).Methods(http.MethodPost)
	authed.HandleFunc("/maintenance", requireAdmin(s.handleListMaintenance)).Methods(http.MethodGet)
	authed.HandleFunc("/maintenance/{id:[0-9]+}/assign/{tech_id:[0-9]+}", requireAdmin(s.handleAssignTechnician)).Methods(http.MethodPost)
	authed.HandleFunc("/maintenance/{id:[0-9]+}/resolve", requireAdmin(s.handleResolveMaintenance)).Methods(http.MethodPost)

	authed.HandleFunc("/worklogs", s.handleCreateWorkLog).Methods(http.MethodPost)
	authed.HandleFunc("/worklogs", s.handleMyWorkLogs).Methods(http.MethodGet)
	authed.HandleFunc("/worklogs/{user_id:[0-9]+}", requireAdmin(s.handleUserWorkLogs)).Methods(http.MethodGet)

	authed.HandleFunc("/notifications", s.handleListNotifications).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/read/all", s.handleMarkAllNotificationsRead).Methods(http.MethodPost)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", s.handleMarkNotificationRead).Methods(http.MethodPost)

	authed.HandleFunc("/reports/usage/monthly", requireAdmin(s.handleUsageReport)).Methods(http.MethodGet)
	authed.HandleFunc("/reports/financial/monthly", requireAdmin(s.handleFinancialReport)).Methods(http.MethodGet)

	authed.HandleFunc("/chat/history/{other_user_id:[0-9]+}", s.handleChatHistory).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the named numeric path variable. The route pattern guarantees
// digits, so errors only occur on overflow.
func pathID(r *http.Request, name string) (int32, bool) {
	v, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// pagination reads offset/limit query parameters with sane defaults.
func pagination(r *http.Request) (offset, limit int32) {
	offset, limit = 0, 100
	if v, err := strconv.ParseInt(r.URL.Query().Get("offset"), 10, 32); err == nil && v >= 0 {
		offset = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 32); err == nil && v > 0 && v <= 500 {
		limit = int32(v)
	}
	return offset, limit
}
