package routes

import (
	"net/http"
	"strings"

	"github.com/adarsht2308/dellcube-lms-sub000/handlers"
	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(path string, h http.HandlerFunc) {
	http.Handle(path, withCORS(http.HandlerFunc(handlers.RecoverWrapper(h))))
}

var officeRoles = []models.Role{models.RoleOperation, models.RoleBranchAdmin, models.RoleSuperAdmin}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	docketHandler *handlers.DocketHandler,
	branchHandler *handlers.BranchHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// User routes
	handle("/signup", userHandler.Signup)
	handle("/login", userHandler.Login)

	// Driver-facing listings
	handle("/driver/dockets", handlers.RequireAuth(docketHandler.ListForDriver, models.RoleDriver))
	handle("/driver/dockets/recent", handlers.RequireAuth(docketHandler.ListRecent, models.RoleDriver))

	// PDF export
	handle("/dockets/pdf", handlers.RequireAuth(pdfHandler.DocketPDF, officeRoles...))

	// Docket collection
	handle("/dockets", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handlers.RequireAuth(docketHandler.CreateDocket, officeRoles...)(w, r)
		case http.MethodGet:
			handlers.RequireAuth(docketHandler.GetAllDockets, officeRoles...)(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Docket by number and sub-resources
	handle("/dockets/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/dockets/"), "/")
		if rest == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		parts := strings.SplitN(rest, "/", 2)
		number := parts[0]

		if len(parts) == 1 {
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			handlers.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				docketHandler.GetDocketByNumber(w, r, number)
			})(w, r)
			return
		}

		switch parts[1] {
		case "status":
			handlers.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				docketHandler.UpdateStatus(w, r, number)
			})(w, r)
		case "charges":
			handlers.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				docketHandler.UpdateCharges(w, r, number)
			}, officeRoles...)(w, r)
		case "delivery":
			handlers.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				docketHandler.SubmitDeliveryProof(w, r, number)
			})(w, r)
		case "copies":
			handlers.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				docketHandler.RenderCopies(w, r, number)
			})(w, r)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	// Branch profile routes
	handle("/branch-profile", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handlers.RequireAuth(branchHandler.SaveProfile, officeRoles...)(w, r)
		case http.MethodGet:
			handlers.RequireAuth(branchHandler.GetProfile)(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}
