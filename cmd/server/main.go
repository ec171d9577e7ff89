package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/cbse-prep/backend/internal/auth"
	"github.com/cbse-prep/backend/internal/curriculum"
	"github.com/cbse-prep/backend/internal/database"
	"github.com/cbse-prep/backend/internal/generator"
	"github.com/cbse-prep/backend/internal/middleware"
	"github.com/cbse-prep/backend/internal/payment"
	"github.com/cbse-prep/backend/internal/practice"
)

func main() {
	// Local dev convenience; in production config comes from the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	curriculumHandler := curriculum.NewHandler()

	practiceService := practice.NewService(practice.NewStore(db), generator.NewGenerator())
	practiceHandler := practice.NewHandler(practiceService)

	paymentHandler := payment.NewHandler(payment.NewStore(db), payment.NewRazorpayClient())

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/curriculum/subjects", curriculumHandler.ListSubjects).Methods("GET")
	api.HandleFunc("/curriculum/chapters", curriculumHandler.ListChapters).Methods("GET")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/profile/update", authHandler.UpdateProfile).Methods("POST")
	protected.HandleFunc("/practice/generate", practiceHandler.Generate).Methods("POST")
	protected.HandleFunc("/papers/generate-full", practiceHandler.FullPaper).Methods("POST")
	protected.HandleFunc("/practice/save", practiceHandler.SaveSession).Methods("POST")
	protected.HandleFunc("/practice/history", practiceHandler.History).Methods("GET")
	protected.HandleFunc("/practice/stats", practiceHandler.Stats).Methods("GET")
	protected.HandleFunc("/payment/order", paymentHandler.CreateOrder).Methods("POST")
	protected.HandleFunc("/payment/verify", paymentHandler.VerifyPayment).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
