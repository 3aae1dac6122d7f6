package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-store/docs"
	mem "pet-store/internal/adapters/storage/memory"
	"pet-store/internal/domain/petstore"
	"pet-store/internal/middleware"
)

type Options struct {
	// Opcional: si es nil se usa el store in-memory.
	Store petstore.Store

	// Opcional: zero value => zerolog.Nop().
	Logger *zerolog.Logger

	// Opcional: si es nil se crea un registry propio.
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID(log))
	r.Use(chimw.RealIP)
	r.Use(middleware.NewMetrics(reg).Handler)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Recover)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := petstore.NewService(store)
	petstore.RegisterRoutes(r, svc)

	return r
}
