package http

import (
	"fmt"
	"net/http"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humafiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kgantsov/ravl/pkg/config"
	"github.com/kgantsov/ravl/pkg/index"
	"github.com/kgantsov/ravl/pkg/logger"
)

// Service provides HTTP service.
type Service struct {
	api      huma.API
	router   *fiber.App
	h        *Handler
	addr     string
	registry prometheus.Registerer
}

type Index interface {
	Insert(key int32, value any) bool
	Delete(key int32) (any, error)
	Search(key int32) (*index.Entry, error)
	Rank(key int32) (int, error)
	FindRank(r int) (*index.Entry, error)
	Keys() []int32
	Stats() index.Stats
}

// NewHttpService returns an HTTP service for idx that is not listening yet.
func NewHttpService(config *config.Config, idx Index, registry prometheus.Registerer) *Service {
	router := fiber.New(fiber.Config{DisableStartupMessage: true})

	api := humafiber.New(
		router, huma.DefaultConfig("RAVL a rank-aware key/value index", "1.0.0"),
	)

	h := &Handler{
		index:  idx,
		config: config,
	}
	s := &Service{
		api:      api,
		router:   router,
		h:        h,
		addr:     config.Http.Port,
		registry: registry,
	}
	s.ConfigureMiddleware()
	h.RegisterRoutes(api)

	return s
}

func (s *Service) ConfigureMiddleware() {
	s.router.Use(requestid.New())
	s.router.Use(logger.ZeroLoggerMiddleware())

	s.router.Use(healthcheck.New())
	s.router.Use(helmet.New())

	if s.h.config.Prometheus.Enabled {
		prom := fiberprometheus.NewWithRegistry(
			s.registry, "ravl", "ravl", "http", map[string]string{},
		)
		prom.RegisterAt(s.router, "/metrics")
		s.router.Use(prom.Middleware)
	}

	s.router.Get("/service/metrics", monitor.New())
	s.router.Use(recover.New())
}

func (h *Handler) RegisterRoutes(api huma.API) {
	huma.Register(
		api,
		huma.Operation{
			OperationID: "put-key",
			Method:      http.MethodPut,
			Path:        "/API/v1/keys/{key}",
			Summary:     "Insert or update a key",
			Description: "Store a value under the key, replacing the value of an existing key",
			Tags:        []string{"Keys"},
		},
		h.PutKey,
	)
	huma.Register(
		api,
		huma.Operation{
			OperationID: "get-key",
			Method:      http.MethodGet,
			Path:        "/API/v1/keys/{key}",
			Summary:     "Get a key",
			Description: "Get the value, rank and subtree shape of a key",
			Tags:        []string{"Keys"},
		},
		h.GetKey,
	)
	huma.Register(
		api,
		huma.Operation{
			OperationID: "delete-key",
			Method:      http.MethodDelete,
			Path:        "/API/v1/keys/{key}",
			Summary:     "Delete a key",
			Description: "Delete a key and return the value it held",
			Tags:        []string{"Keys"},
		},
		h.DeleteKey,
	)
	huma.Register(
		api,
		huma.Operation{
			OperationID: "rank",
			Method:      http.MethodGet,
			Path:        "/API/v1/keys/{key}/rank",
			Summary:     "Rank of a key",
			Description: "Get the number of keys smaller than the key",
			Tags:        []string{"Ranks"},
		},
		h.Rank,
	)
	huma.Register(
		api,
		huma.Operation{
			OperationID: "find-rank",
			Method:      http.MethodGet,
			Path:        "/API/v1/ranks/{rank}",
			Summary:     "Find a key by rank",
			Description: "Get the key at a zero based position in key order",
			Tags:        []string{"Ranks"},
		},
		h.FindRank,
	)
	huma.Register(
		api,
		huma.Operation{
			OperationID: "keys",
			Method:      http.MethodGet,
			Path:        "/API/v1/keys",
			Summary:     "List of keys",
			Description: "Get all keys in ascending order",
			Tags:        []string{"Keys"},
		},
		h.Keys,
	)
	huma.Register(
		api,
		huma.Operation{
			OperationID: "stats",
			Method:      http.MethodGet,
			Path:        "/API/v1/stats",
			Summary:     "Index stats",
			Description: "Get the size and height of the index and recent operation rates",
			Tags:        []string{"Stats"},
		},
		h.Stats,
	)
}

// Start starts the service.
func (s *Service) Start() error {
	return s.router.Listen(fmt.Sprintf(":%s", s.addr))
}

// Shutdown stops the listener and waits for active requests.
func (s *Service) Shutdown() error {
	return s.router.Shutdown()
}
