package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"prompt-manager/internal/handlers"
	"prompt-manager/internal/node"
	"prompt-manager/internal/service"
)

// DefaultPrefix is where the plugin routes are mounted when Deps.Prefix is empty.
const DefaultPrefix = "/prompt_manager"

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Prompts    service.PromptService
	Categories service.CategoryService
	Images     service.ImageService
	Node       *node.PromptManager

	// DataDir and PreviewDir are probed by the health endpoint.
	DataDir    string
	PreviewDir string

	Prefix         string
	MaxUploadBytes int64
}

// NewRouter creates a standalone router that hosts the plugin routes.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	Mount(r, deps)

	return r
}

// Mount attaches the plugin routes under deps.Prefix onto a host-owned router.
func Mount(r chi.Router, deps *Deps) {
	r.Mount(prefix(deps.Prefix), Routes(deps))
}

// Routes returns the plugin routes relative to the mount prefix.
func Routes(deps *Deps) chi.Router {
	promptHandler := handlers.NewPromptHandler(deps.Prompts)
	categoryHandler := handlers.NewCategoryHandler(deps.Categories)
	imageHandler := handlers.NewImageHandler(deps.Images, deps.MaxUploadBytes)
	healthHandler := handlers.NewHealthHandler(deps.DataDir, deps.PreviewDir)

	n := deps.Node
	if n == nil {
		n = node.New()
	}
	nodeHandler := handlers.NewNodeHandler(n)

	r := chi.NewRouter()

	r.Get("/prompts", promptHandler.List)
	r.Post("/add", promptHandler.Add)
	r.Post("/update", promptHandler.Update)
	r.Delete("/delete", promptHandler.Delete)
	r.Post("/save", promptHandler.Save)

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Post("/add", categoryHandler.Add)
		r.Delete("/delete", categoryHandler.Delete)
	})

	r.Post("/upload_image", imageHandler.Upload)
	r.Delete("/image/delete", imageHandler.Delete)
	r.Get("/image/{filename}", imageHandler.Get)
	r.Get("/images/orphans", imageHandler.Orphans)

	r.Method(http.MethodGet, "/health", healthHandler)

	r.Get("/node", nodeHandler.Definition)
	r.Post("/node/process", nodeHandler.Process)

	return r
}

func prefix(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p == "" {
		return DefaultPrefix
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
