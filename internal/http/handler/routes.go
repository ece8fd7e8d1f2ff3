package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docshare/internal/config"
	"docshare/internal/http/middleware"
	"docshare/internal/ratelimit"
	"docshare/internal/service"
	"docshare/internal/storage"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	docSvc service.DocumentService,
	teamSvc service.TeamService,
	store storage.Storage,
	limiter ratelimit.Limiter,
	cfg *config.AppConfig,
) {
	secret := []byte(cfg.Auth.SessionSecret)
	signExpiry := time.Duration(cfg.Upload.SignExpirySec) * time.Second

	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health: DB connectivity; healthz: plain liveness probe
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Document download: session optional, anonymous callers need a linkId
	app.Get("/documents/:documentId/download",
		middleware.SessionOptional(secret),
		middleware.RateLimit(limiter),
		DownloadDocument(docSvc),
	)

	files := app.Group("/files")
	files.Post("/upload",
		middleware.SessionRequired(secret),
		middleware.RateLimit(limiter),
		UploadFile(docSvc, cfg.Upload.MaxBytes),
	)
	// Direct presign endpoint holds the internal credential; the proxy
	// variant lets session callers presign without ever seeing it.
	files.Post("/s3/presign",
		middleware.InternalAuth(cfg.Auth.InternalAPIKey),
		PresignGetURL(store, signExpiry),
	)
	files.Post("/s3/presign-proxy",
		middleware.SessionRequired(secret),
		PresignGetURL(store, signExpiry),
	)

	app.Get("/teams", middleware.SessionRequired(secret), ListTeams(teamSvc))
	app.Post("/teams", middleware.SessionRequired(secret), CreateTeam(teamSvc))
}
