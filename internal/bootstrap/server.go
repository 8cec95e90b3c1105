package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	app "github.com/miestilo/leadcrm/internal/application/lead"
	"github.com/miestilo/leadcrm/internal/infrastructure/parse"
	"github.com/miestilo/leadcrm/internal/infrastructure/repository"
	"github.com/miestilo/leadcrm/internal/infrastructure/source"
	httpecho "github.com/miestilo/leadcrm/internal/interfaces/http/echo"
)

type Config struct {
	ImportBaseDir string
}

func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, log *logrus.Logger, cfg Config) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("10M"))

	leadStore := repository.NewLeadRepository(db, pool)
	importLeads := app.NewImportLeads(leadStore, log)
	importHandler := httpecho.NewImportHandler(
		importLeads,
		parse.Rows,
		source.NewLocalSource(cfg.ImportBaseDir),
		source.NewSheetSource(nil),
	)

	leadQueryRepo := repository.NewLeadQueryRepository(db)
	leadHandler := httpecho.NewLeadHandler(
		app.NewGetLeadByID(leadQueryRepo),
		app.NewListLeads(leadQueryRepo),
	)

	httpecho.RegisterRoutes(server, importHandler, leadHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
