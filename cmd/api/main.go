package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/Precios-admin/docs"
	"github.com/jhoicas/Precios-admin/internal/application/usecase"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
	"github.com/jhoicas/Precios-admin/internal/infrastructure/catalog"
	"github.com/jhoicas/Precios-admin/internal/infrastructure/crudapi"
	infrapdf "github.com/jhoicas/Precios-admin/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Precios-admin/internal/interfaces/http"
	"github.com/jhoicas/Precios-admin/pkg/config"
	"github.com/jhoicas/Precios-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	// Montos como números JSON, igual que los envía el backend.
	decimal.MarshalJSONWithoutQuotes = true

	client := crudapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	precioRepo := crudapi.NewPrecioRepository(client, cfg.Backend.PreciosItemsPath)
	listaRepo := crudapi.NewListaRepository(client, cfg.Backend.ListasPath)
	promoRepo := crudapi.NewPromocionRepository(client, cfg.Backend.PromocionesPath)
	catalogoRepo := crudapi.NewCatalogoRepository(client, crudapi.CatalogoRutas{
		Productos:      cfg.Backend.ProductosPath,
		Presentaciones: cfg.Backend.PresentacionesPath,
		Categorias:     cfg.Backend.CategoriasPath,
	})

	// Sin catálogo de fórmulas no se valida IDTIPOFORMULAOK.
	var tipos repository.TipoFormulaRepository
	if cfg.Catalogo.FormulasPath != "" {
		cat, err := catalog.Cargar(cfg.Catalogo.FormulasPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalogo.FormulasPath).Msg("catálogo de tipos de fórmula")
		}
		tipos = cat
		log.Info().Int("tipos", len(cat.Listar())).Msg("catálogo de tipos de fórmula cargado")
	}

	sesiones := usecase.NewSesionStore(cfg.Seleccion.TTL)
	catalogoUC := usecase.NewCatalogoUseCase(catalogoRepo, tipos)
	precioUC := usecase.NewPrecioUseCase(precioRepo, log)
	listaUC := usecase.NewListaUseCase(listaRepo, tipos, sesiones, log)
	promocionUC := usecase.NewPromocionUseCase(promoRepo, precioRepo, sesiones, log)
	seleccionUC := usecase.NewSeleccionUseCase(catalogoUC, listaRepo, promoRepo, sesiones, log)

	// PDF: hoja de precios de una lista
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	hojaUC := usecase.NewHojaPreciosUseCase(listaRepo, precioRepo, catalogoRepo, tipos, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Precios Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogoUC:       catalogoUC,
		PrecioUC:         precioUC,
		ListaUC:          listaUC,
		PromocionUC:      promocionUC,
		SeleccionUC:      seleccionUC,
		HojaUC:           hojaUC,
		UsuarioRequerido: cfg.HTTP.RequireUser,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Int("sesiones_abiertas", sesiones.Len()).Msg("aplicación detenida")
}
