package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogoUC  *usecase.CatalogoUseCase
	PrecioUC    *usecase.PrecioUseCase
	ListaUC     *usecase.ListaUseCase
	PromocionUC *usecase.PromocionUseCase
	SeleccionUC *usecase.SeleccionUseCase
	HojaUC      *usecase.HojaPreciosUseCase
	// UsuarioRequerido rechaza peticiones sin X-Usuario.
	UsuarioRequerido bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", UsuarioMiddleware(deps.UsuarioRequerido))

	// Catálogo (solo lectura)
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	api.Get("/productos", catalogoHandler.Productos)
	api.Get("/categorias", catalogoHandler.Categorias)
	api.Get("/tipos-formula", catalogoHandler.TiposFormula)

	// Precios
	precioHandler := NewPrecioHandler(deps.PrecioUC)
	precios := api.Group("/precios")
	precios.Post("/preview", precioHandler.Preview)
	precios.Post("/", precioHandler.Guardar)
	precios.Delete("/:id", precioHandler.Eliminar)
	api.Get("/presentaciones/:id/precios", precioHandler.ListarPorPresentacion)

	// Listas de precios
	listas := api.Group("/listas")
	listaHandler := NewListaHandler(deps.ListaUC, deps.HojaUC)
	listas.Get("/", listaHandler.List)
	listas.Post("/", listaHandler.Create)
	listas.Get("/:id", listaHandler.GetByID)
	listas.Put("/:id", listaHandler.Update)
	listas.Delete("/:id", listaHandler.Delete)
	listas.Post("/:id/activar", listaHandler.Activate)
	listas.Put("/:id/seleccion", listaHandler.AplicarSeleccion)
	listas.Get("/:id/precios", precioHandler.ListarPorLista)
	listas.Get("/:id/hoja.pdf", listaHandler.HojaPDF)

	// Promociones
	promociones := api.Group("/promociones")
	promocionHandler := NewPromocionHandler(deps.PromocionUC)
	promociones.Post("/productos-aplicables", promocionHandler.ProductosAplicables)
	promociones.Post("/preview-descuentos", promocionHandler.PreviewDescuentos)
	promociones.Get("/", promocionHandler.List)
	promociones.Post("/", promocionHandler.Create)
	promociones.Get("/:id", promocionHandler.GetByID)
	promociones.Put("/:id", promocionHandler.Update)
	promociones.Delete("/:id", promocionHandler.Delete)
	promociones.Post("/:id/activar", promocionHandler.Activate)

	// Sesiones de selección
	selecciones := api.Group("/selecciones")
	seleccionHandler := NewSeleccionHandler(deps.SeleccionUC)
	selecciones.Post("/", seleccionHandler.Create)
	selecciones.Get("/:id", seleccionHandler.GetByID)
	selecciones.Delete("/:id", seleccionHandler.Delete)
	selecciones.Post("/:id/productos", seleccionHandler.AlternarProducto)
	selecciones.Post("/:id/presentaciones", seleccionHandler.AlternarPresentacion)
	selecciones.Post("/:id/confirmar", seleccionHandler.Confirmar)
	selecciones.Post("/:id/gestion", seleccionHandler.IniciarGestion)
	selecciones.Delete("/:id/gestion", seleccionHandler.CancelarGestion)
	selecciones.Post("/:id/marcas/producto", seleccionHandler.MarcarProducto)
	selecciones.Post("/:id/marcas", seleccionHandler.Marcar)
	selecciones.Delete("/:id/marcas/:idPresenta", seleccionHandler.Desmarcar)
	selecciones.Post("/:id/quitas", seleccionHandler.AplicarQuitas)
}
