package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Backend   BackendConfig
	Catalogo  CatalogoConfig
	Seleccion SeleccionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
	// RequireUser rechaza peticiones /api sin cabecera X-Usuario.
	RequireUser bool
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig configuración del backend CRUD externo (categorías, productos, presentaciones,
// precios, listas y promociones). Cada ruta se parametriza con ProcessType.
type BackendConfig struct {
	BaseURL            string
	Timeout            time.Duration
	CategoriasPath     string
	ProductosPath      string
	PresentacionesPath string
	PreciosItemsPath   string
	ListasPath         string
	PromocionesPath    string
}

// Endpoint concatena BaseURL y la ruta indicada sin duplicar "/".
func (c BackendConfig) Endpoint(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// CatalogoConfig ubicación del catálogo YAML de tipos de fórmula.
// Vacío = sin catálogo (no se valida IDTIPOFORMULAOK).
type CatalogoConfig struct {
	FormulasPath string
}

// SeleccionConfig parámetros de las sesiones de selección en memoria.
type SeleccionConfig struct {
	TTL time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BACKEND_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "precios-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			RequireUser: v.IsSet("HTTP_REQUIRE_USER") && v.GetBool("HTTP_REQUIRE_USER"),
		},
		Backend: BackendConfig{
			BaseURL:            getString(v, "BACKEND_BASE_URL", "http://localhost:4004"),
			Timeout:            time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
			CategoriasPath:     getString(v, "BACKEND_CATEGORIAS_PATH", "/api/cat/categoriasCRUD"),
			ProductosPath:      getString(v, "BACKEND_PRODUCTOS_PATH", "/api/ztproducts/crudProducts"),
			PresentacionesPath: getString(v, "BACKEND_PRESENTACIONES_PATH", "/api/ztproducts-presentaciones/productsPresentacionesCRUD"),
			PreciosItemsPath:   getString(v, "BACKEND_PRECIOS_ITEMS_PATH", "/api/precios-items/preciosItemsCRUD"),
			ListasPath:         getString(v, "BACKEND_LISTAS_PATH", "/api/precios-listas/preciosListasCRUD"),
			PromocionesPath:    getString(v, "BACKEND_PROMOCIONES_PATH", "/api/ztpromociones/crudPromociones"),
		},
		Catalogo: CatalogoConfig{
			FormulasPath: getString(v, "CATALOGO_FORMULAS_PATH", ""),
		},
		Seleccion: SeleccionConfig{
			TTL: time.Duration(getInt(v, "SELECCION_TTL_MINUTES", 120)) * time.Minute,
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_BASE_URL es obligatorio")
	}
	if cfg.Backend.Timeout <= 0 {
		return nil, fmt.Errorf("config: BACKEND_TIMEOUT_SECONDS debe ser positivo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
