// Package crudapi adaptador HTTP hacia el backend CRUD externo.
//
// Cada recurso se expone en una sola ruta parametrizada por ProcessType
// (GetAll, GetOne, AddOne, UpdateOne, DeleteHard, DeleteLogic, ActivateOne) y LoggedUser.
// Todas las llamadas son POST con cuerpo JSON; el backend envuelve la respuesta en
// value / data / dataRes de forma no uniforme, por eso se desenvuelve con tolerancia.
package crudapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/jhoicas/Precios-admin/internal/domain"
	"github.com/jhoicas/Precios-admin/pkg/logger"
)

// ProcessType operaciones reconocidas por el backend.
const (
	ProcesoGetAll      = "GetAll"
	ProcesoGetOne      = "GetOne"
	ProcesoAddOne      = "AddOne"
	ProcesoUpdateOne   = "UpdateOne"
	ProcesoDeleteHard  = "DeleteHard"
	ProcesoDeleteLogic = "DeleteLogic"
	ProcesoActivateOne = "ActivateOne"
)

// usuarioSistema se envía como LoggedUser cuando la operación es de solo lectura
// o el llamador no indicó usuario.
const usuarioSistema = "precios-admin"

const maxRespuesta = 8 << 20

// ErrorRespuesta respuesta no exitosa del backend.
type ErrorRespuesta struct {
	Status  int
	Proceso string
	Ruta    string
	Mensaje string
}

func (e *ErrorRespuesta) Error() string {
	return fmt.Sprintf("crudapi: %s %s HTTP %d: %s", e.Proceso, e.Ruta, e.Status, e.Mensaje)
}

// Unwrap permite errors.Is con los errores de dominio.
func (e *ErrorRespuesta) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	default:
		return domain.ErrBackend
	}
}

// Client cliente HTTP compartido por los repositorios del paquete.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout aplica a cada llamada completa.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("crudapi"),
	}
}

// llamada describe una invocación a una ruta del backend.
type llamada struct {
	ruta    string
	proceso string
	usuario string
	params  url.Values
	cuerpo  any
}

// ejecutar realiza la llamada y decodifica la carga útil desenvuelta en destino (puede ser nil).
func (c *Client) ejecutar(ctx context.Context, ll llamada, destino any) error {
	q := url.Values{}
	for k, vs := range ll.params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("ProcessType", ll.proceso)
	usuario := ll.usuario
	if usuario == "" {
		usuario = usuarioSistema
	}
	q.Set("LoggedUser", usuario)

	endpoint := c.baseURL + "/" + strings.TrimLeft(ll.ruta, "/") + "?" + q.Encode()

	var body io.Reader = http.NoBody
	if ll.cuerpo != nil {
		raw, err := json.Marshal(ll.cuerpo)
		if err != nil {
			return fmt.Errorf("crudapi: serializar cuerpo: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("crudapi: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	inicio := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("crudapi: timeout o cancelación: %w", ctx.Err())
		}
		c.log.Error().Err(err).Str("ruta", ll.ruta).Str("proceso", ll.proceso).Msg("llamada al backend fallida")
		return fmt.Errorf("crudapi: llamada HTTP fallida: %w: %v", domain.ErrBackend, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxRespuesta))
	if err != nil {
		return fmt.Errorf("crudapi: leer respuesta: %w", err)
	}

	c.log.Debug().
		Str("ruta", ll.ruta).
		Str("proceso", ll.proceso).
		Int("status", resp.StatusCode).
		Dur("duracion", time.Since(inicio)).
		Msg("respuesta del backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &ErrorRespuesta{Status: resp.StatusCode, Proceso: ll.proceso, Ruta: ll.ruta, Mensaje: mensajeError(raw)}
		c.log.Warn().Int("status", e.Status).Str("ruta", ll.ruta).Str("proceso", ll.proceso).Str("mensaje", e.Mensaje).Msg("backend respondió con error")
		return e
	}

	if destino == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return decodificar(desenvolver(raw), destino)
}

// mensajeError extrae un texto legible del cuerpo de error.
func mensajeError(raw []byte) string {
	var cuerpo struct {
		Message   string `json:"message"`
		Error     any    `json:"error"`
		MessageUI string `json:"messageUSR"`
	}
	if err := json.Unmarshal(raw, &cuerpo); err == nil {
		switch {
		case cuerpo.MessageUI != "":
			return cuerpo.MessageUI
		case cuerpo.Message != "":
			return cuerpo.Message
		}
		switch v := cuerpo.Error.(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]any:
			if m, ok := v["message"].(string); ok && m != "" {
				return m
			}
		}
	}
	s := strings.TrimSpace(string(raw))
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}

var llavesEnvoltorio = []string{"value", "data", "dataRes"}

// desenvolver baja por value / data / dataRes mientras existan. Un arreglo de un solo
// objeto que a su vez tiene envoltorio también se atraviesa.
func desenvolver(raw []byte) json.RawMessage {
	actual := json.RawMessage(bytes.TrimSpace(raw))
	for i := 0; i < 8; i++ {
		siguiente, ok := bajar(actual)
		if !ok {
			break
		}
		actual = siguiente
	}
	return actual
}

func bajar(raw json.RawMessage) (json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	switch raw[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, false
		}
		for _, k := range llavesEnvoltorio {
			if v, ok := obj[k]; ok && len(v) > 0 && string(v) != "null" {
				return bytes.TrimSpace(v), true
			}
		}
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil || len(arr) != 1 {
			return nil, false
		}
		unico := bytes.TrimSpace(arr[0])
		if len(unico) == 0 || unico[0] != '{' {
			return nil, false
		}
		if _, ok := bajar(unico); ok {
			return unico, true
		}
	}
	return nil, false
}

// decodificar adapta la carga a destino: un objeto se envuelve si destino es slice;
// de un arreglo se toma el primer elemento si destino no lo es.
func decodificar(raw json.RawMessage, destino any) error {
	if len(raw) == 0 || string(raw) == "null" {
		if esSlice(destino) {
			return nil
		}
		return domain.ErrNotFound
	}
	switch {
	case raw[0] == '{' && esSlice(destino):
		raw = append(append(json.RawMessage{'['}, raw...), ']')
	case raw[0] == '[' && !esSlice(destino):
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil {
			return fmt.Errorf("crudapi: decodificar respuesta: %w", err)
		}
		if len(arr) == 0 {
			return domain.ErrNotFound
		}
		raw = arr[0]
	}
	if err := json.Unmarshal(raw, destino); err != nil {
		return fmt.Errorf("crudapi: decodificar respuesta: %w", err)
	}
	return nil
}

func esSlice(destino any) bool {
	t := reflect.TypeOf(destino)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Slice
}

// esNoEncontrado informa si err equivale a "no existe".
func esNoEncontrado(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
