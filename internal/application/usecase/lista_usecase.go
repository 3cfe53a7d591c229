package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Precios-admin/internal/application/dto"
	"github.com/jhoicas/Precios-admin/internal/domain/entity"
	"github.com/jhoicas/Precios-admin/internal/domain/repository"
	"github.com/jhoicas/Precios-admin/pkg/logger"
)

// ListaUseCase CRUD de listas de precios y política de activación.
type ListaUseCase struct {
	repo     repository.ListaRepository
	tipos    repository.TipoFormulaRepository
	sesiones *SesionStore
	log      *logger.Logger
}

// NewListaUseCase construye el caso de uso. tipos nil desactiva la validación de IDTIPOFORMULAOK.
func NewListaUseCase(repo repository.ListaRepository, tipos repository.TipoFormulaRepository, sesiones *SesionStore, log *logger.Logger) *ListaUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ListaUseCase{repo: repo, tipos: tipos, sesiones: sesiones, log: log.With("listas")}
}

// Listar todas las listas no eliminadas.
func (uc *ListaUseCase) Listar(ctx context.Context) (*dto.ListaListResponse, error) {
	listas, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ListaPrecios, 0, len(listas))
	for _, l := range listas {
		if !l.Eliminado {
			out = append(out, l)
		}
	}
	return &dto.ListaListResponse{Items: out}, nil
}

// Obtener lista por id.
func (uc *ListaUseCase) Obtener(ctx context.Context, id string) (*entity.ListaPrecios, error) {
	return uc.repo.GetByID(ctx, id)
}

// Crear valida y da de alta una lista con id nuevo. Activo nil equivale a activa.
func (uc *ListaUseCase) Crear(ctx context.Context, usuario string, in dto.ListaRequest) (*entity.ListaPrecios, error) {
	if err := uc.validar(in); err != nil {
		return nil, err
	}
	l := aplicarLista(entity.ListaPrecios{IdListaOK: "LISTA-" + uuid.NewString()}, in)
	l.Activo = in.Activo == nil || *in.Activo

	creada, err := uc.repo.Create(ctx, usuario, l)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("id_lista", creada.IdListaOK).Str("usuario", usuario).Msg("lista creada")
	return creada, nil
}

// Actualizar guarda los cambios de una lista. ACTIVED solo se cambia con ActivateOne /
// DeleteLogic, así que:
//   - solo cambió ACTIVED: solo la llamada de estado;
//   - solo cambiaron campos: solo UpdateOne;
//   - ambos: UpdateOne y luego la llamada de estado; si UpdateOne falla no se intenta la otra.
func (uc *ListaUseCase) Actualizar(ctx context.Context, usuario, id string, in dto.ListaRequest) (*dto.ListaEdicionResponse, error) {
	if err := uc.validar(in); err != nil {
		return nil, err
	}
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	nueva := aplicarLista(*actual, in)
	pedido := actual.Activo
	if in.Activo != nil {
		pedido = *in.Activo
	}
	return uc.ejecutar(ctx, usuario, *actual, nueva, planificar(actual.MismosCampos(nueva), actual.Activo, pedido))
}

// AplicarSeleccion reemplaza SKUSIDS por los SKUs finales de la sesión.
func (uc *ListaUseCase) AplicarSeleccion(ctx context.Context, usuario, id, sesionID string) (*dto.ListaEdicionResponse, error) {
	var skus []string
	err := uc.sesiones.Con(sesionID, func(s *Sesion) error {
		skus = s.Sel.SKUsFinales()
		return nil
	})
	if err != nil {
		return nil, err
	}
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	nueva := *actual
	nueva.SKUSIDS = skus
	return uc.ejecutar(ctx, usuario, *actual, nueva, planificar(actual.MismosCampos(nueva), actual.Activo, actual.Activo))
}

// Activar ActivateOne.
func (uc *ListaUseCase) Activar(ctx context.Context, usuario, id string) error {
	return uc.repo.Activate(ctx, usuario, id)
}

// Eliminar borrado lógico (queda inactiva) o físico.
func (uc *ListaUseCase) Eliminar(ctx context.Context, usuario, id string, fisico bool) error {
	var err error
	if fisico {
		err = uc.repo.DeleteHard(ctx, usuario, id)
	} else {
		err = uc.repo.Deactivate(ctx, usuario, id)
	}
	if err != nil {
		return err
	}
	uc.log.Info().Str("id_lista", id).Bool("fisico", fisico).Str("usuario", usuario).Msg("lista eliminada")
	return nil
}

func (uc *ListaUseCase) ejecutar(ctx context.Context, usuario string, actual, nueva entity.ListaPrecios, plan planEdicion) (*dto.ListaEdicionResponse, error) {
	nueva.Activo = actual.Activo
	e := edicion[entity.ListaPrecios]{
		log: uc.log, entidad: "lista", campoID: "id_lista", id: actual.IdListaOK,
		actualizar:  func() (*entity.ListaPrecios, error) { return uc.repo.Update(ctx, usuario, nueva) },
		activar:     func() error { return uc.repo.Activate(ctx, usuario, actual.IdListaOK) },
		desactivar:  func() error { return uc.repo.Deactivate(ctx, usuario, actual.IdListaOK) },
		fijarActivo: func(l *entity.ListaPrecios, activo bool) { l.Activo = activo },
	}
	item, acciones, err := e.ejecutar(plan, actual)
	if err != nil {
		return nil, err
	}
	return &dto.ListaEdicionResponse{Item: item, Acciones: acciones}, nil
}

func (uc *ListaUseCase) validar(in dto.ListaRequest) error {
	f := formulario{}
	if strings.TrimSpace(in.DesLista) == "" {
		f["DESLISTA"] = CampoRequerido
	}
	if in.FechaExpiraFin.Antes(in.FechaExpiraIni) {
		f["FECHAEXPIRAFIN"] = RangoFechasInvalido
	}
	if in.IdTipoFormulaOK != "" && uc.tipos != nil && !uc.tipos.Existe(in.IdTipoFormulaOK) {
		f["IDTIPOFORMULAOK"] = TipoDesconocido
	}
	return f.err()
}

// aplicarLista copia los campos editables de in sobre base. ACTIVED no se toca.
func aplicarLista(base entity.ListaPrecios, in dto.ListaRequest) entity.ListaPrecios {
	base.DesLista = strings.TrimSpace(in.DesLista)
	// SKUSIDS ausente en el cuerpo conserva los de base; [] los vacía.
	if in.SKUSIDS != nil || base.SKUSIDS == nil {
		base.SKUSIDS = sinRepetidos(in.SKUSIDS)
	}
	base.IdInstitutoOK = in.IdInstitutoOK
	base.IdTipoListaOK = in.IdTipoListaOK
	base.IdTipoFormulaOK = in.IdTipoFormulaOK
	base.FechaExpiraIni = in.FechaExpiraIni
	base.FechaExpiraFin = in.FechaExpiraFin
	return base
}

func sinRepetidos(xs []string) []string {
	out := make([]string, 0, len(xs))
	vistos := make(map[string]bool, len(xs))
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" || vistos[x] {
			continue
		}
		vistos[x] = true
		out = append(out, x)
	}
	return out
}
