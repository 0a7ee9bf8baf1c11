package usecase

import (
	"github.com/dkolor/cotizador-api/internal/application/dto"
	"github.com/dkolor/cotizador-api/internal/application/state"
	"github.com/dkolor/cotizador-api/internal/domain/entity"
)

// lowStockThreshold stock igual o menor cuenta como "stock bajo".
const lowStockThreshold = 5

// DashboardUseCase indicadores agregados del catálogo.
type DashboardUseCase struct {
	st *state.State
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(st *state.State) *DashboardUseCase {
	return &DashboardUseCase{st: st}
}

// Stats calcula los indicadores en fresco sobre el estado vigente.
func (uc *DashboardUseCase) Stats() dto.DashboardResponse {
	var out dto.DashboardResponse
	uc.st.View(func(snap *entity.Snapshot) {
		out.Products = len(snap.Products)
		out.Clients = len(snap.Clients)
		for _, p := range snap.Products {
			out.TotalStock += p.Stock
			if p.Stock <= lowStockThreshold {
				out.LowStock++
			}
		}
	})
	return out
}
