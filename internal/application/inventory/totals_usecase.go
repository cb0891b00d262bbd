package inventory

import (
	"context"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
	"github.com/jhoicas/donaciones-api/internal/domain/quantity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
)

// TotalsUseCase totaliza el inventario (dashboard, reportes, totales de tablas agrupadas).
// Nunca suma peso con volumen: cada dimensión se informa por separado.
type TotalsUseCase struct {
	productRepo repository.ProductRepository
	formatter   *quantity.Formatter
}

// NewTotalsUseCase construye el caso de uso.
func NewTotalsUseCase(productRepo repository.ProductRepository, formatter *quantity.Formatter) *TotalsUseCase {
	return &TotalsUseCase{productRepo: productRepo, formatter: formatter}
}

// Summarize totaliza los productos que cumplen el filtro (sin paginación).
// Los productos con unidades no reconocidas no rompen el total: aparecen en Warnings.
func (uc *TotalsUseCase) Summarize(ctx context.Context, productType, search string) (*dto.TotalsResponse, error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{ProductType: productType, Search: search})
	if err != nil {
		return nil, err
	}

	items := make([]quantity.Item, 0, len(products))
	for _, p := range products {
		items = append(items, quantity.Item{
			Label:          p.Name,
			Quantity:       p.Quantity,
			Unit:           p.Unit,
			UnitWeight:     p.UnitWeight,
			UnitWeightUnit: p.UnitOfUnitWeight,
		})
	}
	summary := quantity.Aggregate(items)

	warnings := summary.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &dto.TotalsResponse{
		Weight:    summary.Totals.Weight.String(),
		Volume:    summary.Totals.Volume.String(),
		Units:     summary.Totals.Units.String(),
		Formatted: uc.formatter.FormatTotals(summary.Totals),
		Products:  len(products),
		Warnings:  warnings,
	}, nil
}
