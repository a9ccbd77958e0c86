package application

import (
	"github.com/shopspring/decimal"

	catalogdomain "github.com/zngreg/pizzeria-orders/internal/domains/catalog/domain"
	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
)

var oneHundred = decimal.NewFromInt(100)

// PriceCalculator computes line and order totals from catalog prices.
type PriceCalculator struct {
	catalog *catalogdomain.Catalog
}

// NewPriceCalculator creates a price calculator over the given catalog.
func NewPriceCalculator(catalog *catalogdomain.Catalog) *PriceCalculator {
	return &PriceCalculator{catalog: catalog}
}

// CalculatePrice prices the order in place. For each line the gross is
// unit price times quantity, VAT is the product's rate applied to that
// gross, and the line total is their sum. Lines whose product is not in
// the catalog are skipped without failing the order.
//
// The order-level fields accumulate rather than assign: calling this a
// second time on the same order compounds its totals. Callers must
// invoke it exactly once per order lifetime.
func (p *PriceCalculator) CalculatePrice(order *domain.Order) {
	if order == nil || len(order.Lines) == 0 {
		return
	}

	gross := decimal.Zero
	vat := decimal.Zero
	total := decimal.Zero
	for _, line := range order.Lines {
		product, ok := p.catalog.Product(line.ProductID)
		if !ok {
			continue
		}
		lineGross := product.Price.Mul(decimal.NewFromInt(line.Quantity))
		lineVAT := lineGross.Mul(product.VATRate).Div(oneHundred)
		line.TotalPrice = lineGross.Add(lineVAT)

		gross = gross.Add(lineGross)
		vat = vat.Add(lineVAT)
		total = total.Add(line.TotalPrice)
	}

	order.GrossPrice = order.GrossPrice.Add(gross)
	order.VATAmount = order.VATAmount.Add(vat)
	order.TotalPrice = order.TotalPrice.Add(total)
}
