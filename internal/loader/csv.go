package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	ordersdomain "github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
)

// Column headers of an orders CSV. One row carries one line item;
// consecutive rows sharing an order_id fold into one order.
const (
	colOrderID         = "order_id"
	colProductID       = "product_id"
	colQuantity        = "quantity"
	colDeliverAt       = "deliver_at"
	colCreatedAt       = "created_at"
	colCustomerAddress = "customer_address"
)

// OrdersCSV loads an order batch from a header+rows CSV file. An empty
// path or a file that cannot be opened is a hard failure. A file whose
// header carries none of the expected columns, and rows that do not
// parse, degrade to an empty or partial result instead.
func OrdersCSV(path string) ([]*ordersdomain.Order, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return []*ordersdomain.Order{}, nil
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	columns := indexColumns(header)
	if _, ok := columns[colOrderID]; !ok {
		return []*ordersdomain.Order{}, nil
	}

	var orders []*ordersdomain.Order
	var current *ordersdomain.Order
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		order, line, ok := parseOrderRow(columns, row)
		if !ok {
			continue
		}
		if current == nil || current.ID != order.ID {
			current = order
			orders = append(orders, current)
		}
		if line != nil {
			current.Lines = append(current.Lines, line)
		}
	}
	if orders == nil {
		return []*ordersdomain.Order{}, nil
	}
	return orders, nil
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

func parseOrderRow(columns map[string]int, row []string) (*ordersdomain.Order, *ordersdomain.OrderLine, bool) {
	id, ok := field(columns, row, colOrderID)
	if !ok {
		return nil, nil, false
	}

	order := &ordersdomain.Order{ID: id}
	if raw, ok := field(columns, row, colDeliverAt); ok {
		parsed, err := parseTime(raw)
		if err != nil {
			return nil, nil, false
		}
		order.DeliverAt = parsed
	}
	if raw, ok := field(columns, row, colCreatedAt); ok {
		parsed, err := parseTime(raw)
		if err != nil {
			return nil, nil, false
		}
		order.CreatedAt = parsed
	}
	if raw, ok := field(columns, row, colCustomerAddress); ok {
		order.CustomerAddress = raw
	}

	productID, haveProduct := field(columns, row, colProductID)
	rawQuantity, haveQuantity := field(columns, row, colQuantity)
	if !haveProduct || !haveQuantity {
		return order, nil, true
	}
	quantity, err := strconv.ParseInt(rawQuantity, 10, 64)
	if err != nil {
		return nil, nil, false
	}
	return order, &ordersdomain.OrderLine{ProductID: productID, Quantity: quantity}, true
}

func field(columns map[string]int, row []string, name string) (string, bool) {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return "", false
	}
	value := strings.TrimSpace(row[idx])
	if value == "" {
		return "", false
	}
	return value, true
}
