package importer

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
)

// Format is the layout of a catalog export.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ProductWriter replaces the stored catalog with the imported one.
type ProductWriter interface {
	ReplaceAll(ctx context.Context, products []domain.Product) (int, error)
}

// Importer loads a products.json array or a CSV export with the columns
// id,name,image,price,description,priceId into a catalog store. Source order
// is kept.
type Importer struct {
	reader *bufio.Reader
	writer ProductWriter
}

func New(r io.Reader, writer ProductWriter) *Importer {
	return &Importer{reader: bufio.NewReader(r), writer: writer}
}

// Run parses the input, validates the whole catalog and writes it in one go.
func (i *Importer) Run(ctx context.Context) (int, error) {
	products, err := i.Parse()
	if err != nil {
		return 0, err
	}
	if err := domain.ValidateCatalog(products); err != nil {
		return 0, err
	}
	return i.writer.ReplaceAll(ctx, products)
}

// Parse detects the input format and decodes it without writing anything.
func (i *Importer) Parse() ([]domain.Product, error) {
	format, err := DetectFormat(i.reader)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		data, err := io.ReadAll(i.reader)
		if err != nil {
			return nil, fmt.Errorf("read json: %w", err)
		}
		return productrepo.DecodeJSON(data)
	default:
		return parseCSV(i.reader)
	}
}

// DetectFormat peeks at the first non-blank byte: '[' means JSON, anything
// else is treated as CSV.
func DetectFormat(r *bufio.Reader) (Format, error) {
	for n := 1; ; n++ {
		head, err := r.Peek(n)
		if len(head) < n {
			if errors.Is(err, io.EOF) {
				return "", errors.New("empty catalog input")
			}
			return "", fmt.Errorf("detect format: %w", err)
		}
		switch head[n-1] {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return FormatJSON, nil
		default:
			return FormatCSV, nil
		}
	}
}

func parseCSV(r io.Reader) ([]domain.Product, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true

	headers, err := csvr.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"id", "price", "priceId"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	products := []domain.Product{}
	for line := 2; ; line++ {
		record, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}
		p, err := parseRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	priceStr := pick(record, index, "price")
	price, err := strconv.ParseInt(priceStr, 10, 64)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: price %q is not an integer amount in cents", domain.ErrInvalidProduct, priceStr)
	}
	return domain.Product{
		ID:          pick(record, index, "id"),
		Name:        pick(record, index, "name"),
		Image:       pick(record, index, "image"),
		Price:       price,
		Description: pick(record, index, "description"),
		PriceID:     pick(record, index, "priceId"),
	}, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
