// services/masterdata.go
package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuepro-backend/models"
)

// MasterRow is one loosely-shaped master record as delivered by the legacy
// upstream (import files, old API dumps). Field names vary per source, so
// each entity gets exactly one mapping function here; the pricing code only
// ever sees the typed models.
type MasterRow map[string]interface{}

// MasterDataReader fetches master rows by table name.
type MasterDataReader interface {
	Read(ctx context.Context, venueID uuid.UUID, tables []string) (map[string][]MasterRow, error)
}

const (
	TableTaxRecords = "tax_records"
	TableHsnCodes   = "hsn_codes"
)

// LoadMasterIndex reads the tax and HSN masters through the reader and
// builds the lookup index used by the pricing functions.
func LoadMasterIndex(ctx context.Context, reader MasterDataReader, venueID uuid.UUID) (*MasterIndex, error) {
	rows, err := reader.Read(ctx, venueID, []string{TableTaxRecords, TableHsnCodes})
	if err != nil {
		return nil, err
	}

	var taxes []models.TaxRecord
	for _, row := range rows[TableTaxRecords] {
		if rec := MapTaxRow(row); rec != nil {
			taxes = append(taxes, *rec)
		}
	}
	var hsns []models.HsnCode
	for _, row := range rows[TableHsnCodes] {
		if rec := MapHsnRow(row); rec != nil {
			hsns = append(hsns, *rec)
		}
	}
	return NewMasterIndex(taxes, hsns), nil
}

// MapTaxRow normalizes one legacy tax master row. Returns nil when the row
// has no usable code.
func MapTaxRow(row MasterRow) *models.TaxRecord {
	code := rowString(row, "code", "taxCode", "tax_code", "taxcode")
	if code == "" {
		return nil
	}
	return &models.TaxRecord{
		Code:        code,
		Description: rowString(row, "description", "desc", "name"),
		Rate:        rowFloat(row, "rate", "taxRate", "tax_rate", "igst"),
		CGSTRate:    rowFloat(row, "cgst", "cgstRate", "cgst_rate"),
		SGSTRate:    rowFloat(row, "sgst", "sgstRate", "sgst_rate"),
		IsActive:    true,
	}
}

// MapHsnRow normalizes one legacy HSN master row.
func MapHsnRow(row MasterRow) *models.HsnCode {
	code := rowString(row, "code", "hsn", "hsnCode", "hsn_code")
	if code == "" {
		return nil
	}
	return &models.HsnCode{
		Code:        code,
		Description: rowString(row, "description", "desc", "name"),
		TaxCode:     rowString(row, "taxCode", "tax_code", "tax"),
		IsActive:    true,
	}
}

// MapHallRow normalizes one legacy hall master row.
func MapHallRow(row MasterRow) *models.Hall {
	name := rowString(row, "name", "hallName", "hall_name")
	if name == "" {
		return nil
	}
	hall := &models.Hall{
		Name:        name,
		Description: rowString(row, "description", "desc"),
		HSNCode:     rowString(row, "hsn", "hsnCode", "hsn_code"),
		FullDayRate: rowFloat(row, "fullDayRate", "full_day_rate", "dayRate"),
		IsActive:    true,
	}
	if rate := rowFloat(row, "slotRate", "slot_rate", "rate", "price"); rate != nil {
		hall.SlotRate = *rate
	}
	if capacity := rowFloat(row, "capacity", "seating", "pax"); capacity != nil {
		hall.Capacity = int(*capacity)
	}
	return hall
}

// MapServiceRow normalizes one legacy service master row.
func MapServiceRow(row MasterRow) *models.Service {
	name := rowString(row, "name", "serviceName", "service_name")
	if name == "" {
		return nil
	}
	svc := &models.Service{
		Name:        name,
		Description: rowString(row, "description", "desc"),
		Category:    rowString(row, "category", "group"),
		TaxCode:     rowString(row, "taxCode", "tax_code", "tax"),
		HSNCode:     rowString(row, "hsn", "hsnCode", "hsn_code", "sac"),
		IsActive:    true,
	}
	if svc.Category == "" {
		svc.Category = "General"
	}
	if price := rowFloat(row, "price", "rate", "basePrice", "base_price"); price != nil {
		svc.Price = *price
	}
	return svc
}

func rowString(row MasterRow, keys ...string) string {
	for _, k := range keys {
		v, ok := lookupKey(row, k)
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func rowFloat(row MasterRow, keys ...string) *float64 {
	for _, k := range keys {
		v, ok := lookupKey(row, k)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return &n
		case float32:
			f := float64(n)
			return &f
		case int:
			f := float64(n)
			return &f
		case int64:
			f := float64(n)
			return &f
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// lookupKey tolerates case differences in row keys.
func lookupKey(row MasterRow, key string) (interface{}, bool) {
	if v, ok := row[key]; ok && v != nil {
		return v, true
	}
	lower := strings.ToLower(key)
	for k, v := range row {
		if strings.ToLower(k) == lower && v != nil {
			return v, true
		}
	}
	return nil, false
}

// GormMasterReader reads master tables from the venue's own database. The
// loosely-typed shape matches what the import path and the legacy sync feed
// produce.
type GormMasterReader struct {
	DB *gorm.DB
}

func (r *GormMasterReader) Read(ctx context.Context, venueID uuid.UUID, tables []string) (map[string][]MasterRow, error) {
	out := make(map[string][]MasterRow, len(tables))
	for _, table := range tables {
		var rows []map[string]interface{}
		if err := r.DB.WithContext(ctx).Table(table).Where("venue_id = ?", venueID).Find(&rows).Error; err != nil {
			return nil, err
		}
		mapped := make([]MasterRow, len(rows))
		for i, row := range rows {
			mapped[i] = MasterRow(row)
		}
		out[table] = mapped
	}
	return out, nil
}
