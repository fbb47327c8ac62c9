package model

import (
	"strconv"
	"strings"
	"time"
)

// Imported records arrive with inconsistent field spellings depending on
// which legacy export produced them ("Contract_Number", "contractNumber",
// "contract_number", ...). All spelling variants are resolved here, once, at
// the ingestion boundary; everything past this file sees canonical structs.

var contractFieldVariants = map[string][]string{
	"number":   {"Contract_Number", "contractNumber", "contract_number"},
	"customer": {"Customer_Name", "customerName", "customer_name", "client_name"},
	"category": {"Customer_Category", "customerCategory", "customer_category"},
	"ad_type":  {"Ad_Type", "adType", "ad_type"},
	"start":    {"Contract_Date", "startDate", "start_date", "Start_Date"},
	"end":      {"End_Date", "endDate", "end_date"},
	"total":    {"Total_Rent", "totalRent", "total_rent", "Total"},
	"discount": {"Discount", "discount"},
}

var billboardFieldVariants = map[string][]string{
	"name":         {"Billboard_Name", "billboardName", "billboard_name", "Name"},
	"size":         {"Size", "size", "billboard_size"},
	"level":        {"Level", "level", "billboard_level"},
	"municipality": {"Municipality", "municipality"},
	"location":     {"Nearest_Landmark", "location", "Location"},
	"faces":        {"Faces", "faces", "Number_of_Faces", "faces_count"},
}

// ContractFromRecord normalizes one raw imported record into a Contract.
// Missing fields stay zero-valued; spelling resolution never errors.
func ContractFromRecord(rec map[string]any) Contract {
	return Contract{
		Number:           pickString(rec, contractFieldVariants["number"]),
		CustomerName:     pickString(rec, contractFieldVariants["customer"]),
		CustomerCategory: pickString(rec, contractFieldVariants["category"]),
		AdType:           pickString(rec, contractFieldVariants["ad_type"]),
		StartAt:          pickTime(rec, contractFieldVariants["start"]),
		EndAt:            pickTime(rec, contractFieldVariants["end"]),
		BaseTotal:        pickFloat(rec, contractFieldVariants["total"]),
		DiscountValue:    pickFloat(rec, contractFieldVariants["discount"]),
	}
}

// BillboardFromRecord normalizes one raw imported record into a Billboard.
func BillboardFromRecord(rec map[string]any) Billboard {
	return Billboard{
		Name:         pickString(rec, billboardFieldVariants["name"]),
		Size:         pickString(rec, billboardFieldVariants["size"]),
		Level:        pickString(rec, billboardFieldVariants["level"]),
		Municipality: pickString(rec, billboardFieldVariants["municipality"]),
		Location:     pickString(rec, billboardFieldVariants["location"]),
		Faces:        int(pickFloat(rec, billboardFieldVariants["faces"])),
	}
}

func pickString(rec map[string]any, keys []string) string {
	for _, key := range keys {
		if v, ok := rec[key]; ok {
			switch value := v.(type) {
			case string:
				if s := strings.TrimSpace(value); s != "" {
					return s
				}
			case float64:
				return strconv.FormatFloat(value, 'f', -1, 64)
			case int:
				return strconv.Itoa(value)
			}
		}
	}
	return ""
}

func pickFloat(rec map[string]any, keys []string) float64 {
	for _, key := range keys {
		if v, ok := rec[key]; ok {
			switch value := v.(type) {
			case float64:
				return value
			case int:
				return float64(value)
			case string:
				if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
					return parsed
				}
			}
		}
	}
	return 0
}

func pickTime(rec map[string]any, keys []string) time.Time {
	layouts := []string{time.RFC3339, "2006-01-02", "02/01/2006"}
	for _, key := range keys {
		v, ok := rec[key]
		if !ok {
			continue
		}
		switch value := v.(type) {
		case time.Time:
			return value
		case string:
			raw := strings.TrimSpace(value)
			for _, layout := range layouts {
				if parsed, err := time.Parse(layout, raw); err == nil {
					return parsed
				}
			}
		}
	}
	return time.Time{}
}
