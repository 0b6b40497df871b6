// Package export serializes fixture documents and vessel listings.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kilianp07/fleetmock/core/model"
)

// Indent is the JSON indentation used for fixture files.
const Indent = "  "

// MarshalJSON encodes v as indented JSON followed by a newline.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", Indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteJSONFile atomically replaces path with the JSON encoding of v and
// returns the number of bytes written.
func WriteJSONFile(path string, v any) (int, error) {
	data, err := MarshalJSON(v)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, err
	}
	return len(data), nil
}

var vesselHeader = []string{
	"vessel_id", "vessel_type", "dwt", "safety_score", "main_engine_fuel_type",
	"total_fuel", "total_co2eq", "adjusted_cost_usd", "selected",
}

// WriteVesselsCSV writes vessels to w in CSV format with a header row.
func WriteVesselsCSV(w io.Writer, vessels []model.Vessel) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(vesselHeader); err != nil {
		return err
	}
	for _, v := range vessels {
		rec := []string{
			strconv.Itoa(v.ID),
			v.Type,
			strconv.Itoa(v.DWT),
			strconv.Itoa(v.SafetyScore),
			string(v.FuelType),
			strconv.FormatFloat(v.TotalFuel, 'f', 2, 64),
			strconv.FormatFloat(v.TotalCO2eq, 'f', 2, 64),
			strconv.FormatFloat(v.CostUSD, 'f', 2, 64),
			strconv.FormatBool(v.Selected),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
