// Command export pulls collections from a running lubritrack API and writes
// them to dated CSV files, one per collection.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"lubritrack/internal/pkg/csvexport"
	"lubritrack/pkg/client"
)

func main() {
	apiURL := flag.String("api", "", "API base URL (defaults to LUBRITRACK_API_URL)")
	outDir := flag.String("out", ".", "output directory")
	limit := flag.Int("limit", 100, "maximum rows per collection")
	flag.Parse()

	c := client.New(*apiURL)
	ctx := context.Background()
	now := time.Now()

	if err := exportEquipment(ctx, c, *outDir, *limit, now); err != nil {
		log.Fatal(err)
	}
	if err := exportHistory(ctx, c, *outDir, *limit, now); err != nil {
		log.Fatal(err)
	}
}

func exportEquipment(ctx context.Context, c *client.Client, dir string, limit int, now time.Time) error {
	equipos, err := c.ListEquipment(ctx, 0, limit)
	if err != nil {
		return fmt.Errorf("listing equipment: %w", err)
	}

	columns := []string{
		"id", "nombre", "componente", "criticidad", "ubicacion",
		"modelo_rodamiento", "tipo_lubricante", "cantidad_gramos",
		"frecuencia_dias", "estado",
	}
	rows := make([]csvexport.Row, 0, len(equipos))
	for _, e := range equipos {
		var grams interface{}
		if e.QuantityGrams != nil {
			grams = *e.QuantityGrams
		}
		rows = append(rows, csvexport.Row{
			"id":                e.ID,
			"nombre":            e.Name,
			"componente":        e.Component,
			"criticidad":        e.Criticality,
			"ubicacion":         e.Location,
			"modelo_rodamiento": e.BearingModel,
			"tipo_lubricante":   e.LubricantType,
			"cantidad_gramos":   grams,
			"frecuencia_dias":   e.FrequencyDays,
			"estado":            e.Status,
		})
	}

	return writeFile(filepath.Join(dir, csvexport.Filename("equipos", now)), columns, rows)
}

func exportHistory(ctx context.Context, c *client.Client, dir string, limit int, now time.Time) error {
	entries, err := c.ListHistory(ctx, nil, limit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	columns := []string{"id", "plan_id", "fecha_ejecucion", "cantidad_aplicada", "tecnico", "observaciones"}
	rows := make([]csvexport.Row, 0, len(entries))
	for _, h := range entries {
		rows = append(rows, csvexport.Row{
			"id":                h.ID,
			"plan_id":           h.PlanID,
			"fecha_ejecucion":   h.ExecutionDate.Format(time.RFC3339),
			"cantidad_aplicada": h.QuantityApplied,
			"tecnico":           h.Technician,
			"observaciones":     h.Notes,
		})
	}

	return writeFile(filepath.Join(dir, csvexport.Filename("historial", now)), columns, rows)
}

func writeFile(path string, columns []string, rows []csvexport.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := csvexport.Write(f, columns, rows); err != nil {
		return err
	}

	log.Printf("wrote %s (%d rows)", path, len(rows))
	return nil
}
