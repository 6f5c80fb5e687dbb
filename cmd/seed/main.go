package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"lubritrack/internal/config"
	"lubritrack/internal/database"
	"lubritrack/internal/domain"
	"lubritrack/internal/repository"
)

func ptr(v float64) *float64 { return &v }

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	equipmentRepo := repository.NewEquipmentRepository(db)
	planRepo := repository.NewPlanRepository(db)

	seeds := []struct {
		equipo domain.Equipment
		// negative values backdate the plan so some rows show up overdue
		daysUntilDue int
	}{
		{
			equipo: domain.Equipment{
				Name:          "Bomba centrífuga P-101",
				Component:     "Rodamiento lado acople",
				Criticality:   domain.CriticalityHigh,
				Location:      "Sala de bombas",
				BearingModel:  "SKF 6208",
				LubricantType: "Grasa EP2",
				QuantityGrams: ptr(15),
				FrequencyDays: 15,
				Status:        domain.StatusActive,
			},
			daysUntilDue: -3,
		},
		{
			equipo: domain.Equipment{
				Name:          "Motor ventilador V-201",
				Component:     "Rodamiento delantero",
				Criticality:   domain.CriticalityMedium,
				Location:      "Torre de enfriamiento",
				BearingModel:  "SKF 6305",
				LubricantType: "Grasa EP2",
				QuantityGrams: ptr(8),
				FrequencyDays: 30,
				Status:        domain.StatusActive,
			},
			daysUntilDue: 1,
		},
		{
			equipo: domain.Equipment{
				Name:          "Reductor cinta transportadora C-12",
				Criticality:   domain.CriticalityLow,
				Location:      "Nave 2",
				LubricantType: "Aceite ISO VG 220",
				FrequencyDays: 90,
				Status:        domain.StatusActive,
			},
			daysUntilDue: 45,
		},
	}

	ctx := context.Background()
	now := time.Now()

	for _, s := range seeds {
		equipo := s.equipo
		if err := equipmentRepo.Create(ctx, &equipo); err != nil {
			log.Printf("skipping %s: %v", equipo.Name, err)
			continue
		}

		nextDue := now.AddDate(0, 0, s.daysUntilDue)
		plan := &domain.LubricationPlan{
			EquipmentID:    equipo.ID,
			LubricantType:  equipo.LubricantType,
			QuantityGrams:  equipo.QuantityGrams,
			FrequencyDays:  equipo.FrequencyDays,
			LastLubricated: nextDue.AddDate(0, 0, -equipo.FrequencyDays),
			NextDue:        nextDue,
		}
		if err := planRepo.Create(ctx, plan); err != nil {
			log.Printf("plan for %s: %v", equipo.Name, err)
			continue
		}

		log.Printf("seeded %s (plan %d, due %s)", equipo.Name, plan.ID, nextDue.Format("2006-01-02"))
	}
}
