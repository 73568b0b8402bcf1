package main

import (
	"fmt"

	"impact-report-backend/internal/impact"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type impactOutput struct {
	TotalGiving  decimal.Decimal     `json:"totalGiving"`
	Coefficients impact.Coefficients `json:"coefficients"`
	Impact       impact.Metrics      `json:"impact"`
}

func newImpactCmd() *cobra.Command {
	var dollarsPerMeal, mealsPerPerson, poundsPerMeal, co2PerPound, waterPerPound float64

	cmd := &cobra.Command{
		Use:   "impact AMOUNT",
		Short: "Compute the impact metrics of a giving total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			overrides := &impact.Overrides{}
			set := func(flag string, value float64, dst **float64) {
				if cmd.Flags().Changed(flag) {
					v := value
					*dst = &v
				}
			}
			set("dollars-per-meal", dollarsPerMeal, &overrides.DollarsPerMeal)
			set("meals-per-person", mealsPerPerson, &overrides.MealsPerPerson)
			set("pounds-per-meal", poundsPerMeal, &overrides.PoundsPerMeal)
			set("co2-per-pound", co2PerPound, &overrides.CO2PerPound)
			set("water-per-pound", waterPerPound, &overrides.WaterPerPound)

			coefficients := overrides.Resolve()
			return writeJSON(cmd.OutOrStdout(), impactOutput{
				TotalGiving:  total,
				Coefficients: coefficients,
				Impact:       impact.ComputeWith(total.InexactFloat64(), coefficients),
			})
		},
	}

	cmd.Flags().Float64Var(&dollarsPerMeal, "dollars-per-meal", 0, "Override dollars per meal")
	cmd.Flags().Float64Var(&mealsPerPerson, "meals-per-person", 0, "Override meals per person")
	cmd.Flags().Float64Var(&poundsPerMeal, "pounds-per-meal", 0, "Override pounds per meal")
	cmd.Flags().Float64Var(&co2PerPound, "co2-per-pound", 0, "Override CO2 per pound")
	cmd.Flags().Float64Var(&waterPerPound, "water-per-pound", 0, "Override water per pound")
	return cmd
}
