// Package output provides utilities for formatting and displaying optimization results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iwvelando/travel-optimizer/internal/optimizer"
	"github.com/iwvelando/travel-optimizer/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable summary
// of each alternative.
func PrettyFormat(alternatives []optimizer.Alternative) {
	p := message.NewPrinter(language.English)
	for i, alt := range alternatives {
		fmt.Printf("--- Alternative: %s (value score %.2f) ---\n", alt.Label, alt.ValueScore)
		if alt.Description != "" {
			fmt.Printf("%s\n", alt.Description)
		}
		_, _ = p.Printf("Total budget: $%.2f | Total cost: $%.2f | Balance: $%.2f\n",
			alt.TotalBudget, alt.TotalCost, alt.Balance)

		fmt.Printf("Category      | Allocated     | Actual\n")
		fmt.Printf("________      | _________     | ______\n")
		for _, category := range constants.Categories {
			_, _ = p.Printf("%-13s | $%.2f | $%.2f\n",
				category, alt.Allocation[category], alt.ActualCosts[category])
		}

		if alt.Selected.Flight != nil {
			_, _ = p.Printf("Flight: %s $%.2f (%d stops)\n",
				alt.Selected.Flight.Airline, alt.Selected.Flight.Price, alt.Selected.Flight.Outbound.Stops)
		} else {
			fmt.Printf("Flight: none\n")
		}
		if alt.Selected.Hotel != nil {
			rating := 0.0
			if alt.Selected.Hotel.Rating != nil {
				rating = *alt.Selected.Hotel.Rating
			}
			_, _ = p.Printf("Hotel: %s $%.2f (rating %.1f)\n",
				alt.Selected.Hotel.Name, alt.Selected.Hotel.Price.Total, rating)
		} else {
			fmt.Printf("Hotel: none\n")
		}
		names := make([]string, len(alt.Selected.Activities))
		for j, activity := range alt.Selected.Activities {
			names[j] = activity.Name
		}
		fmt.Printf("Activities (%d): %s\n", len(alt.Selected.Activities), strings.Join(names, ", "))

		if i < len(alternatives)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvString renders the alternatives in comma-separated value format.
func CsvString(alternatives []optimizer.Alternative) string {
	var builder strings.Builder

	builder.WriteString(`"label","comfort level","value score","total budget","total cost","balance"`)
	for _, category := range constants.Categories {
		builder.WriteString(fmt.Sprintf(`,"%s allocated","%s actual"`, category, category))
	}
	builder.WriteString("\n")

	for _, alt := range alternatives {
		builder.WriteString(fmt.Sprintf(`"%s","%s","%.2f","%.2f","%.2f","%.2f"`,
			alt.Label, alt.ComfortLevel, alt.ValueScore, alt.TotalBudget, alt.TotalCost, alt.Balance))
		for _, category := range constants.Categories {
			builder.WriteString(fmt.Sprintf(`,"%.2f","%.2f"`,
				alt.Allocation[category], alt.ActualCosts[category]))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(alternatives []optimizer.Alternative) {
	fmt.Print(CsvString(alternatives))
}

// JSONFormat outputs the alternatives as indented JSON.
func JSONFormat(alternatives []optimizer.Alternative) error {
	encoded, err := json.MarshalIndent(alternatives, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode alternatives, %s", err)
	}
	fmt.Println(string(encoded))
	return nil
}
