package service

import "mealcrate/internal/domain"

// AggregatePreferences computes per-category, per-item and per-dietary-type
// quantity totals over a pre-fetched order set. Category and dietary
// vocabularies are open-ended; whatever strings appear in the data become
// keys. TopItems ties are broken by first-encounter order, an accepted
// arbitrary tie-break rather than a business rule.
func AggregatePreferences(orders []domain.Order) domain.PreferenceReport {
	report := domain.PreferenceReport{
		CategoryPreferences: map[string]int{},
		TopItems:            []domain.ItemCount{},
		DietaryPreferences:  map[string]int{},
	}

	quantities := map[string]int{}
	var seen []string
	for _, order := range orders {
		for _, item := range order.Items {
			report.CategoryPreferences[item.Category] += item.Quantity

			dietary := item.DietaryType
			if dietary == "" {
				dietary = domain.DietaryRegular
			}
			report.DietaryPreferences[dietary] += item.Quantity

			if _, ok := quantities[item.MealName]; !ok {
				seen = append(seen, item.MealName)
			}
			quantities[item.MealName] += item.Quantity
		}
	}

	for _, ranked := range rankCounts(seen, quantities, topLimit) {
		report.TopItems = append(report.TopItems, domain.ItemCount{
			Name:     ranked.key,
			Quantity: ranked.count,
		})
	}

	return report
}
