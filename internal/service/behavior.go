package service

import "mealcrate/internal/domain"

// Order-frequency buckets. Boundaries are inclusive: a customer with exactly
// 2 orders lands in "1-2 orders", exactly 5 in "3-5 orders", exactly 10 in
// "6-10 orders".
const (
	bucketOneToTwo    = "1-2 orders"
	bucketThreeToFive = "3-5 orders"
	bucketSixToTen    = "6-10 orders"
	bucketTenPlus     = "10+ orders"
)

// AggregateBehavior computes ordering-behavior statistics over a
// pre-fetched, date-windowed order set. The input is never mutated.
func AggregateBehavior(orders []domain.Order) domain.BehaviorReport {
	report := domain.BehaviorReport{
		TotalOrders: len(orders),
		OrderFrequencyDistribution: map[string]int{
			bucketOneToTwo:    0,
			bucketThreeToFive: 0,
			bucketSixToTen:    0,
			bucketTenPlus:     0,
		},
	}

	perCustomer := map[int]int{}
	var revenue float64
	for _, order := range orders {
		perCustomer[order.CustomerID]++
		report.PeakHours[order.CreatedAt.Hour()]++
		revenue += order.Total()
	}

	report.TotalCustomers = len(perCustomer)
	if report.TotalOrders > 0 {
		report.AverageOrderValue = revenue / float64(report.TotalOrders)
	}

	repeat := 0
	for _, count := range perCustomer {
		report.OrderFrequencyDistribution[frequencyBucket(count)]++
		if count > 1 {
			repeat++
		}
	}
	if report.TotalCustomers > 0 {
		report.RepeatCustomerRate = float64(repeat) / float64(report.TotalCustomers)
	}

	return report
}

func frequencyBucket(orderCount int) string {
	switch {
	case orderCount <= 2:
		return bucketOneToTwo
	case orderCount <= 5:
		return bucketThreeToFive
	case orderCount <= 10:
		return bucketSixToTen
	default:
		return bucketTenPlus
	}
}
