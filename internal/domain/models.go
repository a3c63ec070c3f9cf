package domain

import "time"

// DietaryRegular is the bucket for line items whose meal carries no dietary
// type. The vocabulary is otherwise open-ended.
const DietaryRegular = "Regular"

// Kafka event types that invalidate cached reports.
const (
	EventNewOrder    = "new_order"
	EventNewFeedback = "new_feedback"
)

type Order struct {
	ID         int         `json:"id"`
	CustomerID int         `json:"customer_id"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []OrderItem `json:"items"`
}

// Total is the order value: the sum of its line totals.
func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.LineTotal()
	}
	return total
}

type OrderItem struct {
	MealID      int     `json:"meal_id"`
	MealName    string  `json:"meal_name"`
	Category    string  `json:"category"`
	DietaryType string  `json:"dietary_type"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type FeedbackRecord struct {
	ID         int       `json:"id"`
	CustomerID int       `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments"`
	CreatedAt  time.Time `json:"created_at"`
}

type AnalyticsEvent struct {
	Type       string    `json:"type"`
	CustomerID int       `json:"customer_id"`
	OrderID    int       `json:"order_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// BehaviorReport summarizes ordering behavior over a date window.
// PeakHours is a dense histogram: one slot per hour of day, zero counts
// included.
type BehaviorReport struct {
	TotalCustomers             int            `json:"totalCustomers"`
	TotalOrders                int            `json:"totalOrders"`
	AverageOrderValue          float64        `json:"averageOrderValue"`
	OrderFrequencyDistribution map[string]int `json:"orderFrequencyDistribution"`
	PeakHours                  [24]int        `json:"peakHours"`
	RepeatCustomerRate         float64        `json:"repeatCustomerRate"`
}

type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type PreferenceReport struct {
	CategoryPreferences map[string]int `json:"categoryPreferences"`
	TopItems            []ItemCount    `json:"topItems"`
	DietaryPreferences  map[string]int `json:"dietaryPreferences"`
}

type Sentiment struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type ThemeCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FeedbackReport summarizes ratings and comments over a date window.
// RatingDistribution is sparse: only observed rating values appear as keys.
type FeedbackReport struct {
	TotalFeedback      int          `json:"totalFeedback"`
	AverageRating      float64      `json:"averageRating"`
	RatingDistribution map[int]int  `json:"ratingDistribution"`
	SentimentAnalysis  Sentiment    `json:"sentimentAnalysis"`
	TopThemes          []ThemeCount `json:"topThemes"`
}

type SummaryReport struct {
	Behavior    BehaviorReport   `json:"behavior"`
	Preferences PreferenceReport `json:"preferences"`
	Feedback    FeedbackReport   `json:"feedback"`
}
