package dto

type DailyEntryRequest struct {
	Travel      float64 `json:"travel"`
	Food        float64 `json:"food"`
	Waste       float64 `json:"waste"`
	Electricity float64 `json:"electricity"`
}

type DailyEntryResponse struct {
	Message     string  `json:"message"`
	Date        string  `json:"date"`
	Travel      float64 `json:"travel"`
	Food        float64 `json:"food"`
	Waste       float64 `json:"waste"`
	Electricity float64 `json:"electricity"`
	Total       float64 `json:"total"`
}

type ChartPoint struct {
	Date        string  `json:"date"`
	Travel      float64 `json:"travel"`
	Food        float64 `json:"food"`
	Waste       float64 `json:"waste"`
	Electricity float64 `json:"electricity"`
	Total       float64 `json:"total"`
}

type FactResponse struct {
	Fact string `json:"fact"`
}
