package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/emission"
	"github.com/ahmetcoskunkizilkaya/ecotrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chart windows, in days back from today.
var chartWindows = map[string]int{
	"daily":   1,
	"weekly":  7,
	"monthly": 30,
}

var facts = []string{
	"If everyone recycled newspapers, we could save over 250 million trees each year.",
	"Turning off your computer at night can save up to 40 watts per hour.",
	"Reducing meat consumption reduces greenhouse gas emissions.",
	"Using public transport can reduce your footprint by 30%.",
	"Line-drying clothes instead of using a dryer can save around 1 kg of CO2 per load.",
	"LED bulbs use up to 80% less energy than incandescent bulbs.",
}

type EntryService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db, now: time.Now}
}

// AddDaily converts today's activity and stores it. A second entry for the
// same user and UTC date is rejected with ErrEntryExists.
func (s *EntryService) AddDaily(userID uuid.UUID, activity emission.Activity) (*dto.DailyEntryResponse, error) {
	if err := ensureUser(s.db, userID); err != nil {
		return nil, err
	}

	today := startOfDay(s.now())

	var count int64
	if err := s.db.Model(&models.DailyEntry{}).Where("user_id = ? AND date = ?", userID, today).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check daily entry: %w", err)
	}
	if count > 0 {
		return nil, ErrEntryExists
	}

	est := emission.Estimate(activity)
	entry := models.DailyEntry{
		UserID:      userID,
		Date:        today,
		Travel:      est.Travel,
		Food:        est.Food,
		Waste:       est.Waste,
		Electricity: est.Electricity,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEntryExists
		}
		return nil, fmt.Errorf("failed to save daily entry: %w", err)
	}

	return &dto.DailyEntryResponse{
		Message:     "Emission data added",
		Date:        formatDate(entry.Date),
		Travel:      entry.Travel,
		Food:        entry.Food,
		Waste:       entry.Waste,
		Electricity: entry.Electricity,
		Total:       entry.Total(),
	}, nil
}

// Chart returns entries for the filter window, oldest first. Unknown filters
// fall back to daily.
func (s *EntryService) Chart(userID uuid.UUID, filter string) ([]dto.ChartPoint, error) {
	days, ok := chartWindows[filter]
	if !ok {
		days = chartWindows["daily"]
	}

	entries, err := recentEntries(s.db, userID, startOfDay(s.now()).AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	points := make([]dto.ChartPoint, len(entries))
	for i, e := range entries {
		points[i] = dto.ChartPoint{
			Date:        formatDate(e.Date),
			Travel:      e.Travel,
			Food:        e.Food,
			Waste:       e.Waste,
			Electricity: e.Electricity,
			Total:       e.Total(),
		}
	}
	return points, nil
}

func (s *EntryService) Fact() string {
	return facts[rand.Intn(len(facts))]
}

// EmissionSummary is the per-category total over a window.
type EmissionSummary struct {
	Travel      float64
	Food        float64
	Waste       float64
	Electricity float64
	Days        int
}

func summarize(entries []models.DailyEntry) EmissionSummary {
	var sum EmissionSummary
	for _, e := range entries {
		sum.Travel += e.Travel
		sum.Food += e.Food
		sum.Waste += e.Waste
		sum.Electricity += e.Electricity
	}
	sum.Days = len(entries)
	return sum
}

func recentEntries(db *gorm.DB, userID uuid.UUID, since time.Time) ([]models.DailyEntry, error) {
	var entries []models.DailyEntry
	err := db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily entries: %w", err)
	}
	return entries, nil
}

func ensureUser(db *gorm.DB, userID uuid.UUID) error {
	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}
