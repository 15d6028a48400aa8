package logic

import (
	"fmt"
	"time"

	"github.com/WorkZen2025/workzen-app/dao"
	"github.com/WorkZen2025/workzen-app/models"
)

// CheckinLogic handles stress check-in business logic
type CheckinLogic struct {
	checkinDAO *dao.CheckinDAO
	now        func() time.Time
}

func NewCheckinLogic(checkinDAO *dao.CheckinDAO) *CheckinLogic {
	return &CheckinLogic{
		checkinDAO: checkinDAO,
		now:        time.Now,
	}
}

// CheckinSummary aggregates the recent check-in window.
type CheckinSummary struct {
	AvgMorningStress float64 `json:"avg_morning_stress"`
	AvgEveningStress float64 `json:"avg_evening_stress"`
	Improvement      float64 `json:"improvement"`
	TotalCheckins    int     `json:"total_checkins"`
	Message          string  `json:"message"`
}

// SubmitCheckin validates the four ratings and persists a check-in dated
// today unless a date is supplied. Same-day resubmissions are allowed.
func (l *CheckinLogic) SubmitCheckin(userID uint64, date *time.Time, morning, evening, workload, energy int, notes string) (*models.StressCheckin, error) {
	for name, rating := range map[string]int{
		"morning_stress":  morning,
		"evening_stress":  evening,
		"workload_rating": workload,
		"energy_level":    energy,
	} {
		if rating < 1 || rating > 10 {
			return nil, fmt.Errorf("%s: %w", name, ErrInvalidRating)
		}
	}

	day := l.now()
	if date != nil {
		day = *date
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	return l.checkinDAO.SaveCheckin(userID, day, morning, evening, workload, energy, notes)
}

// GetRecentCheckins retrieves up to limit check-ins, most recent first
func (l *CheckinLogic) GetRecentCheckins(userID uint64, limit int) ([]models.StressCheckin, error) {
	return l.checkinDAO.GetRecentCheckins(userID, limit)
}

// Summary computes averages over the recent window and picks the matching
// encouragement. Improvement is morning minus evening: positive means the
// day ends calmer than it starts.
func (l *CheckinLogic) Summary(userID uint64) (*CheckinSummary, error) {
	checkins, err := l.checkinDAO.GetRecentCheckins(userID, dao.DefaultCheckinLimit)
	if err != nil {
		return nil, err
	}
	if len(checkins) == 0 {
		return &CheckinSummary{
			Message: "Complete your first check-in to see your progress and God's faithfulness in your journey!",
		}, nil
	}

	var morningTotal, eveningTotal int
	for _, c := range checkins {
		morningTotal += c.MorningStress
		eveningTotal += c.EveningStress
	}
	n := float64(len(checkins))
	summary := &CheckinSummary{
		AvgMorningStress: float64(morningTotal) / n,
		AvgEveningStress: float64(eveningTotal) / n,
		TotalCheckins:    len(checkins),
	}
	summary.Improvement = summary.AvgMorningStress - summary.AvgEveningStress

	switch {
	case summary.Improvement > 0:
		summary.Message = "🙌 Praise God! Your stress levels are improving throughout the day. You're learning to cast your burdens on Him!"
	case summary.Improvement < -1:
		summary.Message = "💙 Your evenings show more stress than mornings. Consider ending your day with prayer and reflection."
	default:
		summary.Message = "📊 Your stress levels are fairly consistent. Keep tracking to identify patterns and growth opportunities."
	}

	return summary, nil
}
