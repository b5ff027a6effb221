package services

import (
	"context"
	"encoding/json"
	"log"

	"jejuquiz/internal/datasets"
	"jejuquiz/internal/models/request_models"
	"jejuquiz/internal/models/response_models"
	"jejuquiz/pkg/utils"
)

// Itinerary lengths the generator supports. Anything else in the request
// is clamped to DurationDefault.
const (
	DurationDayTrip     = "당일"
	DurationOneNight    = "1박 2일"
	DurationTwoNights   = "2박 3일"
	DurationDefault     = DurationOneNight
	defaultTransportTip = "렌터카 또는 대중교통 이용"
)

// Per-person budget estimates, indexed by duration then budget preference.
var budgetTable = map[string]map[string]string{
	DurationDayTrip: {
		"절약":  "1인 기준 5-8만원",
		"보통":  "1인 기준 8-12만원",
		"넉넉히": "1인 기준 15-20만원",
	},
	DurationOneNight: {
		"절약":  "1인 기준 10-15만원",
		"보통":  "1인 기준 15-20만원",
		"넉넉히": "1인 기준 25-40만원",
	},
	DurationTwoNights: {
		"절약":  "1인 기준 20-28만원",
		"보통":  "1인 기준 30-45만원",
		"넉넉히": "1인 기준 50-80만원",
	},
}

func ClampDuration(duration string) string {
	switch duration {
	case DurationDayTrip, DurationOneNight, DurationTwoNights:
		return duration
	default:
		return DurationDefault
	}
}

func defaultBudget(duration, budget string) string {
	table := budgetTable[ClampDuration(duration)]
	if estimate, ok := table[budget]; ok {
		return estimate
	}
	return table["보통"]
}

type CourseServiceInterface interface {
	GenerateCourse(ctx context.Context, req request_models.CourseRequest) (*response_models.Course, error)
}

type CourseService struct {
	store    *datasets.Store
	aiClient utils.CompletionClientInterface
}

func NewCourseService(store *datasets.Store, aiClient utils.CompletionClientInterface) CourseServiceInterface {
	return &CourseService{
		store:    store,
		aiClient: aiClient,
	}
}

// GenerateCourse runs the full pipeline: validate, sample venues, prompt
// the model, then repair and normalize whatever comes back. Upstream
// failures surface to the caller; parse failures never do, because the
// static fallback course is substituted so the user always gets an
// itinerary.
func (s *CourseService) GenerateCourse(ctx context.Context, req request_models.CourseRequest) (*response_models.Course, error) {
	if req.UserType == "" || req.Character == "" {
		return nil, utils.ErrInvalidRequest
	}

	duration := ClampDuration(req.Preferences.Duration)

	venues, err := s.sampleVenues(req.FilterText.Region)
	if err != nil {
		log.Printf("reference dataset load failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	prompt := buildCoursePrompt(req, duration, venues)

	raw, err := s.aiClient.GenerateCourse(ctx, prompt)
	if err != nil {
		return nil, err
	}

	course, outcome := parseCourse(raw)
	log.Printf("course json extraction: %s", outcome)
	if outcome == utils.RepairFellBack {
		log.Printf("AI 원본 응답: %s", raw)
		course = FallbackCourse(req.Character)
	}

	NormalizeCourse(course, duration, req.Preferences.Budget)
	return course, nil
}

// parseCourse turns raw model text into a Course. The outcome is
// RepairFellBack when neither direct parsing nor structural repair
// produced JSON this schema can hold.
func parseCourse(raw string) (*response_models.Course, utils.RepairOutcome) {
	jsonStr, outcome := utils.ExtractJSONObject(raw)
	if outcome == utils.RepairFellBack {
		return nil, outcome
	}

	var course response_models.Course
	if err := json.Unmarshal([]byte(jsonStr), &course); err != nil {
		log.Printf("course JSON did not match the itinerary schema: %v", err)
		return nil, utils.RepairFellBack
	}
	return &course, outcome
}

// FallbackCourse is the hand-authored itinerary served when the model
// answer cannot be salvaged. Degraded content, never an error.
func FallbackCourse(character string) *response_models.Course {
	return &response_models.Course{
		Title:   character + "를 위한 맞춤 제주 여행",
		Summary: "AI가 생성한 개인 맞춤 제주 여행 코스입니다.",
		Day1: &response_models.CourseDay{
			Morning: []response_models.CourseActivity{
				{
					Time:        "09:00",
					Activity:    "여행 시작",
					Location:    "제주국제공항",
					Duration:    "1시간",
					Description: "제주도 도착 및 렌터카 픽업",
					Tip:         "공항에서 렌터카를 미리 예약하시면 편리합니다.",
				},
			},
			Afternoon: []response_models.CourseActivity{},
			Evening:   []response_models.CourseActivity{},
		},
		Restaurants: []response_models.CourseRestaurant{},
		Accommodation: &response_models.Accommodation{
			Name:     "제주 감성 펜션",
			Type:     "펜션",
			Location: "제주시",
			Reason:   "당신의 여행 스타일에 맞는 분위기 좋은 숙소",
		},
		SpecialTips: []string{"제주도는 렌터카 이용을 추천합니다."},
	}
}

// NormalizeCourse reshapes a parsed course into the fixed schema the
// frontend renders: day1 always carries its three time-of-day lists,
// day2/day3 presence matches the duration, and missing fields get
// duration- and budget-dependent defaults. Normalizing an already
// normalized course is a no-op.
func NormalizeCourse(c *response_models.Course, duration, budget string) {
	duration = ClampDuration(duration)
	c.Duration = duration

	c.Day1 = normalizeDay(c.Day1)

	switch duration {
	case DurationDayTrip:
		c.Day2 = nil
		c.Day3 = nil
		c.Accommodation = nil
	case DurationOneNight:
		c.Day2 = normalizeDay(c.Day2)
		c.Day3 = nil
		ensureAccommodation(c)
	case DurationTwoNights:
		c.Day2 = normalizeDay(c.Day2)
		c.Day3 = normalizeDay(c.Day3)
		ensureAccommodation(c)
	}

	if c.Restaurants == nil {
		c.Restaurants = []response_models.CourseRestaurant{}
	}
	if len(c.SpecialTips) == 0 {
		c.SpecialTips = []string{"제주도는 렌터카 이용을 추천합니다."}
	}
	if c.TotalBudget == "" {
		c.TotalBudget = defaultBudget(duration, budget)
	}
	if c.TransportTips == "" {
		c.TransportTips = defaultTransportTip
	}
}

func normalizeDay(day *response_models.CourseDay) *response_models.CourseDay {
	if day == nil {
		day = &response_models.CourseDay{}
	}
	if day.Morning == nil {
		day.Morning = []response_models.CourseActivity{}
	}
	if day.Afternoon == nil {
		day.Afternoon = []response_models.CourseActivity{}
	}
	if day.Evening == nil {
		day.Evening = []response_models.CourseActivity{}
	}
	return day
}

func ensureAccommodation(c *response_models.Course) {
	if c.Accommodation == nil {
		c.Accommodation = &response_models.Accommodation{
			Name:     "제주 감성 펜션",
			Type:     "펜션",
			Location: "제주시",
			Reason:   "당신의 여행 스타일에 맞는 분위기 좋은 숙소",
		}
	}
}
