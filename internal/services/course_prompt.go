package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"jejuquiz/internal/datasets"
	"jejuquiz/internal/models/request_models"
)

const (
	maxPromptSpots       = 8
	maxPromptRestaurants = 6
	maxPromptHotels      = 4
)

type sampledVenues struct {
	spots       []datasets.Tourspot
	restaurants []datasets.Restaurant
	hotels      []datasets.Tourspot
}

// sampleVenues picks the venue subset the prompt is grounded on. A
// specific region narrows each list to that region; the shuffle is
// intentional so identical requests still get varied courses.
func (s *CourseService) sampleVenues(region string) (sampledVenues, error) {
	spots, err := s.store.Tourspots()
	if err != nil {
		return sampledVenues{}, err
	}
	restaurants, err := s.store.Restaurants()
	if err != nil {
		return sampledVenues{}, err
	}
	hotels, err := s.store.Hotels()
	if err != nil {
		return sampledVenues{}, err
	}

	if specificRegion(region) {
		spots = filterSpots(spots, region)
		hotels = filterSpots(hotels, region)
		restaurants = filterRestaurants(restaurants, region)
	}

	return sampledVenues{
		spots:       sampleSpots(spots, maxPromptSpots),
		restaurants: sampleRestaurants(restaurants, maxPromptRestaurants),
		hotels:      sampleSpots(hotels, maxPromptHotels),
	}, nil
}

func specificRegion(region string) bool {
	switch region {
	case "", "전체", "all":
		return false
	default:
		return true
	}
}

func filterSpots(spots []datasets.Tourspot, region string) []datasets.Tourspot {
	filtered := make([]datasets.Tourspot, 0, len(spots))
	for _, spot := range spots {
		if spot.Region == region {
			filtered = append(filtered, spot)
		}
	}
	return filtered
}

func filterRestaurants(restaurants []datasets.Restaurant, region string) []datasets.Restaurant {
	filtered := make([]datasets.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if r.Region() == region {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func sampleSpots(spots []datasets.Tourspot, n int) []datasets.Tourspot {
	shuffled := append([]datasets.Tourspot(nil), spots...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}

func sampleRestaurants(restaurants []datasets.Restaurant, n int) []datasets.Restaurant {
	shuffled := append([]datasets.Restaurant(nil), restaurants...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// buildCoursePrompt assembles the Korean generation prompt: traveler
// profile, filter line, the sampled venue lists, and the exact JSON shape
// to answer with. The schema block only includes the day keys the
// requested duration covers.
func buildCoursePrompt(req request_models.CourseRequest, duration string, venues sampledVenues) string {
	var b strings.Builder

	fmt.Fprintf(&b, "제주도 %s 여행 코스를 JSON으로 작성해주세요.\n\n", duration)
	fmt.Fprintf(&b, "여행자: %s (%s)\n", req.UserType, req.Character)
	if req.Description != "" {
		fmt.Fprintf(&b, "성향: %s\n", req.Description)
	}
	fmt.Fprintf(&b, "조건: %s / %s / %s / %s\n",
		orAll(req.FilterText.Region), orAll(req.FilterText.Mood),
		orAll(req.FilterText.Weather), orAll(req.FilterText.Companion))
	fmt.Fprintf(&b, "생성ID: %d-%s\n\n", time.Now().UnixMilli(), uuid.NewString()[:8])

	b.WriteString("🏞️ 추천 관광지:\n")
	for i, spot := range venues.spots {
		fmt.Fprintf(&b, "%d. %s: %s (인기점수: %s)\n", i+1, spot.Name, spot.Address, spot.Popularity)
	}

	b.WriteString("\n🍽️ 추천 식당:\n")
	for i, r := range venues.restaurants {
		fmt.Fprintf(&b, "%d. %s: %s (%s)\n", i+1, r.Name, r.Address, r.McidName)
	}

	b.WriteString("\n🏨 추천 숙소:\n")
	for i, hotel := range venues.hotels {
		fmt.Fprintf(&b, "%d. %s: %s (인기점수: %s)\n", i+1, hotel.Name, hotel.Address, hotel.Popularity)
	}

	b.WriteString("\nJSON 형식:\n")
	b.WriteString(courseSchema(duration))

	b.WriteString("\n\n**중요한 요구사항:**\n")
	b.WriteString("1. 위 목록의 정확한 장소명과 도로명주소를 location 필드에 반드시 포함하세요\n")
	fmt.Fprintf(&b, "2. %s 성향에 맞는 코스를 만들어주세요\n", firstNonEmpty(req.SpotType, req.UserType))
	fmt.Fprintf(&b, "3. 일정은 정확히 %s 분량으로 구성하세요\n", duration)
	b.WriteString("4. 각 장소의 예상 소요시간과 이동시간을 고려한 현실적인 일정을 만드세요\n")
	b.WriteString("5. 창의적이고 독특한 일정 구성으로 차별화된 여행 경험을 제공하세요\n\n")
	b.WriteString("JSON만 응답하세요.")

	return b.String()
}

const activitySchema = `{"time": "09:00", "activity": "활동명", "location": "장소명 (도로명주소)", "duration": "소요시간", "description": "설명", "tip": "팁"}`

func courseSchema(duration string) string {
	var b strings.Builder

	b.WriteString("{\n")
	b.WriteString(`  "title": "여행 제목",` + "\n")
	b.WriteString(`  "summary": "한 줄 요약",` + "\n")
	fmt.Fprintf(&b, "  \"day1\": {\"morning\": [%s], \"afternoon\": [%s], \"evening\": [%s]}", activitySchema, activitySchema, activitySchema)
	if duration != DurationDayTrip {
		fmt.Fprintf(&b, ",\n  \"day2\": {\"morning\": [%s], \"afternoon\": [%s], \"evening\": [%s]}", activitySchema, activitySchema, activitySchema)
	}
	if duration == DurationTwoNights {
		fmt.Fprintf(&b, ",\n  \"day3\": {\"morning\": [%s], \"afternoon\": [%s], \"evening\": [%s]}", activitySchema, activitySchema, activitySchema)
	}
	b.WriteString(",\n")
	b.WriteString(`  "restaurants": [{"name": "식당명", "type": "식사 종류", "location": "위치", "specialty": "메뉴", "reason": "추천 이유"}],` + "\n")
	if duration != DurationDayTrip {
		b.WriteString(`  "accommodation": {"name": "숙소명", "type": "숙소 유형", "location": "위치", "reason": "추천 이유"},` + "\n")
	}
	b.WriteString(`  "specialTips": ["팁1", "팁2"],` + "\n")
	b.WriteString(`  "totalBudget": "예상 총 비용",` + "\n")
	b.WriteString(`  "transportTips": "교통수단 추천"` + "\n")
	b.WriteString("}")

	return b.String()
}

func orAll(value string) string {
	if value == "" || value == "all" {
		return "전체"
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
