package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"jejuquiz/internal/models/response_models"
	"jejuquiz/internal/repositories"
	"jejuquiz/pkg/utils"
)

// Fixed question metadata for the dashboard charts. Index i holds
// question i+1; the option letters follow the axis blocks (Q1-3 A/B,
// Q4-6 C/D, Q7-9 E/F).
type questionMeta struct {
	Title   string
	OptionA string
	OptionB string
	LabelA  string
	LabelB  string
}

var questionTable = [9]questionMeta{
	{Title: "Q1: 여행 계획", OptionA: "A", OptionB: "B", LabelA: "계획형", LabelB: "즉흥형"},
	{Title: "Q2: 예상치 못한 상황", OptionA: "A", OptionB: "B", LabelA: "계획형", LabelB: "즉흥형"},
	{Title: "Q3: 비상 상황", OptionA: "A", OptionB: "B", LabelA: "계획형", LabelB: "즉흥형"},
	{Title: "Q4: 여유로운 오전", OptionA: "C", OptionB: "D", LabelA: "차분형", LabelB: "활동형"},
	{Title: "Q5: 이상적인 여행", OptionA: "C", OptionB: "D", LabelA: "차분형", LabelB: "활동형"},
	{Title: "Q6: 제주의 밤", OptionA: "C", OptionB: "D", LabelA: "차분형", LabelB: "활동형"},
	{Title: "Q7: 제주 버킷리스트", OptionA: "E", OptionB: "F", LabelA: "체험형", LabelB: "감성형"},
	{Title: "Q8: 추억 정리", OptionA: "E", OptionB: "F", LabelA: "체험형", LabelB: "감성형"},
	{Title: "Q9: 마지막 하루", OptionA: "E", OptionB: "F", LabelA: "체험형", LabelB: "감성형"},
}

// chartPalette colors pie slices by rank.
var chartPalette = [8]string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4",
	"#FECA57", "#FF9FF3", "#54A0FF", "#5F27CD",
}

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context) (*response_models.DashboardData, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
}

func NewDashboardService(dashboardRepo repositories.DashboardRepositoryInterface) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
	}
}

// BuildDashboard reduces the raw response/result rows into the chart-ready
// payload. Pure reduction, no error recovery: query failures bubble up.
func (d *DashboardService) BuildDashboard(ctx context.Context) (*response_models.DashboardData, error) {
	rows, err := d.dashboardRepo.ResponseOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	codes, err := d.dashboardRepo.FinalResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	detailed, err := d.dashboardRepo.RecentResponses(ctx, 50)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	questionStats := make(map[int]map[string]int, len(questionTable))
	for i := 1; i <= len(questionTable); i++ {
		questionStats[i] = make(map[string]int)
	}
	for _, row := range rows {
		if stats, ok := questionStats[row.QuestionID]; ok {
			stats[row.SelectedOption]++
		}
	}

	return &response_models.DashboardData{
		BarChartData:      buildBarChartData(questionStats),
		PieChartData:      BuildPieChartData(codes),
		QuestionStats:     questionStats,
		FinalResultStats:  countCodes(codes),
		TotalResponses:    len(codes),
		DetailedResponses: detailed,
		LastUpdated:       time.Now().UTC(),
	}, nil
}

func buildBarChartData(questionStats map[int]map[string]int) []map[string]interface{} {
	bars := make([]map[string]interface{}, 0, len(questionTable))
	for i, meta := range questionTable {
		stats := questionStats[i+1]
		countA := stats[meta.OptionA]
		countB := stats[meta.OptionB]
		bars = append(bars, map[string]interface{}{
			"name":      meta.Title,
			meta.LabelA: countA,
			meta.LabelB: countB,
			"total":     countA + countB,
		})
	}
	return bars
}

// BuildPieChartData counts each distinct result code, sorts descending by
// count keeping ties in first-encounter order, caps at eight slices, and
// colors by rank.
func BuildPieChartData(codes []string) []response_models.PieSlice {
	counts := make(map[string]int)
	var order []string
	for _, code := range codes {
		if _, seen := counts[code]; !seen {
			order = append(order, code)
		}
		counts[code]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > len(chartPalette) {
		order = order[:len(chartPalette)]
	}

	slices := make([]response_models.PieSlice, 0, len(order))
	for rank, code := range order {
		slices = append(slices, response_models.PieSlice{
			Name:  code,
			Value: counts[code],
			Fill:  chartPalette[rank%len(chartPalette)],
		})
	}
	return slices
}

func countCodes(codes []string) map[string]int {
	stats := make(map[string]int)
	for _, code := range codes {
		stats[code]++
	}
	return stats
}
