// Package datasets loads the bundled point-of-interest reference data:
// tourist spots and hotels as comma-separated files, restaurants as a
// bookmark-list JSON export. The data is read-only and memoized after the
// first load; the Store is safe for concurrent readers.
package datasets

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Tourspot mirrors one row of tourspot.csv / hotel.csv. Field names follow
// the dataset's Korean headers.
type Tourspot struct {
	Name       string // 명칭
	Address    string // 도로명주소
	Popularity string // 인기점수
	Region     string // 지역
	Memo       string // 메모
}

// Restaurant mirrors one bookmarkList entry of restaurant.json. JSON tags
// match the map page's API payload, so entries can be returned verbatim.
type Restaurant struct {
	BookmarkID int64   `json:"bookmarkId"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Px         float64 `json:"px"` // longitude
	Py         float64 `json:"py"` // latitude
	Memo       string  `json:"memo"`
	McidName   string  `json:"mcidName"`
	Type       string  `json:"type"`
}

// Region derives the coarse region bucket from the address, the same way
// the bookmark export is split on the map page.
func (r Restaurant) Region() string {
	if strings.Contains(r.Address, "서귀포") {
		return "서귀포"
	}
	return "제주"
}

type bundle struct {
	tourspots   []Tourspot
	restaurants []Restaurant
	hotels      []Tourspot
}

// Store is a read-through cache over the dataset files in dir. It is
// constructed once at startup and injected into request handlers; the
// files are read on first access and never re-read.
type Store struct {
	dir  string
	once sync.Once
	data bundle
	err  error
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) load() {
	tourspots, err := readCSVFile(filepath.Join(s.dir, "tourspot.csv"))
	if err != nil {
		s.err = fmt.Errorf("load tourspot.csv: %w", err)
		return
	}

	hotels, err := readCSVFile(filepath.Join(s.dir, "hotel.csv"))
	if err != nil {
		s.err = fmt.Errorf("load hotel.csv: %w", err)
		return
	}

	restaurants, err := readRestaurantFile(filepath.Join(s.dir, "restaurant.json"))
	if err != nil {
		s.err = fmt.Errorf("load restaurant.json: %w", err)
		return
	}

	s.data = bundle{tourspots: tourspots, restaurants: restaurants, hotels: hotels}
}

func (s *Store) Tourspots() ([]Tourspot, error) {
	s.once.Do(s.load)
	return s.data.tourspots, s.err
}

func (s *Store) Restaurants() ([]Restaurant, error) {
	s.once.Do(s.load)
	return s.data.restaurants, s.err
}

func (s *Store) Hotels() ([]Tourspot, error) {
	s.once.Do(s.load)
	return s.data.hotels, s.err
}

func readCSVFile(path string) ([]Tourspot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	col := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		col[strings.TrimSpace(header)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rows := make([]Tourspot, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, Tourspot{
			Name:       field(record, "명칭"),
			Address:    field(record, "도로명주소"),
			Popularity: field(record, "인기점수"),
			Region:     field(record, "지역"),
			Memo:       field(record, "메모"),
		})
	}
	return rows, nil
}

func readRestaurantFile(path string) ([]Restaurant, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		BookmarkList []Restaurant `json:"bookmarkList"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc.BookmarkList, nil
}
