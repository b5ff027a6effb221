package datasets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tourspotCSV = `명칭,도로명주소,인기점수,지역,메모
성산일출봉,서귀포시 성산읍 일출로 284-12,높음,서귀포,일출 명소
협재해수욕장,제주시 한림읍 협재리 2497-1,높음,제주,에메랄드빛 바다
`

const hotelCSV = `명칭,도로명주소,인기점수,지역,메모
제주신라호텔,서귀포시 중문관광로72번길 75,높음,서귀포,인피니티 풀
`

const restaurantJSON = `{
  "bookmarkList": [
    {"bookmarkId": 1001, "name": "우진해장국", "address": "제주시 서사로 11", "px": 126.518, "py": 33.512, "memo": "오픈런", "mcidName": "한식", "type": "맛집"},
    {"bookmarkId": 1004, "name": "색달식당", "address": "서귀포시 색달로 10", "px": 126.388, "py": 33.251, "memo": "", "mcidName": "한식", "type": "맛집"}
  ]
}`

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tourspot.csv"), []byte(tourspotCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hotel.csv"), []byte(hotelCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "restaurant.json"), []byte(restaurantJSON), 0o644))
	return dir
}

func TestStore_LoadsAllDatasets(t *testing.T) {
	store := NewStore(writeDataDir(t))

	spots, err := store.Tourspots()
	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.Equal(t, "성산일출봉", spots[0].Name)
	assert.Equal(t, "서귀포시 성산읍 일출로 284-12", spots[0].Address)
	assert.Equal(t, "높음", spots[0].Popularity)
	assert.Equal(t, "서귀포", spots[0].Region)
	assert.Equal(t, "일출 명소", spots[0].Memo)

	hotels, err := store.Hotels()
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "제주신라호텔", hotels[0].Name)

	restaurants, err := store.Restaurants()
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, int64(1001), restaurants[0].BookmarkID)
	assert.Equal(t, "우진해장국", restaurants[0].Name)
	assert.InDelta(t, 126.518, restaurants[0].Px, 0.001)
}

func TestRestaurant_RegionBucketsByAddress(t *testing.T) {
	jeju := Restaurant{Address: "제주시 서사로 11"}
	seogwipo := Restaurant{Address: "서귀포시 색달로 10"}
	other := Restaurant{Address: "어딘가"}

	assert.Equal(t, "제주", jeju.Region())
	assert.Equal(t, "서귀포", seogwipo.Region())
	assert.Equal(t, "제주", other.Region())
}

func TestStore_MemoizesFirstLoad(t *testing.T) {
	dir := writeDataDir(t)
	store := NewStore(dir)

	spots, err := store.Tourspots()
	require.NoError(t, err)
	require.Len(t, spots, 2)

	// Files on disk change after the first read; the store must not notice.
	require.NoError(t, os.Remove(filepath.Join(dir, "tourspot.csv")))

	again, err := store.Tourspots()
	require.NoError(t, err)
	assert.Len(t, again, 2)
}

func TestStore_MissingFileFailsEveryAccessor(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tourspot.csv"), []byte(tourspotCSV), 0o644))
	store := NewStore(dir)

	_, err := store.Tourspots()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hotel.csv")

	_, err = store.Restaurants()
	assert.Error(t, err)
}

func TestStore_RejectsHeaderOnlyCSV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tourspot.csv"), []byte("명칭,도로명주소,인기점수,지역,메모\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hotel.csv"), []byte(hotelCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "restaurant.json"), []byte(restaurantJSON), 0o644))

	_, err := NewStore(dir).Tourspots()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}
