package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"jejuquiz/internal/datasets"
	"jejuquiz/internal/services"
	"jejuquiz/pkg/utils"
)

const defaultSiteURL = "https://www.제주맹글이.site"

// SystemController serves the operational endpoints: the environment
// readiness probe, the restaurant map data, and the sitemap.
type SystemController struct {
	store *datasets.Store
}

func NewSystemController(store *datasets.Store) *SystemController {
	return &SystemController{
		store: store,
	}
}

// CheckEnvHandler handles GET /api/check-env. It only reports variable
// presence; values never leave the process.
func (s *SystemController) CheckEnvHandler(c *gin.Context) {
	envStatus := gin.H{
		"geminiApiKey":                 os.Getenv("GEMINI_API_KEY") != "",
		"googleCloudProjectId":         os.Getenv("GOOGLE_CLOUD_PROJECT_ID") != "",
		"vertexSearchEngineId":         os.Getenv("VERTEX_SEARCH_ENGINE_ID") != "",
		"googleApplicationCredentials": os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "",
	}

	var missingVars []string
	for _, name := range []string{
		"GEMINI_API_KEY",
		"GOOGLE_CLOUD_PROJECT_ID",
		"VERTEX_SEARCH_ENGINE_ID",
		"GOOGLE_APPLICATION_CREDENTIALS",
	} {
		if os.Getenv(name) == "" {
			missingVars = append(missingVars, name)
		}
	}
	if missingVars == nil {
		missingVars = []string{}
	}

	vertexSearchReady := len(missingVars) == 0
	message := "일부 환경 변수가 설정되지 않았습니다. 기본 모드로만 작동합니다."
	if vertexSearchReady {
		message = "모든 환경 변수가 설정되어 있습니다. Vertex AI Search를 사용할 수 있습니다."
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"envStatus":         envStatus,
		"missingVars":       missingVars,
		"vertexSearchReady": vertexSearchReady,
		"message":           message,
	})
}

// RestaurantsHandler handles GET /api/restaurants with the bookmark list
// the map page renders.
func (s *SystemController) RestaurantsHandler(c *gin.Context) {
	restaurants, err := s.store.Restaurants()
	if err != nil {
		log.Printf("restaurant dataset load failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// SitemapHandler handles GET /sitemap.xml.
func (s *SystemController) SitemapHandler(c *gin.Context) {
	baseURL := os.Getenv("SITE_URL")
	if baseURL == "" {
		baseURL = defaultSiteURL
	}

	c.Header("Cache-Control", "public, s-maxage=86400, stale-while-revalidate")
	c.Data(http.StatusOK, "application/xml", []byte(services.BuildSitemap(baseURL, time.Now())))
}
