package controllers

import (
	"net/http"
	"strconv"

	"salonbul-backend/search"
	"salonbul-backend/services"
	"salonbul-backend/utils"

	"github.com/gin-gonic/gin"
)

// pageSize is the visible-count increment the client grows by on
// "load more".
const pageSize = 5

// DiscoverController serves the search and suggestion surface of the
// home page.
type DiscoverController struct {
	catalog *services.CatalogService
}

func NewDiscoverController(catalog *services.CatalogService) *DiscoverController {
	return &DiscoverController{catalog: catalog}
}

// Discover filters the salon catalog by city, district, type slug and
// mode-aware free text, and derives the map center for the result.
func (dc *DiscoverController) Discover(c *gin.Context) {
	cat, err := dc.catalog.Load(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to load catalog")
		return
	}

	state := search.FilterState{
		Query:    c.Query("q"),
		City:     c.DefaultQuery("city", search.SentinelAll),
		District: c.DefaultQuery("district", search.SentinelAll),
		TypeSlug: c.Query("type"),
		Mode:     search.ParseMode(c.Query("mode")),
	}

	// A district carried over from a previous city must still exist
	// under the current one, otherwise it resets to the sentinel.
	if state.District != search.SentinelAll {
		districts, err := dc.catalog.DistrictsForCity(c.Request.Context(), state.City)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadGateway, "Failed to load districts")
			return
		}
		state.District = search.ResolveDistrict(state.District, districts)
	}

	filtered := search.Filter(cat, state)
	center := search.MapCenter(filtered, state.City)

	limit := len(filtered)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 && n < limit {
			limit = n
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"salons":   filtered[:limit],
		"total":    len(filtered),
		"center":   center,
		"pageSize": pageSize,
	})
}

// Suggest returns autocomplete candidates for the active search tab.
func (dc *DiscoverController) Suggest(c *gin.Context) {
	input := c.Query("q")
	tab := search.ParseMode(c.Query("tab"))

	cat, err := dc.catalog.Load(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to load catalog")
		return
	}

	suggestions := search.Suggest(cat, input, tab)
	if suggestions == nil {
		suggestions = []search.Suggestion{}
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
		"visible":     len(suggestions) > 0,
	})
}

// GetDistrictsByCity serves the district sub-loader keyed by city
// display name. Unknown cities answer an empty list.
func (dc *DiscoverController) GetDistrictsByCity(c *gin.Context) {
	cityName := c.Query("city")

	districts, err := dc.catalog.DistrictsForCity(c.Request.Context(), cityName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load districts")
		return
	}
	if districts == nil {
		districts = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"districts": districts})
}
