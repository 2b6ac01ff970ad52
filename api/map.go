package api

import (
	"net/http"
	"strconv"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-county-map/maprender"
	"github.com/bitmark-inc/covid-county-map/schema"
	"github.com/bitmark-inc/covid-county-map/score"
	"github.com/bitmark-inc/covid-county-map/store"
)

// mapPage serves the interactive map shell; the slider on the page commits
// its value back to renderMap.
func (s *Server) mapPage(c *gin.Context) {
	c.HTML(http.StatusOK, "map", gin.H{
		"RedRateMin":     schema.RedRateMin,
		"RedRateMax":     schema.RedRateMax,
		"RedRateDefault": schema.RedRateDefault,
	})
}

// parseRedRate reads the red_rate query parameter, falling back to the
// slider default when absent.
func parseRedRate(c *gin.Context) (schema.MapConfig, bool) {
	cfg := schema.MapConfig{RedRate: schema.RedRateDefault}

	if v := c.Query("red_rate"); v != "" {
		redRate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return cfg, false
		}
		cfg.RedRate = redRate
	}

	if !cfg.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return cfg, false
	}

	return cfg, true
}

// renderMap renders the whole county table against the requested threshold.
func (s *Server) renderMap(c *gin.Context) {
	cfg, ok := parseRedRate(c)
	if !ok {
		return
	}

	counties, err := s.mongoStore.ListCounties()
	if err != nil {
		if err == store.ErrNoCountyDataset {
			abortWithEncoding(c, http.StatusNotFound, errorCountyDatasetEmpty)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, maprender.Render(counties, cfg))
}

// listCounties returns the loaded table without render styling.
func (s *Server) listCounties(c *gin.Context) {
	counties, err := s.mongoStore.ListCounties()
	if err != nil {
		if err == store.ErrNoCountyDataset {
			abortWithEncoding(c, http.StatusNotFound, errorCountyDatasetEmpty)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"counties": counties})
}

// countyRate reports the current growth rate of a single county.
func (s *Server) countyRate(c *gin.Context) {
	uid, err := strconv.Atoi(c.Param("uid"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	county, err := s.mongoStore.GetCounty(uid)
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorCountyNotFound)
		return
	}

	rate := score.RateOfIncrease(county.Cases, score.DefaultRateWindow)

	c.JSON(http.StatusOK, gin.H{
		"uid":    county.UID,
		"county": county.County,
		"state":  county.State,
		"cases":  county.LatestCases(),
		"rate":   rate,
	})
}

// adminRefreshCountyData is an internal only api to trigger the task to
// re-fetch the confirmed-case feed
func (s *Server) adminRefreshCountyData(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "refresh_county_data",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorRefreshEnqueue, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
