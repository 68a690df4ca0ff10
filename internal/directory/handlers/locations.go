package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) listCountries(c *gin.Context) {
	countries, err := a.services.Locations.Countries(c.Request.Context())
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCountryResponses(countries))
}

func (a *API) listRegions(c *gin.Context) {
	countryID, ok := a.pathID(c, "country_id")
	if !ok {
		return
	}

	regions, err := a.services.Locations.Regions(c.Request.Context(), countryID)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRegionResponses(regions))
}

func (a *API) listCities(c *gin.Context) {
	countryID, ok := a.pathID(c, "country_id")
	if !ok {
		return
	}
	regionID, ok := a.pathID(c, "region_id")
	if !ok {
		return
	}

	cities, err := a.services.Locations.Cities(c.Request.Context(), countryID, regionID)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCityResponses(cities))
}
