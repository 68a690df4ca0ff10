package validation

import (
	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/google/uuid"
)

// OfficeFields checks the plain office fields.
func OfficeFields(name, address string) error {
	v := e.NewValidation()
	requireNonBlank(v, "name", name)
	requireNonBlank(v, "address", address)
	return v.ErrOrNil()
}

// OfficeLocation checks the country/region/city triple. The ids come
// from the request; country, region and city are the rows they
// resolved to, nil when absent. Cross-links are only judged once every
// referenced row exists, and each broken link is reported on the most
// specific field.
func OfficeLocation(countryID, regionID, cityID uuid.UUID, country *models.Country, region *models.Region, city *models.City) error {
	v := e.NewValidation()

	switch {
	case countryID == uuid.Nil:
		v.Add("country_id", msgRequired)
	case country == nil:
		v.Add("country_id", "Country does not exist")
	}
	switch {
	case regionID == uuid.Nil:
		v.Add("region_id", msgRequired)
	case region == nil:
		v.Add("region_id", "Region does not exist")
	}
	switch {
	case cityID == uuid.Nil:
		v.Add("city_id", msgRequired)
	case city == nil:
		v.Add("city_id", "City does not exist")
	}
	if !v.Empty() {
		return v
	}

	if region.CountryID != country.ID {
		v.Add("region_id", "Region does not belongs to country")
	}
	if city.RegionID != region.ID {
		v.Add("city_id", "City does not belongs to region")
	}
	return v.ErrOrNil()
}
