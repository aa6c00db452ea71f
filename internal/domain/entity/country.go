package entity

// Continent is the closed set of continents.
type Continent string

const (
	ContinentAfrica       Continent = "AFRICA"
	ContinentAsia         Continent = "ASIA"
	ContinentEurope       Continent = "EUROPE"
	ContinentNorthAmerica Continent = "NORTH_AMERICA"
	ContinentOceania      Continent = "OCEANIA"
	ContinentSouthAmerica Continent = "SOUTH_AMERICA"
)

// IsValid checks if the Continent is a valid value.
func (c Continent) IsValid() bool {
	switch c {
	case ContinentAfrica, ContinentAsia, ContinentEurope,
		ContinentNorthAmerica, ContinentOceania, ContinentSouthAmerica:
		return true
	default:
		return false
	}
}

// Country is a schema-level stub: it participates in the persisted schema
// but has no service or routes.
type Country struct {
	ID          int64
	CountryName string
	Continent   Continent
}
