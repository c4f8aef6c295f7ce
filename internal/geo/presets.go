package geo

import (
	"github.com/annel0/megapolis/internal/vec"
)

// CityID представляет идентификатор известного города
type CityID string

// Константы идентификаторов городов.
// Закрытое перечисление: значений вне этого набора не существует.
const (
	CityNewYork      CityID = "new_york"
	CitySanFrancisco CityID = "san_francisco"
	CityLondon       CityID = "london"
	CityDublin       CityID = "dublin"
	CityTokyo        CityID = "tokyo"
	CitySydney       CityID = "sydney"
)

// PresetCity представляет неизменяемую запись об известном городе
type PresetCity struct {
	ID     CityID        // Идентификатор города
	Center vec.Vec2Float // Центр города в градусах (X — широта, Y — долгота)
}

// presets — статический упорядоченный список известных городов.
// Создаётся один раз на процесс и никогда не мутируется;
// порядок важен: при равных расстояниях побеждает более ранняя запись.
var presets = []PresetCity{
	{ID: CityNewYork, Center: vec.Vec2Float{X: 40.7128, Y: -74.0060}},
	{ID: CitySanFrancisco, Center: vec.Vec2Float{X: 37.7749, Y: -122.4194}},
	{ID: CityLondon, Center: vec.Vec2Float{X: 51.5074, Y: -0.1278}},
	{ID: CityDublin, Center: vec.Vec2Float{X: 53.3498, Y: -6.2603}},
	{ID: CityTokyo, Center: vec.Vec2Float{X: 35.6762, Y: 139.6503}},
	{ID: CitySydney, Center: vec.Vec2Float{X: -33.8688, Y: 151.2093}},
}

// Presets возвращает копию списка известных городов
func Presets() []PresetCity {
	out := make([]PresetCity, len(presets))
	copy(out, presets)
	return out
}

// IsValidCityID проверяет, входит ли идентификатор в набор известных городов
func IsValidCityID(id CityID) bool {
	for _, city := range presets {
		if city.ID == id {
			return true
		}
	}
	return false
}
