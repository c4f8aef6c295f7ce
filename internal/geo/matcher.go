package geo

import (
	"math"

	"github.com/annel0/megapolis/internal/logging"
	"github.com/annel0/megapolis/internal/vec"
)

// MatchToleranceDegrees — максимально допустимое расстояние до центра города
// в градусах. Контрактная константа, не настраивается.
const MatchToleranceDegrees = 0.8

// DetectPresetCity сопоставляет географическую координату ближайшему известному
// городу. Возвращает (id, true) при попадании в радиус допуска и ("", false) иначе.
//
// Расстояние считается евклидовой метрикой в градусном пространстве —
// намеренное MVP-упрощение. Заменять на сферическую формулу нельзя:
// на границе допуска поведение незаметно разойдётся с эталоном.
func DetectPresetCity(lat, lng float64) (CityID, bool) {
	point := vec.Vec2Float{X: lat, Y: lng}

	var matched CityID
	bestDist := math.MaxFloat64

	for _, city := range presets {
		dist := point.DistanceTo(city.Center)
		if dist > MatchToleranceDegrees {
			continue
		}
		// Строгое сравнение: при равных расстояниях остаётся
		// более ранний город из фиксированного списка
		if dist < bestDist {
			matched = city.ID
			bestDist = dist
		}
	}

	if matched == "" {
		logging.Trace("Координата (%.4f, %.4f) не совпала ни с одним городом", lat, lng)
		return "", false
	}

	logging.Debug("Координата (%.4f, %.4f) сопоставлена городу %s (расстояние %.4f)",
		lat, lng, matched, bestDist)
	return matched, true
}
