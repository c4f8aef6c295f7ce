package overlay

import (
	"github.com/annel0/megapolis/internal/geo"
	"github.com/annel0/megapolis/internal/logging"
	"github.com/annel0/megapolis/internal/vec"
	"github.com/annel0/megapolis/internal/world"
	"github.com/annel0/megapolis/internal/world/building"
)

// step — один шаг рецепта: именованная заливка региона карты.
// Шаги применяются строго по порядку: более поздние заливки
// намеренно перезаписывают более ранние на пересечениях.
type step struct {
	name string
	run  func(g world.Grid)
}

// recipes сопоставляет городам конструкторы последовательностей шагов.
// Закрытая таблица: города без рецепта остаются с обычным
// процедурным рельефом, и художник их не трогает.
var recipes = map[geo.CityID]func(size int) []step{
	geo.CityNewYork:      newYorkSteps,
	geo.CitySanFrancisco: sanFranciscoSteps,
}

// ApplyCityOverlay перезаписывает часть тайлов сетки ручной раскладкой
// воды и суши для указанного города. Сетка мутируется на месте.
//
// Для городов без рецепта и для пустой сетки вызов ничего не делает.
// Ошибок не бывает: некорректный вход поглощается молча.
func ApplyCityOverlay(g world.Grid, id geo.CityID) {
	size := g.Size()
	if size == 0 {
		return
	}

	makeSteps, ok := recipes[id]
	if !ok {
		logging.Debug("Оверлей для города %s не задан, рельеф не изменён", id)
		return
	}

	logging.Debug("Применение оверлея %s к сетке %dx%d", id, size, size)
	for _, s := range makeSteps(size) {
		s.run(g)
		logging.Trace("Оверлей %s: шаг %q применён", id, s.name)
	}
}

// paintTile сбрасывает тайл к первозданному состоянию и помечает его
// указанным типом рельефа. Координаты вне сетки молча игнорируются.
func paintTile(g world.Grid, x, y int, t building.Type) {
	if !(vec.Vec2{X: x, Y: y}).InSquare(g.Size()) {
		return
	}
	tile := g.At(x, y)
	tile.Reset()
	tile.Building.Type = t
}

// paintWater помечает тайл водой
func paintWater(g world.Grid, x, y int) {
	paintTile(g, x, y, building.TypeWater)
}

// paintLand помечает тайл сушей (травой)
func paintLand(g world.Grid, x, y int) {
	paintTile(g, x, y, building.TypeGrass)
}

// paintLandKeepWater помечает тайл сушей, только если он ещё не вода.
// Защита от двойной закраски в рецептах, где регионы суши
// пересекаются с уже залитой водой.
func paintLandKeepWater(g world.Grid, x, y int) {
	if !(vec.Vec2{X: x, Y: y}).InSquare(g.Size()) {
		return
	}
	if g.At(x, y).Building.Type == building.TypeWater {
		return
	}
	paintLand(g, x, y)
}

// fillRect заливает прямоугольник колонок [x0, x1) и рядов [y0, y1)
func fillRect(g world.Grid, x0, x1, y0, y1 int, paint func(world.Grid, int, int)) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			paint(g, x, y)
		}
	}
}

// fillDisc заливает заполненный диск радиуса r с центром (cx, cy),
// тест принадлежности dx*dx + dy*dy <= r*r
func fillDisc(g world.Grid, cx, cy, r int, paint func(world.Grid, int, int)) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= r*r {
				paint(g, x, y)
			}
		}
	}
}

// frac возвращает floor(f * size) для неотрицательных размеров
func frac(size int, f float64) int {
	return int(f * float64(size))
}
