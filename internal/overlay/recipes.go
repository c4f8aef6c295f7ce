package overlay

import (
	"github.com/annel0/megapolis/internal/world"
)

// Геометрия Нью-Йорка задана в абсолютных тайлах эталонной сетки 64x64
// и применяется буквально на любом размере: на сетках далеко от 64
// раскладка геометрически искажается, выход за границы поглощают
// проверки примитивов. Известное ограничение MVP, не обобщать.
const (
	nyManhattanWidth  = 6  // Базовая ширина Манхэттена
	nyHudsonWidth     = 8  // Ширина Гудзона (к западу от острова)
	nyEastRiverWidth  = 4  // Ширина Ист-Ривер (к востоку от острова)
	nyManhattanTop    = 8  // Первый ряд Манхэттена
	nyManhattanBottom = 56 // Ряд за последним рядом Манхэттена
)

// newYorkSteps строит рецепт Нью-Йорка: порядок шагов важен,
// поздние заливки перезаписывают ранние (например, гавань
// накрывает южные хвосты обеих рек).
func newYorkSteps(size int) []step {
	centerX := size / 2
	centerY := size / 2

	// Центры речных полос смещены от centerX на половины ширин соседних полос
	hudsonCenter := centerX - nyManhattanWidth/2 - nyHudsonWidth/2
	eastCenter := centerX + nyManhattanWidth/2 + nyEastRiverWidth/2
	hudsonLeft := hudsonCenter - nyHudsonWidth/2
	eastLeft := eastCenter - nyEastRiverWidth/2

	return []step{
		{"река Гудзон", func(g world.Grid) {
			fillRect(g, hudsonLeft, hudsonLeft+nyHudsonWidth, nyManhattanTop, 66, paintWater)
		}},
		{"Ист-Ривер", func(g world.Grid) {
			fillRect(g, eastLeft, eastLeft+nyEastRiverWidth, 12, nyManhattanBottom, paintWater)
		}},
		{"Манхэттен", func(g world.Grid) {
			for y := nyManhattanTop; y < nyManhattanBottom; y++ {
				// Остров раздувается на floor(dy/8) тайлов по мере удаления
				// ряда от вертикальной середины — профиль обратен реальному
				// Манхэттену, это известная причуда рецепта
				dy := y - centerY
				if dy < 0 {
					dy = -dy
				}
				width := nyManhattanWidth + dy/8
				left := centerX - width/2
				for x := left; x < left+width; x++ {
					paintLand(g, x, y)
				}
			}
		}},
		{"гавань", func(g world.Grid) {
			// Средние 60% ширины сетки, от ряда 56 до нижнего края
			fillRect(g, frac(size, 0.2), frac(size, 0.8), nyManhattanBottom, size, paintWater)
		}},
		{"Нью-Джерси", func(g world.Grid) {
			// Всё западнее полосы Гудзона
			fillRect(g, 0, hudsonLeft, 16, nyManhattanBottom, paintLand)
		}},
		{"Бруклин и Куинс", func(g world.Grid) {
			// Всё восточнее полосы Ист-Ривер
			fillRect(g, eastLeft+nyEastRiverWidth, size, 16, nyManhattanBottom, paintLand)
		}},
		{"Статен-Айленд", func(g world.Grid) {
			fillDisc(g, frac(size, 0.25), frac(size, 0.75), 8, paintLand)
		}},
		{"Аппер-Бей", func(g world.Grid) {
			// Средние 40% колонок в верхних восьми рядах
			fillRect(g, frac(size, 0.3), frac(size, 0.7), 0, 8, paintWater)
		}},
	}
}

// sanFranciscoSteps строит рецепт Сан-Франциско.
// Геометрия задана долями от размера сетки.
func sanFranciscoSteps(size int) []step {
	pacificEdge := frac(size, 0.20)
	bayBottom := frac(size, 0.75)

	// Западная граница залива в ряду y: сужается к югу, залив
	// тянется до правого края сетки
	bayLeft := func(y int) int {
		return int(0.50*float64(size) - float64(y)/(0.75*float64(size))*5.0)
	}

	return []step{
		{"Тихий океан", func(g world.Grid) {
			fillRect(g, 0, pacificEdge, 0, size, paintWater)
		}},
		{"залив Сан-Франциско", func(g world.Grid) {
			for y := 0; y < bayBottom; y++ {
				for x := bayLeft(y); x < size; x++ {
					paintWater(g, x, y)
				}
			}
		}},
		{"полуостров Сан-Франциско", func(g world.Grid) {
			// Только колонки между океаном и краем залива этого ряда,
			// и только тайлы, ещё не помеченные водой
			for y := frac(size, 0.10); y < frac(size, 0.70); y++ {
				for x := pacificEdge; x < bayLeft(y); x++ {
					paintLandKeepWater(g, x, y)
				}
			}
		}},
		{"Золотые Ворота", func(g world.Grid) {
			// Пролив, прорезающий полуостров
			fillRect(g, frac(size, 0.25), frac(size, 0.45), 0, frac(size, 0.05), paintWater)
		}},
		{"Ист-Бэй", func(g world.Grid) {
			for y := frac(size, 0.15); y < frac(size, 0.65); y++ {
				for x := frac(size, 0.55); x < size; x++ {
					paintLandKeepWater(g, x, y)
				}
			}
		}},
	}
}
