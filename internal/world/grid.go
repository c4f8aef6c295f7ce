package world

// Grid представляет квадратную карту тайлов.
// Внешний индекс — ряд (y), внутренний — колонка (x).
// Сетка целиком принадлежит вызывающей стороне: пакеты этого модуля
// мутируют тайлы на месте и никогда не создают и не пересоздают сетки.
type Grid [][]Tile

// NewGrid создаёт пустую квадратную сетку size x size
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for y := range g {
		g[y] = make([]Tile, size)
	}
	return g
}

// Size возвращает размер стороны сетки.
// Читается из внешней размерности в момент вызова.
func (g Grid) Size() int {
	return len(g)
}

// At возвращает указатель на тайл в позиции (x, y) без проверки границ
func (g Grid) At(x, y int) *Tile {
	return &g[y][x]
}
