package vec

import "math"

// Vec2 представляет 2D координаты тайла на карте
type Vec2 struct {
	X, Y int
}

// InSquare возвращает true, если координаты лежат в квадрате [0, size) x [0, size)
func (v Vec2) InSquare(size int) bool {
	return v.X >= 0 && v.Y >= 0 && v.X < size && v.Y < size
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
