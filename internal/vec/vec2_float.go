package vec

import "math"

// Vec2Float представляет 2D координаты с плавающей точкой.
// Используется в том числе для географических координат (X — широта, Y — долгота).
type Vec2Float struct {
	X, Y float64
}

// ToVec2 преобразует в целочисленные координаты
func (v Vec2Float) ToVec2() Vec2 {
	return Vec2{X: int(v.X), Y: int(v.Y)}
}

// FromVec2 создает Vec2Float из Vec2
func FromVec2(v Vec2) Vec2Float {
	return Vec2Float{X: float64(v.X), Y: float64(v.Y)}
}

// Add складывает два вектора
func (v Vec2Float) Add(other Vec2Float) Vec2Float {
	return Vec2Float{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub вычитает вектор
func (v Vec2Float) Sub(other Vec2Float) Vec2Float {
	return Vec2Float{X: v.X - other.X, Y: v.Y - other.Y}
}

// Length возвращает длину вектора
func (v Vec2Float) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo вычисляет расстояние до другой точки.
// Обычная евклидова метрика на плоскости, без сферических поправок.
func (v Vec2Float) DistanceTo(other Vec2Float) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}
