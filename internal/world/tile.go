package world

import (
	"github.com/annel0/megapolis/internal/world/building"
)

// Zone представляет зонирование тайла
type Zone uint8

// Константы зон
const (
	ZoneNone        Zone = iota // 0 — зона не назначена
	ZoneResidential             // Жилая зона
	ZoneCommercial              // Коммерческая зона
	ZoneIndustrial              // Промышленная зона
)

// Building описывает застройку тайла и её симуляционное состояние
type Building struct {
	Type       building.Type // Тип застройки
	Level      int           // Уровень развития застройки
	Population int           // Жители на тайле
	Jobs       int           // Рабочие места на тайле
}

// Tile представляет одну клетку игровой карты.
// Тайлы принадлежат сетке, которая их содержит; ссылки наружу не передаются.
type Tile struct {
	Building Building // Застройка и её состояние

	Zone Zone // Назначенная зона (ZoneNone, если не зонирован)

	Powered   bool // Подключён к электросети
	Watered   bool // Подключён к водопроводу
	OnFire    bool // Горит
	Abandoned bool // Заброшен

	FireProgress         int // Прогресс распространения пожара
	Age                  int // Возраст застройки в тиках
	ConstructionProgress int // Прогресс строительства

	HasSubway bool // Под тайлом проложено метро
}

// Reset возвращает тайл к первозданному незастроенному состоянию:
// зона снята, метро убрано, население/работа/пожар/прогресс обнулены.
// Единственная точка сброса — оба примитива закраски обязаны проходить через неё,
// чтобы набор сбрасываемых полей не мог разойтись между рецептами.
func (t *Tile) Reset() {
	*t = Tile{}
}
