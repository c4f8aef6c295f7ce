package world

import (
	"testing"

	"github.com/annel0/megapolis/internal/world/building"
	"github.com/stretchr/testify/assert"
)

func TestTile_Reset(t *testing.T) {
	// Заполняем тайл «развитым» состоянием
	tile := Tile{
		Building: Building{
			Type:       building.TypeResidential,
			Level:      3,
			Population: 120,
			Jobs:       40,
		},
		Zone:                 ZoneResidential,
		Powered:              true,
		Watered:              true,
		OnFire:               true,
		Abandoned:            true,
		FireProgress:         5,
		Age:                  77,
		ConstructionProgress: 50,
		HasSubway:            true,
	}

	tile.Reset()

	// После сброса тайл в первозданном незастроенном состоянии
	assert.Equal(t, building.TypeNone, tile.Building.Type, "Тип застройки должен быть сброшен")
	assert.Zero(t, tile.Building.Level)
	assert.Zero(t, tile.Building.Population, "Население должно быть обнулено")
	assert.Zero(t, tile.Building.Jobs, "Рабочие места должны быть обнулены")
	assert.Equal(t, ZoneNone, tile.Zone, "Зона должна быть снята")
	assert.False(t, tile.Powered)
	assert.False(t, tile.Watered)
	assert.False(t, tile.OnFire)
	assert.False(t, tile.Abandoned)
	assert.Zero(t, tile.FireProgress)
	assert.Zero(t, tile.Age)
	assert.Zero(t, tile.ConstructionProgress)
	assert.False(t, tile.HasSubway, "Метро должно быть убрано")
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(16)

	assert.Equal(t, 16, g.Size(), "Размер стороны должен совпадать с запрошенным")
	assert.Len(t, g, 16)
	for y := range g {
		assert.Len(t, g[y], 16, "Каждый ряд должен содержать size колонок")
	}

	// Свежая сетка состоит из первозданных тайлов
	assert.Equal(t, Tile{}, g[7][7])
}

func TestGrid_SizeEmpty(t *testing.T) {
	assert.Zero(t, Grid{}.Size(), "Пустая сетка имеет размер 0")
	assert.Zero(t, Grid(nil).Size())
}

func TestGrid_At(t *testing.T) {
	g := NewGrid(8)

	// At возвращает указатель: мутация видна в сетке
	g.At(3, 5).HasSubway = true
	assert.True(t, g[5][3].HasSubway, "At(x, y) должен адресовать ряд y, колонку x")
	assert.False(t, g[3][5].HasSubway)
}
