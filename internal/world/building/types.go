package building

// Info содержит статическое описание типа застройки
type Info struct {
	Name    string // Имя типа для логов и отладки
	Terrain bool   // true для базового рельефа (вода, трава)
}

// Name возвращает имя типа застройки
func Name(id Type) string {
	info, exists := Get(id)
	if !exists {
		return "Unknown"
	}
	return info.Name
}

// IsTerrain возвращает true для базовых типов рельефа
func IsTerrain(id Type) bool {
	info, exists := Get(id)
	return exists && info.Terrain
}

func init() {
	Register(TypeNone, Info{Name: "None", Terrain: true})
	Register(TypeWater, Info{Name: "Water", Terrain: true})
	Register(TypeGrass, Info{Name: "Grass", Terrain: true})
	Register(TypeResidential, Info{Name: "Residential"})
	Register(TypeCommercial, Info{Name: "Commercial"})
	Register(TypeIndustrial, Info{Name: "Industrial"})
	Register(TypeRoad, Info{Name: "Road"})
	Register(TypePowerLine, Info{Name: "PowerLine"})
	Register(TypePowerPlant, Info{Name: "PowerPlant"})
}
