package building

var registry = make(map[Type]Info)

// Register добавляет описание типа застройки в регистр
func Register(id Type, info Info) {
	registry[id] = info
}

// Get возвращает описание для указанного типа
func Get(id Type) (Info, bool) {
	info, exists := registry[id]
	return info, exists
}

// IsValidType проверяет, является ли ID допустимым типом застройки
func IsValidType(id Type) bool {
	_, exists := registry[id]
	return exists
}

// Type представляет тип застройки тайла
type Type uint16

// Константы типов застройки
const (
	// Базовые типы рельефа
	TypeNone  Type = iota // 0 — пустой тайл
	TypeWater             // 1
	TypeGrass             // 2

	// Для возможности расширения оставляем промежутки между категориями

	// Зонируемая застройка (начиная со 100)
	TypeResidential Type = 100 // Жилая застройка
	TypeCommercial  Type = 101 // Коммерческая застройка
	TypeIndustrial  Type = 102 // Промышленная застройка

	// Инфраструктура (начиная с 200)
	TypeRoad       Type = 200 // Дорога
	TypePowerLine  Type = 201 // Линия электропередачи
	TypePowerPlant Type = 202 // Электростанция
)
