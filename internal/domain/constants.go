package domain

// Параметры юнитов по умолчанию (если карта не задала свои)
const (
	DefaultMaxHP = 3
	DefaultMaxAP = 2
)

// Параметры восприятия и боя
const (
	// AIVisionRadius - радиус (по Чебышеву), в котором враг замечает цели
	AIVisionRadius = 5

	// MeleeRange - дистанция ближнего боя (соседняя клетка, включая диагональ)
	MeleeRange = 1

	// ActionRadius - радиус генерации действий вокруг выбранного юнита.
	// Движение в этой игре одношаговое, полноценный pathfinding не нужен.
	ActionRadius = 1
)

// Стоимость действий в очках действия (AP)
const (
	APCostMove   = 1
	APCostAttack = 1
	APCostWait   = 1
)
