package scenario

// Demo возвращает встроенный уровень: отряд из двух бойцов, три гоблина,
// диалоговый триггер у ворот и клетка победы в дальнем углу.
// Используется сервером, когда карта не передана флагом.
func Demo() *Plan {
	return New(16, 12).
		// Внешние стены
		WallRect(0, 0, 15, 0).
		WallRect(0, 11, 15, 11).
		WallRect(0, 0, 0, 11).
		WallRect(15, 0, 15, 11).
		// Перегородка с проходом ("ворота") посередине
		WallRect(8, 1, 8, 4).
		WallRect(8, 7, 8, 10).
		SpawnPC("Сержант", 2, 5, 3, 2).
		SpawnPC("Разведчик", 2, 7, 2, 3).
		SpawnHostile("Гоблин", 11, 3, 1, 2).
		SpawnHostile("Гоблин", 12, 6, 1, 2).
		SpawnHostile("Вожак", 13, 9, 2, 2).
		Speak(8, 5, "За воротами слышно рычание. Приготовьтесь.").
		Speak(8, 6, "За воротами слышно рычание. Приготовьтесь.").
		Win(14, 10, "Зачищено. Уровень пройден!")
}
