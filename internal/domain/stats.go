package domain

// UseHitPoints отнимает здоровье. Значение не уходит ниже нуля.
// Возвращает true ровно тогда, когда HP достигли нуля ЭТИМ вызовом,
// то есть юнит погиб сейчас.
func (s *StatsComponent) UseHitPoints(amount int) bool {
	if s.IsDead || amount <= 0 {
		return false
	}

	s.HP -= amount
	if s.HP <= 0 {
		s.HP = 0
		s.IsDead = true
		return true
	}
	return false
}

// Heal лечит юнита, не превышая максимум. Трупы не лечим.
func (s *StatsComponent) Heal(amount int) {
	if s.IsDead || amount <= 0 {
		return
	}
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}

// HasActionPoints проверяет, остались ли очки действия
func (s *StatsComponent) HasActionPoints() bool {
	return s.AP > 0
}

// UseActionPoints - единственный примитив траты очков действия.
// Возвращает false и НЕ меняет состояние, если очков не хватает.
// И игрок, и AI тратят очки только через него.
func (s *StatsComponent) UseActionPoints(cost int) bool {
	if cost < 0 || s.AP < cost {
		return false
	}
	s.AP -= cost
	return true
}

// NewTurn восстанавливает очки действия в начале фазы юнита.
// Идемпотентно: повторный вызов ничего не ломает.
func (s *StatsComponent) NewTurn() {
	s.AP = s.MaxAP
}
