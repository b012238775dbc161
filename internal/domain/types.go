package domain

// Control - фракция юнита. Определяет, кто кого может атаковать.
type Control uint8

const (
	ControlNeutral Control = iota
	ControlFriendly
	ControlHostile
)

var controlToString = map[Control]string{
	ControlNeutral:  "NEUTRAL",
	ControlFriendly: "FRIENDLY",
	ControlHostile:  "HOSTILE",
}

func (c Control) String() string {
	if s, ok := controlToString[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// CanAttack проверяет правило фракций: атаковать можно только юнита
// другой фракции, причем нейтралы в бою не участвуют вообще.
func (c Control) CanAttack(other Control) bool {
	if c == ControlNeutral || other == ControlNeutral {
		return false
	}
	return c != other
}

// Типы юнитов (для клиентского рендеринга)
const (
	UnitTypeCharacter = "CHARACTER"
	UnitTypeHostile   = "HOSTILE"
	UnitTypeMarker    = "MARKER"
)
