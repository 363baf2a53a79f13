package gamedata

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"time"
)

// UnitData — один юнит из live player JSON, как его отдаёт API.
type UnitData struct {
	Name     string  `json:"name"`
	Level    int     `json:"level"`
	MaxLevel int     `json:"maxLevel"`
	Village  Village `json:"village"`
	Active   bool    `json:"superTroopIsActive"`
}

// Instance — юнит конкретного игрока: уровень, максимальный уровень и
// active-флаг поверх общего неизменяемого Template. Создаётся на каждый
// юнит ответа API, шаблон никогда не мутирует.
type Instance struct {
	template *Template

	name     string
	level    int
	maxLevel int
	village  Village
	active   bool
}

// NewInstance накладывает instance-поля на шаблон. tpl может быть nil —
// тогда stat-аксессоры возвращают ErrNoTemplate, но идентичность юнита
// (имя, уровень) остаётся доступной.
func NewInstance(tpl *Template, d UnitData) *Instance {
	return &Instance{
		template: tpl,
		name:     d.Name,
		level:    d.Level,
		maxLevel: d.MaxLevel,
		village:  d.Village,
		active:   d.Active,
	}
}

// Template возвращает общий шаблон юнита (nil для незнакомых юнитов).
func (i *Instance) Template() *Template { return i.template }

// Name возвращает имя юнита из ответа API.
func (i *Instance) Name() string { return i.name }

// Level возвращает текущий уровень юнита.
func (i *Instance) Level() int { return i.level }

// MaxLevel возвращает максимальный уровень юнита по данным API.
func (i *Instance) MaxLevel() int { return i.maxLevel }

// Village возвращает деревню юнита.
func (i *Instance) Village() Village { return i.village }

// IsActive reports whether the super-troop boost is active.
func (i *Instance) IsActive() bool { return i.active }

// IsMax reports whether the unit is at its maximum level.
func (i *Instance) IsMax() bool { return i.level == i.maxLevel }

// IsHomeBase reports whether the unit belongs to the home village.
func (i *Instance) IsHomeBase() bool { return i.village == VillageHome }

// IsBuilderBase reports whether the unit belongs to the builder base.
func (i *Instance) IsBuilderBase() bool { return i.village == VillageBuilderBase }

// Equal — равенство наблюдаемого состояния (имя, уровень, деревня,
// active), независимо от идентичности шаблонов.
func (i *Instance) Equal(other *Instance) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.name == other.name &&
		i.level == other.level &&
		i.village == other.village &&
		i.active == other.active
}

// Hash — стабильный hash над теми же полями, что и Equal.
func (i *Instance) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(i.name))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(i.level))
	h.Write(buf[:])
	h.Write([]byte(i.village))
	if i.active {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}

func (i *Instance) String() string {
	return fmt.Sprintf("<Instance name=%q level=%d active=%t>", i.name, i.level, i.active)
}

// statAt делегирует к серии шаблона на текущем уровне юнита.
func (i *Instance) statAt(pick func(*Template) Stat) (int, error) {
	if i.template == nil {
		return 0, ErrNoTemplate
	}
	return pick(i.template).At(i.level)
}

func (i *Instance) durationAt(pick func(*Template) DurationStat) (time.Duration, error) {
	if i.template == nil {
		return 0, ErrNoTemplate
	}
	return pick(i.template).At(i.level)
}

// DPS возвращает урон в секунду на текущем уровне.
func (i *Instance) DPS() (int, error) {
	return i.statAt(func(t *Template) Stat { return t.DPS })
}

// Hitpoints возвращает hitpoints на текущем уровне.
func (i *Instance) Hitpoints() (int, error) {
	return i.statAt(func(t *Template) Stat { return t.Hitpoints })
}

// Range возвращает дальность атаки на текущем уровне.
func (i *Instance) Range() (int, error) {
	return i.statAt(func(t *Template) Stat { return t.Range })
}

// Speed возвращает скорость на текущем уровне.
func (i *Instance) Speed() (int, error) {
	return i.statAt(func(t *Template) Stat { return t.Speed })
}

// UpgradeCost возвращает стоимость апгрейда на следующий уровень.
func (i *Instance) UpgradeCost() (int, error) {
	return i.statAt(func(t *Template) Stat { return t.UpgradeCost })
}

// LabLevel возвращает минимальный laboratory level для текущего уровня.
func (i *Instance) LabLevel() (int, error) {
	return i.statAt(func(t *Template) Stat { return t.LabLevel })
}

// RequiredTownHall возвращает town hall, требуемый для текущего уровня.
func (i *Instance) RequiredTownHall() (int, error) {
	return i.statAt(func(t *Template) Stat { return t.RequiredTownHall })
}

// AbilityTime возвращает длительность способности героя на текущем уровне.
func (i *Instance) AbilityTime() (int, error) {
	return i.statAt(func(t *Template) Stat { return t.AbilityTime })
}

// UpgradeTime возвращает время апгрейда на следующий уровень.
func (i *Instance) UpgradeTime() (time.Duration, error) {
	return i.durationAt(func(t *Template) DurationStat { return t.UpgradeTime })
}

// RegenerationTime возвращает время регенерации пета на текущем уровне.
func (i *Instance) RegenerationTime() (time.Duration, error) {
	return i.durationAt(func(t *Template) DurationStat { return t.RegenerationTime })
}
