package gamedata

import (
	"time"
)

// Village — принадлежность юнита деревне.
type Village string

const (
	VillageHome        Village = "home"
	VillageBuilderBase Village = "builderBase"
)

// Resource — валюта апгрейда юнита. Значения — строки balance-файлов.
type Resource string

const (
	ResourceGold          Resource = "Gold"
	ResourceElixir        Resource = "Elixir"
	ResourceDarkElixir    Resource = "DarkElixir"
	ResourceBuilderElixir Resource = "Elixir2"
)

// PetsOrder — фиксированный список имён петов в игровом порядке.
// Используется для классификации: у петов в balance-данных может
// отсутствовать явное production building.
var PetsOrder = []string{
	"L.A.S.S.I",
	"Electro Owl",
	"Mighty Yak",
	"Unicorn",
	"Frosty",
	"Diggy",
	"Poison Lizard",
	"Phoenix",
	"Spirit Fox",
	"Angry Jelly",
	"Sneezy",
}

var petNames = func() map[string]bool {
	m := make(map[string]bool, len(PetsOrder))
	for _, name := range PetsOrder {
		m[name] = true
	}
	return m
}()

// IsPetName reports whether the display name belongs to the fixed pets list.
func IsPetName(name string) bool { return petNames[name] }

// Template — неизменяемое статическое определение юнита: идентичность,
// флаги категории и все производные stat-серии. Строится один раз при
// загрузке registry, дальше шарится по ссылке и только читается —
// безопасен для несинхронизированного конкурентного чтения.
type Template struct {
	Name    string
	ID      int
	Village Village

	// флаги категории, взаимоисключающие
	IsElixirTroop  bool
	IsDarkTroop    bool
	IsSiegeMachine bool
	IsElixirSpell  bool
	IsDarkSpell    bool
	IsPet          bool
	IsHero         bool

	Range     Stat
	DPS       Stat
	Hitpoints Stat
	Speed     Stat
	// Levels — 1..N, определена только если у юнита есть DPS
	Levels Stat

	UpgradeCost Stat
	UpgradeTime DurationStat
	// LabLevel — corrected unlock-серия (см. resolveLabLevels)
	LabLevel         Stat
	RequiredTownHall Stat

	// только герои
	AbilityTime       Stat
	AbilityTroopCount Stat

	// только петы
	RegenerationTime DurationStat

	HousingSpace    int
	UpgradeResource Resource
	TrainingTime    time.Duration
	GroundTargets   bool
}

// buildTemplate строит Template из записи balance-файла.
// Возвращает errSkipUnit (обёрнутый) для юнитов с неизвестным production
// building и AmbiguousUnlockError при противоречии в кривой прогрессии.
func buildTemplate(id int, name string, u *rawUnit, buildings BuildingTable, labToTownhall map[int]int) (*Template, error) {
	t := &Template{ID: id, Name: name}

	building := u.ProductionBuilding
	switch building {
	case buildingBarrack:
		t.IsElixirTroop = true
	case buildingBarrack2:
		// builder-base казармы участвуют в resolution, но флаг категории
		// не ставят: builder-base юниты апгрейдятся за Elixir2
	case buildingDarkBarrack:
		t.IsDarkTroop = true
	case buildingSiege:
		t.IsSiegeMachine = true
	case buildingSpellForge:
		t.IsElixirSpell = true
	case buildingMiniSpell:
		t.IsDarkSpell = true
	case buildingPetShop:
		t.IsPet = true
	default:
		// петы без явного production building распознаются по имени
		if petNames[name] {
			building = buildingPetShop
			t.IsPet = true
		}
	}
	if building == "" {
		t.IsHero = true
	}

	labLevels, err := resolveLabLevels(name, building, u, buildings, labToTownhall)
	if err != nil {
		return nil, err
	}
	t.LabLevel = labLevels
	t.RequiredTownHall = requiredTownHall(u.levels, labLevels)

	t.Range = collectInts(u.levels, func(l rawLevel) *int { return l.AttackRange })
	t.DPS = collectInts(u.levels, func(l rawLevel) *int { return l.DPS })
	t.Hitpoints = collectInts(u.levels, func(l rawLevel) *int { return l.Hitpoints })
	t.Speed = collectInts(u.levels, func(l rawLevel) *int { return l.Speed })
	t.UpgradeCost = collectInts(u.levels, func(l rawLevel) *int { return l.UpgradeCost })
	t.AbilityTime = collectInts(u.levels, func(l rawLevel) *int { return l.AbilityTime })
	t.AbilityTroopCount = collectInts(u.levels, func(l rawLevel) *int { return l.AbilitySummonTroopCount })

	t.UpgradeTime = collectDurations(u.levels, time.Hour,
		func(l rawLevel) *int { return l.UpgradeTimeH })
	t.RegenerationTime = collectDurations(u.levels, time.Minute,
		func(l rawLevel) *int { return l.RegenerationTimeMinutes })

	if !t.DPS.IsAbsent() {
		levels := make([]int, t.DPS.Len())
		for i := range levels {
			levels[i] = i + 1
		}
		t.Levels = statOf(levels)
	}

	t.HousingSpace = u.HousingSpace
	t.UpgradeResource = Resource(u.UpgradeResource)
	if u.TrainingTime != nil {
		t.TrainingTime = time.Duration(*u.TrainingTime) * time.Second
	}
	// GroundTargets по умолчанию true
	t.GroundTargets = u.GroundTargets == nil || *u.GroundTargets

	if u.VillageType == 0 {
		t.Village = VillageHome
	} else {
		t.Village = VillageBuilderBase
	}

	return t, nil
}

func collectInts(levels []rawLevel, pick func(rawLevel) *int) Stat {
	vals := make([]*int, len(levels))
	for i := range levels {
		vals[i] = pick(levels[i])
	}
	return NewStat(vals)
}

func collectDurations(levels []rawLevel, unit time.Duration, pick func(rawLevel) *int) DurationStat {
	vals := make([]*int, len(levels))
	for i := range levels {
		vals[i] = pick(levels[i])
	}
	return NewDurationStat(vals, unit)
}

// Equal сравнивает шаблоны по всем полям. Два одинаковых дампа дают
// равные шаблоны.
func (t *Template) Equal(other *Template) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Name == other.Name &&
		t.ID == other.ID &&
		t.Village == other.Village &&
		t.IsElixirTroop == other.IsElixirTroop &&
		t.IsDarkTroop == other.IsDarkTroop &&
		t.IsSiegeMachine == other.IsSiegeMachine &&
		t.IsElixirSpell == other.IsElixirSpell &&
		t.IsDarkSpell == other.IsDarkSpell &&
		t.IsPet == other.IsPet &&
		t.IsHero == other.IsHero &&
		t.Range.Equal(other.Range) &&
		t.DPS.Equal(other.DPS) &&
		t.Hitpoints.Equal(other.Hitpoints) &&
		t.Speed.Equal(other.Speed) &&
		t.Levels.Equal(other.Levels) &&
		t.UpgradeCost.Equal(other.UpgradeCost) &&
		t.UpgradeTime.Equal(other.UpgradeTime) &&
		t.LabLevel.Equal(other.LabLevel) &&
		t.RequiredTownHall.Equal(other.RequiredTownHall) &&
		t.AbilityTime.Equal(other.AbilityTime) &&
		t.AbilityTroopCount.Equal(other.AbilityTroopCount) &&
		t.RegenerationTime.Equal(other.RegenerationTime) &&
		t.HousingSpace == other.HousingSpace &&
		t.UpgradeResource == other.UpgradeResource &&
		t.TrainingTime == other.TrainingTime &&
		t.GroundTargets == other.GroundTargets
}
