package gamedata

import (
	"fmt"
	"sort"
)

// Известные production buildings. Точное совпадение строки из balance-файла.
const (
	buildingBarrack     = "Barrack"
	buildingBarrack2    = "Barrack2"
	buildingDarkBarrack = "Dark Elixir Barrack"
	buildingSiege       = "SiegeWorkshop"
	buildingSpellForge  = "Spell Forge"
	buildingMiniSpell   = "Mini Spell Factory"
	buildingPetShop     = "Pet Shop"
)

// isBarracksFamily: здания, у которых минимальный уровень для юнита
// задаётся полем BarrackLevel самого юнита.
func isBarracksFamily(building string) bool {
	switch building {
	case buildingBarrack, buildingBarrack2, buildingDarkBarrack,
		buildingSiege, buildingSpellForge, buildingMiniSpell:
		return true
	}
	return false
}

// resolveLabLevels вычисляет laboratory-серию юнита: минимальный lab level
// аккаунта для каждого уровня юнита.
//
// Пути разрешения:
//   - building == "" — герой, серия берётся из LaboratoryLevel как есть;
//   - barracks-семейство — floor через BarrackLevel юнита и таблицу зданий
//     (без BarrackLevel — verbatim, есть спец-юниты без этого поля);
//   - Pet Shop — floor через LaboratoryLevel первого уровня юнита;
//   - иное здание — errSkipUnit, юнит не попадает в registry.
//
// Где floor известен, серия корректируется: max(raw[i], floor). Это чинит
// несогласованные исходные данные (siege machines, часть петов), у которых
// старшие уровни помечены lab-требованием ниже собственного минимума юнита.
func resolveLabLevels(name, building string, u *rawUnit, buildings BuildingTable, labToTownhall map[int]int) (Stat, error) {
	rawVals := make([]*int, len(u.levels))
	for i := range u.levels {
		rawVals[i] = u.levels[i].LaboratoryLevel
	}

	// без production building — герой
	if building == "" {
		return NewStat(rawVals), nil
	}

	var minBuildingLevel int
	switch {
	case isBarracksFamily(building):
		// нулевой BarrackLevel равнозначен отсутствующему
		if u.BarrackLevel == nil || *u.BarrackLevel == 0 {
			return NewStat(rawVals), nil
		}
		minBuildingLevel = *u.BarrackLevel
	case building == buildingPetShop:
		if len(u.levels) == 0 || u.levels[0].LaboratoryLevel == nil {
			return Stat{}, fmt.Errorf("pet %q: level 1 has no LaboratoryLevel", name)
		}
		minBuildingLevel = *u.levels[0].LaboratoryLevel
	default:
		return Stat{}, fmt.Errorf("production building %q: %w", building, errSkipUnit)
	}

	townHall, ok := buildings.TownHallFor(building, minBuildingLevel)
	if !ok {
		return Stat{}, fmt.Errorf("no unlock entry for %s level %d", building, minBuildingLevel)
	}
	floor, err := labLevelFor(name, townHall, labToTownhall)
	if err != nil {
		return Stat{}, err
	}

	floored := make([]int, len(u.levels))
	for i, v := range rawVals {
		lab := 1
		if v != nil {
			lab = *v
		}
		floored[i] = max(lab, floor)
	}
	return statOf(floored), nil
}

// labLevelFor — обратный lookup: town hall → laboratory level.
// Кривая прогрессии должна давать ровно одно соответствие; ноль или
// несколько — противоречие в статических данных, AmbiguousUnlockError.
func labLevelFor(unit string, townHall int, labToTownhall map[int]int) (int, error) {
	var matches []int
	for lab, th := range labToTownhall {
		if th == townHall {
			matches = append(matches, lab)
		}
	}
	if len(matches) != 1 {
		sort.Ints(matches)
		return 0, &AmbiguousUnlockError{Unit: unit, TownHall: townHall, Matches: matches}
	}
	return matches[0], nil
}

// requiredTownHall строит серию RequiredTownHallLevel: явные per-level
// значения, если хоть одно задано, иначе — corrected laboratory-серия
// (lab level и town hall разблокировки движутся вместе).
func requiredTownHall(levels []rawLevel, labLevels Stat) Stat {
	vals := make([]*int, len(levels))
	any := false
	for i := range levels {
		vals[i] = levels[i].RequiredTownHallLevel
		if vals[i] != nil && *vals[i] != 0 {
			any = true
		}
	}
	if any {
		return NewStat(vals)
	}
	return labLevels
}
