package gamedata

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Kind — категория balance-файла.
type Kind string

const (
	KindTroops Kind = "troops"
	KindSpells Kind = "spells"
	KindHeroes Kind = "heroes"
	KindPets   Kind = "pets"
)

// baseTemplateID — базовое смещение sequential id шаблонов.
const baseTemplateID = 2000

// ignoredPets — placeholder-записи pets-файла, не являющиеся юнитами.
var ignoredPets = map[string]bool{
	"Unused":     true,
	"PhoenixEgg": true,
}

// Registry — registry шаблонов одной категории: ordered slice в порядке
// файла для итерации + case-insensitive индекс по имени. После загрузки
// только читается, безопасен для конкурентного доступа.
type Registry struct {
	kind   Kind
	items  []*Template
	byName map[string]*Template
}

// LoadRegistry строит registry из balance-файла.
//
// Пропускаются записи: без TID; tutorial-варианты; с DisableProduction
// (кроме pets-файла — там флаг стоит у всех петов); deprecated;
// placeholder-петы; записи, чей TID отсутствует в таблице алиасов.
// Юниты с неизвестным production building или противоречивой кривой
// прогрессии пропускаются с диагностикой — остальная загрузка продолжается.
func LoadRegistry(kind Kind, raw []byte, aliases map[string]string, labToTownhall map[int]int, buildings BuildingTable) (*Registry, error) {
	entries, err := decodeBalanceFile(raw)
	if err != nil {
		return nil, &LoadError{File: string(kind), Err: err}
	}

	r := &Registry{
		kind:   kind,
		items:  make([]*Template, 0, len(entries)),
		byName: make(map[string]*Template, len(entries)),
	}

	id := baseTemplateID
	for _, e := range entries {
		u := e.unit

		// не настоящий юнит без display-text id
		if u.TID == "" {
			continue
		}
		// дубли tutorial-гоблинов и варваров
		if strings.Contains(e.internalName, "Tutorial") {
			continue
		}
		// у всех петов DisableProduction=true, для них флаг не фильтр
		if u.DisableProduction && kind != KindPets {
			continue
		}
		if u.Deprecated {
			continue
		}
		if kind == KindPets && ignoredPets[e.internalName] {
			continue
		}

		name, ok := aliases[u.TID]
		if !ok {
			slog.Warn("no display name for unit, skipping",
				"kind", kind, "tid", u.TID, "internal", e.internalName)
			continue
		}

		tpl, err := buildTemplate(id, name, &u, buildings, labToTownhall)
		if err != nil {
			var amb *AmbiguousUnlockError
			switch {
			case errors.As(err, &amb):
				slog.Error("skipping unit with ambiguous unlock mapping",
					"kind", kind, "unit", amb.Unit,
					"town_hall", amb.TownHall, "matches", amb.Matches)
				continue
			case errors.Is(err, errSkipUnit):
				slog.Debug("skipping underivable unit",
					"kind", kind, "unit", name, "reason", err)
				continue
			default:
				slog.Error("skipping unit", "kind", kind, "unit", name, "err", err)
				continue
			}
		}
		id++

		r.items = append(r.items, tpl)
		// дубли имён: последний выигрывает в индексе,
		// порядок итерации сохраняет оба
		r.byName[strings.ToLower(tpl.Name)] = tpl
	}

	slog.Info("loaded unit templates",
		"kind", kind, "count", len(r.items), "skipped", len(entries)-len(r.items))
	return r, nil
}

// Kind возвращает категорию registry.
func (r *Registry) Kind() Kind { return r.kind }

// Len возвращает число зарегистрированных шаблонов.
func (r *Registry) Len() int { return len(r.items) }

// Get возвращает шаблон по имени (case-insensitive) или nil.
// Nil вместо ошибки: live-данные игрока могут содержать юниты,
// которых ещё нет в статическом дампе.
func (r *Registry) Get(name string) *Template {
	return r.byName[strings.ToLower(name)]
}

// Templates возвращает копию ordered-коллекции в порядке файла.
func (r *Registry) Templates() []*Template {
	return slices.Clone(r.items)
}

// Materialize строит Instance поверх шаблона, найденного по имени юнита.
// Неизвестное имя — fallback-шаблон вызывающего кода (может быть nil):
// незнакомый юнит не должен ронять парс всего профиля игрока.
func (r *Registry) Materialize(d UnitData, fallback *Template) *Instance {
	tpl := r.Get(d.Name)
	if tpl == nil {
		tpl = fallback
	}
	return NewInstance(tpl, d)
}

// Verify проверяет инвариант registry: все определённые серии шаблона
// имеют одинаковую длину. Возвращает первое найденное нарушение.
func (r *Registry) Verify() error {
	for _, t := range r.items {
		series := []struct {
			name string
			len  int
		}{
			{"range", t.Range.Len()},
			{"dps", t.DPS.Len()},
			{"hitpoints", t.Hitpoints.Len()},
			{"speed", t.Speed.Len()},
			{"upgrade_cost", t.UpgradeCost.Len()},
			{"lab_level", t.LabLevel.Len()},
			{"required_town_hall", t.RequiredTownHall.Len()},
		}
		ref := 0
		refName := ""
		for _, s := range series {
			if s.len == 0 {
				continue
			}
			if ref == 0 {
				ref, refName = s.len, s.name
				continue
			}
			if s.len != ref {
				return fmt.Errorf("template %q: series %s has %d levels, %s has %d",
					t.Name, s.name, s.len, refName, ref)
			}
		}
	}
	return nil
}
