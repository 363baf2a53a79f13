package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// rawLevel — один level-блок записи balance-файла. Все поля опциональны:
// отсутствие поля означает, что характеристика к юниту не применима.
type rawLevel struct {
	AttackRange             *int `json:"AttackRange"`
	DPS                     *int `json:"DPS"`
	Hitpoints               *int `json:"Hitpoints"`
	Speed                   *int `json:"Speed"`
	UpgradeCost             *int `json:"UpgradeCost"`
	UpgradeTimeH            *int `json:"UpgradeTimeH"`
	LaboratoryLevel         *int `json:"LaboratoryLevel"`
	RequiredTownHallLevel   *int `json:"RequiredTownHallLevel"`
	AbilityTime             *int `json:"AbilityTime"`
	AbilitySummonTroopCount *int `json:"AbilitySummonTroopCount"`
	RegenerationTimeMinutes *int `json:"RegenerationTimeMinutes"`
}

// rawUnit — запись balance-файла: скалярные поля юнита плюс level-блоки
// под числовыми строковыми ключами ("1", "2", ...).
type rawUnit struct {
	TID                string
	ProductionBuilding string
	BarrackLevel       *int
	HousingSpace       int
	TrainingTime       *int // seconds
	VillageType        int
	UpgradeResource    string
	GroundTargets      *bool
	Deprecated         bool
	DisableProduction  bool

	levels []rawLevel // index = level-1, по возрастанию числового ключа
}

// rawScalar — скалярная часть rawUnit для прямого json-декодирования.
type rawScalar struct {
	TID                string `json:"TID"`
	ProductionBuilding string `json:"ProductionBuilding"`
	BarrackLevel       *int   `json:"BarrackLevel"`
	HousingSpace       int    `json:"HousingSpace"`
	TrainingTime       *int   `json:"TrainingTime"`
	VillageType        int    `json:"VillageType"`
	UpgradeResource    string `json:"UpgradeResource"`
	GroundTargets      *bool  `json:"GroundTargets"`
	Deprecated         bool   `json:"Deprecated"`
	DisableProduction  bool   `json:"DisableProduction"`
}

func (u *rawUnit) UnmarshalJSON(data []byte) error {
	var s rawScalar
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	u.TID = s.TID
	u.ProductionBuilding = s.ProductionBuilding
	u.BarrackLevel = s.BarrackLevel
	u.HousingSpace = s.HousingSpace
	u.TrainingTime = s.TrainingTime
	u.VillageType = s.VillageType
	u.UpgradeResource = s.UpgradeResource
	u.GroundTargets = s.GroundTargets
	u.Deprecated = s.Deprecated
	u.DisableProduction = s.DisableProduction

	// level-блоки лежат рядом со скалярами под числовыми ключами
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	type numbered struct {
		n   int
		lvl rawLevel
	}
	blocks := make([]numbered, 0, len(fields))
	for key, raw := range fields {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		var lvl rawLevel
		if err := json.Unmarshal(raw, &lvl); err != nil {
			return fmt.Errorf("level block %q: %w", key, err)
		}
		blocks = append(blocks, numbered{n: n, lvl: lvl})
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].n < blocks[j].n })

	u.levels = make([]rawLevel, len(blocks))
	for i, b := range blocks {
		u.levels[i] = b.lvl
	}
	return nil
}

// rawEntry — пара (внутреннее имя, запись) balance-файла.
type rawEntry struct {
	internalName string
	unit         rawUnit
}

// decodeBalanceFile декодирует balance-файл, сохраняя порядок записей файла.
// encoding/json map порядок теряет, поэтому читаем токены Decoder-ом.
func decodeBalanceFile(data []byte) ([]rawEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected top-level object, got %v", tok)
	}

	var entries []rawEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var unit rawUnit
		if err := dec.Decode(&unit); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		entries = append(entries, rawEntry{internalName: key, unit: unit})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseAliases декодирует таблицу text-id → отображаемое имя юнита.
func ParseAliases(data []byte) (map[string]string, error) {
	var aliases map[string]string
	if err := json.Unmarshal(data, &aliases); err != nil {
		return nil, &LoadError{File: "texts", Err: err}
	}
	return aliases, nil
}
