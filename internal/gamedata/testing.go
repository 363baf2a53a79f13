package gamedata

// Exported test fixtures: канонический статический дамп для тестов этого
// пакета и cross-package тестов (model, cmd). Кривая прогрессии:
// lab 1→TH3, 2→TH4, 3→TH5, 4→TH7, 5→TH9, 6→TH10, 7→TH13.

// TestLabToTownhall возвращает тестовую кривую laboratory → town hall.
func TestLabToTownhall() map[int]int {
	return map[int]int{1: 3, 2: 4, 3: 5, 4: 7, 5: 9, 6: 10, 7: 13}
}

// TestBuildingsJSON — таблица разблокировки зданий тестового дампа.
const TestBuildingsJSON = `{
	"Barrack": {
		"1": {"TownHallLevel": 1},
		"2": {"TownHallLevel": 3},
		"6": {"TownHallLevel": 9}
	},
	"Dark Elixir Barrack": {
		"1": {"TownHallLevel": 7}
	},
	"Spell Forge": {
		"1": {"TownHallLevel": 5},
		"2": {"TownHallLevel": 7}
	},
	"Mini Spell Factory": {
		"1": {"TownHallLevel": 9}
	},
	"SiegeWorkshop": {
		"1": {"TownHallLevel": 10}
	},
	"Barrack2": {
		"2": {"TownHallLevel": 4}
	},
	"Pet Shop": {
		"9": {"TownHallLevel": 13}
	}
}`

// TestTroopsJSON — troops-файл тестового дампа. Knight воспроизводит
// несогласованные исходные lab-значения, которые чинит flooring;
// KnightVariant делит display name с Knight (latest-wins в индексе).
const TestTroopsJSON = `{
	"Knight": {
		"TID": "TID_KNIGHT",
		"ProductionBuilding": "Barrack",
		"BarrackLevel": 6,
		"HousingSpace": 5,
		"TrainingTime": 20,
		"UpgradeResource": "Elixir",
		"1": {"AttackRange": 1, "DPS": 50, "Hitpoints": 200, "Speed": 16, "UpgradeCost": 50000, "UpgradeTimeH": 6, "LaboratoryLevel": 3},
		"2": {"AttackRange": 1, "DPS": 56, "Hitpoints": 220, "Speed": 16, "UpgradeCost": 60000, "UpgradeTimeH": 8, "LaboratoryLevel": 4},
		"3": {"AttackRange": 1, "DPS": 62, "Hitpoints": 240, "Speed": 16, "UpgradeCost": 70000, "UpgradeTimeH": 10, "LaboratoryLevel": 4},
		"4": {"AttackRange": 1, "DPS": 70, "Hitpoints": 270, "Speed": 16, "UpgradeCost": 90000, "UpgradeTimeH": 12, "LaboratoryLevel": 5},
		"5": {"AttackRange": 1, "DPS": 78, "Hitpoints": 300, "Speed": 16, "UpgradeCost": 120000, "UpgradeTimeH": 14, "LaboratoryLevel": 5},
		"6": {"AttackRange": 1, "DPS": 86, "Hitpoints": 340, "Speed": 16, "UpgradeCost": 150000, "UpgradeTimeH": 16, "LaboratoryLevel": 5}
	},
	"TutorialKnight": {
		"TID": "TID_KNIGHT",
		"ProductionBuilding": "Barrack",
		"1": {"DPS": 50, "Hitpoints": 200}
	},
	"OldKnight": {
		"TID": "TID_OLD_KNIGHT",
		"ProductionBuilding": "Barrack",
		"Deprecated": true,
		"1": {"DPS": 40, "Hitpoints": 150}
	},
	"SecretKnight": {
		"TID": "TID_SECRET_KNIGHT",
		"ProductionBuilding": "Barrack",
		"DisableProduction": true,
		"1": {"DPS": 40, "Hitpoints": 150}
	},
	"KnightPlaceholder": {
		"ProductionBuilding": "Barrack",
		"1": {"DPS": 1, "Hitpoints": 1}
	},
	"GhostKnight": {
		"TID": "TID_GHOST_KNIGHT",
		"ProductionBuilding": "Barrack",
		"1": {"DPS": 40, "Hitpoints": 150}
	},
	"MysteryUnit": {
		"TID": "TID_MYSTERY",
		"ProductionBuilding": "Laboratory",
		"1": {"DPS": 40, "Hitpoints": 150}
	},
	"Shade": {
		"TID": "TID_SHADE",
		"ProductionBuilding": "Dark Elixir Barrack",
		"BarrackLevel": 1,
		"HousingSpace": 10,
		"TrainingTime": 45,
		"UpgradeResource": "DarkElixir",
		"1": {"DPS": 100, "Hitpoints": 400, "Speed": 20, "UpgradeCost": 5000, "UpgradeTimeH": 10, "LaboratoryLevel": 4},
		"2": {"DPS": 110, "Hitpoints": 440, "Speed": 20, "UpgradeCost": 9000, "UpgradeTimeH": 12, "LaboratoryLevel": 5}
	},
	"KnightVariant": {
		"TID": "TID_KNIGHT",
		"ProductionBuilding": "Barrack",
		"BarrackLevel": 6,
		"HousingSpace": 5,
		"1": {"DPS": 90, "Hitpoints": 500, "LaboratoryLevel": 5}
	},
	"Raider": {
		"TID": "TID_RAIDER",
		"ProductionBuilding": "Barrack2",
		"BarrackLevel": 2,
		"HousingSpace": 2,
		"VillageType": 1,
		"UpgradeResource": "Elixir2",
		"1": {"DPS": 45, "Hitpoints": 180, "LaboratoryLevel": 1},
		"2": {"DPS": 50, "Hitpoints": 200, "LaboratoryLevel": 2}
	}
}`

// TestSpellsJSON — spells-файл тестового дампа.
const TestSpellsJSON = `{
	"Fireball": {
		"TID": "TID_FIREBALL",
		"ProductionBuilding": "Spell Forge",
		"BarrackLevel": 2,
		"HousingSpace": 2,
		"UpgradeResource": "Elixir",
		"1": {"UpgradeCost": 150000, "UpgradeTimeH": 24, "LaboratoryLevel": 2},
		"2": {"UpgradeCost": 300000, "UpgradeTimeH": 36, "LaboratoryLevel": 5}
	},
	"Hex": {
		"TID": "TID_HEX",
		"ProductionBuilding": "Mini Spell Factory",
		"BarrackLevel": 1,
		"HousingSpace": 1,
		"UpgradeResource": "DarkElixir",
		"1": {"UpgradeCost": 10000, "UpgradeTimeH": 20, "LaboratoryLevel": 5}
	}
}`

// TestHeroesJSON — heroes-файл тестового дампа: нет production building,
// lab-серия берётся как есть, явные RequiredTownHallLevel.
const TestHeroesJSON = `{
	"WarChief": {
		"TID": "TID_WAR_CHIEF",
		"UpgradeResource": "DarkElixir",
		"1": {"DPS": 120, "Hitpoints": 1500, "UpgradeCost": 1000, "UpgradeTimeH": 12, "LaboratoryLevel": 1, "RequiredTownHallLevel": 7, "AbilityTime": 10, "AbilitySummonTroopCount": 6},
		"2": {"DPS": 130, "Hitpoints": 1600, "UpgradeCost": 2000, "UpgradeTimeH": 24, "LaboratoryLevel": 2, "RequiredTownHallLevel": 8, "AbilityTime": 10, "AbilitySummonTroopCount": 8}
	}
}`

// TestPetsJSON — pets-файл тестового дампа. У всех петов
// DisableProduction=true (особенность исходных файлов), Unused и
// PhoenixEgg — placeholder-записи.
const TestPetsJSON = `{
	"Frosty": {
		"TID": "TID_FROSTY",
		"DisableProduction": true,
		"UpgradeResource": "DarkElixir",
		"1": {"DPS": 40, "Hitpoints": 1000, "UpgradeCost": 115000, "UpgradeTimeH": 72, "LaboratoryLevel": 9, "RegenerationTimeMinutes": 30},
		"2": {"DPS": 44, "Hitpoints": 1100, "UpgradeCost": 130000, "UpgradeTimeH": 84, "LaboratoryLevel": 9, "RegenerationTimeMinutes": 30},
		"3": {"DPS": 48, "Hitpoints": 1200, "UpgradeCost": 145000, "UpgradeTimeH": 96, "LaboratoryLevel": 10, "RegenerationTimeMinutes": 30}
	},
	"Unused": {
		"TID": "TID_UNUSED_PET",
		"DisableProduction": true,
		"1": {"DPS": 1, "Hitpoints": 1, "LaboratoryLevel": 9}
	},
	"PhoenixEgg": {
		"TID": "TID_PHOENIX_EGG",
		"DisableProduction": true,
		"1": {"DPS": 1, "Hitpoints": 1, "LaboratoryLevel": 9}
	}
}`

// TestAliases возвращает таблицу text-id → display name тестового дампа.
// TID_GHOST_KNIGHT намеренно отсутствует (skip по missing alias).
func TestAliases() map[string]string {
	return map[string]string{
		"TID_KNIGHT":        "Knight",
		"TID_OLD_KNIGHT":    "Old Knight",
		"TID_SECRET_KNIGHT": "Secret Knight",
		"TID_MYSTERY":       "Mystery Unit",
		"TID_SHADE":         "Shade",
		"TID_RAIDER":        "Raider",
		"TID_FIREBALL":      "Fireball",
		"TID_HEX":           "Hex",
		"TID_WAR_CHIEF":     "War Chief",
		"TID_FROSTY":        "Frosty",
		"TID_UNUSED_PET":    "Unused Pet",
		"TID_PHOENIX_EGG":   "Phoenix Egg",
	}
}

// TestSources возвращает полный тестовый дамп.
func TestSources() Sources {
	return Sources{
		Troops:        []byte(TestTroopsJSON),
		Spells:        []byte(TestSpellsJSON),
		Heroes:        []byte(TestHeroesJSON),
		Pets:          []byte(TestPetsJSON),
		Buildings:     []byte(TestBuildingsJSON),
		Aliases:       TestAliases(),
		LabToTownhall: TestLabToTownhall(),
	}
}
