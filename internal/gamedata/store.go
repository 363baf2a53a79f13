package gamedata

import (
	"fmt"
	"log/slog"
	"os"
)

// Store — все registries плюс таблица зданий, загруженные один раз при
// старте процесса. После Load только читается: парс профилей разных
// игроков может идти из любого числа горутин без синхронизации.
type Store struct {
	Troops *Registry
	Spells *Registry
	Heroes *Registry
	Pets   *Registry

	Buildings BuildingTable
}

// Sources — сырые байты статического дампа и таблицы от вызывающего кода.
type Sources struct {
	Troops    []byte
	Spells    []byte
	Heroes    []byte
	Pets      []byte
	Buildings []byte

	// Aliases — text-id → отображаемое имя, принимается как есть.
	Aliases map[string]string
	// LabToTownhall — кривая прогрессии: laboratory level → town hall.
	// Должна быть обратимой, см. labLevelFor.
	LabToTownhall map[int]int
}

// Load строит Store из статического дампа. Загрузка однопоточная и
// одноразовая — повторных и инкрементальных загрузок нет.
func Load(src Sources) (*Store, error) {
	buildings, err := ParseBuildings(src.Buildings)
	if err != nil {
		return nil, err
	}

	s := &Store{Buildings: buildings}

	for _, cat := range []struct {
		kind Kind
		raw  []byte
		dst  **Registry
	}{
		{KindTroops, src.Troops, &s.Troops},
		{KindSpells, src.Spells, &s.Spells},
		{KindHeroes, src.Heroes, &s.Heroes},
		{KindPets, src.Pets, &s.Pets},
	} {
		reg, err := LoadRegistry(cat.kind, cat.raw, src.Aliases, src.LabToTownhall, buildings)
		if err != nil {
			return nil, err
		}
		*cat.dst = reg
	}

	slog.Info("game data loaded",
		"troops", s.Troops.Len(), "spells", s.Spells.Len(),
		"heroes", s.Heroes.Len(), "pets", s.Pets.Len())
	return s, nil
}

// FilePaths — пути к файлам одного статического дампа.
type FilePaths struct {
	Troops    string
	Spells    string
	Heroes    string
	Pets      string
	Buildings string
	Texts     string
}

// LoadFiles читает дамп с диска и строит Store.
func LoadFiles(paths FilePaths, labToTownhall map[int]int) (*Store, error) {
	read := func(path string) ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{File: path, Err: err}
		}
		return data, nil
	}

	src := Sources{LabToTownhall: labToTownhall}
	var err error
	if src.Troops, err = read(paths.Troops); err != nil {
		return nil, err
	}
	if src.Spells, err = read(paths.Spells); err != nil {
		return nil, err
	}
	if src.Heroes, err = read(paths.Heroes); err != nil {
		return nil, err
	}
	if src.Pets, err = read(paths.Pets); err != nil {
		return nil, err
	}
	if src.Buildings, err = read(paths.Buildings); err != nil {
		return nil, err
	}

	texts, err := read(paths.Texts)
	if err != nil {
		return nil, err
	}
	if src.Aliases, err = ParseAliases(texts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", paths.Texts, err)
	}

	return Load(src)
}

// Verify прогоняет инвариант равной длины серий по всем registries.
func (s *Store) Verify() error {
	for _, r := range []*Registry{s.Troops, s.Spells, s.Heroes, s.Pets} {
		if err := r.Verify(); err != nil {
			return fmt.Errorf("%s: %w", r.Kind(), err)
		}
	}
	return nil
}
