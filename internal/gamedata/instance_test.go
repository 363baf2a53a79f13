package gamedata

import (
	"errors"
	"testing"
	"time"
)

func TestInstance_Overlay(t *testing.T) {
	t.Parallel()

	s := loadTestStore(t)
	shade := s.Troops.Get("Shade")

	inst := NewInstance(shade, UnitData{
		Name: "Shade", Level: 1, MaxLevel: 2, Village: VillageHome,
	})

	if inst.IsMax() {
		t.Error("level 1 of 2 reports IsMax")
	}
	if !inst.IsHomeBase() || inst.IsBuilderBase() {
		t.Error("home village flags are wrong")
	}

	hp, err := inst.Hitpoints()
	if err != nil {
		t.Fatalf("Hitpoints: %v", err)
	}
	if hp != 400 {
		t.Errorf("Hitpoints = %d, want 400", hp)
	}
	upTime, err := inst.UpgradeTime()
	if err != nil {
		t.Fatalf("UpgradeTime: %v", err)
	}
	if upTime != 10*time.Hour {
		t.Errorf("UpgradeTime = %v, want 10h", upTime)
	}
	lab, err := inst.LabLevel()
	if err != nil {
		t.Fatalf("LabLevel: %v", err)
	}
	if lab != 4 {
		t.Errorf("LabLevel = %d, want 4", lab)
	}

	maxed := NewInstance(shade, UnitData{Name: "Shade", Level: 2, MaxLevel: 2})
	if !maxed.IsMax() {
		t.Error("level 2 of 2 does not report IsMax")
	}
}

func TestInstance_OutOfRangeLevel(t *testing.T) {
	t.Parallel()

	s := loadTestStore(t)
	shade := s.Troops.Get("Shade")

	// уровень из live-данных выше известного шаблону: ошибка, не clamp
	inst := NewInstance(shade, UnitData{Name: "Shade", Level: 99, MaxLevel: 99})
	_, err := inst.DPS()
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("DPS error = %v, want OutOfRangeError", err)
	}
	if oor.Level != 99 || oor.Max != 2 {
		t.Errorf("OutOfRangeError = %+v, want Level=99 Max=2", oor)
	}
}

func TestInstance_NoTemplate(t *testing.T) {
	t.Parallel()

	inst := NewInstance(nil, UnitData{Name: "Brand New Troop", Level: 3})
	if _, err := inst.DPS(); !errors.Is(err, ErrNoTemplate) {
		t.Errorf("DPS error = %v, want ErrNoTemplate", err)
	}
	if _, err := inst.UpgradeTime(); !errors.Is(err, ErrNoTemplate) {
		t.Errorf("UpgradeTime error = %v, want ErrNoTemplate", err)
	}
	if inst.Name() != "Brand New Troop" || inst.Level() != 3 {
		t.Error("identity fields lost without template")
	}
}

func TestInstance_EqualityAcrossRegistries(t *testing.T) {
	t.Parallel()

	// два registry одного дампа: instances одинакового наблюдаемого
	// состояния равны и хешируются одинаково
	a := loadTestStore(t)
	b := loadTestStore(t)

	data := UnitData{Name: "Knight", Level: 9, Village: VillageHome, Active: false}
	first := a.Troops.Materialize(data, nil)
	second := b.Troops.Materialize(data, nil)

	if !first.Equal(second) {
		t.Error("instances of identical state compare unequal")
	}
	if first.Hash() != second.Hash() {
		t.Error("instances of identical state hash differently")
	}
}

func TestInstance_EqualityDistinguishesState(t *testing.T) {
	t.Parallel()

	base := UnitData{Name: "Knight", Level: 9, Village: VillageHome, Active: false}

	tests := []struct {
		name string
		data UnitData
	}{
		{"different level", UnitData{Name: "Knight", Level: 8, Village: VillageHome}},
		{"different name", UnitData{Name: "Shade", Level: 9, Village: VillageHome}},
		{"different village", UnitData{Name: "Knight", Level: 9, Village: VillageBuilderBase}},
		{"different active", UnitData{Name: "Knight", Level: 9, Village: VillageHome, Active: true}},
	}

	ref := NewInstance(nil, base)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := NewInstance(nil, tt.data)
			if ref.Equal(other) {
				t.Error("instances of different state compare equal")
			}
			if ref.Hash() == other.Hash() {
				t.Error("instances of different state hash identically")
			}
		})
	}

	// maxLevel не входит в наблюдаемое состояние
	withMax := NewInstance(nil, UnitData{Name: "Knight", Level: 9, MaxLevel: 10, Village: VillageHome})
	if !ref.Equal(withMax) {
		t.Error("maxLevel affects equality")
	}
}
