package crew

import (
	"testing"

	"github.com/nellwatson/go-floorcrew/pkg/rig"
)

// lodTestManager evaluates LOD on every frame so the tests can steer
// distance directly.
func lodTestManager(t *testing.T) (*Manager, *agent) {
	t.Helper()
	m := newTestManager(newMockRegistry())
	registerWorker(m, "w1", rig.Vec3{}, 2, 1)
	m.lodEvery = 1
	a := m.agents["w1"]
	a.lodOffset = 0
	return m, a
}

func TestLOD_OscillationInsideBandDoesNotFlap(t *testing.T) {
	m, a := lodTestManager(t)

	// Default LODDistance is 25, band 2.5. Oscillate the camera across
	// the bare threshold but inside the band: the tier must hold.
	a.lod = LODHigh
	for i := 0; i < 60; i++ {
		x := 24.0
		if i%2 == 0 {
			x = 26.5
		}
		m.Update(0.016, rig.Vec3{X: x})
		if a.lod != LODHigh {
			t.Fatalf("tier flapped to %s at distance %v", a.lod, x)
		}
	}

	a.lod = LODMedium
	for i := 0; i < 60; i++ {
		x := 48.0
		if i%2 == 0 {
			x = 51.5
		}
		m.Update(0.016, rig.Vec3{X: x})
		if a.lod != LODMedium {
			t.Fatalf("medium tier flapped to %s at distance %v", a.lod, x)
		}
	}
}

func TestLOD_DowngradeRequiresClearingTheBand(t *testing.T) {
	m, a := lodTestManager(t)

	m.Update(0.016, rig.Vec3{X: 27.4}) // inside the band
	if a.lod != LODHigh {
		t.Fatalf("downgraded at the bare threshold: %s", a.lod)
	}

	m.Update(0.016, rig.Vec3{X: 30})
	if a.lod != LODMedium {
		t.Fatalf("did not downgrade past the band: %s", a.lod)
	}
}

func TestLOD_UpgradeRequiresClearingTheBand(t *testing.T) {
	m, a := lodTestManager(t)
	a.lod = LODMedium

	m.Update(0.016, rig.Vec3{X: 23})
	if a.lod != LODMedium {
		t.Fatalf("upgraded inside the band: %s", a.lod)
	}

	m.Update(0.016, rig.Vec3{X: 20})
	if a.lod != LODHigh {
		t.Fatalf("did not upgrade below the band: %s", a.lod)
	}
}

func TestLOD_FarCameraDropsToLow(t *testing.T) {
	m, a := lodTestManager(t)

	m.Update(0.016, rig.Vec3{X: 80})
	if a.lod != LODLow {
		t.Fatalf("tier at distance 80: got %s, want low", a.lod)
	}
}

func TestLOD_ChangeNotifiesSubscriber(t *testing.T) {
	m, a := lodTestManager(t)

	var got []LOD
	m.OnLODChange("w1", func(l LOD) { got = append(got, l) })

	m.Update(0.016, rig.Vec3{X: 80})
	m.Update(0.016, rig.Vec3{X: 80}) // no change, no second event
	m.Update(0.016, rig.Vec3{X: 5})

	want := []LOD{LODLow, LODHigh}
	if len(got) != len(want) {
		t.Fatalf("events: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if a.lod != LODHigh {
		t.Errorf("final tier: got %s, want high", a.lod)
	}
}

func TestGetLOD(t *testing.T) {
	m, _ := lodTestManager(t)

	l, ok := m.GetLOD("w1")
	if !ok || l != LODHigh {
		t.Errorf("GetLOD(w1): got %s/%v", l, ok)
	}
	if _, ok := m.GetLOD("nope"); ok {
		t.Error("GetLOD on unknown id reported ok")
	}
}
