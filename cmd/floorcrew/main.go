// Floorcrew - warehouse floor simulation demo
//
// Drives a population of simulated workers at 60fps, patrols a couple
// of forklifts through their lanes, orbits a camera for LOD, and serves
// the observation dashboard. The frame loop owns the Manager; the
// dashboard only sees published snapshots.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/nellwatson/go-floorcrew/internal/config"
	"github.com/nellwatson/go-floorcrew/internal/log"
	"github.com/nellwatson/go-floorcrew/pkg/crew"
	"github.com/nellwatson/go-floorcrew/pkg/rig"
	"github.com/nellwatson/go-floorcrew/pkg/spatial"
	"github.com/nellwatson/go-floorcrew/pkg/web"
)

const frameRate = 60

// exit positions for the evacuation drill
var exits = []crew.Exit{
	{ID: "exit-north", X: 0, Z: 28, Label: "North Dock"},
	{ID: "exit-south", X: 0, Z: -28, Label: "South Dock"},
	{ID: "exit-office", X: -14, Z: 0, Label: "Office Door"},
}

// forklift is a scripted patrol vehicle for the demo.
type forklift struct {
	id    string
	z     float64
	x     float64
	dir   float64
	speed float64
}

func main() {
	log.Init(config.LogLevel("info"))

	quality := config.Quality(config.DefaultQuality)
	population := config.Population(config.DefaultPopulation)
	forkliftCount := config.Forklifts(config.DefaultForklifts)

	var rng *rand.Rand
	if seed, ok := config.Seed(); ok {
		rng = rand.New(rand.NewSource(seed))
	}

	registry := spatial.NewRegistry()
	manager := crew.NewManager(registry, rng)

	// The Manager runs on the frame loop's goroutine only. Dashboard
	// control requests are queued here and applied at the top of the
	// next frame.
	var evacuationActive atomic.Bool
	var evacuatedCount atomic.Int64
	var pendingMu sync.Mutex
	pendingStatus := make(map[string]crew.Status)
	workerIDs := make(map[string]bool)

	// Workers
	spawnRng := rand.New(rand.NewSource(time.Now().UnixNano()))
	roles := []string{"picker", "packer", "loader", "spotter"}
	for i := 0; i < population; i++ {
		id := "w-" + uuid.NewString()[:8]
		workerIDs[id] = true
		cfg := crew.Config{
			ID:        id,
			Position:  rig.Vec3{X: -10 + 2*float64(i), Z: -20 + spawnRng.Float64()*40},
			Speed:     1.5 + spawnRng.Float64(),
			Direction: []float64{1, -1}[i%2],
			Role:      roles[i%len(roles)],
			Status:    crew.StatusWorking,
		}
		manager.Register(cfg, rig.NewBindings())

		// Mount a reduced rig when the worker drops out of high detail,
		// carrying position across the swap.
		workerID := id
		manager.OnLODChange(workerID, func(l crew.LOD) {
			b := rig.NewBindings()
			if l != crew.LODHigh {
				b.Detail = nil
			}
			manager.UpdateRefs(workerID, b)
		})
	}

	// Forklifts
	forklifts := make([]*forklift, 0, forkliftCount)
	for i := 0; i < forkliftCount; i++ {
		forklifts = append(forklifts, &forklift{
			id:    "f-" + uuid.NewString()[:8],
			z:     -15 + 30*float64(i)/math.Max(1, float64(forkliftCount-1)),
			x:     -20,
			dir:   1,
			speed: 2.5,
		})
	}

	// Dashboard
	server := web.NewServer(config.Port(config.DefaultPort))
	server.OnEvacuation = func(active bool) {
		if active && !evacuationActive.Load() {
			evacuatedCount.Store(0)
		}
		evacuationActive.Store(active)
		log.Info("evacuation toggled", "active", active)
	}
	server.OnWorkerStatus = func(id string, status crew.Status) bool {
		if !workerIDs[id] {
			return false
		}
		pendingMu.Lock()
		pendingStatus[id] = status
		pendingMu.Unlock()
		return true
	}
	go func() {
		if err := server.Start(); err != nil {
			log.Error("dashboard failed", "err", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("🏭 Floorcrew simulation")
	fmt.Printf("Workers: %d  Forklifts: %d  Quality: %s\n", population, forkliftCount, quality)
	fmt.Printf("Dashboard: http://localhost:%s  (Ctrl+C to stop)\n", config.Port(config.DefaultPort))

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	last := time.Now()
	var frame uint64
	var camAngle float64
	var drillActive bool

	for {
		select {
		case <-sigChan:
			fmt.Println("\n👋 Stopping simulation")
			server.Shutdown()
			return

		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now

			// Apply queued dashboard control changes on our goroutine.
			pendingMu.Lock()
			for id, status := range pendingStatus {
				manager.UpdateWorkerStatus(id, status)
				delete(pendingStatus, id)
			}
			pendingMu.Unlock()

			active := evacuationActive.Load()
			if drillActive && !active {
				manager.ResetEvacuation()
			}
			drillActive = active

			// Scripted forklift patrols along the x aisles.
			for _, f := range forklifts {
				f.x += f.dir * f.speed * delta
				if f.x > 22 {
					f.x = 22
					f.dir = -1
				} else if f.x < -22 {
					f.x = -22
					f.dir = 1
				}
				registry.Register(f.id, f.x, f.z, "forklift")
			}

			// Slow camera orbit so LOD tiers actually change.
			camAngle += delta * 0.1
			camera := rig.Vec3{
				X: 45 * math.Cos(camAngle),
				Y: 12,
				Z: 45 * math.Sin(camAngle),
			}

			manager.UpdateSettings(crew.Settings{
				TabVisible:       true,
				Quality:          quality,
				LODDistance:      25,
				EvacuationActive: active,
				NearestExit:      nearestExit,
				MarkEvacuated: func(id string) {
					n := evacuatedCount.Add(1)
					log.Info("worker evacuated", "id", id, "total", n)
				},
			})
			manager.Update(delta, camera)

			frame++
			if frame%2 == 0 { // 30fps is plenty for observers
				server.PublishFrame(web.Frame{
					Frame:     frame,
					Workers:   manager.Snapshot(),
					Forklifts: registry.Entities("forklift"),
					Census:    manager.Census(),
				})
			}
		}
	}
}

// nearestExit resolves the closest evacuation exit to (x, z).
func nearestExit(x, z float64) *crew.Exit {
	var best *crew.Exit
	bestDist := math.MaxFloat64
	for i := range exits {
		e := &exits[i]
		d := math.Hypot(e.X-x, e.Z-z)
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	if best == nil {
		return nil
	}
	found := *best
	return &found
}
