// Package services implements the business logic layer for parcm.
//
// Services sit between the HTTP handlers and the lower layers: the album store,
// the worker pool and the background loader.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	Services Layer
//	    ├── Player ───────► Loader, Scheduler, AlbumCatalog
//	    └── AlbumService ─► Store
//
// # Player
//
// Player is the single consumer of the loader. It owns the tick loop that
// starts loads and activates their results, so Finalize is only ever called
// from one goroutine.
//
// State Machine:
//
//	┌──────┐ load started ┌─────────┐  finalized   ┌─────────┐
//	│ Idle │─────────────►│ Loading │─────────────►│ Playing │
//	└──────┘              └─────────┘              └─────────┘
//	    ▲                   │    ▲                      │
//	    │ timeout (nothing  │    │     load started     │
//	    │ playing yet)      │    └──────────────────────┘
//	    └───────────────────┘
//
// Every tick:
//
//  1. Take the outstanding request and call BeginLoad. A rejected request is
//     put back unless a newer one was recorded meanwhile.
//  2. If a load finished, Finalize it and publish the new NowPlaying.
//  3. If the loading album went back to Idle without finishing, record a
//     timeout error.
//
// Navigation:
//   - Next/Prev pick the neighbour of the current album in catalog order and wrap around.
//   - The current album is the pending request, else the loading album, else the live one.
//   - Play(index) requests a specific album and fails with ResourceNotFoundError if it is unknown.
//   - An empty catalog fails with EmptyCatalogError.
//
// Artifacts that failed and were served from a fallback or kept from the
// previous album are listed in NowPlaying.Degraded.
//
// Usage:
//
//	l := loader.New(sched, assets.Artifacts(lib, st.Album(), cfg.Loader.DefaultCoverPath))
//	player := services.NewPlayer(sched, l, st.Album(), cfg.Loader.TickInterval)
//	player.Start(ctx)
//	defer player.Stop()
//
//	next, err := player.Next(ctx)
//	status := player.Status()
//
// # AlbumService
//
// AlbumService is a stateless facade over the album store with filtering and
// pagination.
//
//	params := services.AlbumListParams{
//	    Artists: []string{"Miles Davis"},
//	    Limit:   20,
//	}
//	res, err := albumService.List(ctx, params)
//
// # Thread Safety
//
// Player state is protected by a mutex; the tick loop lifecycle is managed with
// channels and context cancellation. AlbumService holds only the store.
package services
