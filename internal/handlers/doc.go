// Package handlers implements the HTTP API layer for parcm.
//
// Handlers delegate to the services layer and focus on parameter handling,
// response formatting and HTTP semantics.
//
// # Handler Structure
//
//	type Handler struct {
//	    player   *services.Player
//	    albumSrv *services.AlbumService
//	}
//
// The Handler implements v1.ServerInterface and is mounted with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
//	┌────────┬───────────────────────┬──────────────────────────────────────┐
//	│ Method │ Endpoint              │ Description                          │
//	├────────┼───────────────────────┼──────────────────────────────────────┤
//	│ GET    │ /status               │ Player, load slot and pool status    │
//	│ POST   │ /player/next          │ Request the next album               │
//	│ POST   │ /player/prev          │ Request the previous album           │
//	│ POST   │ /player/play/{index}  │ Request a specific album             │
//	│ GET    │ /albums               │ List albums with filtering/paging    │
//	│ GET    │ /albums/{index}       │ Get one album                        │
//	└────────┴───────────────────────┴──────────────────────────────────────┘
//
// Navigation endpoints return 202 Accepted with the requested index; the album
// becomes live once the player finalizes it. Poll GET /status:
//
//	{
//	    "state": "playing",
//	    "nowPlaying": {
//	        "album": { "index": 2, "title": "Giant Steps" },
//	        "cover": { "width": 600, "height": 600, "placeholder": false },
//	        "degraded": ["track"]
//	    },
//	    "slot": { "state": "finalized", "key": 2, "generation": 3, ... },
//	    "pool": { "workers": 4, "idle": 4, "pending": 0, ... }
//	}
//
// GET /albums query parameters: artist (repeatable), title (substring match),
// page (default 1), pageSize (default 20, max 100).
//
// # Error Handling
//
//	┌─────────────────────────┬────────┬────────────────────────────────┐
//	│ Error Type              │ Status │ When                           │
//	├─────────────────────────┼────────┼────────────────────────────────┤
//	│ Parameter binding       │ 400    │ Non numeric index or paging    │
//	│ ResourceNotFoundError   │ 404    │ Album doesn't exist            │
//	│ EmptyCatalogError       │ 409    │ Next/Prev with no albums       │
//	│ Internal error          │ 500    │ Unexpected service errors      │
//	└─────────────────────────┴────────┴────────────────────────────────┘
package handlers
