// Command sokobanserver exposes the solver over HTTP: POST a puzzle in
// the text format of spec.md §6 to /solve and get back the push sequence
// as JSON. This is a stateless request/response API, not the interactive
// play or terminal rendering spec.md's Non-goals exclude - there is no
// session, no board redraw, no keyboard loop.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vcte/sokoban/config"
	"github.com/vcte/sokoban/deadlock"
	"github.com/vcte/sokoban/puzzle"
	"github.com/vcte/sokoban/search"
)

type server struct {
	cfg   *config.Root
	table deadlock.Table
	mode  deadlock.Mode
}

type solveResponse struct {
	Solved  bool     `json:"solved"`
	Pushes  []string `json:"pushes,omitempty"`
	Visited int      `json:"visited"`
	Error   string   `json:"error,omitempty"`
}

func (s *server) serveSolve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResponse{Error: err.Error()})
		return
	}
	start, err := puzzle.Parse(string(body))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResponse{Error: err.Error()})
		return
	}

	strategy := r.URL.Query().Get("strategy")
	if strategy == "" {
		strategy = s.cfg.Solver.Strategy
	}
	h, err := config.BuildHeuristic(s.cfg.Solver.Heuristic, s.table, s.mode)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, solveResponse{Error: err.Error()})
		return
	}

	opts := search.Options{MaxNodes: s.cfg.Solver.MaxNodes}
	var result search.Result
	switch strategy {
	case "bfs":
		result = search.BFS(start, opts)
	case "dfs":
		result = search.DFS(start, opts)
	case "greedy":
		result = search.Greedy(start, h, opts)
	default:
		result = search.AStar(start, h, opts)
	}

	resp := solveResponse{Visited: result.Visited}
	if len(result.Steps) > 0 {
		resp.Solved = true
		for _, step := range result.Steps {
			if step.Action != nil {
				resp.Pushes = append(resp.Pushes, step.Action.String())
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) serveHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	var (
		addr       = flag.String("addr", ":8080", "listen address")
		configPath = flag.String("config", "", "path to a YAML config file (optional)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		root, err := config.FromYaml(*configPath)
		if err != nil {
			log.Fatalf("sokobanserver: %v", err)
		}
		cfg = root
	}

	var table deadlock.Table
	if cfg.Solver.DeadlockTablePath != "" {
		t, err := deadlock.LoadTableFile(cfg.Solver.DeadlockTablePath)
		if err != nil {
			log.Fatalf("sokobanserver: loading deadlock table: %v", err)
		}
		table = t
	}
	mode, err := config.ParseDeadlockMode(cfg.Solver.DeadlockMode)
	if err != nil {
		log.Fatalf("sokobanserver: %v", err)
	}

	srv := &server{cfg: cfg, table: table, mode: mode}

	router := mux.NewRouter()
	router.HandleFunc("/solve", srv.serveSolve).Methods(http.MethodPost)
	router.HandleFunc("/health", srv.serveHealth).Methods(http.MethodGet)

	log.Printf("sokobanserver: listening on %s", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatalf("sokobanserver: %v", err)
	}
}
