// Command fuzzyserver exposes fuzzy matching over HTTP: POST a pattern and
// text as JSON to /match and get back the score and a chunked rendering of
// the optimal alignment.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"

	"github.com/samroberts/fuzzygo"
	"github.com/samroberts/fuzzygo/diffrender"
)

type matchRequest struct {
	Pattern string `json:"pattern"`
	Text    string `json:"text"`
}

type matchResponse struct {
	Score int         `json:"score"`
	Trace []outChunk  `json:"trace"`
}

// outChunk is a tagged union serialised as exactly one of its three fields,
// mirroring the shape diffrender.Chunk renders: a run of matched text, a
// run of pattern content that had to be taken out, or a run of text that
// had to be added.
type outChunk struct {
	Same  string `json:"same,omitempty"`
	Taken string `json:"taken,omitempty"`
	Added string `json:"added,omitempty"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fuzzyserver: ")

	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/match", handleMatch)

	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func handleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := fuzzygo.SolveRegex(req.Pattern, req.Text)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := matchResponse{Score: result.Score}
	for _, c := range result.Chunks() {
		switch c.Kind {
		case diffrender.ChunkSame:
			resp.Trace = append(resp.Trace, outChunk{Same: c.Text})
		case diffrender.ChunkDiff:
			if c.Taken != "" {
				resp.Trace = append(resp.Trace, outChunk{Taken: c.Taken})
			}
			if c.Added != "" {
				resp.Trace = append(resp.Trace, outChunk{Added: c.Added})
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
