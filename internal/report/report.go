package report

import (
	"fmt"
	"github.com/gostonefire/hashsimulator/internal/model"
	jsoniter "github.com/json-iterator/go"
	"io"
	"strings"
)

// Text - Writes one line per result in the form "Collisions with H1: 16, Probes with H1: 74"
func Text(w io.Writer, results []model.RunResult) (err error) {
	for _, r := range results {
		label := strings.ToUpper(r.Algorithm)
		_, err = fmt.Fprintf(w, "Collisions with %s: %d, Probes with %s: %d\n", label, r.Collisions, label, r.Probes)
		if err != nil {
			return
		}
	}

	return
}

// JSON - Writes the results as a JSON array of {"algorithm", "collisions", "probes"} objects
func JSON(w io.Writer, results []model.RunResult) (err error) {
	if results == nil {
		results = []model.RunResult{}
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	err = enc.Encode(results)

	return
}
