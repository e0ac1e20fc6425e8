package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/sinmod/internal/sinmod"
)

// Trace holds the sampled curve at a series of animation times.
type Trace struct {
	Params sinmod.Params `json:"params"`
	Width  int           `json:"width"`
	Times  []float64     `json:"times"`
	Values [][]float64   `json:"values"`
}

func NewTrace(p sinmod.Params, width int) *Trace {
	return &Trace{Params: p, Width: width}
}

// Add samples the curve at time t.
func (tr *Trace) Add(t float64) {
	tr.Times = append(tr.Times, t)
	tr.Values = append(tr.Values, tr.Params.Sample(tr.Width, t))
}

func (tr *Trace) Len() int { return len(tr.Times) }

func (tr *Trace) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tr)
}

// WriteCSV writes one row per time: the time followed by the value at
// every column.
func (tr *Trace) WriteCSV(w io.Writer) error {
	if tr.Len() == 0 {
		return ErrNoFrames
	}
	cw := csv.NewWriter(w)

	header := []string{"time"}
	for x := 0; x < tr.Width; x++ {
		header = append(header, fmt.Sprintf("x%d", x))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, t := range tr.Times {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, v := range tr.Values[i] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
