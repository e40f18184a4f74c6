package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/ftracker/internal/theme"
)

type Writer struct {
	w      io.Writer
	format Format
	theme  theme.Theme
	json   *go_json.Encoder
}

// NewWriter renders reports to w. Pretty output goes through a colour
// profile writer, so pipes and files receive the plain sentence.
func NewWriter(w io.Writer, format Format) (*Writer, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	out := w
	if format == FormatPretty {
		out = colorprofile.NewWriter(w, os.Environ())
	}
	return &Writer{
		w:      out,
		format: format,
		theme:  theme.New(),
		json:   go_json.NewEncoder(w),
	}, nil
}

type jsonInfo struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration_h"`
	Distance     float64 `json:"distance_km"`
	Speed        float64 `json:"speed_kmh"`
	Calories     float64 `json:"calories_kcal"`
}

func (w *Writer) Write(info Info) error {
	switch w.format {
	case FormatJSON:
		if err := w.json.Encode(jsonInfo{
			TrainingType: info.TrainingType,
			Duration:     round3(info.Duration),
			Distance:     round3(info.Distance),
			Speed:        round3(info.Speed),
			Calories:     round3(info.Calories),
		}); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	case FormatPretty:
		label := w.theme.Label(info.TrainingType).Render(info.TrainingType)
		_, err := fmt.Fprintln(w.w, info.message(label))
		return err
	default:
		_, err := fmt.Fprintln(w.w, info.Message())
		return err
	}
}
