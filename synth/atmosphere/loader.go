package atmosphere

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-spectral/internal/fixedwidth"
)

// Model files are fixed-width tables: a header line naming the geometry
// ("plane-parallel" or "spherical"), then one line per layer with the
// columns tau_ref, T, n_total, n_e, and column mass (plane-parallel) or
// radius (spherical). Blank lines and '#' comments are skipped.
var layerColumns = fixedwidth.Layout{12, 12, 14, 14, 14}

// Load reads a fixed-width model atmosphere table.
func Load(r io.Reader) (*Model, error) {
	sc := bufio.NewScanner(r)
	ln := 0

	model := &Model{}
	sawHeader := false

	for sc.Scan() {
		ln++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}

		if !sawHeader {
			switch trimmed {
			case "plane-parallel":
				model.Geometry = PlaneParallel
			case "spherical":
				model.Geometry = Spherical
			default:
				return nil, fmt.Errorf("atmosphere: line %d: unknown geometry %q", ln, trimmed)
			}
			sawHeader = true
			continue
		}

		vals, err := layerColumns.Floats(line)
		if err != nil {
			return nil, fmt.Errorf("atmosphere: line %d: %w", ln, err)
		}

		layer := Layer{
			TauRef:          vals[0],
			Temp:            vals[1],
			NumberDensity:   vals[2],
			ElectronDensity: vals[3],
		}
		if model.Geometry == Spherical {
			layer.Radius = vals[4]
		} else {
			layer.ColumnMass = vals[4]
		}

		model.Layers = append(model.Layers, layer)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	return model, nil
}
