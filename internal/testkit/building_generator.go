package testkit

import (
	"fmt"
	"math/rand"
	"sort"
)

// BuildingGeneratorConfig configures the synthetic building model
type BuildingGeneratorConfig struct {
	Storeys         int   `json:"storeys"`
	WallsPerStorey  int   `json:"walls_per_storey"`
	DoorsPerStorey  int   `json:"doors_per_storey"`
	WindowsPerWall  int   `json:"windows_per_wall"`
	SpacesPerStorey int   `json:"spaces_per_storey"`
	Seed            int64 `json:"seed"`
}

// DefaultBuildingConfig returns a small office-sized model
func DefaultBuildingConfig() BuildingGeneratorConfig {
	return BuildingGeneratorConfig{
		Storeys:         3,
		WallsPerStorey:  12,
		DoorsPerStorey:  6,
		WindowsPerWall:  2,
		SpacesPerStorey: 5,
		Seed:            42,
	}
}

// BuildingElement is one generated element with its schedule properties
type BuildingElement struct {
	Type    string
	Storey  int
	Name    string
	Length  float64
	Height  float64
	Area    float64
	Volume  float64
	Loadbrg bool
}

// BuildingDataGenerator produces a deterministic building model for demos
type BuildingDataGenerator struct {
	config BuildingGeneratorConfig
	rng    *rand.Rand
}

// NewBuildingDataGenerator creates a new building generator
func NewBuildingDataGenerator(config BuildingGeneratorConfig) *BuildingDataGenerator {
	return &BuildingDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateElements returns the element list, storey by storey
func (g *BuildingDataGenerator) GenerateElements() []BuildingElement {
	var elements []BuildingElement
	for s := 1; s <= g.config.Storeys; s++ {
		height := 3.0 + float64(g.rng.Intn(5))*0.1
		elements = append(elements, BuildingElement{Type: "IfcBuildingStorey", Storey: s, Name: fmt.Sprintf("Level %d", s), Height: height})
		elements = append(elements, g.slab(s))

		for w := 1; w <= g.config.WallsPerStorey; w++ {
			length := round2(2.5 + g.rng.Float64()*7.5)
			wall := BuildingElement{
				Type:    "IfcWall",
				Storey:  s,
				Name:    fmt.Sprintf("W-%d%02d", s, w),
				Length:  length,
				Height:  height,
				Area:    round2(length * height),
				Volume:  round2(length * height * 0.2),
				Loadbrg: g.rng.Float64() < 0.4,
			}
			elements = append(elements, wall)
			for k := 1; k <= g.config.WindowsPerWall; k++ {
				elements = append(elements, BuildingElement{Type: "IfcWindow", Storey: s, Name: fmt.Sprintf("%s-WIN%d", wall.Name, k), Height: 1.2, Length: 1.0, Area: 1.2})
			}
		}
		for d := 1; d <= g.config.DoorsPerStorey; d++ {
			elements = append(elements, BuildingElement{Type: "IfcDoor", Storey: s, Name: fmt.Sprintf("D-%d%02d", s, d), Height: 2.1, Length: 0.9, Area: 1.89})
		}
		for sp := 1; sp <= g.config.SpacesPerStorey; sp++ {
			area := round2(8 + g.rng.Float64()*40)
			elements = append(elements, BuildingElement{Type: "IfcSpace", Storey: s, Name: fmt.Sprintf("%d.%02d", s, sp), Height: height, Area: area, Volume: round2(area * height)})
		}
	}
	return elements
}

func (g *BuildingDataGenerator) slab(storey int) BuildingElement {
	area := round2(250 + g.rng.Float64()*100)
	return BuildingElement{Type: "IfcSlab", Storey: storey, Name: fmt.Sprintf("SL-%d", storey), Area: area, Volume: round2(area * 0.25), Loadbrg: true}
}

// IFCFile renders the generated elements as an IFC STEP file. Site, building
// and a handful of geometry helpers are added so the model is not products only.
func (g *BuildingDataGenerator) IFCFile() []byte {
	types := []string{"IfcProject", "IfcSite", "IfcBuilding"}
	for _, e := range g.GenerateElements() {
		types = append(types, e.Type, "IfcLocalPlacement")
	}
	types = append(types, "IfcOwnerHistory", "IfcGeometricRepresentationContext")
	return IFC(types...)
}

// ScheduleWorkbook renders the generated elements as an element schedule
// workbook with an Elements sheet and a per-type Summary sheet
func (g *BuildingDataGenerator) ScheduleWorkbook() ([]byte, error) {
	elements := g.GenerateElements()

	rows := [][]interface{}{{"Type", "Storey", "Name", "Length", "Height", "Area", "Volume", "LoadBearing"}}
	counts := make(map[string]int)
	for _, e := range elements {
		rows = append(rows, []interface{}{e.Type, e.Storey, e.Name, optional(e.Length), optional(e.Height), optional(e.Area), optional(e.Volume), yesNo(e.Loadbrg)})
		counts[e.Type]++
	}

	types := make([]string, 0, len(counts))
	for typ := range counts {
		types = append(types, typ)
	}
	sort.Strings(types)
	summary := [][]interface{}{{"Type", "Count"}}
	for _, typ := range types {
		summary = append(summary, []interface{}{typ, counts[typ]})
	}

	return Workbook(Sheet{Name: "Elements", Rows: rows}, Sheet{Name: "Summary", Rows: summary})
}

// optional leaves a blank cell for properties an element does not carry
func optional(v float64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
